package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type RentalPeriod string

const (
	Period2Weeks  RentalPeriod = "2weeks"
	Period1Month  RentalPeriod = "1month"
	Period3Months RentalPeriod = "3months"
)

// ValidPeriod reports whether p is one of the allowed rental period codes.
func ValidPeriod(p RentalPeriod) bool {
	switch p {
	case Period2Weeks, Period1Month, Period3Months:
		return true
	}
	return false
}

// RentalRecord is one active rental embedded in the user document.
// At most one record exists per (user, book); renting again replaces
// the end date and period instead of appending.
type RentalRecord struct {
	BookID  primitive.ObjectID `bson:"bookId" json:"bookId"`
	EndDate time.Time          `bson:"endDate" json:"endDate"`
	Period  RentalPeriod       `bson:"rentalPeriod" json:"rentalPeriod"`
}

type NotificationKind string

const (
	NotifExpiringSoon NotificationKind = "expiring_soon"
	NotifExpired      NotificationKind = "expired"
)

// Notification is append-only; only the Read flag is ever mutated.
// (BookID, Kind) is the idempotence key for sweep-emitted entries.
type Notification struct {
	ID      primitive.ObjectID `bson:"_id" json:"id"`
	BookID  primitive.ObjectID `bson:"bookId" json:"bookId"`
	Kind    NotificationKind   `bson:"kind" json:"kind"`
	Message string             `bson:"message" json:"message"`
	Date    time.Time          `bson:"date" json:"date"`
	Read    bool               `bson:"read" json:"read"`
}

type User struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Email          string               `bson:"email" json:"email"`
	PasswordHash   string               `bson:"password" json:"-"`
	Role           string               `bson:"role" json:"role"`
	PurchasedBooks []primitive.ObjectID `bson:"purchasedBooks" json:"purchasedBooks"`
	RentedBooks    []RentalRecord       `bson:"rentedBooks" json:"rentedBooks"`
	Notifications  []Notification       `bson:"notifications" json:"notifications"`
}

// RegisterReq represents user registration payload
// swagger:model RegisterReq
type RegisterReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginReq represents login payload
// swagger:model LoginReq
type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
