// model/book.go
package model

import "go.mongodb.org/mongo-driver/bson/primitive"

type BookStatus string

const (
	BookAvailable   BookStatus = "available"
	BookUnavailable BookStatus = "unavailable"
)

// Price holds the purchase price and one rental tier per period.
type Price struct {
	Purchase    float64 `bson:"purchase" json:"purchase" validate:"gte=0"`
	Rent2Weeks  float64 `bson:"rent2Weeks" json:"rent2Weeks" validate:"gte=0"`
	Rent1Month  float64 `bson:"rent1Month" json:"rent1Month" validate:"gte=0"`
	Rent3Months float64 `bson:"rent3Months" json:"rent3Months" validate:"gte=0"`
}

// ForPeriod returns the rental tier matching the period code.
func (p Price) ForPeriod(period RentalPeriod) float64 {
	switch period {
	case Period2Weeks:
		return p.Rent2Weeks
	case Period1Month:
		return p.Rent1Month
	case Period3Months:
		return p.Rent3Months
	}
	return 0
}

type Book struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title         string             `bson:"title" json:"title"`
	Author        string             `bson:"author" json:"author"`
	Category      string             `bson:"category" json:"category"`
	Year          int                `bson:"year" json:"year"`
	Description   string             `bson:"description" json:"description"`
	CoverImageURL string             `bson:"coverImageUrl" json:"coverImageUrl"`
	PDFPath       string             `bson:"pdfPath" json:"-"`
	Price         Price              `bson:"price" json:"price"`
	Status        BookStatus         `bson:"status" json:"status"`
}
