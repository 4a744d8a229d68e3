package rental

import (
	"context"
	"errors"
	"time"

	"bookstore/model"
	"bookstore/util/content"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// dto

type Rented struct {
	EndDate time.Time          `json:"endDate"`
	Period  model.RentalPeriod `json:"rentalPeriod"`
	Price   float64            `json:"rentalPrice"`
}

type Purchased struct {
	Book  model.Book `json:"book"`
	Price float64    `json:"purchasePrice"`
}

// RentedBook decorates a rental record with its book and lifecycle state.
type RentedBook struct {
	Book     model.Book         `json:"book"`
	EndDate  time.Time          `json:"endDate"`
	Period   model.RentalPeriod `json:"rentalPeriod"`
	State    State              `json:"state"`
	DaysLeft int                `json:"daysLeft"`
}

type BookRepo interface {
	ByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	AddPurchase(ctx context.Context, userID, bookID primitive.ObjectID) error
	UpsertRental(ctx context.Context, userID primitive.ObjectID, rec model.RentalRecord) error
	PushNotification(ctx context.Context, userID primitive.ObjectID, n model.Notification) error
	WithRentals(ctx context.Context) ([]model.User, error)
}

type Service interface {
	// Purchase: permanent entitlement. Errors: NOT_FOUND, BOOK_UNAVAILABLE, ALREADY_OWNED.
	Purchase(ctx context.Context, userID, bookID primitive.ObjectID) (*Purchased, error)

	// Rent: time-bounded entitlement. Renting an already-rented book
	// renews the record instead of duplicating it.
	Rent(ctx context.Context, userID, bookID primitive.ObjectID, period model.RentalPeriod) (*Rented, error)

	// CanRead reports whether the user may read the book. Read-only.
	CanRead(ctx context.Context, userID, bookID primitive.ObjectID) (bool, error)

	// ContentPath gates and resolves the book's PDF for streaming.
	ContentPath(ctx context.Context, userID, bookID primitive.ObjectID) (string, error)

	// MyBooks lists purchased books and rentals with lifecycle state.
	MyBooks(ctx context.Context, userID primitive.ObjectID) ([]model.Book, []RentedBook, error)
}

// ----- Service implementation -----

type service struct {
	br    BookRepo
	ur    UserRepo
	store *content.Store
	warn  time.Duration
	now   func() time.Time
}

func New(br BookRepo, ur UserRepo, store *content.Store, warn time.Duration) Service {
	return NewWithClock(br, ur, store, warn, time.Now)
}

// NewWithClock injects the time source.
func NewWithClock(br BookRepo, ur UserRepo, store *content.Store, warn time.Duration, now func() time.Time) Service {
	if warn <= 0 {
		warn = DefaultWarnWindow
	}
	return &service{br: br, ur: ur, store: store, warn: warn, now: now}
}

func (s *service) Purchase(ctx context.Context, userID, bookID primitive.ObjectID) (*Purchased, error) {
	book, err := s.br.ByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if book.Status == model.BookUnavailable {
		return nil, makeErr(ErrBookUnavailable)
	}

	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if owns(u.PurchasedBooks, bookID) {
		return nil, makeErr(ErrAlreadyOwned)
	}

	if err := s.ur.AddPurchase(ctx, userID, bookID); err != nil {
		return nil, err
	}
	return &Purchased{Book: *book, Price: book.Price.Purchase}, nil
}

func (s *service) Rent(ctx context.Context, userID, bookID primitive.ObjectID, period model.RentalPeriod) (*Rented, error) {
	if !model.ValidPeriod(period) {
		return nil, makeErr(ErrInvalidPeriod)
	}

	book, err := s.br.ByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if book.Status == model.BookUnavailable {
		return nil, makeErr(ErrBookUnavailable)
	}

	rec := model.RentalRecord{
		BookID:  bookID,
		EndDate: EndDate(s.now(), period),
		Period:  period,
	}
	if err := s.ur.UpsertRental(ctx, userID, rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	return &Rented{
		EndDate: rec.EndDate,
		Period:  period,
		Price:   book.Price.ForPeriod(period),
	}, nil
}

func (s *service) CanRead(ctx context.Context, userID, bookID primitive.ObjectID) (bool, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, makeErr(ErrNotFound)
		}
		return false, err
	}
	return s.allowed(u, bookID), nil
}

// allowed is the access gate: purchased, or rented with an end date
// strictly in the future. Never mutates state.
func (s *service) allowed(u *model.User, bookID primitive.ObjectID) bool {
	if owns(u.PurchasedBooks, bookID) {
		return true
	}
	now := s.now()
	for _, rec := range u.RentedBooks {
		if rec.BookID == bookID && rec.EndDate.After(now) {
			return true
		}
	}
	return false
}

func (s *service) ContentPath(ctx context.Context, userID, bookID primitive.ObjectID) (string, error) {
	book, err := s.br.ByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", makeErr(ErrNotFound)
		}
		return "", err
	}

	ok, err := s.CanRead(ctx, userID, bookID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", makeErr(ErrUnauthorized)
	}

	p, err := s.store.Resolve(book.PDFPath)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return "", makeErr(ErrNotFound)
		}
		return "", err
	}
	return p, nil
}

func (s *service) MyBooks(ctx context.Context, userID primitive.ObjectID) ([]model.Book, []RentedBook, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, makeErr(ErrNotFound)
		}
		return nil, nil, err
	}

	purchased := make([]model.Book, 0, len(u.PurchasedBooks))
	for _, id := range u.PurchasedBooks {
		b, err := s.br.ByID(ctx, id)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue // book deleted since purchase
			}
			return nil, nil, err
		}
		purchased = append(purchased, *b)
	}

	now := s.now()
	rented := make([]RentedBook, 0, len(u.RentedBooks))
	for _, rec := range u.RentedBooks {
		b, err := s.br.ByID(ctx, rec.BookID)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue
			}
			return nil, nil, err
		}
		state, days := Classify(rec, now, s.warn)
		rented = append(rented, RentedBook{
			Book:     *b,
			EndDate:  rec.EndDate,
			Period:   rec.Period,
			State:    state,
			DaysLeft: days,
		})
	}
	return purchased, rented, nil
}

func owns(purchased []primitive.ObjectID, bookID primitive.ObjectID) bool {
	for _, id := range purchased {
		if id == bookID {
			return true
		}
	}
	return false
}
