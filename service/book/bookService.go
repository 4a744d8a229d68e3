package booksvc

import (
	"context"
	"errors"

	"bookstore/model"
	repo "bookstore/repository/book"
	"bookstore/util/content"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Filter = repo.Filter

var ErrNotFound = errors.New("book not found")

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context, f Filter) ([]model.Book, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	Update(ctx context.Context, id primitive.ObjectID, b *model.Book) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type Service interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context, f Filter) ([]model.Book, error)
	Get(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	Update(ctx context.Context, id primitive.ObjectID, b *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type service struct {
	r     Repo
	store *content.Store
}

func New(r Repo, store *content.Store) Service { return &service{r: r, store: store} }

func validBook(b *model.Book) error {
	if b.Title == "" || b.Author == "" || b.Category == "" {
		return errors.New("invalid payload")
	}
	p := b.Price
	if p.Purchase < 0 || p.Rent2Weeks < 0 || p.Rent1Month < 0 || p.Rent3Months < 0 {
		return errors.New("price tiers must be non-negative")
	}
	if b.Status != "" && b.Status != model.BookAvailable && b.Status != model.BookUnavailable {
		return errors.New("invalid status")
	}
	return nil
}

func (s *service) Create(ctx context.Context, b *model.Book) error {
	if err := validBook(b); err != nil {
		return err
	}
	return s.r.Create(ctx, b)
}

func (s *service) List(ctx context.Context, f Filter) ([]model.Book, error) {
	return s.r.List(ctx, f)
}

func (s *service) Get(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	b, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, id primitive.ObjectID, b *model.Book) (*model.Book, error) {
	if err := validBook(b); err != nil {
		return nil, err
	}
	if err := s.r.Update(ctx, id, b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b.ID = id
	return b, nil
}

// Delete removes the book and its stored PDF. Entitlement references in
// user documents are left in place; the access gate reports NOT_FOUND
// for them.
func (s *service) Delete(ctx context.Context, id primitive.ObjectID) error {
	b, err := s.r.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if err := s.r.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return err
	}
	if s.store != nil && b.PDFPath != "" {
		_ = s.store.Remove(b.PDFPath) // best effort
	}
	return nil
}
