package notification

import (
	"context"
	"errors"

	"bookstore/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("notification not found")

type UserRepo interface {
	ByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	MarkNotificationRead(ctx context.Context, userID, notificationID primitive.ObjectID) error
}

type Service interface {
	// List returns the user's notifications, newest first.
	List(ctx context.Context, userID primitive.ObjectID) ([]model.Notification, error)

	// MarkRead flips the read flag. ErrNotFound when the id does not
	// belong to the user's log.
	MarkRead(ctx context.Context, userID, notificationID primitive.ObjectID) error

	UnreadCount(ctx context.Context, userID primitive.ObjectID) (int, error)
}

type service struct{ ur UserRepo }

func New(ur UserRepo) Service { return &service{ur} }

func (s *service) List(ctx context.Context, userID primitive.ObjectID) ([]model.Notification, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// stored append-order is oldest first
	out := make([]model.Notification, len(u.Notifications))
	for i, n := range u.Notifications {
		out[len(out)-1-i] = n
	}
	return out, nil
}

func (s *service) MarkRead(ctx context.Context, userID, notificationID primitive.ObjectID) error {
	err := s.ur.MarkNotificationRead(ctx, userID, notificationID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (s *service) UnreadCount(ctx context.Context, userID primitive.ObjectID) (int, error) {
	u, err := s.ur.ByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	count := 0
	for _, n := range u.Notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}
