package userrepo

import (
	"context"
	"strings"

	"bookstore/model"
	"bookstore/util/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)

	// AddPurchase appends bookID to the purchased set ($addToSet).
	AddPurchase(ctx context.Context, userID, bookID primitive.ObjectID) error

	// UpsertRental replaces the record for rec.BookID if one exists,
	// otherwise pushes a new one. Never leaves two records for one book.
	UpsertRental(ctx context.Context, userID primitive.ObjectID, rec model.RentalRecord) error

	PushNotification(ctx context.Context, userID primitive.ObjectID, n model.Notification) error
	MarkNotificationRead(ctx context.Context, userID, notificationID primitive.ObjectID) error

	// WithRentals returns users holding at least one rental record.
	WithRentals(ctx context.Context) ([]model.User, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Role == "" {
		u.Role = model.RoleUser
	}
	if u.PurchasedBooks == nil {
		u.PurchasedBooks = []primitive.ObjectID{}
	}
	if u.RentedBooks == nil {
		u.RentedBooks = []model.RentalRecord{}
	}
	if u.Notifications == nil {
		u.Notifications = []model.Notification{}
	}
	res, err := r.db.Users().InsertOne(ctx, u)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return nil
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.Users().FindOne(ctx, bson.M{
		"email": strings.ToLower(strings.TrimSpace(email)),
	}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repo) ByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var u model.User
	if err := r.db.Users().FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repo) AddPurchase(ctx context.Context, userID, bookID primitive.ObjectID) error {
	res, err := r.db.Users().UpdateByID(ctx, userID, bson.M{
		"$addToSet": bson.M{"purchasedBooks": bookID},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repo) UpsertRental(ctx context.Context, userID primitive.ObjectID, rec model.RentalRecord) error {
	// renewal path: positional update of the existing record
	res, err := r.db.Users().UpdateOne(ctx,
		bson.M{"_id": userID, "rentedBooks.bookId": rec.BookID},
		bson.M{"$set": bson.M{
			"rentedBooks.$.endDate":      rec.EndDate,
			"rentedBooks.$.rentalPeriod": rec.Period,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	res, err = r.db.Users().UpdateByID(ctx, userID, bson.M{
		"$push": bson.M{"rentedBooks": rec},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repo) PushNotification(ctx context.Context, userID primitive.ObjectID, n model.Notification) error {
	res, err := r.db.Users().UpdateByID(ctx, userID, bson.M{
		"$push": bson.M{"notifications": n},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repo) MarkNotificationRead(ctx context.Context, userID, notificationID primitive.ObjectID) error {
	res, err := r.db.Users().UpdateOne(ctx,
		bson.M{"_id": userID, "notifications._id": notificationID},
		bson.M{"$set": bson.M{"notifications.$.read": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repo) WithRentals(ctx context.Context) ([]model.User, error) {
	cur, err := r.db.Users().Find(ctx, bson.M{"rentedBooks.0": bson.M{"$exists": true}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.User
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
