package bookrepo

import (
	"context"

	"bookstore/model"
	"bookstore/util/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Filter narrows the catalog listing. Zero values mean "no constraint".
type Filter struct {
	Category      string
	Author        string
	Year          int
	OnlyAvailable bool
}

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context, f Filter) ([]model.Book, error)
	ByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error)
	Update(ctx context.Context, id primitive.ObjectID, b *model.Book) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	if b.Status == "" {
		b.Status = model.BookAvailable
	}
	res, err := r.db.Books().InsertOne(ctx, b)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = oid
	}
	return nil
}

func (r *repo) List(ctx context.Context, f Filter) ([]model.Book, error) {
	q := bson.M{}
	if f.Category != "" {
		q["category"] = f.Category
	}
	if f.Author != "" {
		q["author"] = bson.M{"$regex": f.Author, "$options": "i"}
	}
	if f.Year != 0 {
		q["year"] = f.Year
	}
	if f.OnlyAvailable {
		q["status"] = model.BookAvailable
	}

	cur, err := r.db.Books().Find(ctx, q)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []model.Book
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repo) ByID(ctx context.Context, id primitive.ObjectID) (*model.Book, error) {
	var b model.Book
	err := r.db.Books().FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repo) Update(ctx context.Context, id primitive.ObjectID, b *model.Book) error {
	res, err := r.db.Books().UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"title":         b.Title,
		"author":        b.Author,
		"category":      b.Category,
		"year":          b.Year,
		"description":   b.Description,
		"coverImageUrl": b.CoverImageURL,
		"pdfPath":       b.PDFPath,
		"price":         b.Price,
		"status":        b.Status,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.db.Books().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
