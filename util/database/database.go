package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DB struct {
	Client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, uri, name string) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &DB{Client: client, db: client.Database(name)}, nil
}

func (d *DB) Close(ctx context.Context) error { return d.Client.Disconnect(ctx) }

func (d *DB) Books() *mongo.Collection { return d.db.Collection("books") }
func (d *DB) Users() *mongo.Collection { return d.db.Collection("users") }

// EnsureIndexes creates the unique email index on users.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	_, err := d.Users().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
