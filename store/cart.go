package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bakeshop/models"
)

// MongoCartStore stores one cart document per user in the carts
// collection.
type MongoCartStore struct {
	collection *mongo.Collection
}

// NewCartStore creates a cart store over the given database.
func NewCartStore(db *mongo.Database) *MongoCartStore {
	return &MongoCartStore{collection: db.Collection("carts")}
}

func (s *MongoCartStore) Get(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	var cart models.Cart
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cart.Items, nil
}

// Put replaces the user's persisted item list with the given snapshot,
// creating the document if it does not exist.
func (s *MongoCartStore) Put(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	update := bson.M{"$set": bson.M{
		"user_id":    userID,
		"items":      items,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := s.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts)
	return err
}

// Delete removes the cart document entirely. Deleting an absent cart is
// not an error.
func (s *MongoCartStore) Delete(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
