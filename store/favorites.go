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

// MongoFavoritesStore stores one favorites document per user in the
// favorites collection.
type MongoFavoritesStore struct {
	collection *mongo.Collection
}

// NewFavoritesStore creates a favorites store over the given database.
func NewFavoritesStore(db *mongo.Database) *MongoFavoritesStore {
	return &MongoFavoritesStore{collection: db.Collection("favorites")}
}

func (s *MongoFavoritesStore) Get(ctx context.Context, userID primitive.ObjectID) ([]models.Product, error) {
	var favorites models.Favorites
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&favorites)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return favorites.Items, nil
}

func (s *MongoFavoritesStore) Put(ctx context.Context, userID primitive.ObjectID, items []models.Product) error {
	update := bson.M{"$set": bson.M{
		"user_id":    userID,
		"items":      items,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	_, err := s.collection.UpdateOne(ctx, bson.M{"user_id": userID}, update, opts)
	return err
}

func (s *MongoFavoritesStore) Delete(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.collection.DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}
