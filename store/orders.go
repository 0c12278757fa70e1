package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bakeshop/models"
)

// MongoOrderStore appends orders and lists a user's order history.
type MongoOrderStore struct {
	collection *mongo.Collection
	log        zerolog.Logger
}

// NewOrderStore creates an order store over the given database.
func NewOrderStore(db *mongo.Database, log zerolog.Logger) *MongoOrderStore {
	return &MongoOrderStore{collection: db.Collection("orders"), log: log}
}

// Insert writes the order and returns its assigned id. Creation and
// update timestamps are assigned here, not by the caller.
func (s *MongoOrderStore) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	result, err := s.collection.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("inserting order: %w", err)
	}
	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	order.ID = id
	return id, nil
}

// ListByUser returns the user's orders, newest first. The indexed query
// by user id is tried first; if it fails, the whole collection is
// scanned and filtered here instead. Sorting happens in-process either
// way so no index on created_at is required.
func (s *MongoOrderStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	orders, err := s.findOrders(ctx, bson.M{"user_id": userID})
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID.Hex()).
			Msg("filtered order query failed, scanning collection")
		orders, err = s.findOrders(ctx, bson.M{})
		if err != nil {
			return nil, err
		}
		orders = ordersForUser(orders, userID)
	}

	sortNewestFirst(orders)
	return orders, nil
}

// ordersForUser keeps only the given user's orders. This is the
// client-side stand-in for the user_id query on the fallback path.
func ordersForUser(orders []models.Order, userID primitive.ObjectID) []models.Order {
	kept := orders[:0]
	for _, order := range orders {
		if order.UserID == userID {
			kept = append(kept, order)
		}
	}
	return kept
}

// sortNewestFirst orders by creation time, most recent first.
func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

// findOrders runs a find and decodes the results.
func (s *MongoOrderStore) findOrders(ctx context.Context, query bson.M) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}
