// Package store wraps the MongoDB collections behind small interfaces.
// Carts and favorites are one document per user, replaced wholesale on
// every write; orders are append-only.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bakeshop/models"
)

// ErrNotFound is returned when no document exists for the given key.
var ErrNotFound = errors.New("not found")

// CartStore persists a user's cart items keyed by user id.
type CartStore interface {
	Get(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error)
	Put(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error
	Delete(ctx context.Context, userID primitive.ObjectID) error
}

// FavoritesStore persists a user's liked products keyed by user id.
type FavoritesStore interface {
	Get(ctx context.Context, userID primitive.ObjectID) ([]models.Product, error)
	Put(ctx context.Context, userID primitive.ObjectID, items []models.Product) error
	Delete(ctx context.Context, userID primitive.ObjectID) error
}

// OrderStore appends orders and lists them per user.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
}

// UserStore reads and updates user accounts.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}
