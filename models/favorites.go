package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Favorites is a user's liked products: full product snapshots, each
// product at most once. Persisted under its own key, independent of the
// cart document.
type Favorites struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Items     []Product          `bson:"items" json:"items"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
