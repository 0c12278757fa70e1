package ledger

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bakeshop/models"
	"bakeshop/store"
)

// FavoritesLedger owns one user's liked products: full product
// snapshots, each product at most once. Same persistence policy as the
// cart, under an independent key.
type FavoritesLedger struct {
	userID primitive.ObjectID
	store  store.FavoritesStore
	log    zerolog.Logger
	items  []models.Product
}

// NewFavoritesLedger creates an empty ledger for the given user.
func NewFavoritesLedger(userID primitive.ObjectID, st store.FavoritesStore, log zerolog.Logger) *FavoritesLedger {
	return &FavoritesLedger{userID: userID, store: st, log: log}
}

// Load replaces the in-memory state with the persisted set; missing
// document or read failure yields an empty set.
func (l *FavoritesLedger) Load(ctx context.Context) {
	items, err := l.store.Get(ctx, l.userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.log.Error().Err(err).Str("user_id", l.userID.Hex()).Msg("loading favorites")
		}
		l.items = nil
		return
	}
	l.items = items
}

// Toggle adds the product if absent and removes it if present.
func (l *FavoritesLedger) Toggle(ctx context.Context, product models.Product) error {
	if l.userID.IsZero() {
		return ErrLoginRequired
	}
	kept := l.items[:0:0]
	removed := false
	for _, item := range l.items {
		if item.ID == product.ID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		kept = append(kept, product)
	}
	l.items = kept
	l.persist(ctx)
	return nil
}

// Clear empties the set and deletes the persisted document.
func (l *FavoritesLedger) Clear(ctx context.Context) {
	l.items = nil
	if err := l.store.Delete(ctx, l.userID); err != nil {
		l.log.Error().Err(err).Str("user_id", l.userID.Hex()).Msg("clearing favorites")
	}
}

// Reset drops the in-memory state without touching persistence.
func (l *FavoritesLedger) Reset() {
	l.items = nil
}

// Items returns a copy of the liked products.
func (l *FavoritesLedger) Items() []models.Product {
	out := make([]models.Product, len(l.items))
	copy(out, l.items)
	return out
}

// Contains reports whether the product is liked.
func (l *FavoritesLedger) Contains(productID int) bool {
	for _, item := range l.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

func (l *FavoritesLedger) persist(ctx context.Context) {
	snapshot := make([]models.Product, len(l.items))
	copy(snapshot, l.items)
	if err := l.store.Put(ctx, l.userID, snapshot); err != nil {
		l.log.Error().Err(err).Str("user_id", l.userID.Hex()).
			Int("items", len(snapshot)).Msg("saving favorites")
	}
}
