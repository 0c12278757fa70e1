// Package ledger implements the per-user in-memory cart and favorites,
// each backed by a remote document. Mutations take effect in memory
// first; the resulting state is then written out whole. A failed write
// is logged and the in-memory state stands, so the user keeps seeing
// their change until a later write succeeds.
package ledger

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bakeshop/models"
	"bakeshop/store"
)

// ErrLoginRequired is returned when a mutation needs an authenticated
// user and there is none.
var ErrLoginRequired = errors.New("login required")

// CartLedger owns one authenticated user's cart. It is not shared
// across users; cart mutations for a user arrive one at a time from
// that user's own actions.
type CartLedger struct {
	userID primitive.ObjectID
	store  store.CartStore
	log    zerolog.Logger
	items  []models.CartItem
}

// NewCartLedger creates an empty ledger for the given user.
func NewCartLedger(userID primitive.ObjectID, st store.CartStore, log zerolog.Logger) *CartLedger {
	return &CartLedger{userID: userID, store: st, log: log}
}

// Load replaces the in-memory state with the persisted cart. A missing
// document means an empty cart. Read failures also yield an empty cart
// rather than an error; they are logged.
func (l *CartLedger) Load(ctx context.Context) {
	items, err := l.store.Get(ctx, l.userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			l.log.Error().Err(err).Str("user_id", l.userID.Hex()).Msg("loading cart")
		}
		l.items = nil
		return
	}
	l.items = items
}

// AddItem adds one unit of the product: an existing line's quantity goes
// up by one, otherwise a new line starts at one.
func (l *CartLedger) AddItem(ctx context.Context, product models.Product) error {
	if l.userID.IsZero() {
		return ErrLoginRequired
	}
	found := false
	for i := range l.items {
		if l.items[i].ID == product.ID {
			l.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		l.items = append(l.items, models.CartItem{Product: product, Quantity: 1})
	}
	l.persist(ctx)
	return nil
}

// SetQuantity overwrites a line's quantity. A quantity of zero or below
// removes the line. An unknown product id is a tolerated no-op.
func (l *CartLedger) SetQuantity(ctx context.Context, productID, quantity int) {
	if quantity <= 0 {
		l.RemoveItem(ctx, productID)
		return
	}
	for i := range l.items {
		if l.items[i].ID == productID {
			l.items[i].Quantity = quantity
			l.persist(ctx)
			return
		}
	}
}

// RemoveItem drops the line for the product; no-op if absent.
func (l *CartLedger) RemoveItem(ctx context.Context, productID int) {
	kept := l.items[:0:0]
	removed := false
	for _, item := range l.items {
		if item.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		return
	}
	l.items = kept
	l.persist(ctx)
}

// Clear empties the cart and deletes the persisted document entirely.
func (l *CartLedger) Clear(ctx context.Context) {
	l.items = nil
	if err := l.store.Delete(ctx, l.userID); err != nil {
		l.log.Error().Err(err).Str("user_id", l.userID.Hex()).Msg("clearing cart")
	}
}

// Reset drops the in-memory state without touching persistence. Used on
// logout.
func (l *CartLedger) Reset() {
	l.items = nil
}

// Items returns a copy of the current line items in insertion order.
func (l *CartLedger) Items() []models.CartItem {
	out := make([]models.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

// TotalQuantity sums the quantities across all lines.
func (l *CartLedger) TotalQuantity() int {
	var n int
	for _, item := range l.items {
		n += item.Quantity
	}
	return n
}

// Contains reports whether the product has a line in the cart.
func (l *CartLedger) Contains(productID int) bool {
	return l.Quantity(productID) > 0
}

// Quantity returns the product's line quantity, zero when absent.
func (l *CartLedger) Quantity(productID int) int {
	for _, item := range l.items {
		if item.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

func (l *CartLedger) persist(ctx context.Context) {
	snapshot := make([]models.CartItem, len(l.items))
	copy(snapshot, l.items)
	if err := l.store.Put(ctx, l.userID, snapshot); err != nil {
		// In-memory state is authoritative for this session; the next
		// successful write catches persistence up.
		l.log.Error().Err(err).Str("user_id", l.userID.Hex()).
			Int("items", len(snapshot)).Msg("saving cart")
	}
}
