// Package session keeps the per-user service objects alive for the
// duration of a login: one cart ledger, one favorites ledger, and one
// promo session per user, constructed on first use and handed to
// whichever handler needs them. This replaces ambient lookup with
// explicit injection while preserving the single-instance-per-session
// lifecycle.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bakeshop/ledger"
	"bakeshop/promo"
	"bakeshop/store"
)

// Session is one authenticated user's in-memory state.
type Session struct {
	UserID    primitive.ObjectID
	Email     string
	Cart      *ledger.CartLedger
	Favorites *ledger.FavoritesLedger
	Promo     *promo.Session
}

// Manager creates and tracks sessions keyed by user id. The map itself
// is shared across users, so it is the one place that locks; the
// ledgers inside a session are single-user.
//
// Entries are removed only by Drop, so a user who never logs out keeps
// a session for the life of the process. The map holds one small entry
// per distinct logged-in user and is rebuilt from persistence on
// restart.
type Manager struct {
	mu        sync.Mutex
	sessions  map[primitive.ObjectID]*Session
	carts     store.CartStore
	favorites store.FavoritesStore
	log       zerolog.Logger
}

// NewManager creates an empty session manager over the given stores.
func NewManager(carts store.CartStore, favorites store.FavoritesStore, log zerolog.Logger) *Manager {
	return &Manager{
		sessions:  make(map[primitive.ObjectID]*Session),
		carts:     carts,
		favorites: favorites,
		log:       log,
	}
}

// Get returns the user's session, creating it and loading the persisted
// cart and favorites on first use. A user with no persisted state gets
// empty ledgers.
func (m *Manager) Get(ctx context.Context, userID primitive.ObjectID, email string) *Session {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	if !ok {
		s = &Session{
			UserID:    userID,
			Email:     email,
			Cart:      ledger.NewCartLedger(userID, m.carts, m.log),
			Favorites: ledger.NewFavoritesLedger(userID, m.favorites, m.log),
			Promo:     promo.NewSession(),
		}
		m.sessions[userID] = s
	}
	m.mu.Unlock()

	if !ok {
		s.Cart.Load(ctx)
		s.Favorites.Load(ctx)
	}
	return s
}

// Drop discards the user's session. In-memory state is gone immediately;
// nothing is written to or deleted from persistence.
func (m *Manager) Drop(userID primitive.ObjectID) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	delete(m.sessions, userID)
	m.mu.Unlock()

	if ok {
		s.Cart.Reset()
		s.Favorites.Reset()
	}
}
