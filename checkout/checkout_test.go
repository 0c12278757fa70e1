package checkout

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bakeshop/ledger"
	"bakeshop/models"
	"bakeshop/pricing"
	"bakeshop/promo"
	"bakeshop/store"
)

type stubOrderStore struct {
	inserted  []*models.Order
	insertErr error
}

func (s *stubOrderStore) Insert(ctx context.Context, order *models.Order) (primitive.ObjectID, error) {
	if s.insertErr != nil {
		return primitive.NilObjectID, s.insertErr
	}
	id := primitive.NewObjectID()
	order.ID = id
	copied := *order
	s.inserted = append(s.inserted, &copied)
	return id, nil
}

func (s *stubOrderStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	var out []models.Order
	for _, o := range s.inserted {
		if o.UserID == userID {
			out = append(out, *o)
		}
	}
	return out, nil
}

type stubUserStore struct {
	user *models.User
	err  error
}

func (s *stubUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

type stubCartStore struct {
	deletes int
}

func (s *stubCartStore) Get(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	return nil, store.ErrNotFound
}

func (s *stubCartStore) Put(ctx context.Context, userID primitive.ObjectID, items []models.CartItem) error {
	return nil
}

func (s *stubCartStore) Delete(ctx context.Context, userID primitive.ObjectID) error {
	s.deletes++
	return nil
}

func cartWith(t *testing.T, userID primitive.ObjectID, products ...models.Product) (*ledger.CartLedger, *stubCartStore) {
	t.Helper()
	st := &stubCartStore{}
	cart := ledger.NewCartLedger(userID, st, zerolog.Nop())
	for _, p := range products {
		require.NoError(t, cart.AddItem(context.Background(), p))
	}
	return cart, st
}

func product(id int, price float64) models.Product {
	return models.Product{ID: id, Name: "p", Category: "Breads", Price: models.FlexPrice(price)}
}

func newOrchestrator(orders store.OrderStore, users store.UserStore) *Orchestrator {
	return NewOrchestrator(orders, users, nil, "910000000000", zerolog.Nop())
}

func TestCheckoutRequiresLogin(t *testing.T) {
	t.Parallel()

	orders := &stubOrderStore{}
	o := newOrchestrator(orders, &stubUserStore{})
	cart, _ := cartWith(t, primitive.NewObjectID(), product(1, 100))

	_, err := o.Checkout(context.Background(), primitive.NilObjectID, "a@b.c", cart, nil)
	require.ErrorIs(t, err, ErrLoginRequired)
	assert.Empty(t, orders.inserted)
	assert.Len(t, cart.Items(), 1)
}

func TestCheckoutEmptyCart(t *testing.T) {
	t.Parallel()

	orders := &stubOrderStore{}
	userID := primitive.NewObjectID()
	o := newOrchestrator(orders, &stubUserStore{user: &models.User{ID: userID}})
	cart, st := cartWith(t, userID)

	_, err := o.Checkout(context.Background(), userID, "a@b.c", cart, nil)
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, orders.inserted)
	assert.Zero(t, st.deletes)
}

func TestCheckoutSuccess(t *testing.T) {
	t.Parallel()

	orders := &stubOrderStore{}
	userID := primitive.NewObjectID()
	users := &stubUserStore{user: &models.User{
		ID: userID, Name: "Asha", PhoneNumber: "12345",
		Address: "12 Lane", City: "Pune", State: "MH", Pincode: "411001",
	}}
	o := newOrchestrator(orders, users)
	cart, _ := cartWith(t, userID, product(1, 100), product(1, 100), product(2, 50))

	want := pricing.Compute(cart.Items(), false)

	result, err := o.Checkout(context.Background(), userID, "asha@example.com", cart, nil)
	require.NoError(t, err)

	require.Len(t, orders.inserted, 1)
	order := orders.inserted[0]
	assert.Len(t, order.Items, 2)
	assert.Equal(t, want.Subtotal, order.Subtotal)
	assert.Equal(t, want.Tax, order.Tax)
	assert.Equal(t, want.Total, order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "asha@example.com", order.UserEmail)
	assert.Equal(t, "Asha", order.UserProfile.Name)

	assert.Equal(t, want, result.Totals)
	assert.Equal(t, order.ID.Hex(), result.OrderID)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/910000000000?text="))

	// The cart is empty after a successful checkout.
	assert.Empty(t, cart.Items())
}

func TestCheckoutAppliesPromo(t *testing.T) {
	t.Parallel()

	orders := &stubOrderStore{}
	userID := primitive.NewObjectID()
	o := newOrchestrator(orders, &stubUserStore{user: &models.User{ID: userID}})
	cart, _ := cartWith(t, userID, product(1, 100), product(1, 100), product(2, 50))

	promoSession := promo.NewSession()
	require.NoError(t, promoSession.Apply(promoSession.Code()))

	result, err := o.Checkout(context.Background(), userID, "a@b.c", cart, promoSession)
	require.NoError(t, err)

	require.Len(t, orders.inserted, 1)
	order := orders.inserted[0]
	assert.Equal(t, promoSession.Code(), order.PromoCode)
	assert.InDelta(t, 24.75, order.DiscountAmount, 1e-9)
	assert.InDelta(t, 250.25, order.Total, 1e-9)
	assert.InDelta(t, order.Subtotal+order.Tax-order.DiscountAmount, order.Total, 1e-9)

	// Promo state resets once the order is placed.
	_, applied := promoSession.Applied()
	assert.False(t, applied)

	// The summary mentions the promo code.
	decoded, err := url.QueryUnescape(strings.TrimPrefix(result.WhatsAppURL, "https://wa.me/910000000000?text="))
	require.NoError(t, err)
	assert.Contains(t, decoded, promoSession.Code())
}

func TestCheckoutMissingProfileUsesSentinels(t *testing.T) {
	t.Parallel()

	orders := &stubOrderStore{}
	userID := primitive.NewObjectID()
	o := newOrchestrator(orders, &stubUserStore{err: store.ErrNotFound})
	cart, _ := cartWith(t, userID, product(1, 100))

	_, err := o.Checkout(context.Background(), userID, "a@b.c", cart, nil)
	require.NoError(t, err)

	require.Len(t, orders.inserted, 1)
	profile := orders.inserted[0].UserProfile
	assert.Equal(t, "N/A", profile.Name)
	assert.Equal(t, "N/A", profile.PhoneNumber)
	assert.Equal(t, "N/A", profile.Address)
	assert.Equal(t, "a@b.c", profile.Email)
}

func TestCheckoutInsertFailureLeavesCartIntact(t *testing.T) {
	t.Parallel()

	orders := &stubOrderStore{insertErr: errors.New("write failed")}
	userID := primitive.NewObjectID()
	o := newOrchestrator(orders, &stubUserStore{user: &models.User{ID: userID}})
	cart, st := cartWith(t, userID, product(1, 100), product(2, 50))

	promoSession := promo.NewSession()
	require.NoError(t, promoSession.Apply(promoSession.Code()))

	_, err := o.Checkout(context.Background(), userID, "a@b.c", cart, promoSession)
	require.Error(t, err)

	assert.Len(t, cart.Items(), 2)
	assert.Zero(t, st.deletes)
	_, applied := promoSession.Applied()
	assert.True(t, applied)
}

func TestCheckoutProfileFetchFailureAborts(t *testing.T) {
	t.Parallel()

	orders := &stubOrderStore{}
	userID := primitive.NewObjectID()
	o := newOrchestrator(orders, &stubUserStore{err: errors.New("read failed")})
	cart, st := cartWith(t, userID, product(1, 100))

	_, err := o.Checkout(context.Background(), userID, "a@b.c", cart, nil)
	require.Error(t, err)
	assert.Empty(t, orders.inserted)
	assert.Len(t, cart.Items(), 1)
	assert.Zero(t, st.deletes)
}
