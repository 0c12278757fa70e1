package ledger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bakeshop/models"
	"bakeshop/store"
)

type stubFavoritesStore struct {
	items   []models.Product
	getErr  error
	puts    [][]models.Product
	deletes int
}

func (s *stubFavoritesStore) Get(ctx context.Context, userID primitive.ObjectID) ([]models.Product, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.items, nil
}

func (s *stubFavoritesStore) Put(ctx context.Context, userID primitive.ObjectID, items []models.Product) error {
	s.puts = append(s.puts, items)
	return nil
}

func (s *stubFavoritesStore) Delete(ctx context.Context, userID primitive.ObjectID) error {
	s.deletes++
	return nil
}

func TestToggleAddsThenRemoves(t *testing.T) {
	t.Parallel()

	st := &stubFavoritesStore{}
	l := NewFavoritesLedger(primitive.NewObjectID(), st, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, l.Toggle(ctx, product(1, 100)))
	assert.True(t, l.Contains(1))

	require.NoError(t, l.Toggle(ctx, product(1, 100)))
	assert.False(t, l.Contains(1))
	assert.Empty(t, l.Items())
}

func TestToggleKeepsAtMostOneSnapshotPerProduct(t *testing.T) {
	t.Parallel()

	st := &stubFavoritesStore{}
	l := NewFavoritesLedger(primitive.NewObjectID(), st, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, l.Toggle(ctx, product(1, 100)))
	require.NoError(t, l.Toggle(ctx, product(2, 50)))
	require.NoError(t, l.Toggle(ctx, product(1, 100)))
	require.NoError(t, l.Toggle(ctx, product(1, 100)))

	items := l.Items()
	require.Len(t, items, 2)
	count := 0
	for _, p := range items {
		if p.ID == 1 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestToggleRequiresUser(t *testing.T) {
	t.Parallel()

	st := &stubFavoritesStore{}
	l := NewFavoritesLedger(primitive.NilObjectID, st, zerolog.Nop())

	err := l.Toggle(context.Background(), product(1, 100))
	require.ErrorIs(t, err, ErrLoginRequired)
	assert.Empty(t, st.puts)
}

func TestFavoritesClearDeletesDocument(t *testing.T) {
	t.Parallel()

	st := &stubFavoritesStore{}
	l := NewFavoritesLedger(primitive.NewObjectID(), st, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, l.Toggle(ctx, product(1, 100)))
	l.Clear(ctx)

	assert.Empty(t, l.Items())
	assert.Equal(t, 1, st.deletes)
}

func TestFavoritesLoadMissingDocumentYieldsEmptySet(t *testing.T) {
	t.Parallel()

	st := &stubFavoritesStore{getErr: store.ErrNotFound}
	l := NewFavoritesLedger(primitive.NewObjectID(), st, zerolog.Nop())

	l.Load(context.Background())
	assert.Empty(t, l.Items())
}
