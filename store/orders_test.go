package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bakeshop/models"
)

func orderFor(user primitive.ObjectID, createdAt time.Time) models.Order {
	return models.Order{
		ID:        primitive.NewObjectID(),
		UserID:    user,
		Status:    models.OrderStatusPending,
		CreatedAt: createdAt,
	}
}

func TestOrdersForUserKeepsOnlyOwnOrders(t *testing.T) {
	t.Parallel()

	mine := primitive.NewObjectID()
	other := primitive.NewObjectID()
	now := time.Now().UTC()

	scanned := []models.Order{
		orderFor(other, now),
		orderFor(mine, now.Add(-time.Hour)),
		orderFor(other, now.Add(-2*time.Hour)),
		orderFor(mine, now.Add(-3*time.Hour)),
	}

	kept := ordersForUser(scanned, mine)

	require.Len(t, kept, 2)
	for _, order := range kept {
		assert.Equal(t, mine, order.UserID)
	}
}

func TestOrdersForUserNoMatches(t *testing.T) {
	t.Parallel()

	scanned := []models.Order{
		orderFor(primitive.NewObjectID(), time.Now()),
		orderFor(primitive.NewObjectID(), time.Now()),
	}

	assert.Empty(t, ordersForUser(scanned, primitive.NewObjectID()))
}

func TestSortNewestFirst(t *testing.T) {
	t.Parallel()

	user := primitive.NewObjectID()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	orders := []models.Order{
		orderFor(user, base.Add(-48*time.Hour)),
		orderFor(user, base),
		orderFor(user, base.Add(-24*time.Hour)),
	}

	sortNewestFirst(orders)

	require.Len(t, orders, 3)
	assert.Equal(t, base, orders[0].CreatedAt)
	assert.Equal(t, base.Add(-24*time.Hour), orders[1].CreatedAt)
	assert.Equal(t, base.Add(-48*time.Hour), orders[2].CreatedAt)
}

func TestFallbackScanMatchesFilteredQuery(t *testing.T) {
	t.Parallel()

	mine := primitive.NewObjectID()
	other := primitive.NewObjectID()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// The whole collection as a scan would see it, interleaved and out
	// of order.
	scanned := []models.Order{
		orderFor(other, base),
		orderFor(mine, base.Add(-time.Hour)),
		orderFor(mine, base.Add(time.Hour)),
		orderFor(other, base.Add(2*time.Hour)),
		orderFor(mine, base.Add(-2*time.Hour)),
	}

	kept := ordersForUser(scanned, mine)
	sortNewestFirst(kept)

	require.Len(t, kept, 3)
	for _, order := range kept {
		assert.Equal(t, mine, order.UserID)
	}
	for i := 1; i < len(kept); i++ {
		assert.False(t, kept[i].CreatedAt.After(kept[i-1].CreatedAt))
	}
}
