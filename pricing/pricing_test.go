package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakeshop/models"
)

func item(id int, price float64, qty int) models.CartItem {
	return models.CartItem{
		Product:  models.Product{ID: id, Price: models.FlexPrice(price)},
		Quantity: qty,
	}
}

func TestComputeWithoutPromo(t *testing.T) {
	t.Parallel()

	items := []models.CartItem{item(1, 100, 2), item(2, 50, 1)}
	totals := Compute(items, false)

	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 25.0, totals.Tax)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 275.0, totals.Total)
}

func TestComputeWithPromo(t *testing.T) {
	t.Parallel()

	items := []models.CartItem{item(1, 100, 2), item(2, 50, 1)}
	totals := Compute(items, true)

	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 25.0, totals.Tax)
	assert.InDelta(t, 24.75, totals.Discount, 1e-9)
	assert.InDelta(t, 250.25, totals.Total, 1e-9)
}

func TestPromoDiscountCap(t *testing.T) {
	t.Parallel()

	// 9% of 10000 would be 900; capped at 500.
	assert.Equal(t, 500.0, PromoDiscount(10000))
	assert.InDelta(t, 45.0, PromoDiscount(500), 1e-9)
	assert.Equal(t, 0.0, PromoDiscount(0))
}

func TestComputeInvariant(t *testing.T) {
	t.Parallel()

	carts := [][]models.CartItem{
		nil,
		{item(1, 99.99, 3)},
		{item(1, 100, 2), item(2, 50, 1)},
		{item(1, 2499, 4), item(2, 899, 2), item(3, 119, 7)},
	}
	for _, items := range carts {
		for _, promo := range []bool{false, true} {
			totals := Compute(items, promo)
			assert.InDelta(t, totals.Subtotal+totals.Tax-totals.Discount, totals.Total, 1e-9)
			assert.InDelta(t, totals.Subtotal*TaxRate, totals.Tax, 1e-9)
			assert.GreaterOrEqual(t, totals.Discount, 0.0)
			assert.LessOrEqual(t, totals.Discount, 500.0)
		}
	}
}

func TestSubtotalOrderIndependent(t *testing.T) {
	t.Parallel()

	a := []models.CartItem{item(1, 100, 2), item(2, 50, 1), item(3, 119, 7)}
	b := []models.CartItem{item(3, 119, 7), item(1, 100, 2), item(2, 50, 1)}

	require.Equal(t, Subtotal(a), Subtotal(b))
}

func TestEmptyCartTotals(t *testing.T) {
	t.Parallel()

	totals := Compute(nil, true)
	assert.Equal(t, Totals{}, totals)
}
