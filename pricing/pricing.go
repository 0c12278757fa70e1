// Package pricing derives order totals from a cart snapshot. All math is
// pure float64; amounts are rounded only when rendered.
package pricing

import (
	"bakeshop/models"
)

const (
	// TaxRate is applied flat to the subtotal.
	TaxRate = 0.10
	// promoRate and promoCap bound the promo discount:
	// min(promoRate * (subtotal + tax), promoCap).
	promoRate = 0.09
	promoCap  = 500.0
)

// Totals is the derived money breakdown for a cart.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Subtotal sums unit price times quantity over the line items.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += float64(item.Price) * float64(item.Quantity)
	}
	return sum
}

// PromoDiscount returns the discount granted on the given pre-discount
// amount when a promo code is applied.
func PromoDiscount(amount float64) float64 {
	d := amount * promoRate
	if d > promoCap {
		return promoCap
	}
	return d
}

// Compute derives the totals for a cart snapshot. The same function
// backs the cart view and the checkout payload so the two can never
// drift apart.
func Compute(items []models.CartItem, promoApplied bool) Totals {
	subtotal := Subtotal(items)
	tax := subtotal * TaxRate
	var discount float64
	if promoApplied {
		discount = PromoDiscount(subtotal + tax)
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal + tax - discount,
	}
}
