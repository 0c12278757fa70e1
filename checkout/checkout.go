// Package checkout converts a cart into a durable order and empties the
// cart. The cart is cleared only after the order insert succeeded; any
// earlier failure leaves the cart untouched so the user can retry.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bakeshop/ledger"
	"bakeshop/models"
	"bakeshop/pricing"
	"bakeshop/promo"
	"bakeshop/store"
)

// ErrEmptyCart rejects checkout on a cart with no items.
var ErrEmptyCart = errors.New("cart is empty")

// ErrLoginRequired rejects checkout without an authenticated user.
var ErrLoginRequired = ledger.ErrLoginRequired

// profileSentinel fills profile fields the user never provided.
const profileSentinel = "N/A"

// Mailer sends the post-checkout confirmation. Failures are logged only.
type Mailer interface {
	SendOrderConfirmationEmail(to string, order *models.Order) error
}

// Orchestrator runs the checkout sequence.
type Orchestrator struct {
	orders         store.OrderStore
	users          store.UserStore
	mailer         Mailer
	log            zerolog.Logger
	whatsAppNumber string
}

// NewOrchestrator wires the checkout dependencies. mailer may be nil
// when no email provider is configured.
func NewOrchestrator(orders store.OrderStore, users store.UserStore, mailer Mailer, whatsAppNumber string, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		orders:         orders,
		users:          users,
		mailer:         mailer,
		log:            log,
		whatsAppNumber: whatsAppNumber,
	}
}

// Result is what a successful checkout hands back to the caller.
type Result struct {
	OrderID     string         `json:"order_id"`
	Totals      pricing.Totals `json:"totals"`
	WhatsAppURL string         `json:"whatsapp_url"`
}

// Checkout builds, persists, and announces an order from the current
// cart. Preconditions are checked in order: authenticated user first,
// non-empty cart second.
func (o *Orchestrator) Checkout(ctx context.Context, userID primitive.ObjectID, email string, cart *ledger.CartLedger, promoSession *promo.Session) (*Result, error) {
	if userID.IsZero() {
		return nil, ErrLoginRequired
	}
	items := cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	profile, err := o.loadProfile(ctx, userID, email)
	if err != nil {
		return nil, err
	}

	var promoCode string
	promoApplied := false
	if promoSession != nil {
		promoCode, promoApplied = promoSession.Applied()
	}
	totals := pricing.Compute(items, promoApplied)

	order := &models.Order{
		UserID:         userID,
		UserEmail:      email,
		Items:          orderItems(items),
		Subtotal:       totals.Subtotal,
		Tax:            totals.Tax,
		PromoCode:      promoCode,
		DiscountAmount: totals.Discount,
		Total:          totals.Total,
		UserProfile:    profile,
		Status:         models.OrderStatusPending,
	}

	id, err := o.orders.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	message := summaryMessage(order, id.Hex())
	waURL := fmt.Sprintf("https://wa.me/%s?text=%s", o.whatsAppNumber, url.QueryEscape(message))

	// The order is durable from here on; clearing the cart and the
	// remaining steps are best-effort.
	cart.Clear(ctx)
	if promoSession != nil {
		promoSession.Remove()
	}

	if o.mailer != nil {
		go func(to string, order models.Order) {
			if err := o.mailer.SendOrderConfirmationEmail(to, &order); err != nil {
				o.log.Error().Err(err).Str("order_id", id.Hex()).Msg("sending confirmation email")
			}
		}(email, *order)
	}

	o.log.Info().Str("order_id", id.Hex()).Str("user_id", userID.Hex()).
		Float64("total", totals.Total).Msg("order placed")

	return &Result{OrderID: id.Hex(), Totals: totals, WhatsAppURL: waURL}, nil
}

// loadProfile fetches the customer snapshot. A missing profile document
// is tolerated: every field falls back to the sentinel. The email always
// comes from the authenticated identity.
func (o *Orchestrator) loadProfile(ctx context.Context, userID primitive.ObjectID, email string) (models.UserProfile, error) {
	var user models.User
	found, err := o.users.FindByID(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return models.UserProfile{}, fmt.Errorf("loading profile: %w", err)
	}
	if found != nil {
		user = *found
	}
	return models.UserProfile{
		Name:        orSentinel(user.Name),
		Email:       email,
		PhoneNumber: orSentinel(user.PhoneNumber),
		Address:     orSentinel(user.Address),
		City:        orSentinel(user.City),
		State:       orSentinel(user.State),
		Pincode:     orSentinel(user.Pincode),
	}, nil
}

func orSentinel(s string) string {
	if s == "" {
		return profileSentinel
	}
	return s
}

func orderItems(items []models.CartItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.OrderItem{
			ProductID:     item.ID,
			Name:          item.Name,
			Category:      item.Category,
			Price:         float64(item.Price),
			Quantity:      item.Quantity,
			Image:         item.Image,
			Discount:      item.Discount,
			OriginalPrice: float64(item.OriginalPrice),
		})
	}
	return out
}

// summaryMessage renders the human-readable order summary handed off to
// the chat redirect.
func summaryMessage(order *models.Order, orderID string) string {
	var b strings.Builder

	b.WriteString("*Bakeshop - New Order Request*\n\n")
	fmt.Fprintf(&b, "*Order ID:* %s\n\n", orderID)

	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", order.UserProfile.Name)
	fmt.Fprintf(&b, "Email: %s\n", order.UserProfile.Email)
	fmt.Fprintf(&b, "Phone: %s\n", order.UserProfile.PhoneNumber)
	fmt.Fprintf(&b, "Address: %s, %s, %s - %s\n\n",
		order.UserProfile.Address, order.UserProfile.City,
		order.UserProfile.State, order.UserProfile.Pincode)

	b.WriteString("*Order Details:*\n")
	for i, item := range order.Items {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, item.Name, item.Category)
		fmt.Fprintf(&b, "   Quantity: %d x ₹%.2f\n", item.Quantity, item.Price)
		fmt.Fprintf(&b, "   Subtotal: ₹%.2f\n\n", item.Price*float64(item.Quantity))
	}

	b.WriteString("*Order Summary:*\n")
	fmt.Fprintf(&b, "Subtotal: ₹%.2f\n", order.Subtotal)
	fmt.Fprintf(&b, "Tax (10%%): ₹%.2f\n", order.Tax)
	if order.PromoCode != "" && order.DiscountAmount > 0 {
		fmt.Fprintf(&b, "Promo Code (%s): -₹%.2f\n", order.PromoCode, order.DiscountAmount)
	}
	fmt.Fprintf(&b, "*Total: ₹%.2f*\n\n", order.Total)

	fmt.Fprintf(&b, "*Order Date:* %s\n\n", time.Now().Format("02/01/2006"))
	b.WriteString("Please confirm this order and provide pickup/delivery details.")

	return b.String()
}
