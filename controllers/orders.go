package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"bakeshop/checkout"
	"bakeshop/session"
	"bakeshop/store"
)

// mongoUnauthorizedCode is the server's code for a rejected command.
const mongoUnauthorizedCode = 13

// OrderController handles order history and checkout requests
type OrderController struct {
	Orders   store.OrderStore
	Users    store.UserStore
	Sessions *session.Manager
	Checkout *checkout.Orchestrator
	Log      zerolog.Logger
}

// NewOrderController creates a new OrderController
func NewOrderController(orders store.OrderStore, users store.UserStore, sessions *session.Manager, orchestrator *checkout.Orchestrator, log zerolog.Logger) *OrderController {
	return &OrderController{
		Orders:   orders,
		Users:    users,
		Sessions: sessions,
		Checkout: orchestrator,
		Log:      log,
	}
}

// GetOrders retrieves the authenticated user's orders, newest first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, oc.Users, oc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	orders, err := oc.Orders.ListByUser(ctx, s.UserID)
	if err != nil {
		oc.Log.Error().Err(err).Str("user_id", s.UserID.Hex()).Msg("listing orders")
		status, message := orderReadFailure(err)
		http.Error(w, message, status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// orderReadFailure maps a load error to the user-visible cases:
// permission denied, service unavailable, or generic failure.
func orderReadFailure(err error) (int, string) {
	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == mongoUnauthorizedCode {
		return http.StatusForbidden, "Permission denied. Please check your login status."
	}
	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again."
	}
	return http.StatusInternalServerError, "Failed to load orders"
}

// PlaceOrder runs the checkout sequence for the user's current cart
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, oc.Users, oc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()
	result, err := oc.Checkout.Checkout(ctx, s.UserID, s.Email, s.Cart, s.Promo)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrLoginRequired):
			http.Error(w, "Please login to proceed with checkout", http.StatusUnauthorized)
		case errors.Is(err, checkout.ErrEmptyCart):
			http.Error(w, "Your cart is empty", http.StatusBadRequest)
		default:
			oc.Log.Error().Err(err).Str("user_id", s.UserID.Hex()).Msg("checkout failed")
			http.Error(w, "Failed to place order. Please try again.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order_id":     result.OrderID,
		"totals":       result.Totals,
		"whatsapp_url": result.WhatsAppURL,
		"message":      "Order placed successfully! Redirecting to WhatsApp...",
	})
}
