package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"bakeshop/catalog"
	"bakeshop/models"
	"bakeshop/pricing"
	"bakeshop/promo"
	"bakeshop/session"
	"bakeshop/store"
)

// CartController handles cart-related requests
type CartController struct {
	Users    store.UserStore
	Sessions *session.Manager
	Log      zerolog.Logger
}

// NewCartController creates a new CartController
func NewCartController(users store.UserStore, sessions *session.Manager, log zerolog.Logger) *CartController {
	return &CartController{Users: users, Sessions: sessions, Log: log}
}

// cartView is the cart endpoint response: items plus the same totals the
// checkout payload will carry.
type cartView struct {
	Items        []models.CartItem `json:"items"`
	Count        int               `json:"count"`
	Totals       pricing.Totals    `json:"totals"`
	PromoApplied string            `json:"promo_applied,omitempty"`
}

func (cc *CartController) writeCart(w http.ResponseWriter, s *session.Session) {
	promoCode, applied := s.Promo.Applied()
	view := cartView{
		Items:        s.Cart.Items(),
		Count:        s.Cart.TotalQuantity(),
		Totals:       pricing.Compute(s.Cart.Items(), applied),
		PromoApplied: promoCode,
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// GetCart retrieves the user's cart with computed totals
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, cc.Users, cc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}
	cc.writeCart(w, s)
}

// AddToCart adds one unit of a catalog product to the user's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, cc.Users, cc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	var req struct {
		ProductID int `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, ok := catalog.ByID(req.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	if err := s.Cart.AddItem(r.Context(), product); err != nil {
		http.Error(w, "Please login to add items to cart", http.StatusUnauthorized)
		return
	}
	cc.writeCart(w, s)
}

// UpdateQuantity overwrites a line's quantity; zero removes the line
func (cc *CartController) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, cc.Users, cc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	params := mux.Vars(r)
	productID, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	s.Cart.SetQuantity(r.Context(), productID, req.Quantity)
	cc.writeCart(w, s)
}

// RemoveFromCart removes a product's line from the user's cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, cc.Users, cc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	params := mux.Vars(r)
	productID, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	s.Cart.RemoveItem(r.Context(), productID)
	cc.writeCart(w, s)
}

// ClearCart empties the cart and deletes its persisted document
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, cc.Users, cc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	s.Cart.Clear(r.Context())
	cc.writeCart(w, s)
}

// GetPromo returns the session's generated promo code for display
func (cc *CartController) GetPromo(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, cc.Users, cc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	promoCode, applied := s.Promo.Applied()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"code":         s.Promo.Code(),
		"applied":      applied,
		"applied_code": promoCode,
	})
}

// ApplyPromo validates and applies the user's promo code input
func (cc *CartController) ApplyPromo(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, cc.Users, cc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := s.Promo.Apply(req.Code); err != nil {
		switch {
		case errors.Is(err, promo.ErrMissingCode):
			http.Error(w, "Please enter a promo code", http.StatusBadRequest)
		case errors.Is(err, promo.ErrInvalidCode):
			http.Error(w, "Invalid promo code", http.StatusBadRequest)
		default:
			http.Error(w, "Error applying promo code", http.StatusInternalServerError)
		}
		return
	}

	cc.writeCart(w, s)
}

// RemovePromo clears the applied promo code
func (cc *CartController) RemovePromo(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, cc.Users, cc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	s.Promo.Remove()
	cc.writeCart(w, s)
}
