package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"bakeshop/catalog"
	"bakeshop/models"
	"bakeshop/session"
	"bakeshop/store"
)

// FavoritesController handles liked-products requests
type FavoritesController struct {
	Users    store.UserStore
	Sessions *session.Manager
	Log      zerolog.Logger
}

// NewFavoritesController creates a new FavoritesController
func NewFavoritesController(users store.UserStore, sessions *session.Manager, log zerolog.Logger) *FavoritesController {
	return &FavoritesController{Users: users, Sessions: sessions, Log: log}
}

// favoriteView pairs a liked product with its current cart quantity, a
// read-only cross-reference for display.
type favoriteView struct {
	models.Product
	InCartQuantity int `json:"in_cart_quantity"`
}

func (fc *FavoritesController) writeFavorites(w http.ResponseWriter, s *session.Session) {
	items := s.Favorites.Items()
	views := make([]favoriteView, 0, len(items))
	for _, p := range items {
		views = append(views, favoriteView{
			Product:        p,
			InCartQuantity: s.Cart.Quantity(p.ID),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// GetFavorites retrieves the user's liked products
func (fc *FavoritesController) GetFavorites(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, fc.Users, fc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}
	fc.writeFavorites(w, s)
}

// ToggleFavorite adds a product to favorites, or removes it if present
func (fc *FavoritesController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, fc.Users, fc.Sessions)
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

	if err := s.Favorites.Toggle(r.Context(), product); err != nil {
		http.Error(w, "Please login to save favorites", http.StatusUnauthorized)
		return
	}
	fc.writeFavorites(w, s)
}

// ClearFavorites empties the user's liked products
func (fc *FavoritesController) ClearFavorites(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r, fc.Users, fc.Sessions)
	if err != nil {
		sessionError(w, err)
		return
	}

	s.Favorites.Clear(r.Context())
	fc.writeFavorites(w, s)
}
