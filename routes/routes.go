package routes

import (
	"github.com/gorilla/mux"

	"bakeshop/controllers"
	"bakeshop/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, catalogController *controllers.CatalogController, cartController *controllers.CartController, favoritesController *controllers.FavoritesController, orderController *controllers.OrderController, contactController *controllers.ContactController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/verify", userController.VerifyEmail).Methods("GET")
	router.HandleFunc("/contact", contactController.Submit).Methods("POST")

	// Catalog routes
	router.HandleFunc("/products", catalogController.GetProducts).Methods("GET")
	router.HandleFunc("/products/{id}", catalogController.GetProductByID).Methods("GET")
	router.HandleFunc("/categories", catalogController.GetCategories).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", userController.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/logout", userController.Logout).Methods("POST")

	// Cart routes
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	protected.HandleFunc("/cart/items", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart/items/{id}", cartController.UpdateQuantity).Methods("PUT")
	protected.HandleFunc("/cart/items/{id}", cartController.RemoveFromCart).Methods("DELETE")
	protected.HandleFunc("/cart/promo", cartController.GetPromo).Methods("GET")
	protected.HandleFunc("/cart/promo", cartController.ApplyPromo).Methods("POST")
	protected.HandleFunc("/cart/promo", cartController.RemovePromo).Methods("DELETE")

	// Favorites routes
	protected.HandleFunc("/favorites", favoritesController.GetFavorites).Methods("GET")
	protected.HandleFunc("/favorites", favoritesController.ClearFavorites).Methods("DELETE")
	protected.HandleFunc("/favorites/toggle", favoritesController.ToggleFavorite).Methods("POST")

	// Order routes
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/checkout", orderController.PlaceOrder).Methods("POST")
}
