// main.go
package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"bakeshop/checkout"
	"bakeshop/config"
	"bakeshop/controllers"
	"bakeshop/middleware"
	"bakeshop/routes"
	"bakeshop/session"
	"bakeshop/store"
	"bakeshop/utils"
)

func main() {
	// Load environment variables from .env file
	bootLog := zerolog.New(os.Stderr)
	if err := godotenv.Load(); err != nil {
		// Not fatal; real deployments set the environment directly.
		bootLog.Info().Msg("No .env file found. Proceeding with environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("loading config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "bakeshop").Logger().Level(level)

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Initialize EmailService (nil when no API key is configured)
	emailService := utils.NewEmailService(cfg.SendgridAPIKey, cfg.EmailSender, cfg.BaseURL)

	// Connect to MongoDB
	client, err := utils.ConnectDB(cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("disconnecting from MongoDB")
		}
	}()

	db := client.Database(cfg.MongoDatabase)
	userStore := store.NewUserStore(db)
	cartStore := store.NewCartStore(db)
	favoritesStore := store.NewFavoritesStore(db)
	orderStore := store.NewOrderStore(db, log)

	// One session manager holds the per-user ledgers and promo state.
	sessions := session.NewManager(cartStore, favoritesStore, log)

	var mailer checkout.Mailer
	if emailService != nil {
		mailer = emailService
	}
	orchestrator := checkout.NewOrchestrator(orderStore, userStore, mailer, cfg.WhatsAppNumber, log)

	// Initialize controllers
	userController := controllers.NewUserController(userStore, emailService, sessions, log)
	catalogController := controllers.NewCatalogController()
	cartController := controllers.NewCartController(userStore, sessions, log)
	favoritesController := controllers.NewFavoritesController(userStore, sessions, log)
	orderController := controllers.NewOrderController(orderStore, userStore, sessions, orchestrator, log)
	contactController := controllers.NewContactController(cfg.ContactRelayURL, &http.Client{Timeout: 10 * time.Second}, log)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(log))
	routes.RegisterRoutes(router, userController, catalogController, cartController, favoritesController, orderController, contactController)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
