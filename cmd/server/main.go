package main

import (
	"log"

	"github.com/devnilu/quora-clone/backend/internal/auth"
	"github.com/devnilu/quora-clone/backend/internal/feed"
	"github.com/devnilu/quora-clone/backend/internal/router"
	"github.com/devnilu/quora-clone/backend/internal/storage"
	"github.com/devnilu/quora-clone/backend/pkg/config"
	"github.com/devnilu/quora-clone/backend/validators"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize the local namespace
	store, err := initStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Auth collaborator and feed store
	authService := auth.NewService(store)
	feedStore := feed.NewFeedStore(store, authService)

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, feedStore, authService)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}

// initStorage picks the namespace driver: PostgreSQL when configured,
// the JSON file otherwise.
func initStorage(cfg *config.Config) (storage.Store, error) {
	if cfg.PostgresUrl != "" {
		db, err := gorm.Open(postgres.Open(cfg.PostgresUrl), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		log.Println("Successfully connected to PostgreSQL!")
		return storage.NewGormStore(db)
	}

	log.Printf("Using local namespace file at %s", cfg.DataFile)
	return storage.NewFileStore(cfg.DataFile)
}
