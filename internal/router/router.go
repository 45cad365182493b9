package router

import (
	"log"

	"github.com/devnilu/quora-clone/backend/internal/auth"
	"github.com/devnilu/quora-clone/backend/internal/feed"
	"github.com/devnilu/quora-clone/backend/internal/handlers"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, store *feed.FeedStore, authService *auth.Service) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"message": "Hello, World!"})
	})

	// --- Auth routes (mock, no tokens) ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(authService)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Feed routes, inside the store's provider scope ---
	api := e.Group("/api/v1")
	api.Use(feed.Middleware(store))
	log.Println("Feed provider scope applied to /api/v1 group.")

	// Post and feed routes
	postHandler := handlers.NewPostHandler()
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(authService)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	// Space routes
	spaceHandler := handlers.NewSpaceHandler(authService)
	spaceHandler.RegisterSpaceRoutes(api)
	log.Println("Space routes configured.")

	// Follow routes
	followHandler := handlers.NewFollowHandler(authService)
	followHandler.RegisterFollowRoutes(api)
	log.Println("Follow routes configured.")

	// Notification routes
	notificationHandler := handlers.NewNotificationHandler()
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	log.Println("All routes configured.")
}
