package handlers

import (
	"net/http"

	"github.com/devnilu/quora-clone/backend/internal/auth"
	"github.com/devnilu/quora-clone/backend/internal/feed"
	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles HTTP requests related to the follow set
type FollowHandler struct {
	authService *auth.Service
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(authService *auth.Service) *FollowHandler {
	return &FollowHandler{authService: authService}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/following", h.GetFollowing)
	g.POST("/following/toggle", h.Toggle)
}

// GetFollowing returns the authors and spaces the current user follows
func (h *FollowHandler) GetFollowing(c echo.Context) error {
	return c.JSON(http.StatusOK, feed.MustFromContext(c).Following())
}

// Toggle follows or unfollows an author and cascades the flag onto
// their posts
func (h *FollowHandler) Toggle(c echo.Context) error {
	if h.authService.CurrentUser() == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
	}

	var req models.ToggleFollowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store := feed.MustFromContext(c)
	store.ToggleFollowAuthor(models.Author{ID: req.ID, Name: req.Name, Avatar: req.Avatar})

	return c.JSON(http.StatusOK, store.Following())
}
