package handlers

import (
	"net/http"

	"github.com/devnilu/quora-clone/backend/internal/auth"
	"github.com/devnilu/quora-clone/backend/internal/feed"
	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SpaceHandler handles HTTP requests related to spaces
type SpaceHandler struct {
	authService *auth.Service
}

// NewSpaceHandler creates a new SpaceHandler
func NewSpaceHandler(authService *auth.Service) *SpaceHandler {
	return &SpaceHandler{authService: authService}
}

// RegisterSpaceRoutes registers space-related routes
func (h *SpaceHandler) RegisterSpaceRoutes(g *echo.Group) {
	g.GET("/spaces", h.GetSpaces)
	g.POST("/spaces", h.CreateSpace)
	g.POST("/spaces/:id/toggle-join", h.ToggleJoin)
}

// GetSpaces returns all spaces
func (h *SpaceHandler) GetSpaces(c echo.Context) error {
	return c.JSON(http.StatusOK, feed.MustFromContext(c).Spaces())
}

// CreateSpace creates a space owned by the signed-in user
func (h *SpaceHandler) CreateSpace(c echo.Context) error {
	if h.authService.CurrentUser() == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
	}

	var req models.CreateSpaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	space := feed.MustFromContext(c).AddSpace(req)
	return c.JSON(http.StatusCreated, space)
}

// ToggleJoin joins or leaves a space
func (h *SpaceHandler) ToggleJoin(c echo.Context) error {
	if h.authService.CurrentUser() == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
	}

	store := feed.MustFromContext(c)
	id := c.Param("id")

	if findSpace(store.Spaces(), id) == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Space not found")
	}

	store.ToggleJoinSpace(id)
	return c.JSON(http.StatusOK, findSpace(store.Spaces(), id))
}

func findSpace(spaces []models.Space, id string) *models.Space {
	for i := range spaces {
		if spaces[i].ID == id {
			return &spaces[i]
		}
	}
	return nil
}
