package handlers

import (
	"net/http"

	"github.com/devnilu/quora-clone/backend/internal/auth"
	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles the mock authentication flow. There is no token
// issuance; the profile is the session and lives in the local namespace.
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me)
	g.PUT("/profile", h.UpdateProfile)
}

// Register creates a demo profile and signs it in
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := h.authService.Register(req)
	return c.JSON(http.StatusCreated, user)
}

// Login signs in with email and password (demo mode, nothing is verified)
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

// Logout clears the stored profile
func (h *AuthHandler) Logout(c echo.Context) error {
	h.authService.Logout()
	return c.NoContent(http.StatusNoContent)
}

// Me returns the signed-in profile
func (h *AuthHandler) Me(c echo.Context) error {
	user := h.authService.CurrentUser()
	if user == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial profile patch
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	if h.authService.CurrentUser() == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not signed in")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user := h.authService.UpdateProfile(req)
	return c.JSON(http.StatusOK, user)
}
