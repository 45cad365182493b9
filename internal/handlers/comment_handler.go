package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/devnilu/quora-clone/backend/internal/auth"
	"github.com/devnilu/quora-clone/backend/internal/feed"
	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	authService *auth.Service
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(authService *auth.Service) *CommentHandler {
	return &CommentHandler{authService: authService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.DELETE("/posts/:post_id/comments/:id", h.DeleteComment)
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	store := feed.MustFromContext(c)
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Text) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Comment text must not be blank")
	}

	if findPost(store.Posts(), postID) == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		Text:      req.Text,
		Author:    h.authService.CurrentUser().ToAuthor(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	store.AddComment(postID, comment)
	return c.JSON(http.StatusCreated, comment)
}

// DeleteComment removes a comment from a post
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	store := feed.MustFromContext(c)
	postID := c.Param("post_id")
	commentID := c.Param("id")

	post := findPost(store.Posts(), postID)
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	found := false
	for _, existing := range post.CommentsList {
		if existing.ID == commentID {
			found = true
			break
		}
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Comment not found")
	}

	store.DeleteComment(postID, commentID)
	return c.NoContent(http.StatusNoContent)
}
