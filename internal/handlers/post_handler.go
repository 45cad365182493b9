package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/devnilu/quora-clone/backend/internal/feed"
	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts and the feed
type PostHandler struct{}

// NewPostHandler creates a new PostHandler
func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// RegisterPostRoutes registers post- and feed-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.GET("/search", h.Search)
	g.POST("/posts", h.CreatePost)
	g.DELETE("/posts/:id", h.RemovePost)
	g.PATCH("/posts/:id/stats", h.UpdateStats)
	g.POST("/posts/:id/upvote", h.Upvote)
	g.POST("/posts/:id/downvote", h.Downvote)
}

// GetFeed returns a page of the feed, newest first
func (h *PostHandler) GetFeed(c echo.Context) error {
	store := feed.MustFromContext(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	posts := store.Posts()
	totalItems := len(posts)

	start := (page - 1) * limit
	if start > totalItems {
		start = totalItems
	}
	end := start + limit
	if end > totalItems {
		end = totalItems
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"posts": posts[start:end],
		},
		"meta": echo.Map{
			"currentPage":     page,
			"totalPages":      totalPages,
			"totalItems":      totalItems,
			"itemsPerPage":    limit,
			"hasNextPage":     page < totalPages,
			"hasPreviousPage": page > 1,
		},
	})
}

// Search returns ranked matches over posts and spaces
func (h *PostHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	results := feed.MustFromContext(c).Search(query)
	return c.JSON(http.StatusOK, results)
}

// CreatePost publishes a question or post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := feed.MustFromContext(c).AddQuestion(req)
	return c.JSON(http.StatusCreated, post)
}

// RemovePost deletes a post
func (h *PostHandler) RemovePost(c echo.Context) error {
	store := feed.MustFromContext(c)
	id := c.Param("id")

	if findPost(store.Posts(), id) == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	store.RemovePost(id)
	return c.NoContent(http.StatusNoContent)
}

// UpdateStats patches a post's counters and flags
func (h *PostHandler) UpdateStats(c echo.Context) error {
	store := feed.MustFromContext(c)
	id := c.Param("id")

	var req models.PostStats
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	if findPost(store.Posts(), id) == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	store.UpdatePostStats(id, req)
	return c.JSON(http.StatusOK, findPost(store.Posts(), id))
}

// Upvote toggles the caller's upvote on a post
func (h *PostHandler) Upvote(c echo.Context) error {
	return h.vote(c, true)
}

// Downvote toggles the caller's downvote on a post
func (h *PostHandler) Downvote(c echo.Context) error {
	return h.vote(c, false)
}

func (h *PostHandler) vote(c echo.Context, up bool) error {
	store := feed.MustFromContext(c)
	id := c.Param("id")

	if findPost(store.Posts(), id) == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	if up {
		store.UpvotePost(id)
	} else {
		store.DownvotePost(id)
	}
	return c.JSON(http.StatusOK, findPost(store.Posts(), id))
}

func findPost(posts []models.Post, id string) *models.Post {
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i]
		}
	}
	return nil
}
