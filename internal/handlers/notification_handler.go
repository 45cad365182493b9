package handlers

import (
	"net/http"

	"github.com/devnilu/quora-clone/backend/internal/feed"
	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles HTTP requests related to notifications
type NotificationHandler struct{}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.POST("/notifications", h.CreateNotification)
	g.PUT("/notifications/read-all", h.MarkAllRead)
	g.PUT("/notifications/:id/read", h.MarkRead)
	g.DELETE("/notifications/:id", h.Dismiss)
}

// GetNotifications returns all notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, feed.MustFromContext(c).Notifications())
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"count": feed.MustFromContext(c).UnreadCount(),
	})
}

// CreateNotification pushes an ad-hoc notification
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req models.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	notif := feed.MustFromContext(c).AddNotification(req)
	return c.JSON(http.StatusCreated, notif)
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	store := feed.MustFromContext(c)
	id := c.Param("id")

	if !notificationExists(store.Notifications(), id) {
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	}

	store.MarkNotificationRead(id)
	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead marks every notification as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	feed.MustFromContext(c).MarkAllNotificationsRead()
	return c.NoContent(http.StatusNoContent)
}

// Dismiss removes a notification
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	store := feed.MustFromContext(c)
	id := c.Param("id")

	if !notificationExists(store.Notifications(), id) {
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	}

	store.DismissNotification(id)
	return c.NoContent(http.StatusNoContent)
}

func notificationExists(notifications []models.Notification, id string) bool {
	for _, n := range notifications {
		if n.ID == id {
			return true
		}
	}
	return false
}
