package models

// Notification types. "info" is the default for ad-hoc notifications.
const (
	NotificationInfo    = "info"
	NotificationSystem  = "system"
	NotificationComment = "comment"
	NotificationSpace   = "space"
	NotificationAnswer  = "answer"
	NotificationMention = "mention"
)

// Sender is the identity a notification is attributed to
type Sender struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Notification represents an entry in the user's notification tray.
// Unread and Read are both persisted and must stay exact inverses.
type Notification struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`
	From      Sender `json:"from"`
	Unread    bool   `json:"unread"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}

// CreateNotificationRequest defines the request body for pushing a notification
type CreateNotificationRequest struct {
	Text string  `json:"text" validate:"required,min=1,max=500"`
	Type string  `json:"type" validate:"omitempty,oneof=info system comment space answer mention"`
	From *Sender `json:"from,omitempty"`
}
