package models

// Space represents a community/topic that users can join
type Space struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Members     int    `json:"members"` // clamped at 0
	CreatedAt   string `json:"createdAt"`
	OwnerID     string `json:"ownerId,omitempty"`
	Joined      bool   `json:"joined"`
}

// CreateSpaceRequest defines the request body for creating a space
type CreateSpaceRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Color       string `json:"color" validate:"omitempty,max=30"`
	Members     int    `json:"members" validate:"omitempty,min=0"`
}
