package models

// Comment represents a comment owned by its parent post
type Comment struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Author    *Author `json:"author"`
	CreatedAt string  `json:"createdAt"`
}

// CreateCommentRequest defines the request body for commenting on a post
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}
