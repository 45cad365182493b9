package models

// The two kinds of feed entries.
const (
	PostTypeQuestion = "question"
	PostTypePost     = "post"
)

// Author is the compact identity attached to posts and comments
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// Post represents a question or a plain post in the feed
type Post struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Title        string    `json:"title,omitempty"`
	Content      string    `json:"content"`
	Image        string    `json:"image,omitempty"`
	Font         string    `json:"font"`
	Author       *Author   `json:"author"`
	CreatedAt    string    `json:"createdAt"` // ISO-8601, keeps the persisted shape
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	Comments     int       `json:"comments"` // always len(CommentsList)
	CommentsList []Comment `json:"commentsList"`
	Followed     bool      `json:"followed"`
	Upvoted      bool      `json:"upvoted"`
	Downvoted    bool      `json:"downvoted"`
}

// CreatePostRequest defines the request body for publishing a question or post
type CreatePostRequest struct {
	Type    string  `json:"type" validate:"omitempty,oneof=question post"`
	Title   string  `json:"title" validate:"omitempty,max=300"`
	Content string  `json:"content" validate:"required,min=1,max=5000"`
	Image   string  `json:"image"`
	Font    string  `json:"font" validate:"omitempty,max=100"`
	Author  *Author `json:"author,omitempty"`
}

// PostStats carries the patchable counters and flags of a post
type PostStats struct {
	Upvotes   *int  `json:"upvotes,omitempty"`
	Downvotes *int  `json:"downvotes,omitempty"`
	Followed  *bool `json:"followed,omitempty"`
}
