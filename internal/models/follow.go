package models

// FollowRelation is a subscription edge from the current user to an
// author or a space.
type FollowRelation struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// ToggleFollowRequest defines the request body for following/unfollowing an author
type ToggleFollowRequest struct {
	ID     string `json:"id" validate:"required"`
	Name   string `json:"name" validate:"omitempty,max=100"`
	Avatar string `json:"avatar"`
}
