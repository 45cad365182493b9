package models

// User is the mock-authenticated profile persisted under the authUser key
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	Location  string `json:"location"`
	Avatar    string `json:"avatar"`
	CreatedAt string `json:"createdAt"`
}

// ToAuthor returns the compact identity used on posts and comments
func (u *User) ToAuthor() *Author {
	if u == nil {
		return nil
	}
	name := u.Name
	if name == "" {
		name = "You"
	}
	return &Author{ID: u.ID, Name: name, Avatar: u.Avatar}
}

// RegisterRequest defines the request body for the demo registration flow
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"omitempty,min=2,max=50"`
	Bio      string `json:"bio" validate:"omitempty,max=500"`
	Location string `json:"location" validate:"omitempty,max=100"`
	Avatar   string `json:"avatar"`
}

// LoginRequest defines the request body for the mock login.
// The password is length-checked only, never verified against anything.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateProfileRequest defines the request body for updating the profile
type UpdateProfileRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2,max=50"`
	Bio      string `json:"bio" validate:"omitempty,max=500"`
	Location string `json:"location" validate:"omitempty,max=100"`
	Avatar   string `json:"avatar"`
}
