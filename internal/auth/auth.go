// Package auth is the mock authentication collaborator. It owns the
// authUser key of the local namespace and exposes the current-user
// accessor consumed by the feed store. Passwords are deliberately never
// verified; this is a demo-mode identity layer, not security.
package auth

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/devnilu/quora-clone/backend/internal/storage"
	"github.com/google/uuid"
)

// UserKey is the namespace key the profile persists under
const UserKey = "authUser"

// DefaultAvatar is used when a profile has no avatar set
const DefaultAvatar = "/assets/profiles/nilu.jpg"

// UserProvider is the read-only capability handed to collaborators that
// need to attribute actions to the signed-in user.
type UserProvider interface {
	// CurrentUser returns the signed-in user, or nil when unauthenticated
	// or the persisted profile is unreadable.
	CurrentUser() *models.User
}

// ErrCredentialsRequired is returned by Login when email or password is missing
var ErrCredentialsRequired = errors.New("auth: email and password are required")

// ErrPasswordTooShort is returned by Login for passwords under 6 characters
var ErrPasswordTooShort = errors.New("auth: password must be at least 6 characters")

// Service persists and reads the mock profile
type Service struct {
	store storage.Store
}

// NewService creates the auth service over the given namespace
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// CurrentUser implements UserProvider. Malformed or absent data reads as
// "not signed in" rather than an error.
func (s *Service) CurrentUser() *models.User {
	raw, ok, err := s.store.Get(UserKey)
	if err != nil || !ok {
		return nil
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil
	}
	if user.ID == "" && user.Email == "" {
		return nil
	}
	return normalize(&user)
}

// Register creates a fresh profile and signs it in
func (s *Service) Register(req models.RegisterRequest) *models.User {
	user := normalize(&models.User{
		Email:    req.Email,
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
		Avatar:   req.Avatar,
	})
	s.persist(user)
	return user
}

// Login signs in with an email, merging any previously stored profile so
// bio/avatar survive a logout. The password is only length-checked.
func (s *Service) Login(email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrCredentialsRequired
	}
	if len(password) < 6 {
		return nil, ErrPasswordTooShort
	}

	merged := &models.User{Email: email}
	if raw, ok, err := s.store.Get(UserKey); err == nil && ok {
		var existing models.User
		if err := json.Unmarshal(raw, &existing); err == nil {
			existing.Email = email
			merged = &existing
		}
	}

	user := normalize(merged)
	s.persist(user)
	return user, nil
}

// Logout clears the stored profile
func (s *Service) Logout() {
	if err := s.store.Delete(UserKey); err != nil {
		log.Printf("auth: failed to clear profile: %v", err)
	}
}

// UpdateProfile applies a partial patch to the signed-in profile. With no
// profile stored, the patch becomes a fresh one (matching the original
// demo behavior).
func (s *Service) UpdateProfile(req models.UpdateProfileRequest) *models.User {
	user := s.CurrentUser()
	if user == nil {
		user = &models.User{}
	}
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	user = normalize(user)
	s.persist(user)
	return user
}

func (s *Service) persist(user *models.User) {
	raw, err := json.Marshal(user)
	if err != nil {
		log.Printf("auth: failed to serialize profile: %v", err)
		return
	}
	if err := s.store.Set(UserKey, raw); err != nil {
		log.Printf("auth: failed to persist profile: %v", err)
	}
}

// normalize fills the defaults every stored profile carries
func normalize(u *models.User) *models.User {
	out := *u
	if out.ID == "" {
		if out.Email != "" {
			out.ID = out.Email
		} else {
			out.ID = uuid.NewString()
		}
	}
	if out.Avatar == "" {
		out.Avatar = DefaultAvatar
	}
	if out.CreatedAt == "" {
		out.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return &out
}
