package auth

import (
	"testing"

	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/devnilu/quora-clone/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentUserWhenSignedOut(t *testing.T) {
	s := NewService(storage.NewMemoryStore())
	assert.Nil(t, s.CurrentUser())
}

func TestCurrentUserWithCorruptProfile(t *testing.T) {
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Set(UserKey, []byte("{broken")))

	s := NewService(mem)
	assert.Nil(t, s.CurrentUser(), "unreadable profile reads as signed out")
}

func TestLoginValidation(t *testing.T) {
	s := NewService(storage.NewMemoryStore())

	_, err := s.Login("", "secret1")
	assert.ErrorIs(t, err, ErrCredentialsRequired)

	_, err = s.Login("a@b.com", "")
	assert.ErrorIs(t, err, ErrCredentialsRequired)

	_, err = s.Login("a@b.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestLoginNormalizesProfile(t *testing.T) {
	s := NewService(storage.NewMemoryStore())

	user, err := s.Login("a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", user.Email)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, DefaultAvatar, user.Avatar)
	assert.NotEmpty(t, user.CreatedAt)

	assert.Equal(t, user.ID, s.CurrentUser().ID)
}

func TestLoginMergesStoredProfile(t *testing.T) {
	mem := storage.NewMemoryStore()
	s := NewService(mem)

	s.Register(models.RegisterRequest{Email: "a@b.com", Name: "Priya", Bio: "hi"})
	s.UpdateProfile(models.UpdateProfileRequest{Location: "Pune"})

	// logging in again keeps the stored profile fields
	user, err := s.Login("a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Priya", user.Name)
	assert.Equal(t, "hi", user.Bio)
	assert.Equal(t, "Pune", user.Location)
}

func TestLogoutClearsProfile(t *testing.T) {
	s := NewService(storage.NewMemoryStore())
	_, err := s.Login("a@b.com", "secret1")
	require.NoError(t, err)

	s.Logout()
	assert.Nil(t, s.CurrentUser())
}

func TestUpdateProfilePartialPatch(t *testing.T) {
	s := NewService(storage.NewMemoryStore())
	s.Register(models.RegisterRequest{Email: "a@b.com", Name: "Priya"})

	updated := s.UpdateProfile(models.UpdateProfileRequest{Bio: "new bio"})
	assert.Equal(t, "Priya", updated.Name, "untouched fields survive")
	assert.Equal(t, "new bio", updated.Bio)
}
