package feed

import (
	"testing"

	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRanksTitleAboveBody(t *testing.T) {
	s, _ := emptyStore(t, nil)
	bodyHit := s.AddQuestion(models.CreatePostRequest{
		Title:   "Unrelated title",
		Content: "All about react hooks",
	})
	titleHit := s.AddQuestion(models.CreatePostRequest{
		Title:   "React for beginners",
		Content: "nothing here",
	})

	results := s.Search("react")
	require.Len(t, results, 2)
	assert.Equal(t, titleHit.ID, results[0].ID, "title prefix match first")
	assert.Equal(t, bodyHit.ID, results[1].ID)
	assert.Greater(t, results[0].Score, results[1].Score)
}

func TestSearchMatchesSpaces(t *testing.T) {
	s, _ := newTestStore(t, nil) // seeded spaces

	results := s.Search("javascript")
	require.NotEmpty(t, results)
	assert.Equal(t, "space", results[0].Kind)
	assert.Equal(t, "JavaScript", results[0].Title)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	s, _ := emptyStore(t, nil)
	s.AddQuestion(models.CreatePostRequest{Title: "Career Advice", Content: "x"})

	assert.Len(t, s.Search("CAREER"), 1)
	assert.Len(t, s.Search("career"), 1)
}

func TestSearchEmptyQuery(t *testing.T) {
	s, _ := newTestStore(t, nil)
	assert.Empty(t, s.Search(""))
	assert.Empty(t, s.Search("   "))
	assert.Empty(t, s.Search("zzzznotthere"))
}
