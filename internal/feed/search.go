package feed

import (
	"sort"
	"strings"
)

// SearchResult is one ranked hit over posts and spaces
type SearchResult struct {
	Kind    string `json:"kind"` // "post" or "space"
	ID      string `json:"id"`
	Title   string `json:"title"`
	Snippet string `json:"snippet,omitempty"`
	Score   int    `json:"score"`
}

// Relevance weights: a title/name hit outranks a body hit, and a prefix
// match outranks a mid-string one.
const (
	scoreTitleMatch  = 3
	scoreBodyMatch   = 1
	scorePrefixBonus = 2
)

// Search ranks posts and spaces against a case-insensitive query.
// An empty or whitespace query returns no results.
func (s *FeedStore) Search(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var results []SearchResult

	for _, p := range s.posts {
		title := p.Title
		if title == "" {
			title = p.Content
		}
		score := matchScore(p.Title, q)*scoreTitleMatch + matchScore(p.Content, q)*scoreBodyMatch
		if score > 0 {
			results = append(results, SearchResult{
				Kind:    "post",
				ID:      p.ID,
				Title:   title,
				Snippet: snippet(p.Content),
				Score:   score,
			})
		}
	}

	for _, sp := range s.spaces {
		score := matchScore(sp.Name, q)*scoreTitleMatch + matchScore(sp.Description, q)*scoreBodyMatch
		if score > 0 {
			results = append(results, SearchResult{
				Kind:    "space",
				ID:      sp.ID,
				Title:   sp.Name,
				Snippet: snippet(sp.Description),
				Score:   score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// matchScore returns 0 for no match, 1 for a substring match and
// 1+scorePrefixBonus when the text starts with the query.
func matchScore(text, q string) int {
	t := strings.ToLower(text)
	if t == "" || !strings.Contains(t, q) {
		return 0
	}
	if strings.HasPrefix(t, q) {
		return 1 + scorePrefixBonus
	}
	return 1
}

func snippet(text string) string {
	const max = 120
	if len(text) <= max {
		return text
	}
	return text[:max] + "…"
}
