// Package feed owns the application state: posts, spaces, notifications
// and follow relations. It is the sole writer of those collections;
// every successful mutation re-serializes the touched collection into
// the local namespace. Persistence failures are logged and swallowed;
// the in-memory state stays authoritative for the session.
package feed

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/devnilu/quora-clone/backend/internal/storage"
	"github.com/google/uuid"
)

// Namespace keys, one per collection. The authUser key belongs to the
// auth collaborator and is never written from here.
const (
	KeyPosts         = "feedPosts"
	KeySpaces        = "feedSpaces"
	KeyNotifications = "feedNotifications"
	KeyFollowing     = "qcFollowing"
)

const systemSenderName = "System"
const defaultSenderAvatar = "/assets/profiles/nilu.jpg"

// UserProvider resolves the user actions are attributed to.
// nil means unauthenticated.
type UserProvider interface {
	CurrentUser() *models.User
}

// FeedStore is the single source of truth for the feed collections.
// All operations are synchronous and degrade to no-ops on missing or
// malformed input; there is no caller-visible error channel.
type FeedStore struct {
	mu      sync.Mutex
	storage storage.Store
	users   UserProvider

	posts         []models.Post
	spaces        []models.Space
	notifications []models.Notification
	following     []models.FollowRelation
}

// NewFeedStore hydrates the collections from the namespace, falling back
// to the seed dataset per collection on absence or parse failure, and
// runs the one-time post normalization pass.
func NewFeedStore(store storage.Store, users UserProvider) *FeedStore {
	s := &FeedStore{
		storage:       store,
		users:         users,
		posts:         loadPosts(store),
		spaces:        loadCollection(store, KeySpaces, seedSpaces()),
		notifications: loadCollection(store, KeyNotifications, seedNotifications()),
		following:     loadCollection(store, KeyFollowing, seedFollowing()),
	}
	return s
}

func loadCollection[T any](store storage.Store, key string, seed []T) []T {
	raw, ok, err := store.Get(key)
	if err != nil {
		log.Printf("feed: reading %s failed, using seed data: %v", key, err)
		return seed
	}
	if !ok {
		return seed
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Printf("feed: corrupt %s collection, using seed data: %v", key, err)
		return seed
	}
	return out
}

// rawPost accepts both the current post shape and the legacy one where
// "comments" held the comment array instead of a count.
type rawPost struct {
	models.Post
	Comments json.RawMessage `json:"comments"`
}

// loadPosts hydrates and normalizes posts: every post gets a stable id,
// a concrete comments list and a recomputed count.
func loadPosts(store storage.Store) []models.Post {
	seed := seedPosts()

	raw, ok, err := store.Get(KeyPosts)
	if err != nil {
		log.Printf("feed: reading %s failed, using seed data: %v", KeyPosts, err)
		return seed
	}
	if !ok {
		return seed
	}

	var decoded []rawPost
	if err := json.Unmarshal(raw, &decoded); err != nil {
		log.Printf("feed: corrupt %s collection, using seed data: %v", KeyPosts, err)
		return seed
	}

	posts := make([]models.Post, 0, len(decoded))
	for _, rp := range decoded {
		p := rp.Post
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		if p.CommentsList == nil {
			p.CommentsList = []models.Comment{}
			// Legacy shape: comments was the list itself
			if len(rp.Comments) > 0 && rp.Comments[0] == '[' {
				var legacy []models.Comment
				if err := json.Unmarshal(rp.Comments, &legacy); err == nil {
					p.CommentsList = legacy
				}
			}
		}
		p.Comments = len(p.CommentsList)
		posts = append(posts, p)
	}
	return posts
}

func (s *FeedStore) currentUser() *models.User {
	if s.users == nil {
		return nil
	}
	return s.users.CurrentUser()
}

func (s *FeedStore) persistLocked(key string, collection any) {
	raw, err := json.Marshal(collection)
	if err != nil {
		log.Printf("feed: failed to serialize %s: %v", key, err)
		return
	}
	if err := s.storage.Set(key, raw); err != nil {
		log.Printf("feed: failed to persist %s: %v", key, err)
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ---- accessors ----

// Posts returns a copy of the posts collection, newest first
func (s *FeedStore) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePosts(s.posts)
}

// Spaces returns a copy of the spaces collection
func (s *FeedStore) Spaces() []models.Space {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Space(nil), s.spaces...)
}

// Notifications returns a copy of the notifications collection
func (s *FeedStore) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification(nil), s.notifications...)
}

// Following returns a copy of the follow-relation set
func (s *FeedStore) Following() []models.FollowRelation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FollowRelation(nil), s.following...)
}

// UnreadCount returns the number of unread notifications
func (s *FeedStore) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if n.Unread {
			count++
		}
	}
	return count
}

func clonePosts(posts []models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	for i, p := range posts {
		out[i] = p
		out[i].CommentsList = append([]models.Comment(nil), p.CommentsList...)
	}
	return out
}

// ---- posts ----

// AddQuestion builds a post from the payload and prepends it to the
// feed. A missing author is attributed to the current user, or left nil
// when unauthenticated.
func (s *FeedStore) AddQuestion(req models.CreatePostRequest) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	postType := req.Type
	if postType == "" {
		postType = models.PostTypeQuestion
	}
	font := req.Font
	if font == "" {
		font = "inherit"
	}
	author := req.Author
	if author == nil {
		author = s.currentUser().ToAuthor()
	}

	post := models.Post{
		ID:           uuid.NewString(),
		Type:         postType,
		Title:        req.Title,
		Content:      req.Content,
		Image:        req.Image,
		Font:         font,
		Author:       author,
		CreatedAt:    now(),
		CommentsList: []models.Comment{},
	}

	s.posts = append([]models.Post{post}, s.posts...)
	s.persistLocked(KeyPosts, s.posts)
	return post
}

// RemovePost deletes a post. Unknown ids are a no-op.
func (s *FeedStore) RemovePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.posts[:0]
	removed := false
	for _, p := range s.posts {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return
	}
	s.posts = kept
	s.persistLocked(KeyPosts, s.posts)
}

// UpdatePostStats patches a post's counters and flags
func (s *FeedStore) UpdatePostStats(id string, stats models.PostStats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		if stats.Upvotes != nil {
			s.posts[i].Upvotes = *stats.Upvotes
		}
		if stats.Downvotes != nil {
			s.posts[i].Downvotes = *stats.Downvotes
		}
		if stats.Followed != nil {
			s.posts[i].Followed = *stats.Followed
		}
		s.persistLocked(KeyPosts, s.posts)
		return
	}
}

// ---- comments ----

// AddComment appends a comment to a post and recomputes its count.
// When the post belongs to someone other than the acting user, a
// comment notification is emitted. Missing ids or an empty comment are
// a no-op.
func (s *FeedStore) AddComment(postID string, comment models.Comment) {
	if postID == "" || strings.TrimSpace(comment.Text) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		if comment.ID == "" {
			comment.ID = uuid.NewString()
		}
		if comment.CreatedAt == "" {
			comment.CreatedAt = now()
		}
		current := s.currentUser()
		if comment.Author == nil {
			comment.Author = current.ToAuthor()
		}

		s.posts[i].CommentsList = append(s.posts[i].CommentsList, comment)
		s.posts[i].Comments = len(s.posts[i].CommentsList)
		s.persistLocked(KeyPosts, s.posts)

		authorID := ""
		if s.posts[i].Author != nil {
			authorID = s.posts[i].Author.ID
		}
		if authorID != "" && current != nil && current.ID != "" && authorID != current.ID {
			name := current.Name
			if name == "" {
				name = "Someone"
			}
			s.addNotificationLocked(models.CreateNotificationRequest{
				Text: name + " commented on your post.",
				Type: models.NotificationComment,
				From: &models.Sender{Name: current.Name, Avatar: current.Avatar},
			})
		}
		return
	}
}

// DeleteComment removes a comment from a post; the count follows the
// list. Unknown post or comment ids are a no-op.
func (s *FeedStore) DeleteComment(postID, commentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		list := s.posts[i].CommentsList
		for j := range list {
			if list[j].ID == commentID {
				s.posts[i].CommentsList = append(list[:j:j], list[j+1:]...)
				s.posts[i].Comments = len(s.posts[i].CommentsList)
				s.persistLocked(KeyPosts, s.posts)
				return
			}
		}
		return
	}
}

// ---- votes ----

// UpvotePost toggles the upvote on a post. An active downvote is
// cleared in the same update so the two flags stay mutually exclusive.
func (s *FeedStore) UpvotePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := &s.posts[i]
		if p.Upvoted {
			p.Upvotes--
		} else {
			p.Upvotes++
		}
		if p.Downvoted {
			p.Downvotes--
		}
		p.Upvoted = !p.Upvoted
		p.Downvoted = false
		s.persistLocked(KeyPosts, s.posts)
		return
	}
}

// DownvotePost toggles the downvote on a post, clearing an active
// upvote in the same update.
func (s *FeedStore) DownvotePost(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := &s.posts[i]
		if p.Downvoted {
			p.Downvotes--
		} else {
			p.Downvotes++
		}
		if p.Upvoted {
			p.Upvotes--
		}
		p.Downvoted = !p.Downvoted
		p.Upvoted = false
		s.persistLocked(KeyPosts, s.posts)
		return
	}
}

// ---- spaces ----

// AddSpace creates a space owned by the current user and auto-subscribes
// them to it.
func (s *FeedStore) AddSpace(req models.CreateSpaceRequest) models.Space {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.currentUser()

	members := req.Members
	if members <= 0 {
		members = 1
	}
	color := req.Color
	if color == "" {
		color = "#ddd"
	}

	space := models.Space{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Color:       color,
		Members:     members,
		CreatedAt:   now(),
		Joined:      current != nil,
	}
	if current != nil {
		space.OwnerID = current.ID
	}

	s.spaces = append([]models.Space{space}, s.spaces...)
	s.persistLocked(KeySpaces, s.spaces)

	if current != nil {
		s.following = append([]models.FollowRelation{
			{ID: space.ID, Name: space.Name},
		}, s.following...)
		s.persistLocked(KeyFollowing, s.following)
	}

	return space
}

// ToggleJoinSpace joins or leaves a space, moving the member count by
// one with a floor of zero, and emits a space notification exactly once
// per invocation. Unknown spaces or an unauthenticated user are a no-op.
func (s *FeedStore) ToggleJoinSpace(id string) {
	if id == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.currentUser()
	if current == nil {
		return
	}

	for i := range s.spaces {
		if s.spaces[i].ID != id {
			continue
		}
		sp := &s.spaces[i]
		joining := !sp.Joined
		if joining {
			sp.Members++
		} else if sp.Members > 0 {
			sp.Members--
		}
		sp.Joined = joining
		s.persistLocked(KeySpaces, s.spaces)

		text := "You left the space \"" + sp.Name + "\""
		if joining {
			text = "You joined the space \"" + sp.Name + "\""
		}
		s.addNotificationLocked(models.CreateNotificationRequest{
			Text: text,
			Type: models.NotificationSpace,
			From: &models.Sender{Name: current.Name, Avatar: current.Avatar},
		})
		return
	}
}

// ---- notifications ----

// AddNotification builds and prepends a notification. A missing sender
// defaults to the current user, or the system identity when signed out.
func (s *FeedStore) AddNotification(req models.CreateNotificationRequest) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addNotificationLocked(req)
}

func (s *FeedStore) addNotificationLocked(req models.CreateNotificationRequest) models.Notification {
	text := req.Text
	if text == "" {
		text = "New notification"
	}
	notifType := req.Type
	if notifType == "" {
		notifType = models.NotificationInfo
	}

	var sender models.Sender
	switch {
	case req.From != nil:
		sender = *req.From
	default:
		if current := s.currentUser(); current != nil {
			sender = models.Sender{Name: current.Name, Avatar: current.Avatar}
		} else {
			sender = models.Sender{Name: systemSenderName, Avatar: defaultSenderAvatar}
		}
	}

	notif := models.Notification{
		ID:        uuid.NewString(),
		Text:      text,
		Type:      notifType,
		From:      sender,
		Unread:    true,
		Read:      false,
		CreatedAt: now(),
	}

	s.notifications = append([]models.Notification{notif}, s.notifications...)
	s.persistLocked(KeyNotifications, s.notifications)
	return notif
}

// MarkNotificationRead marks one notification as read
func (s *FeedStore) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Unread = false
			s.notifications[i].Read = true
			s.persistLocked(KeyNotifications, s.notifications)
			return
		}
	}
}

// MarkAllNotificationsRead marks every notification as read
func (s *FeedStore) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Unread = false
		s.notifications[i].Read = true
	}
	s.persistLocked(KeyNotifications, s.notifications)
}

// DismissNotification removes a notification. Unknown ids are a no-op.
func (s *FeedStore) DismissNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.notifications[:0]
	removed := false
	for _, n := range s.notifications {
		if n.ID == id {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	if !removed {
		return
	}
	s.notifications = kept
	s.persistLocked(KeyNotifications, s.notifications)
}

// ---- following ----

// ToggleFollowAuthor toggles the author's membership in the follow set
// and mirrors the new state onto the followed flag of every post by that
// author, so the feed reflects it without a separate lookup.
func (s *FeedStore) ToggleFollowAuthor(author models.Author) {
	if author.ID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser() == nil {
		return
	}

	exists := false
	for _, f := range s.following {
		if f.ID == author.ID {
			exists = true
			break
		}
	}

	if exists {
		kept := s.following[:0]
		for _, f := range s.following {
			if f.ID != author.ID {
				kept = append(kept, f)
			}
		}
		s.following = kept
	} else {
		s.following = append([]models.FollowRelation{
			{ID: author.ID, Name: author.Name, Avatar: author.Avatar},
		}, s.following...)
	}
	s.persistLocked(KeyFollowing, s.following)

	followed := !exists
	touched := false
	for i := range s.posts {
		if s.posts[i].Author != nil && s.posts[i].Author.ID == author.ID {
			s.posts[i].Followed = followed
			touched = true
		}
	}
	if touched {
		s.persistLocked(KeyPosts, s.posts)
	}
}
