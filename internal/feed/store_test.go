package feed

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/devnilu/quora-clone/backend/internal/models"
	"github.com/devnilu/quora-clone/backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	user *models.User
}

func (f *fakeUsers) CurrentUser() *models.User { return f.user }

func mustSet(t *testing.T, store storage.Store, key string, v any) {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, store.Set(key, raw))
}

func newTestStore(t *testing.T, user *models.User) (*FeedStore, storage.Store) {
	t.Helper()
	mem := storage.NewMemoryStore()
	return NewFeedStore(mem, &fakeUsers{user: user}), mem
}

// emptyStore starts with all four collections empty instead of seeded
func emptyStore(t *testing.T, user *models.User) (*FeedStore, storage.Store) {
	t.Helper()
	mem := storage.NewMemoryStore()
	mustSet(t, mem, KeyPosts, []models.Post{})
	mustSet(t, mem, KeySpaces, []models.Space{})
	mustSet(t, mem, KeyNotifications, []models.Notification{})
	mustSet(t, mem, KeyFollowing, []models.FollowRelation{})
	return NewFeedStore(mem, &fakeUsers{user: user}), mem
}

func TestSeedFallbackOnEmptyStorage(t *testing.T) {
	s, _ := newTestStore(t, nil)

	assert.Len(t, s.Posts(), 2)
	assert.Len(t, s.Spaces(), 6)
	assert.Len(t, s.Notifications(), 5)
	assert.Len(t, s.Following(), 5)
}

func TestSeedFallbackOnCorruptStorage(t *testing.T) {
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Set(KeyPosts, []byte("{not json")))
	require.NoError(t, mem.Set(KeySpaces, []byte("42")))
	require.NoError(t, mem.Set(KeyNotifications, []byte(`"oops"`)))
	require.NoError(t, mem.Set(KeyFollowing, []byte("[")))

	s := NewFeedStore(mem, &fakeUsers{})

	assert.Len(t, s.Posts(), 2)
	assert.Len(t, s.Spaces(), 6)
	assert.Len(t, s.Notifications(), 5)
	assert.Len(t, s.Following(), 5)
}

func TestHydrationNormalizesLegacyPosts(t *testing.T) {
	mem := storage.NewMemoryStore()
	// Legacy shape: no id, "comments" holds the list itself
	require.NoError(t, mem.Set(KeyPosts, []byte(`[
		{"title": "old post", "content": "body",
		 "comments": [{"id": "c1", "text": "hello"}, {"id": "c2", "text": "again"}]}
	]`)))

	s := NewFeedStore(mem, &fakeUsers{})
	posts := s.Posts()
	require.Len(t, posts, 1)

	assert.NotEmpty(t, posts[0].ID)
	assert.Len(t, posts[0].CommentsList, 2)
	assert.Equal(t, 2, posts[0].Comments)
	assert.False(t, posts[0].Upvoted)
	assert.False(t, posts[0].Downvoted)
}

func TestAddQuestionPrependsAndAttributes(t *testing.T) {
	user := &models.User{ID: "u9", Name: "Priya", Avatar: "/a.jpg"}
	s, mem := emptyStore(t, user)

	first := s.AddQuestion(models.CreatePostRequest{Content: "first"})
	second := s.AddQuestion(models.CreatePostRequest{
		Type:    models.PostTypePost,
		Content: "second",
	})

	posts := s.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, second.ID, posts[0].ID, "newest first")
	assert.Equal(t, first.ID, posts[1].ID)

	assert.Equal(t, models.PostTypeQuestion, first.Type)
	assert.Equal(t, "inherit", first.Font)
	require.NotNil(t, first.Author)
	assert.Equal(t, "u9", first.Author.ID)
	assert.Equal(t, "Priya", first.Author.Name)
	assert.NotEmpty(t, first.CreatedAt)

	// collection persisted under its key
	raw, ok, err := mem.Get(KeyPosts)
	require.NoError(t, err)
	require.True(t, ok)
	var persisted []models.Post
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Len(t, persisted, 2)
}

func TestAddQuestionWithoutUserHasNilAuthor(t *testing.T) {
	s, _ := emptyStore(t, nil)
	post := s.AddQuestion(models.CreatePostRequest{Content: "anon"})
	assert.Nil(t, post.Author)
}

func TestVoteMutualExclusivity(t *testing.T) {
	s, _ := emptyStore(t, nil)
	post := s.AddQuestion(models.CreatePostRequest{Content: "vote on me"})

	s.UpvotePost(post.ID)
	got := s.Posts()[0]
	assert.True(t, got.Upvoted)
	assert.Equal(t, 1, got.Upvotes)

	s.DownvotePost(post.ID)
	got = s.Posts()[0]
	assert.False(t, got.Upvoted, "upvote cleared by downvote")
	assert.True(t, got.Downvoted)
	assert.Equal(t, 0, got.Upvotes, "upvote counter decremented in the same update")
	assert.Equal(t, 1, got.Downvotes)

	s.UpvotePost(post.ID)
	got = s.Posts()[0]
	assert.True(t, got.Upvoted)
	assert.False(t, got.Downvoted)
	assert.Equal(t, 1, got.Upvotes)
	assert.Equal(t, 0, got.Downvotes)

	// toggle off
	s.UpvotePost(post.ID)
	got = s.Posts()[0]
	assert.False(t, got.Upvoted)
	assert.Equal(t, 0, got.Upvotes)

	assert.False(t, got.Upvoted && got.Downvoted)
}

func TestDownvoteToggleOff(t *testing.T) {
	s, _ := emptyStore(t, nil)
	post := s.AddQuestion(models.CreatePostRequest{Content: "x"})

	s.DownvotePost(post.ID)
	s.DownvotePost(post.ID)

	got := s.Posts()[0]
	assert.False(t, got.Downvoted)
	assert.Equal(t, 0, got.Downvotes)
}

func TestCommentCountFollowsList(t *testing.T) {
	s, _ := emptyStore(t, &models.User{ID: "u1", Name: "A"})
	post := s.AddQuestion(models.CreatePostRequest{Content: "c"})

	s.AddComment(post.ID, models.Comment{ID: "c1", Text: "one"})
	s.AddComment(post.ID, models.Comment{ID: "c2", Text: "two"})

	got := s.Posts()[0]
	assert.Equal(t, 2, got.Comments)
	assert.Len(t, got.CommentsList, 2)

	s.DeleteComment(post.ID, "c1")
	got = s.Posts()[0]
	assert.Equal(t, 1, got.Comments)
	require.Len(t, got.CommentsList, 1)
	assert.Equal(t, "c2", got.CommentsList[0].ID)

	// unknown comment id is a no-op
	s.DeleteComment(post.ID, "missing")
	got = s.Posts()[0]
	assert.Equal(t, 1, got.Comments)
	assert.Len(t, got.CommentsList, 1)
}

func TestAddCommentNoOps(t *testing.T) {
	s, _ := emptyStore(t, &models.User{ID: "u1"})
	post := s.AddQuestion(models.CreatePostRequest{Content: "c"})

	s.AddComment("", models.Comment{ID: "c1", Text: "x"})
	s.AddComment(post.ID, models.Comment{ID: "c2", Text: "   "})
	s.AddComment("unknown", models.Comment{ID: "c3", Text: "x"})

	assert.Equal(t, 0, s.Posts()[0].Comments)
	assert.Empty(t, s.Notifications())
}

func TestCommentOnForeignPostNotifiesAuthor(t *testing.T) {
	actor := &models.User{ID: "b1", Name: "Bea", Avatar: "/bea.jpg"}
	mem := storage.NewMemoryStore()
	mustSet(t, mem, KeyPosts, []models.Post{{
		ID:           "p1",
		Type:         models.PostTypeQuestion,
		Content:      "owned by a1",
		Author:       &models.Author{ID: "a1", Name: "Ana"},
		CommentsList: []models.Comment{},
	}})
	mustSet(t, mem, KeyNotifications, []models.Notification{})
	s := NewFeedStore(mem, &fakeUsers{user: actor})

	s.AddComment("p1", models.Comment{ID: "c1", Text: "nice"})

	post := s.Posts()[0]
	require.Len(t, post.CommentsList, 1)
	assert.Equal(t, "c1", post.CommentsList[0].ID)
	assert.Equal(t, 1, post.Comments)

	notifs := s.Notifications()
	require.Len(t, notifs, 1, "exactly one notification")
	assert.Equal(t, models.NotificationComment, notifs[0].Type)
	assert.Equal(t, "Bea", notifs[0].From.Name)
	assert.Equal(t, "/bea.jpg", notifs[0].From.Avatar)
	assert.True(t, notifs[0].Unread)
	assert.False(t, notifs[0].Read)
}

func TestCommentOnOwnPostDoesNotNotify(t *testing.T) {
	actor := &models.User{ID: "a1", Name: "Ana"}
	mem := storage.NewMemoryStore()
	mustSet(t, mem, KeyPosts, []models.Post{{
		ID:           "p1",
		Content:      "mine",
		Author:       &models.Author{ID: "a1", Name: "Ana"},
		CommentsList: []models.Comment{},
	}})
	mustSet(t, mem, KeyNotifications, []models.Notification{})
	s := NewFeedStore(mem, &fakeUsers{user: actor})

	s.AddComment("p1", models.Comment{ID: "c1", Text: "self reply"})

	assert.Equal(t, 1, s.Posts()[0].Comments)
	assert.Empty(t, s.Notifications())
}

func TestSpaceLifecycle(t *testing.T) {
	user := &models.User{ID: "u9", Name: "Priya"}
	s, _ := emptyStore(t, user)

	space := s.AddSpace(models.CreateSpaceRequest{Name: "Test", Description: "d"})
	assert.Equal(t, 1, space.Members)
	assert.Equal(t, "u9", space.OwnerID)
	assert.True(t, space.Joined)
	assert.Equal(t, "#ddd", space.Color)

	following := s.Following()
	require.NotEmpty(t, following)
	assert.Equal(t, space.ID, following[0].ID, "creator auto-subscribed")

	s.ToggleJoinSpace(space.ID)
	got := s.Spaces()[0]
	assert.Equal(t, 0, got.Members)
	assert.False(t, got.Joined)

	s.ToggleJoinSpace(space.ID)
	got = s.Spaces()[0]
	assert.Equal(t, 1, got.Members)
	assert.True(t, got.Joined)

	// two join/leave notifications were emitted, one per toggle
	notifs := s.Notifications()
	require.Len(t, notifs, 2)
	assert.Equal(t, models.NotificationSpace, notifs[0].Type)
	assert.Contains(t, notifs[0].Text, "You joined the space \"Test\"")
	assert.Contains(t, notifs[1].Text, "You left the space \"Test\"")
}

func TestMembersNeverNegative(t *testing.T) {
	user := &models.User{ID: "u9"}
	mem := storage.NewMemoryStore()
	mustSet(t, mem, KeySpaces, []models.Space{{ID: "s1", Name: "Low", Members: 0, Joined: true}})
	mustSet(t, mem, KeyNotifications, []models.Notification{})
	s := NewFeedStore(mem, &fakeUsers{user: user})

	s.ToggleJoinSpace("s1") // leaving at zero stays at zero
	assert.Equal(t, 0, s.Spaces()[0].Members)
	assert.False(t, s.Spaces()[0].Joined)
}

func TestToggleJoinSpaceNoOps(t *testing.T) {
	s, _ := emptyStore(t, nil)
	space := models.CreateSpaceRequest{Name: "n", Description: "d"}
	created := s.AddSpace(space) // no user: not joined, no owner

	assert.False(t, created.Joined)
	assert.Empty(t, created.OwnerID)
	assert.Empty(t, s.Following(), "no auto-subscribe without a user")

	s.ToggleJoinSpace(created.ID) // no current user
	assert.Equal(t, 1, s.Spaces()[0].Members)
	assert.Empty(t, s.Notifications())

	s2, _ := emptyStore(t, &models.User{ID: "u1"})
	s2.ToggleJoinSpace("") // missing id
	s2.ToggleJoinSpace("unknown")
	assert.Empty(t, s2.Notifications())
}

func TestNotificationReadInverseInvariant(t *testing.T) {
	s, _ := emptyStore(t, nil)

	n1 := s.AddNotification(models.CreateNotificationRequest{Text: "hello"})
	n2 := s.AddNotification(models.CreateNotificationRequest{Text: "world"})
	assert.True(t, n1.Unread)
	assert.False(t, n1.Read)

	s.MarkNotificationRead(n1.ID)
	for _, n := range s.Notifications() {
		assert.Equal(t, !n.Read, n.Unread)
	}

	s.MarkAllNotificationsRead()
	for _, n := range s.Notifications() {
		assert.False(t, n.Unread)
		assert.True(t, n.Read)
	}

	s.DismissNotification(n2.ID)
	assert.Len(t, s.Notifications(), 1)
	assert.Equal(t, 0, s.UnreadCount())
}

func TestAddNotificationDefaults(t *testing.T) {
	s, _ := emptyStore(t, nil)
	notif := s.AddNotification(models.CreateNotificationRequest{})

	assert.Equal(t, "New notification", notif.Text)
	assert.Equal(t, models.NotificationInfo, notif.Type)
	assert.Equal(t, "System", notif.From.Name)

	signed, _ := emptyStore(t, &models.User{ID: "u1", Name: "Priya", Avatar: "/p.jpg"})
	notif = signed.AddNotification(models.CreateNotificationRequest{Text: "hi"})
	assert.Equal(t, "Priya", notif.From.Name)
	assert.Equal(t, "/p.jpg", notif.From.Avatar)
}

func TestFollowTogglingCascadesToPosts(t *testing.T) {
	user := &models.User{ID: "me"}
	author := models.Author{ID: "u7", Name: "Xi", Avatar: "/x.jpg"}
	mem := storage.NewMemoryStore()
	mustSet(t, mem, KeyPosts, []models.Post{
		{ID: "p1", Content: "a", Author: &models.Author{ID: "u7", Name: "Xi"}, CommentsList: []models.Comment{}},
		{ID: "p2", Content: "b", Author: &models.Author{ID: "u7", Name: "Xi"}, CommentsList: []models.Comment{}},
		{ID: "p3", Content: "c", Author: &models.Author{ID: "other"}, CommentsList: []models.Comment{}},
	})
	mustSet(t, mem, KeyFollowing, []models.FollowRelation{})
	s := NewFeedStore(mem, &fakeUsers{user: user})

	s.ToggleFollowAuthor(author)
	posts := s.Posts()
	assert.True(t, posts[0].Followed)
	assert.True(t, posts[1].Followed)
	assert.False(t, posts[2].Followed)
	require.Len(t, s.Following(), 1)
	assert.Equal(t, "u7", s.Following()[0].ID)

	s.ToggleFollowAuthor(author)
	posts = s.Posts()
	assert.False(t, posts[0].Followed)
	assert.False(t, posts[1].Followed)
	assert.Empty(t, s.Following())
}

func TestToggleFollowAuthorNoOps(t *testing.T) {
	s, _ := emptyStore(t, &models.User{ID: "me"})
	s.ToggleFollowAuthor(models.Author{}) // missing id
	assert.Empty(t, s.Following())

	anon, _ := emptyStore(t, nil)
	anon.ToggleFollowAuthor(models.Author{ID: "u7"})
	assert.Empty(t, anon.Following())
}

func TestRemovePost(t *testing.T) {
	s, _ := emptyStore(t, nil)
	post := s.AddQuestion(models.CreatePostRequest{Content: "bye"})

	s.RemovePost("unknown")
	assert.Len(t, s.Posts(), 1)

	s.RemovePost(post.ID)
	assert.Empty(t, s.Posts())
}

func TestUpdatePostStats(t *testing.T) {
	s, _ := emptyStore(t, nil)
	post := s.AddQuestion(models.CreatePostRequest{Content: "patch me"})

	up := 12
	followed := true
	s.UpdatePostStats(post.ID, models.PostStats{Upvotes: &up, Followed: &followed})

	got := s.Posts()[0]
	assert.Equal(t, 12, got.Upvotes)
	assert.Equal(t, 0, got.Downvotes)
	assert.True(t, got.Followed)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s, _ := emptyStore(t, &models.User{ID: "u1"})
	post := s.AddQuestion(models.CreatePostRequest{Content: "c"})
	s.AddComment(post.ID, models.Comment{ID: "c1", Text: "t"})

	posts := s.Posts()
	posts[0].Content = "mutated"
	posts[0].CommentsList[0].Text = "mutated"

	fresh := s.Posts()
	assert.Equal(t, "c", fresh[0].Content)
	assert.Equal(t, "t", fresh[0].CommentsList[0].Text)
}

// failingStore accepts reads but rejects every write
type failingStore struct {
	inner storage.Store
}

func (f *failingStore) Get(key string) ([]byte, bool, error) { return f.inner.Get(key) }
func (f *failingStore) Set(key string, value []byte) error {
	return errors.New("disk full")
}
func (f *failingStore) Delete(key string) error { return errors.New("disk full") }

func TestPersistenceFailuresAreSwallowed(t *testing.T) {
	mem := storage.NewMemoryStore()
	mustSet(t, mem, KeyPosts, []models.Post{})
	mustSet(t, mem, KeySpaces, []models.Space{})
	mustSet(t, mem, KeyNotifications, []models.Notification{})
	mustSet(t, mem, KeyFollowing, []models.FollowRelation{})

	s := NewFeedStore(&failingStore{inner: mem}, &fakeUsers{user: &models.User{ID: "u1"}})

	post := s.AddQuestion(models.CreatePostRequest{Content: "still works"})
	s.UpvotePost(post.ID)

	// in-memory state stays authoritative despite failed writes
	got := s.Posts()
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Upvotes)
}
