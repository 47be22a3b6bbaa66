package posts_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/noteboard-go/apperror"
	"github.com/user/noteboard-go/auth"
	"github.com/user/noteboard-go/memstore"
	"github.com/user/noteboard-go/posts"
)

func newTestPostService(t *testing.T) (*posts.PostService, *memstore.PostStore, *fakeClock) {
	t.Helper()
	store := memstore.NewPostStore()
	clock := newFakeClock()
	cache := posts.NewListCache(5*time.Minute, clock.Now)
	return posts.NewPostService(store, cache, zerolog.Nop()), store, clock
}

func testUser(id int) *auth.User {
	return &auth.User{ID: id, Name: "Ann", Email: "a@x.com"}
}

func TestCreatePost_TrimsAndAssignsID(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestPostService(t)
	ctx := context.Background()

	created, err := service.CreatePost(ctx, testUser(1), posts.CreatePostRequest{Text: "  hello  "})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "hello", created.Text)
	assert.Equal(t, 1, created.UserID)
}

func TestCreatePost_EmptyTextRejected(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestPostService(t)
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := service.CreatePost(ctx, testUser(1), posts.CreatePostRequest{Text: text})
		require.Error(t, err, "text %q", text)
		assert.True(t, apperror.IsValidationError(err))
	}
}

func TestCreatePost_ByteCap(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestPostService(t)
	ctx := context.Background()

	atCap := strings.Repeat("a", 1_000_000)
	created, err := service.CreatePost(ctx, testUser(1), posts.CreatePostRequest{Text: atCap})
	require.NoError(t, err, "a post of exactly 1,000,000 bytes is allowed")
	assert.Len(t, created.Text, 1_000_000)

	_, err = service.CreatePost(ctx, testUser(1), posts.CreatePostRequest{Text: atCap + "a"})
	require.Error(t, err)
	assert.True(t, apperror.IsPayloadTooLarge(err))
}

func TestCreatePost_ByteCapCountsBytesNotRunes(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestPostService(t)
	ctx := context.Background()

	// "é" is two bytes of UTF-8, so 500,000 of them sit exactly at the
	// cap while 500,001 exceed it despite being far fewer characters
	// than the single-byte limit.
	_, err := service.CreatePost(ctx, testUser(1), posts.CreatePostRequest{Text: strings.Repeat("é", 500_000)})
	require.NoError(t, err)

	_, err = service.CreatePost(ctx, testUser(1), posts.CreatePostRequest{Text: strings.Repeat("é", 500_001)})
	require.Error(t, err)
	assert.True(t, apperror.IsPayloadTooLarge(err))
}

func TestListPosts_ScopedToOwner(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestPostService(t)
	ctx := context.Background()
	ann, bob := testUser(1), testUser(2)

	_, err := service.CreatePost(ctx, ann, posts.CreatePostRequest{Text: "ann one"})
	require.NoError(t, err)
	_, err = service.CreatePost(ctx, bob, posts.CreatePostRequest{Text: "bob one"})
	require.NoError(t, err)
	_, err = service.CreatePost(ctx, ann, posts.CreatePostRequest{Text: "ann two"})
	require.NoError(t, err)

	got, err := service.ListPosts(ctx, ann)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ann one", got[0].Text)
	assert.Equal(t, "ann two", got[1].Text)
}

func TestListPosts_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestPostService(t)

	got, err := service.ListPosts(context.Background(), testUser(1))
	require.NoError(t, err)
	assert.NotNil(t, got, "an empty list must encode as [] not null")
	assert.Empty(t, got)
}

func TestListPosts_StaleUntilWindowElapses(t *testing.T) {
	t.Parallel()

	service, _, clock := newTestPostService(t)
	ctx := context.Background()
	ann := testUser(1)

	_, err := service.CreatePost(ctx, ann, posts.CreatePostRequest{Text: "first"})
	require.NoError(t, err)

	got, err := service.ListPosts(ctx, ann)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// A post created after the list was cached does not appear until the
	// window elapses.
	_, err = service.CreatePost(ctx, ann, posts.CreatePostRequest{Text: "second"})
	require.NoError(t, err)

	got, err = service.ListPosts(ctx, ann)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	clock.Advance(5 * time.Minute)
	got, err = service.ListPosts(ctx, ann)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDeletePost_Owner(t *testing.T) {
	t.Parallel()

	service, store, _ := newTestPostService(t)
	ctx := context.Background()
	ann := testUser(1)

	created, err := service.CreatePost(ctx, ann, posts.CreatePostRequest{Text: "hello"})
	require.NoError(t, err)

	require.NoError(t, service.DeletePost(ctx, ann, created.ID))

	_, err = store.GetPostByID(ctx, created.ID)
	assert.ErrorIs(t, err, posts.ErrPostNotFound)
}

func TestDeletePost_NotFound(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestPostService(t)

	err := service.DeletePost(context.Background(), testUser(1), 99)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeletePost_ForbiddenForNonOwner(t *testing.T) {
	t.Parallel()

	service, store, _ := newTestPostService(t)
	ctx := context.Background()
	ann, bob := testUser(1), testUser(2)

	created, err := service.CreatePost(ctx, ann, posts.CreatePostRequest{Text: "ann's post"})
	require.NoError(t, err)

	err = service.DeletePost(ctx, bob, created.ID)
	require.Error(t, err)
	assert.True(t, apperror.IsForbidden(err), "existing post owned by someone else is forbidden, not hidden")

	// The post must survive the refused delete.
	survived, err := store.GetPostByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, ann.ID, survived.UserID)
}

func TestDeletePost_StaleListStillShowsDeleted(t *testing.T) {
	t.Parallel()

	service, _, clock := newTestPostService(t)
	ctx := context.Background()
	ann := testUser(1)

	created, err := service.CreatePost(ctx, ann, posts.CreatePostRequest{Text: "hello"})
	require.NoError(t, err)

	got, err := service.ListPosts(ctx, ann)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, service.DeletePost(ctx, ann, created.ID))

	// No active invalidation: the cached list keeps serving the deleted
	// post for the rest of its window.
	got, err = service.ListPosts(ctx, ann)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	clock.Advance(5 * time.Minute)
	got, err = service.ListPosts(ctx, ann)
	require.NoError(t, err)
	assert.Empty(t, got)
}
