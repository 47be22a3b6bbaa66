package posts

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/user/noteboard-go/apperror"
	"github.com/user/noteboard-go/auth"
)

// maxPostBytes is the cap on a post body, measured on the UTF-8 encoded
// size, not the character count.
const maxPostBytes = 1_000_000

// PostService implements the authenticated use cases over posts: create,
// list (through the response cache), and delete with an ownership check.
type PostService struct {
	store PostStore
	cache *ListCache
	log   zerolog.Logger
}

// NewPostService wires the service with its store, response cache, and logger.
func NewPostService(store PostStore, cache *ListCache, log zerolog.Logger) *PostService {
	return &PostService{store: store, cache: cache, log: log}
}

// CreatePost persists a new post owned by user and returns it with its
// storage-assigned id. The text must be non-empty after trimming and at most
// 1,000,000 bytes of UTF-8.
func (s *PostService) CreatePost(ctx context.Context, user *auth.User, req CreatePostRequest) (*Post, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperror.NewValidationError("text is required", nil)
	}
	if len(text) > maxPostBytes {
		return nil, apperror.NewPayloadTooLargeError("post too large (max 1 MB)", nil)
	}

	post := &Post{Text: text, UserID: user.ID}
	created, err := s.store.CreatePost(ctx, post)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", user.ID).Msg("create post failed")
		return nil, err
	}
	return created, nil
}

// ListPosts returns all posts owned by user, in storage order, through the
// response cache. A result computed up to the cache TTL ago may be returned
// even if posts were created or deleted since.
func (s *PostService) ListPosts(ctx context.Context, user *auth.User) ([]Post, error) {
	return s.cache.Get(ctx, user.ID, func(ctx context.Context) ([]Post, error) {
		list, err := s.store.ListByUser(ctx, user.ID)
		if err != nil {
			s.log.Error().Err(err).Int("user_id", user.ID).Msg("list posts failed")
		}
		return list, err
	})
}

// DeletePost removes the post with postID. It fails NotFound when no such
// post exists and Forbidden when the stored owner differs from user; the
// existence check runs strictly before the ownership check, and ownership is
// decided by the stored owner id alone.
func (s *PostService) DeletePost(ctx context.Context, user *auth.User, postID int) error {
	post, err := s.store.GetPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return apperror.NewNotFoundError("post not found", nil)
		}
		s.log.Error().Err(err).Int("post_id", postID).Msg("get post failed")
		return err
	}

	if post.UserID != user.ID {
		return apperror.NewForbiddenError("not authorized to delete this post", nil)
	}

	if err := s.store.DeletePost(ctx, postID); err != nil {
		if errors.Is(err, ErrPostNotFound) {
			return apperror.NewNotFoundError("post not found", nil)
		}
		s.log.Error().Err(err).Int("post_id", postID).Msg("delete post failed")
		return err
	}
	return nil
}
