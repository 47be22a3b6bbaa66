package posts

import (
	"context"
	"errors"
)

// ErrPostNotFound indicates no post row matched the lookup.
var ErrPostNotFound = errors.New("post not found")

// PostStore is the persistence contract for Post records.
type PostStore interface {
	// CreatePost inserts a new post and returns it with the
	// storage-assigned id.
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	// ListByUser returns every post owned by userID in storage order.
	ListByUser(ctx context.Context, userID int) ([]Post, error)
	// GetPostByID fetches a post by id, or ErrPostNotFound.
	GetPostByID(ctx context.Context, id int) (*Post, error)
	// DeletePost removes a post by id, or ErrPostNotFound.
	DeletePost(ctx context.Context, id int) error
}
