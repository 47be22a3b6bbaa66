package posts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/noteboard-go/apperror"
)

// PGPostStore is the pgx-backed PostStore.
type PGPostStore struct {
	pool *pgxpool.Pool
}

var _ PostStore = (*PGPostStore)(nil)

// NewPGPostStore creates a PostStore over the given connection pool.
func NewPGPostStore(pool *pgxpool.Pool) *PGPostStore {
	return &PGPostStore{pool: pool}
}

// CreatePost inserts the post row and fills in the assigned id.
func (s *PGPostStore) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	query := `INSERT INTO posts (text, user_id) VALUES ($1, $2) RETURNING id`
	if err := s.pool.QueryRow(ctx, query, post.Text, post.UserID).Scan(&post.ID); err != nil {
		return nil, apperror.NewDatabaseError("failed to create post", err)
	}
	return post, nil
}

// ListByUser returns all posts owned by userID in insertion order.
func (s *PGPostStore) ListByUser(ctx context.Context, userID int) ([]Post, error) {
	query := `SELECT id, text, user_id FROM posts WHERE user_id = $1 ORDER BY id`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list posts", err)
	}
	defer rows.Close()

	list := []Post{}
	for rows.Next() {
		var p Post
		if err := rows.Scan(&p.ID, &p.Text, &p.UserID); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan post", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list posts", err)
	}
	return list, nil
}

// GetPostByID fetches a post by id.
func (s *PGPostStore) GetPostByID(ctx context.Context, id int) (*Post, error) {
	var p Post
	query := `SELECT id, text, user_id FROM posts WHERE id = $1`
	err := s.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Text, &p.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, apperror.NewDatabaseError("failed to get post", err)
	}
	return &p, nil
}

// DeletePost removes a post by id.
func (s *PGPostStore) DeletePost(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete post", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPostNotFound
	}
	return nil
}
