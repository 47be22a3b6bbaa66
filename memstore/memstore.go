// Package memstore provides in-memory implementations of the persistence
// contracts. They honor the same sentinel-error behavior as the pgx stores
// (email uniqueness, missing rows, storage-assigned ids in insertion order)
// and back the test suite and local development runs.
package memstore

import (
	"context"
	"sync"

	"github.com/user/noteboard-go/auth"
	"github.com/user/noteboard-go/posts"
)

// UserStore is an in-memory auth.UserStore.
type UserStore struct {
	mu      sync.Mutex
	nextID  int
	byID    map[int]auth.User
	byEmail map[string]int
}

var _ auth.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		nextID:  1,
		byID:    make(map[int]auth.User),
		byEmail: make(map[string]int),
	}
}

// CreateUser assigns the next id and stores the user, enforcing email
// uniqueness like the users table does.
func (s *UserStore) CreateUser(_ context.Context, user *auth.User) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[user.Email]; exists {
		return nil, auth.ErrDuplicateEmail
	}

	stored := *user
	stored.ID = s.nextID
	s.nextID++
	s.byID[stored.ID] = stored
	s.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

// GetUserByEmail fetches a user by email.
func (s *UserStore) GetUserByEmail(_ context.Context, email string) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	user := s.byID[id]
	return &user, nil
}

// GetUserByID fetches a user by id.
func (s *UserStore) GetUserByID(_ context.Context, id int) (*auth.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return &user, nil
}

// PostStore is an in-memory posts.PostStore. Posts are kept in insertion
// order so listing matches the pgx store's ORDER BY id.
type PostStore struct {
	mu     sync.Mutex
	nextID int
	list   []posts.Post
}

var _ posts.PostStore = (*PostStore)(nil)

// NewPostStore creates an empty in-memory post store.
func NewPostStore() *PostStore {
	return &PostStore{nextID: 1}
}

// CreatePost assigns the next id and appends the post.
func (s *PostStore) CreatePost(_ context.Context, post *posts.Post) (*posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *post
	stored.ID = s.nextID
	s.nextID++
	s.list = append(s.list, stored)

	out := stored
	return &out, nil
}

// ListByUser returns the user's posts in insertion order.
func (s *PostStore) ListByUser(_ context.Context, userID int) ([]posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []posts.Post{}
	for _, p := range s.list {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

// GetPostByID fetches a post by id.
func (s *PostStore) GetPostByID(_ context.Context, id int) (*posts.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.list {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, posts.ErrPostNotFound
}

// DeletePost removes a post by id.
func (s *PostStore) DeletePost(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.list {
		if p.ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			return nil
		}
	}
	return posts.ErrPostNotFound
}
