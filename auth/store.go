package auth

import (
	"context"
	"errors"
)

// Storage-layer sentinel errors. Stores return these; services translate
// them into the apperror taxonomy.
var (
	// ErrDuplicateEmail indicates the email uniqueness constraint fired.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrUserNotFound indicates no user row matched the lookup.
	ErrUserNotFound = errors.New("user not found")
)

// UserStore is the persistence contract for User records.
type UserStore interface {
	// CreateUser inserts a new user and returns it with the
	// storage-assigned id. Returns ErrDuplicateEmail on a uniqueness
	// conflict.
	CreateUser(ctx context.Context, user *User) (*User, error)
	// GetUserByEmail fetches a user by (lowercased) email, or
	// ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	// GetUserByID fetches a user by id, or ErrUserNotFound.
	GetUserByID(ctx context.Context, id int) (*User, error)
}
