package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/noteboard-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// PGUserStore is the pgx-backed UserStore.
type PGUserStore struct {
	pool *pgxpool.Pool
}

var _ UserStore = (*PGUserStore)(nil)

// NewPGUserStore creates a UserStore over the given connection pool.
func NewPGUserStore(pool *pgxpool.Pool) *PGUserStore {
	return &PGUserStore{pool: pool}
}

// CreateUser inserts the user row and fills in the assigned id.
func (s *PGUserStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO users (name, email, password_hash)
	          VALUES ($1, $2, $3)
	          RETURNING id`
	err := s.pool.QueryRow(ctx, query, user.Name, user.Email, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// GetUserByEmail fetches a user by email.
func (s *PGUserStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	query := `SELECT id, name, email, password_hash FROM users WHERE email = $1`
	err := s.pool.QueryRow(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, apperror.NewDatabaseError("failed to get user by email", err)
	}
	return &user, nil
}

// GetUserByID fetches a user by id.
func (s *PGUserStore) GetUserByID(ctx context.Context, id int) (*User, error) {
	var user User
	query := `SELECT id, name, email, password_hash FROM users WHERE id = $1`
	err := s.pool.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, apperror.NewDatabaseError("failed to get user by id", err)
	}
	return &user, nil
}
