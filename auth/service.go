package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/user/noteboard-go/apperror"
)

// AuthService implements the public (unauthenticated) use cases: register
// and authenticate. Both succeed by issuing a signed access token for the
// user's id.
type AuthService struct {
	store    UserStore
	hasher   *PasswordHasher
	tokens   *TokenIssuer
	validate *validator.Validate
	log      zerolog.Logger
}

// NewAuthService wires the service with its store, hasher, token issuer,
// and logger.
func NewAuthService(store UserStore, hasher *PasswordHasher, tokens *TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{
		store:    store,
		hasher:   hasher,
		tokens:   tokens,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
	}
}

// Register creates a new user and returns a token for it. The email must be
// unused; a duplicate fails with a Conflict error regardless of the other
// fields.
func (s *AuthService) Register(ctx context.Context, req SignupRequest) (*TokenResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError("invalid signup payload", err)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hashed,
	}
	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperror.NewConflictError("email already registered", nil)
		}
		s.log.Error().Err(err).Msg("create user failed")
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	return s.issueFor(created.ID)
}

// Authenticate checks the credentials and returns a token. Unknown email and
// wrong password produce the identical error so callers cannot probe which
// one it was.
func (s *AuthService) Authenticate(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError("invalid login payload", err)
	}

	user, err := s.store.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperror.NewAuthError("invalid credentials", nil)
		}
		s.log.Error().Err(err).Msg("get user by email failed")
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperror.NewAuthError("invalid credentials", nil)
	}

	return s.issueFor(user.ID)
}

func (s *AuthService) issueFor(userID int) (*TokenResponse, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		s.log.Error().Err(err).Int("user_id", userID).Msg("token issue failed")
		return nil, err
	}
	return &TokenResponse{AccessToken: token}, nil
}

// validationError flattens validator errors into a single client-facing
// message naming the offending fields.
func validationError(prefix string, err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s fails '%s'", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return apperror.NewValidationError(prefix+": "+strings.Join(parts, ", "), err)
	}
	return apperror.NewValidationError(prefix, err)
}
