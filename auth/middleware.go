package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/user/noteboard-go/apperror"
)

// RequireUser returns middleware guarding protected routes. It extracts the
// bearer token from the Authorization header, verifies it, resolves the
// subject id to a User through the store, and attaches the User to the
// request context. Every failure — missing header, bad token, expired token,
// or a subject with no matching user row — produces the same 401 response,
// so the caller learns nothing about which check failed.
func RequireUser(tokens *TokenIssuer, store UserStore, log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError(authFailureMessage, nil))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError(authFailureMessage, nil))
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				WriteError(w, r, err)
				return
			}

			user, err := store.GetUserByID(r.Context(), userID)
			if err != nil {
				// An unknown subject is reported as the same auth
				// failure, never as not-found.
				if !errors.Is(err, ErrUserNotFound) {
					log.Error().Err(err).Int("user_id", userID).Msg("user lookup failed")
				}
				WriteError(w, r, apperror.NewAuthError(authFailureMessage, nil))
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContextWithUser(r.Context(), user)))
		})
	}
}
