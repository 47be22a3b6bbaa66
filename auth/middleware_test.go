package auth_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/noteboard-go/auth"
	"github.com/user/noteboard-go/config"
	"github.com/user/noteboard-go/memstore"
)

func newTestMiddleware(t *testing.T) (func(http.Handler) http.Handler, *memstore.UserStore, *auth.TokenIssuer) {
	t.Helper()
	store := memstore.NewUserStore()
	issuer := auth.NewTokenIssuer(config.AuthConfig{
		JWTSecret:      "test-secret",
		JWTAlgorithm:   "HS256",
		AccessTokenTTL: 30 * time.Minute,
	})
	return auth.RequireUser(issuer, store, zerolog.Nop()), store, issuer
}

// echoUserHandler writes the id of the user the middleware attached.
func echoUserHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		require.True(t, ok, "middleware must attach the user before the handler runs")
		auth.WriteJSON(w, http.StatusOK, user)
	})
}

func doAuthedRequest(t *testing.T, handler http.Handler, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireUser_Success(t *testing.T) {
	t.Parallel()

	mw, store, issuer := newTestMiddleware(t)
	user, err := store.CreateUser(context.Background(), &auth.User{Name: "Ann", Email: "a@x.com", PasswordHash: "x"})
	require.NoError(t, err)

	token, err := issuer.Issue(user.ID)
	require.NoError(t, err)

	rec := doAuthedRequest(t, mw(echoUserHandler(t)), "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":1`)
}

func TestRequireUser_BearerSchemeIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	mw, store, issuer := newTestMiddleware(t)
	user, err := store.CreateUser(context.Background(), &auth.User{Name: "Ann", Email: "a@x.com", PasswordHash: "x"})
	require.NoError(t, err)

	token, err := issuer.Issue(user.ID)
	require.NoError(t, err)

	rec := doAuthedRequest(t, mw(echoUserHandler(t)), "bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireUser_FailuresCollapse(t *testing.T) {
	t.Parallel()

	mw, store, issuer := newTestMiddleware(t)
	user, err := store.CreateUser(context.Background(), &auth.User{Name: "Ann", Email: "a@x.com", PasswordHash: "x"})
	require.NoError(t, err)

	validToken, err := issuer.Issue(user.ID)
	require.NoError(t, err)
	expiredToken, err := issuer.IssueWithTTL(user.ID, -time.Minute)
	require.NoError(t, err)
	// Well-signed token whose subject has no user row.
	ghostToken, err := issuer.Issue(9999)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler must not run for a failed authentication")
	})

	cases := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not a bearer scheme", "Basic " + validToken},
		{"no token after scheme", "Bearer"},
		{"garbage token", "Bearer garbage"},
		{"expired token", "Bearer " + expiredToken},
		{"unknown subject", "Bearer " + ghostToken},
	}

	var bodies []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doAuthedRequest(t, mw(next), tc.authorization)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			body, err := io.ReadAll(rec.Result().Body)
			require.NoError(t, err)
			bodies = append(bodies, string(body))
		})
	}

	// Every failure mode must produce an identical response, so a caller
	// cannot tell a missing token from an invalid one, nor probe whether
	// a user id exists.
	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i])
	}
}
