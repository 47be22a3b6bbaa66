package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/noteboard-go/apperror"
	"github.com/user/noteboard-go/config"
)

// authFailureMessage is the single user-visible message for every token
// failure. Missing, malformed, expired, and unresolvable tokens all collapse
// to it so the response never reveals which check failed.
const authFailureMessage = "invalid authentication"

// TokenIssuer signs and verifies the service's bearer tokens. Tokens bind a
// subject (user id) to an expiration instant; validity is purely
// signature-plus-expiry, with no revocation list and no refresh.
type TokenIssuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer builds an issuer from the auth configuration. The signing
// key and TTL are instance state, not process globals, so tests can run
// independent issuers side by side.
func NewTokenIssuer(cfg config.AuthConfig) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		method: jwt.GetSigningMethod(cfg.JWTAlgorithm),
		ttl:    cfg.AccessTokenTTL,
		now:    time.Now,
	}
}

// Issue signs a token for userID with the configured TTL.
func (t *TokenIssuer) Issue(userID int) (string, error) {
	return t.IssueWithTTL(userID, t.ttl)
}

// IssueWithTTL signs a token for userID expiring ttl from now.
func (t *TokenIssuer) IssueWithTTL(userID int, ttl time.Duration) (string, error) {
	now := t.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
	if err != nil {
		return "", apperror.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}

// Verify checks tokenString's signature and expiry and returns the subject
// user id. It fails with an AuthError when the signature is wrong, the
// payload cannot be parsed, the subject claim is absent or not a positive
// integer, or the token is expired.
func (t *TokenIssuer) Verify(tokenString string) (int, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{t.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, apperror.NewAuthError(authFailureMessage, err)
	}
	if !token.Valid {
		return 0, apperror.NewAuthError(authFailureMessage, nil)
	}
	if claims.Subject == "" {
		return 0, apperror.NewAuthError(authFailureMessage, nil)
	}
	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID <= 0 {
		return 0, apperror.NewAuthError(authFailureMessage, err)
	}
	return userID, nil
}
