// Package auth owns the credential lifecycle: password hashing, token
// issue/verify, the signup/login use cases, and the bearer-token middleware
// that resolves requests to a User.
package auth

// SignupRequest is the registration payload. Name is trimmed before
// validation; the email is stored lowercased.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100" example:"Ann"`
	Email    string `json:"email" validate:"required,email" example:"ann@example.com"`
	Password string `json:"password" validate:"required,min=8,max=128" example:"longpass1"`
}

// LoginRequest is the authentication payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"ann@example.com"`
	Password string `json:"password" validate:"required,min=8,max=128" example:"longpass1"`
}

// TokenResponse carries the issued access token back to the client.
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
