// Package users exposes read-only profile information for the authenticated
// user. Users are never mutated after registration, so there is no update
// surface here.
package users

// UserProfileResponse is the profile payload for GET /users/me.
type UserProfileResponse struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Ann"`
	Email string `json:"email" example:"ann@example.com"`
}
