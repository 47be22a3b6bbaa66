package auth

// User is the identity record backing authentication and post ownership.
// The password is stored only as an irreversible hash and is never exposed
// in API responses.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
