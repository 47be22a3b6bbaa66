package users

import (
	"context"
	"errors"

	"github.com/user/noteboard-go/apperror"
	"github.com/user/noteboard-go/auth"
)

// UserService reads user profiles.
type UserService struct {
	store auth.UserStore
}

// NewUserService creates a UserService over the given store.
func NewUserService(store auth.UserStore) *UserService {
	return &UserService{store: store}
}

// GetUserProfile fetches the profile for userID.
func (s *UserService) GetUserProfile(ctx context.Context, userID int) (*UserProfileResponse, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user profile", err)
	}
	return &UserProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
