package users

import (
	"net/http"

	"github.com/user/noteboard-go/apperror"
	"github.com/user/noteboard-go/auth"
)

// UserHandlers exposes the profile endpoint over HTTP.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates the HTTP handler set for user profiles.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleGetProfile godoc
// @Summary Get the caller's profile
// @Description Returns the profile of the currently authenticated user.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.UserProfileResponse "The caller's profile"
// @Failure 401 {object} apperror.ErrorResponse "Unauthenticated"
// @Router /users/me [get]
func (h *UserHandlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("invalid authentication", nil))
			return
		}

		profile, err := h.service.GetUserProfile(r.Context(), user.ID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, profile)
	}
}
