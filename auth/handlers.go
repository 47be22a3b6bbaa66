package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/noteboard-go/apperror"
)

// Handlers exposes the AuthService over HTTP.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates the HTTP handler set for the auth endpoints.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleSignup godoc
// @Summary Register a new user
// @Description Registers a new user and returns an access token for it.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupBody body auth.SignupRequest true "User registration details"
// @Success 200 {object} auth.TokenResponse "Access token for the new user"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or email already registered"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /signup [post]
func (h *Handlers) HandleSignup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewValidationError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleLogin godoc
// @Summary Authenticate a user
// @Description Checks the credentials and returns an access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.TokenResponse "Access token"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewValidationError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Authenticate(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// WriteJSON serializes data as the JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

// WriteError renders any error as the standard apperror JSON body. Errors
// outside the taxonomy are wrapped as internal errors so the client always
// sees a uniform shape.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
