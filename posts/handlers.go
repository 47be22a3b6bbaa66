package posts

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/noteboard-go/apperror"
	"github.com/user/noteboard-go/auth"
)

// Handlers exposes the PostService over HTTP. All routes sit behind the
// bearer-token middleware, which places the resolved user in the request
// context.
type Handlers struct {
	service *PostService
}

// NewHandlers creates the HTTP handler set for the post endpoints.
func NewHandlers(service *PostService) *Handlers {
	return &Handlers{service: service}
}

func currentUser(w http.ResponseWriter, r *http.Request) (*auth.User, bool) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("invalid authentication", nil))
		return nil, false
	}
	return user, true
}

// HandleCreate godoc
// @Summary Create a post
// @Description Creates a new post owned by the authenticated user.
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postBody body posts.CreatePostRequest true "Post content"
// @Success 200 {object} posts.CreatePostResponse "Identifier of the new post"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or post too large"
// @Failure 401 {object} apperror.ErrorResponse "Unauthenticated"
// @Router /add-post [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		post, err := h.service.CreatePost(r.Context(), user, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, CreatePostResponse{PostID: post.ID})
	}
}

// HandleList godoc
// @Summary List the caller's posts
// @Description Returns all posts owned by the authenticated user. The
// response is cached per user for the configured window, so a recent
// mutation may not be reflected until the window expires.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} posts.Post "The caller's posts"
// @Failure 401 {object} apperror.ErrorResponse "Unauthenticated"
// @Router /posts [get]
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		list, err := h.service.ListPosts(r.Context(), user)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleDelete godoc
// @Summary Delete a post
// @Description Deletes a post owned by the authenticated user.
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param post_id path int true "Post identifier" minimum(1)
// @Success 200 {object} posts.DeletePostResponse "Deletion confirmation"
// @Failure 400 {object} apperror.ErrorResponse "Invalid post id"
// @Failure 401 {object} apperror.ErrorResponse "Unauthenticated"
// @Failure 403 {object} apperror.ErrorResponse "Not the post's owner"
// @Failure 404 {object} apperror.ErrorResponse "No such post"
// @Router /posts/{post_id} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		postID, err := strconv.Atoi(chi.URLParam(r, "post_id"))
		if err != nil || postID <= 0 {
			auth.WriteError(w, r, apperror.NewValidationError("post_id must be a positive integer", err))
			return
		}

		if err := h.service.DeletePost(r.Context(), user, postID); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, DeletePostResponse{Message: "Post deleted successfully"})
	}
}
