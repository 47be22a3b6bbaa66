package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/user/noteboard-go/apperror"
	"github.com/user/noteboard-go/auth"
	"github.com/user/noteboard-go/config"
	"github.com/user/noteboard-go/posts"
	"github.com/user/noteboard-go/users"
)

// newRouter assembles the full HTTP surface over the given stores and
// response cache. It is separated from main so the end-to-end tests can
// stand the whole service up on in-memory stores and an injected clock.
func newRouter(cfg *config.AppConfig, log zerolog.Logger, userStore auth.UserStore, postStore posts.PostStore, listCache *posts.ListCache) http.Handler {
	tokens := auth.NewTokenIssuer(*cfg.Auth)
	authService := auth.NewAuthService(userStore, auth.NewPasswordHasher(), tokens, log)
	authHandlers := auth.NewHandlers(authService)

	postService := posts.NewPostService(postStore, listCache, log)
	postHandlers := posts.NewHandlers(postService)

	userService := users.NewUserService(userStore)
	userHandlers := users.NewUserHandlers(userService)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panics inside handlers are converted to the standard JSON error body
	// instead of chi's plain-text 500.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Error().Interface("panic", rvr).Str("path", r.URL.Path).Msg("panic recovered")
					writeError(ww, apperror.NewInternalError("internal server error", nil))
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Public routes.
	r.Post("/signup", authHandlers.HandleSignup())
	r.Post("/login", authHandlers.HandleLogin())

	// Protected routes.
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireUser(tokens, userStore, log))

		r.Post("/add-post", postHandlers.HandleCreate())
		r.Get("/posts", postHandlers.HandleList())
		r.Delete("/posts/{post_id}", postHandlers.HandleDelete())

		r.Get("/users/me", userHandlers.HandleGetProfile())
	})

	return r
}

// writeError is a local helper for the panic recovery middleware.
func writeError(w http.ResponseWriter, appErr *apperror.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode())
	if err := json.NewEncoder(w).Encode(appErr.ToResponse()); err != nil {
		http.Error(w, `{"error":"failed to encode error response"}`, http.StatusInternalServerError)
	}
}
