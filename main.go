// noteboard is a minimal multi-user note/post service: users register,
// authenticate with a bearer token, and create, list, and delete short text
// posts tied to their account.
//
// @title Noteboard API
// @version 1.0
// @description Multi-user note/post service with bearer-token authentication.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/user/noteboard-go/auth"
	"github.com/user/noteboard-go/config"
	"github.com/user/noteboard-go/db"
	"github.com/user/noteboard-go/posts"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg(".env file not found, relying on existing environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create database pool")
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	userStore := auth.NewPGUserStore(pool)
	postStore := posts.NewPGPostStore(pool)
	listCache := posts.NewListCache(cfg.Cache.TTL, nil)

	router := newRouter(cfg, logger, userStore, postStore, listCache)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped gracefully")
}
