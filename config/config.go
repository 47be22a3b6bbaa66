// Package config loads and validates application configuration from
// environment variables. Missing or malformed values are collected and
// reported together so a misconfigured deployment fails with one complete
// message instead of dying on the first variable.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// PoolConfig holds settings for the PostgreSQL connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds the token-signing settings. The secret and TTL are
// injected here rather than read from process globals so tests can build
// independent signer instances.
type AuthConfig struct {
	JWTSecret      string
	JWTAlgorithm   string        // HMAC family, e.g. "HS256"
	AccessTokenTTL time.Duration // default 30m
}

// CacheConfig holds settings for the list-posts response cache.
type CacheConfig struct {
	TTL time.Duration // default 5m
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AppConfig is the top-level configuration for the service.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Cache  *CacheConfig
	Server *ServerConfig
}

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size within sane bounds.
func clampPoolSize(size int) int {
	if size < 2 {
		return 2
	}
	if size > 100 {
		return 100
	}
	return size
}

// hmacAlgorithms are the token signing algorithms the service accepts.
var hmacAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
}

// LoadConfig reads and validates every configuration value from the
// environment, returning a single aggregated error when anything is missing
// or malformed.
func LoadConfig() (*AppConfig, error) {
	var errs []string

	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs))

	jwtSecret := getRequiredEnv("JWT_SECRET", &errs)
	jwtAlgorithm := strings.ToUpper(getOptionalEnv("JWT_ALGORITHM", "HS256"))
	if !hmacAlgorithms[jwtAlgorithm] {
		errs = append(errs, fmt.Sprintf("invalid value for JWT_ALGORITHM: expected one of HS256/HS384/HS512, got '%s'", jwtAlgorithm))
	}
	accessTokenTTL := getOptionalEnvDuration("JWT_ACCESS_TOKEN_DURATION", 30*time.Minute, &errs)

	cacheTTL := getOptionalEnvDuration("POSTS_CACHE_TTL", 5*time.Minute, &errs)

	serverPort := getOptionalEnv("PORT", "8080")

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB: &PoolConfig{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			MaxSize:  poolSize,
		},
		Auth: &AuthConfig{
			JWTSecret:      jwtSecret,
			JWTAlgorithm:   jwtAlgorithm,
			AccessTokenTTL: accessTokenTTL,
		},
		Cache: &CacheConfig{
			TTL: cacheTTL,
		},
		Server: &ServerConfig{
			Port: serverPort,
		},
	}, nil
}
