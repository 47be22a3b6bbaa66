// Package apperror defines the application's error taxonomy. Services return
// typed *AppError values; the HTTP layer maps them to status codes and a
// uniform JSON error body.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// ConfigError represents an error related to application configuration.
	ConfigError
	// AuthError represents an authentication failure (bad credentials,
	// missing/invalid/expired token).
	AuthError
	// ForbiddenError represents an authorization failure: the caller is
	// authenticated but does not own the resource.
	ForbiddenError
	// NotFoundError represents a missing resource.
	NotFoundError
	// ValidationError represents malformed or out-of-range input.
	ValidationError
	// ConflictError represents a uniqueness conflict (duplicate email).
	ConflictError
	// PayloadTooLargeError represents a post body over the byte cap.
	PayloadTooLargeError
	// InternalError represents a generic internal server error.
	InternalError
)

// AppError carries an error type, a user-facing message, and an optional
// wrapped underlying error for logs.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the underlying error to errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code for the error type.
//
// Conflict and PayloadTooLarge map to 400 rather than 409/413: that is the
// service's published wire contract for /signup and /add-post.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, ConflictError, PayloadTooLargeError:
		return http.StatusBadRequest
	case DatabaseError, ConfigError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// New creates an AppError of an arbitrary type.
func New(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewDatabaseError creates a DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return New(DatabaseError, message, underlying)
}

// NewConfigError creates a ConfigError.
func NewConfigError(message string, underlying error) *AppError {
	return New(ConfigError, message, underlying)
}

// NewAuthError creates an AuthError.
func NewAuthError(message string, underlying error) *AppError {
	return New(AuthError, message, underlying)
}

// NewForbiddenError creates a ForbiddenError.
func NewForbiddenError(message string, underlying error) *AppError {
	return New(ForbiddenError, message, underlying)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return New(NotFoundError, message, underlying)
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return New(ValidationError, message, underlying)
}

// NewConflictError creates a ConflictError.
func NewConflictError(message string, underlying error) *AppError {
	return New(ConflictError, message, underlying)
}

// NewPayloadTooLargeError creates a PayloadTooLargeError.
func NewPayloadTooLargeError(message string, underlying error) *AppError {
	return New(PayloadTooLargeError, message, underlying)
}

// NewInternalError creates an InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return New(InternalError, message, underlying)
}

// ErrorResponse is the JSON error body returned to API clients.
type ErrorResponse struct {
	Error string `json:"error" example:"a description of the error"`
}

// ToResponse converts an AppError to its client-facing representation. Only
// the message is exposed, never the wrapped error.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message}
}

// FromError attempts to interpret err as an *AppError.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func isType(err error, t ErrorType) bool {
	var ae *AppError
	return errors.As(err, &ae) && ae.Type == t
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool { return isType(err, AuthError) }

// IsForbidden reports whether err is an ownership/authorization failure.
func IsForbidden(err error) bool { return isType(err, ForbiddenError) }

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool { return isType(err, NotFoundError) }

// IsValidationError reports whether err is an input validation failure.
func IsValidationError(err error) bool { return isType(err, ValidationError) }

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool { return isType(err, ConflictError) }

// IsPayloadTooLarge reports whether err is an over-cap post body.
func IsPayloadTooLarge(err error) bool { return isType(err, PayloadTooLargeError) }
