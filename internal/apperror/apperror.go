// Package apperror defines the application error taxonomy shared by the
// store, auth, and handler layers. Handlers map these to HTTP status codes;
// everything else only wraps and inspects them with errors.Is/As.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// Authentication failures. All four surface as 401 to the client but
	// stay distinguishable internally for diagnostics.
	ErrUnauthenticated = errors.New("not authenticated")
	ErrInvalidSession  = errors.New("invalid session")
	ErrSessionExpired  = errors.New("session expired")
	ErrUserNotFound    = errors.New("user not found")

	// ErrUpstreamAuth covers every identity-provider failure: transport
	// error, timeout, or non-success status. The cause is deliberately not
	// distinguished to the caller.
	ErrUpstreamAuth = errors.New("identity exchange failed")

	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)

// AppError carries a human-readable message on top of a sentinel.
type AppError struct {
	Err     error
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(resource string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

func Auth(sentinel error, message string) *AppError {
	return &AppError{Err: sentinel, Message: message}
}

// IsAuthError reports whether err belongs to the 401 class.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthenticated) ||
		errors.Is(err, ErrInvalidSession) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrUpstreamAuth)
}
