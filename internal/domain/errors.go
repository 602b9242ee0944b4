package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when email/password do not match an
	// admin account. A non-admin account answers identically to an unknown
	// email on purpose.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingToken means the Authorization header was absent or not of
	// the form "Bearer <token>".
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken means the token failed verification (bad signature,
	// expired, wrong signing method).
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden means the caller is authenticated but lacks the role.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports rejected input. Fields, when set, names every
// offending field so clients can render per-field messages.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Fields, ", "))
}

// NewValidationError builds a ValidationError with a plain message.
func NewValidationError(message string, fields ...string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// StockError is returned when a cart add requests more units than are in
// stock. The check runs against the added quantity only, not the merged
// line-item total.
type StockError struct {
	ProductID int
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}
