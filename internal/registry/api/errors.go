// Package api implements the typed HTTP client for the civil-registry
// REST backend. Every response body is decoded and validated before it
// is handed to the store; every failure is normalized to one of the
// sentinel errors below (or a ConflictError) so the store layer can map
// it to a user-facing message with plain errors.Is / errors.As checks.
package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable covers transport-level failures: refused
	// connections, timeouts, malformed responses.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the bearer credential is missing, expired,
	// or rejected (401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the credential is valid but the staff role is
	// not allowed to perform the operation (403).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound is returned for single-entity lookups that hit a 404.
	// Collection endpoints never return it: an empty result set is a
	// valid state, not an error.
	ErrNotFound = errors.New("not found")
)

// ConflictError is a server-reported validation conflict (duplicate
// email, duplicate license plate) scoped to a single form field.
type ConflictError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
