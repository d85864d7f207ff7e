package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the client-side taxonomy. Server-reported failures
// unwrap to one of these where a mapping exists; validation failures are
// raised before any request is made.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Error is a failure reported by the backend. Detail carries the server's
// message verbatim when one was present.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Detail, e.Status)
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

// Unwrap maps auth and missing-resource statuses onto the sentinels so
// callers can classify with errors.Is without losing the server detail.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthenticated
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// ValidationError is a client-caught bad input; no request was made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
