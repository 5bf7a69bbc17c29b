package api

import (
	"errors"
	"net/http"
)

var (
	// ErrUnavailable means the request never produced a server response.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized covers 401/403 responses.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError carries the server-provided failure message for a single
// operation. The message is what gets surfaced to the user inline; no
// finer error codes are modeled.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// Unwrap lets errors.Is match authorization failures regardless of the
// message text.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}
