package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("not logged in")
	ErrAccessDenied = errors.New("Access denied.")
)

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	// Message is the backend's own explanation, shown to the user as is.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Message extracts what should be shown to the user for err: the server's
// message for an *APIError, fallback for transport failures, and err's own
// text otherwise.
func Message(err error, fallback string) string {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Error()
	case errors.Is(err, ErrUnavailable):
		return fallback
	default:
		return err.Error()
	}
}
