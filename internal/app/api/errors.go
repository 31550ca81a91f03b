package api

import (
	"fmt"
	"net/http"

	"github.com/FACorreiaa/population-dashboard/internal/app/models"
)

// Error is a non-2xx answer from the remote authority. The body is kept so
// callers can extract whatever structured message the backend sent.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: remote returned %d", e.Method, e.Path, e.StatusCode)
}

func (e *Error) Unwrap() error {
	switch {
	case e.StatusCode == http.StatusUnauthorized:
		return models.ErrUnauthenticated
	case e.StatusCode == http.StatusForbidden:
		return models.ErrForbidden
	case e.StatusCode == http.StatusNotFound:
		return models.ErrNotFound
	case e.StatusCode == http.StatusBadRequest:
		return models.ErrValidation
	case e.StatusCode >= 500:
		return models.ErrRemoteUnavailable
	default:
		return models.ErrBadRequest
	}
}
