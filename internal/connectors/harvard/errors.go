package harvard

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/museo/internal/core/domain"
)

// Harvard-specific errors.
var (
	// ErrInvalidBaseURL indicates the configured endpoint cannot be parsed.
	ErrInvalidBaseURL = errors.New("harvard: invalid base url")
)

// APIError represents a non-success response from the object API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("harvard: API error %d (URL: %s)", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("harvard: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap maps rejected-key and missing-page statuses onto domain errors so
// callers can use errors.Is without depending on this package.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return nil
	}
}
