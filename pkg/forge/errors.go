package forge

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError represents a non-success response from the forge API.
type APIError struct {
	StatusCode int    `json:"status_code"   yaml:"status_code"`
	Message    string `json:"message"       yaml:"message"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// ValidationError reports required builder fields that were never set. It is
// raised at the terminal call, before any request is issued.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrPortOutOfRange     = errors.New("port must be between 1 and 65535")
	ErrBuilderAlreadySent = errors.New("builder already sent its request")
	ErrNoClient           = errors.New("object carries no client reference")
	ErrNoHostInURL        = errors.New("no host specified in URL")
)

// ParseAPIError builds an APIError from a response status and body. Forge
// error bodies are {"message": "...", "url": "..."}; an unparseable body
// falls back to its raw text.
func ParseAPIError(statusCode int, body []byte, url string) *APIError {
	apiErr := &APIError{StatusCode: statusCode, URL: url}

	var payload struct {
		Message string `json:"message"`
		URL     string `json:"url"`
	}

	err := json.Unmarshal(body, &payload)
	if err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
		if payload.URL != "" {
			apiErr.URL = payload.URL
		}

		return apiErr
	}

	apiErr.Message = strings.TrimSpace(string(body))

	return apiErr
}

func statusIs(err error, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return statusIs(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return statusIs(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return statusIs(err, http.StatusForbidden)
}

// IsConflict checks if the error is a conflict error, e.g. a resource that
// already exists.
func IsConflict(err error) bool {
	return statusIs(err, http.StatusConflict)
}

// IsUnprocessable checks if the error is a server-side validation error.
func IsUnprocessable(err error) bool {
	return statusIs(err, http.StatusUnprocessableEntity)
}
