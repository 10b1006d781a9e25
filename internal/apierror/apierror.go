// Package apierror provides the standardized error response structure for
// the API. All errors returned to clients go through this package to ensure
// consistency and to prevent leaking internal details (stack traces, DB
// errors, etc.).
package apierror

// APIError is the canonical error envelope for every 4xx/5xx HTTP response.
// One key, always "error", regardless of which layer produced the failure.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}
