package reliefweb

import (
	"errors"
	"fmt"
	"net/http"
)

// Static configuration errors.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrHostRequired    = errors.New("API host is required")
	ErrAppNameRequired = errors.New("application name is required")
	ErrSchemeRequired  = errors.New("transport scheme is required")
	ErrInvalidEndpoint = errors.New("invalid API endpoint")
	ErrIDRequired      = errors.New("resource id is required")
)

// RequestError wraps a network-level failure (connection, timeout, DNS)
// while issuing a request.
type RequestError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the API answers with a non-2xx status. The
// raw body is retained; the client does not interpret the service's error
// schema.
type StatusError struct {
	StatusCode int
	URL        string
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// DecodeError is returned when a response body is not valid JSON or does
// not structurally match the expected envelope.
type DecodeError struct {
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding API response: %v", e.Err)
}

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	statusErr := &StatusError{}
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == code
	}

	return false
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
