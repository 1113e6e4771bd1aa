package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidDateRange = errors.New("end date must be after start date")
var ErrOperationInFlight = errors.New("another session operation is in flight")
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrorKind tags the origin of an APIError.
type ErrorKind string

const (
	// ErrKindHTTP: the backend answered with a non-2xx status.
	ErrKindHTTP ErrorKind = "http"
	// ErrKindTransport: the request never produced a response (connection
	// refused, timeout, DNS). There is no status to inspect.
	ErrKindTransport ErrorKind = "transport"
	// ErrKindDecode: the backend answered 2xx but the body did not parse.
	ErrKindDecode ErrorKind = "decode"
)

// APIError is the single normalized shape every transport failure is mapped
// into at the HTTP client boundary. Upstream consumers handle this one shape
// instead of inspecting arbitrary nested error objects.
type APIError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int // zero unless Kind is ErrKindHTTP
}

func (e *APIError) Error() string {
	if e.Kind == ErrKindHTTP {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

// IsUnauthorized reports whether the error is an HTTP 401 response.
func (e *APIError) IsUnauthorized() bool {
	return e.Kind == ErrKindHTTP && e.StatusCode == http.StatusUnauthorized
}

// AsAPIError unwraps err into an *APIError when possible.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
