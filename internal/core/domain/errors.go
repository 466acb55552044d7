// Package domain defines the core domain models for berth.
package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DomainError represents a berth error with a structured error code.
//
// Codes follow the pattern BR-<AREA>-<HTTPish digits>, e.g.
// "BR-SOCK-4090" for a socket path held by a live listener.
type DomainError struct {
	Code    string // Error code (e.g., "BR-SOCK-4090")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support; two DomainErrors match on code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// ErrorCodeToHTTPStatus maps an error code to an HTTP status code.
func ErrorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4050"):
		return http.StatusMethodNotAllowed
	case strings.HasSuffix(code, "-4090"):
		return http.StatusConflict
	case strings.HasSuffix(code, "-4290"):
		return http.StatusTooManyRequests
	case strings.HasSuffix(code, "-4001"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Bind errors (SOCK). All are fatal to startup: a bind failure keeps
// the process unbound and aborts with a diagnostic.
var (
	// ErrSocketInUse indicates the socket path is held by a live listener,
	// most likely another running berth instance.
	ErrSocketInUse = NewDomainError("BR-SOCK-4090", "socket path held by a live listener")

	// ErrPathOccupied indicates the socket path exists as a non-socket file.
	ErrPathOccupied = NewDomainError("BR-SOCK-4001", "socket path occupied by a non-socket file")

	// ErrBindFailed indicates the bind itself failed (permissions,
	// missing parent directory, path too long for sockaddr_un).
	ErrBindFailed = NewDomainError("BR-SOCK-5000", "failed to bind unix socket")
)

// Request errors (HTTP). Recovered per-request; the listener stays healthy.
var (
	// ErrRouteNotFound indicates no handler is registered for the path.
	ErrRouteNotFound = NewDomainError("BR-HTTP-4040", "route not found")

	// ErrMethodNotAllowed indicates the route exists but not for this method.
	ErrMethodNotAllowed = NewDomainError("BR-HTTP-4050", "method not allowed")

	// ErrRateLimited indicates the global request rate limit was exceeded.
	ErrRateLimited = NewDomainError("BR-HTTP-4290", "too many requests")

	// ErrHandlerFailure indicates an unexpected failure while computing
	// a response.
	ErrHandlerFailure = NewDomainError("BR-HTTP-5000", "internal server error")
)
