package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when a path identifier does not resolve.
	ErrNotFound = errors.New("resource not found")
	// ErrValidation is returned when a payload or query fails validation.
	ErrValidation = errors.New("validation error")
	// ErrUnsupportedMediaType is returned when the request body is not JSON.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrUnauthorized is returned when a credential is required but missing or invalid.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the caller is neither the owner nor an admin.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict is returned when a uniqueness constraint would be violated.
	ErrConflict = errors.New("conflict")
)

// Error is a domain error of one of the sentinel kinds above.
type Error struct {
	Kind    error
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match the sentinel kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// New creates a domain error of the given kind.
func New(kind error, message string, details ...string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// NotFound is a shorthand for New(ErrNotFound, ...).
func NotFound(message string) *Error {
	return New(ErrNotFound, message)
}

// Validation is a shorthand for New(ErrValidation, ...).
func Validation(message string, details ...string) *Error {
	return New(ErrValidation, message, details...)
}

// Conflict is a shorthand for New(ErrConflict, ...).
func Conflict(message string, details ...string) *Error {
	return New(ErrConflict, message, details...)
}

// Unauthorized is a shorthand for New(ErrUnauthorized, ...).
func Unauthorized(message string) *Error {
	return New(ErrUnauthorized, message)
}

// Forbidden is a shorthand for New(ErrForbidden, ...).
func Forbidden(message string) *Error {
	return New(ErrForbidden, message)
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string, details ...string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Details:    details,
	}
}

var statusByKind = []struct {
	kind   error
	status int
}{
	{ErrNotFound, http.StatusNotFound},
	{ErrValidation, http.StatusBadRequest},
	{ErrUnsupportedMediaType, http.StatusUnsupportedMediaType},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrConflict, http.StatusConflict},
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unknown errors become 500
// without leaking their message.
func MapErrorToHTTP(err error) *HTTPError {
	var domainErr *Error
	message := ""
	var details []string
	if errors.As(err, &domainErr) {
		message = domainErr.Message
		details = domainErr.Details
	}

	for _, m := range statusByKind {
		if errors.Is(err, m.kind) {
			if message == "" {
				message = m.kind.Error()
			}
			return NewHTTPError(m.status, message, details...)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error")
}
