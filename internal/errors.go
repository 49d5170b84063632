package internal

import (
	"errors"
	"net/http"
)

// HTTPError carries everything an error handler needs to render a
// response: status code, user-facing message, and optional structured
// detail. Handlers return it; the application's ErrorHandler decides how
// it appears on the wire.
type HTTPError struct {
	// Err is the underlying error, kept for logging and never shown to
	// visitors.
	Err error

	// Message is shown to the visitor.
	Message string

	// Title optionally headlines the rendered error page.
	Title string

	// Detail optionally extends the message.
	Detail string

	// ErrorCode is an application-specific code. Error pages translate it
	// through the bundle when one is active.
	ErrorCode string

	// RequestID ties the error to a request log line.
	RequestID string

	// Code is the HTTP status code.
	Code int
}

func (e *HTTPError) Error() string { return e.Message }
func (e *HTTPError) Unwrap() error { return e.Err }

// StatusCode reports the HTTP status.
func (e *HTTPError) StatusCode() int { return e.Code }

// StatusText is the standard reason phrase for the status.
func (e *HTTPError) StatusText() string { return http.StatusText(e.Code) }

// HTTPErrorOption fills one optional HTTPError field.
type HTTPErrorOption func(*HTTPError)

// NewHTTPError builds a bare HTTPError from a status code and message.
// The Err* constructors below cover the common statuses.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// WithError records the underlying cause for the logs.
func WithError(err error) HTTPErrorOption {
	return func(e *HTTPError) { e.Err = err }
}

func WithTitle(title string) HTTPErrorOption {
	return func(e *HTTPError) { e.Title = title }
}

func WithDetail(detail string) HTTPErrorOption {
	return func(e *HTTPError) { e.Detail = detail }
}

// WithErrorCode attaches an application-specific code; error pages resolve
// it through the active translation bundle when one is loaded.
func WithErrorCode(code string) HTTPErrorOption {
	return func(e *HTTPError) { e.ErrorCode = code }
}

func WithRequestID(id string) HTTPErrorOption {
	return func(e *HTTPError) { e.RequestID = id }
}

// Convenience constructors for common HTTP errors.

func ErrBadRequest(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusBadRequest, message, opts)
}

func ErrUnauthorized(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusUnauthorized, message, opts)
}

func ErrForbidden(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusForbidden, message, opts)
}

func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, opts)
}

func ErrConflict(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusConflict, message, opts)
}

func ErrUnprocessable(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusUnprocessableEntity, message, opts)
}

func ErrInternal(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusInternalServerError, message, opts)
}

func ErrServiceUnavailable(message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(http.StatusServiceUnavailable, message, opts)
}

func newHTTPError(code int, message string, opts []HTTPErrorOption) *HTTPError {
	e := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsHTTPError reports whether err is, or wraps, an HTTPError.
func IsHTTPError(err error) bool {
	var he *HTTPError
	return errors.As(err, &he)
}

// AsHTTPError extracts the HTTPError from err, unwrapping as needed.
// Returns nil if none is present.
func AsHTTPError(err error) *HTTPError {
	var he *HTTPError
	if errors.As(err, &he) {
		return he
	}
	return nil
}
