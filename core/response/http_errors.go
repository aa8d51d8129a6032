package response

import "net/http"

// HTTPError is the structured error this package renders to clients.
// It carries the HTTP status, a short human-readable title, and optional
// detail text. An unexported cause can be attached for operator tooling;
// it is reachable through errors.Unwrap and never serialized to clients.
//
// HTTPError is an immutable value: the WithX helpers return modified copies,
// so predefined errors stay safe for concurrent reuse.
type HTTPError struct {
	Status int    `json:"status"`           // HTTP status code
	Title  string `json:"error"`            // Short summary of the failure
	Detail string `json:"detail,omitempty"` // Optional client-facing context
	cause  error
}

// NewHTTPError creates an HTTPError for the given status code with the title
// derived from http.StatusText. A zero status defaults to 500. Status values
// are not validated beyond that; callers own correctness.
func NewHTTPError(status int) HTTPError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return HTTPError{
		Status: status,
		Title:  http.StatusText(status),
	}
}

// Error implements the error interface. The client-facing Detail is not
// included; the operator-facing cause is.
func (e HTTPError) Error() string {
	if e.cause != nil {
		return e.Title + ": " + e.cause.Error()
	}
	return e.Title
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// Unwrap exposes the attached cause so errors.Is and errors.As keep working
// across the classification boundary.
func (e HTTPError) Unwrap() error {
	return e.cause
}

// WithTitle returns a copy of the error with a custom title.
func (e HTTPError) WithTitle(title string) HTTPError {
	e.Title = title
	return e
}

// WithDetail returns a copy of the error with client-facing detail text.
func (e HTTPError) WithDetail(detail string) HTTPError {
	e.Detail = detail
	return e
}

// WithError returns a copy of the error with the given cause attached.
// The cause stays out of every rendered response.
func (e HTTPError) WithError(err error) HTTPError {
	e.cause = err
	return e
}

// Predefined HTTP errors with titles from http.StatusText.
var (
	// 4xx client errors
	ErrBadRequest            = NewHTTPError(http.StatusBadRequest)
	ErrUnauthorized          = NewHTTPError(http.StatusUnauthorized)
	ErrPaymentRequired       = NewHTTPError(http.StatusPaymentRequired)
	ErrForbidden             = NewHTTPError(http.StatusForbidden)
	ErrNotFound              = NewHTTPError(http.StatusNotFound)
	ErrMethodNotAllowed      = NewHTTPError(http.StatusMethodNotAllowed)
	ErrNotAcceptable         = NewHTTPError(http.StatusNotAcceptable)
	ErrRequestTimeout        = NewHTTPError(http.StatusRequestTimeout)
	ErrConflict              = NewHTTPError(http.StatusConflict)
	ErrGone                  = NewHTTPError(http.StatusGone)
	ErrPreconditionFailed    = NewHTTPError(http.StatusPreconditionFailed)
	ErrRequestEntityTooLarge = NewHTTPError(http.StatusRequestEntityTooLarge)
	ErrUnsupportedMediaType  = NewHTTPError(http.StatusUnsupportedMediaType)
	ErrTeapot                = NewHTTPError(http.StatusTeapot)
	ErrUnprocessableEntity   = NewHTTPError(http.StatusUnprocessableEntity)
	ErrTooManyRequests       = NewHTTPError(http.StatusTooManyRequests)

	// 5xx server errors
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError)
	ErrNotImplemented      = NewHTTPError(http.StatusNotImplemented)
	ErrBadGateway          = NewHTTPError(http.StatusBadGateway)
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable)
	ErrGatewayTimeout      = NewHTTPError(http.StatusGatewayTimeout)
)
