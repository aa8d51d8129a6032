package handler

import "net/http"

// Response renders an HTTP response: it sets headers and status code and
// writes the body. A non-nil return value does not reach the client; it is
// passed to the dispatcher's error handler instead.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe request handler parameterized by context type.
// It returns a Response rather than writing directly, which keeps business
// logic separate from rendering and lets the dispatcher contain failures.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler converts an error into a client-facing response.
// The dispatcher invokes it at most once per request.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting functionality.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
