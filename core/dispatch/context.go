package dispatch

import (
	"context"
	"net/http"
	"time"
)

// Context is the default request context. It delegates cancellation and
// values to the request's context, reads path parameters from the request
// (as populated by http.ServeMux patterns), and stores request-scoped values
// back onto the request.
//
// Applications needing richer per-request state embed it in their own type
// and install a factory via WithContextFactory.
type Context struct {
	w http.ResponseWriter
	r *http.Request
}

// NewContext creates a default context for the given request/response pair.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Deadline reports the request context's deadline.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns the request context's cancellation channel.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns the request context's error, if any.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns the value associated with key in the request's context.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// SetValue stores a request-scoped value retrievable through Value.
func (c *Context) SetValue(key, val any) {
	ctx := context.WithValue(c.r.Context(), key, val)
	c.r = c.r.WithContext(ctx)
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the named path parameter from the request pattern, or ""
// when the pattern has no such segment.
func (c *Context) Param(key string) string {
	return c.r.PathValue(key)
}
