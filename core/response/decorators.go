package response

import (
	"net/http"

	"github.com/dmitrymomot/bulwark/core/handler"
)

// WithHeaders wraps a response with custom HTTP headers.
// Headers are set before the wrapped response renders.
func WithHeaders(resp handler.Response, headers map[string]string) handler.Response {
	if resp == nil || len(headers) == 0 {
		return resp
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		return resp(w, r)
	}
}

// WithCookie wraps a response with an HTTP cookie.
// The cookie is set before the wrapped response renders.
func WithCookie(resp handler.Response, cookie *http.Cookie) handler.Response {
	if resp == nil || cookie == nil {
		return resp
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		http.SetCookie(w, cookie)
		return resp(w, r)
	}
}

// WithNoCache wraps a response with headers that forbid client and proxy
// caching. Error responses in particular should not be cached.
func WithNoCache(resp handler.Response) handler.Response {
	if resp == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		return resp(w, r)
	}
}
