package dispatch_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulwark/core/dispatch"
	"github.com/dmitrymomot/bulwark/core/handler"
)

func TestResponseWriterStatusTracking(t *testing.T) {
	t.Parallel()

	h := dispatch.Wrap(func(ctx *dispatch.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusCreated)
			_, err := w.Write([]byte("created"))
			return err
		}
	})

	w := serve(t, h, "POST", "/things")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "created", w.Body.String())
}

func TestResponseWriterDefaultStatus(t *testing.T) {
	t.Parallel()

	h := dispatch.Wrap(func(ctx *dispatch.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			_, err := w.Write([]byte("default status"))
			return err
		}
	})

	w := serve(t, h, "GET", "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "default status", w.Body.String())
}

func TestResponseWriterFirstHeaderWins(t *testing.T) {
	t.Parallel()

	h := dispatch.Wrap(func(ctx *dispatch.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.WriteHeader(http.StatusCreated)
			w.WriteHeader(http.StatusBadRequest)
			_, err := w.Write([]byte("first status wins"))
			return err
		}
	})

	w := serve(t, h, "GET", "/")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "first status wins", w.Body.String())
}

func TestResponseWriterFlusher(t *testing.T) {
	t.Parallel()

	h := dispatch.Wrap(func(ctx *dispatch.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			if _, err := w.Write([]byte("chunk1")); err != nil {
				return err
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
			_, err := w.Write([]byte("chunk2"))
			return err
		}
	})

	w := serve(t, h, "GET", "/stream")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "chunk1chunk2", w.Body.String())
	assert.True(t, w.Flushed)
}

func TestResponseWriterHijackerUnsupported(t *testing.T) {
	t.Parallel()

	var hijackErr error
	h := dispatch.Wrap(func(ctx *dispatch.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			hijacker, ok := w.(http.Hijacker)
			require.True(t, ok, "wrapped writer must expose http.Hijacker")
			_, _, hijackErr = hijacker.Hijack()
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte("response"))
			return err
		}
	})

	// httptest.ResponseRecorder does not implement Hijacker, so the
	// wrapper must surface an error instead of panicking.
	w := serve(t, h, "GET", "/ws")

	require.Error(t, hijackErr)
	assert.Contains(t, hijackErr.Error(), "hijack")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "response", w.Body.String())
}

func TestResponseWriterHeaderPassthrough(t *testing.T) {
	t.Parallel()

	h := dispatch.Wrap(func(ctx *dispatch.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			w.Header().Set("X-Request-Id", "req_1")
			w.Header().Add("X-Multi", "a")
			w.Header().Add("X-Multi", "b")
			w.WriteHeader(http.StatusAccepted)
			return nil
		}
	})

	w := serve(t, h, "GET", "/")

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "req_1", w.Header().Get("X-Request-Id"))
	assert.Equal(t, []string{"a", "b"}, w.Header()["X-Multi"])
}

func TestResponseWriterUnwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	h := dispatch.Wrap(func(ctx *dispatch.Context) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			// http.ResponseController relies on Unwrap to reach the
			// underlying writer.
			return http.NewResponseController(w).Flush()
		}
	})

	req := httptest.NewRequest("GET", "/", nil)
	h.ServeHTTP(rec, req)

	assert.True(t, rec.Flushed)
}
