package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulwark/core/response"
)

func TestWithHeaders(t *testing.T) {
	t.Parallel()

	t.Run("sets_headers_before_render", func(t *testing.T) {
		t.Parallel()

		resp := response.WithHeaders(response.String("ok"), map[string]string{
			"X-Request-Id":  "req-123",
			"X-API-Version": "v2",
		})
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		err := resp(w, req)

		assert.NoError(t, err)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-Id"))
		assert.Equal(t, "v2", w.Header().Get("X-API-Version"))
		assert.Equal(t, "ok", w.Body.String())
	})

	t.Run("empty_headers_return_original", func(t *testing.T) {
		t.Parallel()

		resp := response.String("ok")
		assert.NotNil(t, response.WithHeaders(resp, nil))
	})

	t.Run("nil_response_stays_nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, response.WithHeaders(nil, map[string]string{"X": "y"}))
	})
}

func TestWithCookie(t *testing.T) {
	t.Parallel()

	resp := response.WithCookie(response.NoContent(), &http.Cookie{
		Name:     "session_id",
		Value:    "abc",
		HttpOnly: true,
	})
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	err := resp(w, req)
	assert.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestWithNoCache(t *testing.T) {
	t.Parallel()

	resp := response.WithNoCache(response.StringWithStatus("Not Found", http.StatusNotFound))
	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	err := resp(w, req)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	assert.Equal(t, "0", w.Header().Get("Expires"))
}
