package redis_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulwark/core/response"
	"github.com/dmitrymomot/bulwark/integration/database/redis"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil_maps_to_nil", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, redis.MapError(nil))
	})

	t.Run("redis_nil_maps_to_not_found", func(t *testing.T) {
		t.Parallel()

		mapped := redis.MapError(fmt.Errorf("get session: %w", goredis.Nil))

		var httpErr response.HTTPError
		require.ErrorAs(t, mapped, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Status)
		assert.ErrorIs(t, mapped, goredis.Nil)
	})

	t.Run("deadline_maps_to_gateway_timeout", func(t *testing.T) {
		t.Parallel()

		mapped := redis.MapError(context.DeadlineExceeded)

		var httpErr response.HTTPError
		require.ErrorAs(t, mapped, &httpErr)
		assert.Equal(t, http.StatusGatewayTimeout, httpErr.Status)
	})

	t.Run("cancellation_maps_to_service_unavailable", func(t *testing.T) {
		t.Parallel()

		mapped := redis.MapError(context.Canceled)

		var httpErr response.HTTPError
		require.ErrorAs(t, mapped, &httpErr)
		assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
	})

	t.Run("unrelated_error_passes_through", func(t *testing.T) {
		t.Parallel()

		err := errors.New("connection pool exhausted")
		assert.Equal(t, err, redis.MapError(err))
	})
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, redis.IsNotFoundError(goredis.Nil))
	assert.True(t, redis.IsNotFoundError(fmt.Errorf("wrapped: %w", goredis.Nil)))
	assert.False(t, redis.IsNotFoundError(errors.New("other")))
}

func TestConnectValidation(t *testing.T) {
	t.Parallel()

	t.Run("empty_connection_url", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{})
		assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("invalid_scheme", func(t *testing.T) {
		t.Parallel()

		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL: "http://localhost:6379",
		})
		assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})
}
