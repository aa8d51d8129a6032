package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/bulwark/core/response"
)

// Domain-specific Redis errors for consistent error handling across
// the application. Use errors.Is() to check error types.
var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
)

// IsNotFoundError reports whether err indicates a missing key.
func IsNotFoundError(err error) bool {
	return errors.Is(err, redis.Nil)
}

// MapError translates Redis client errors into the structured HTTP
// errors the dispatcher renders. Wire it into a dispatcher with
// dispatch.WithErrorMapper(redis.MapError).
//
// redis.Nil becomes 404 Not Found, deadline expiry becomes 504 and
// cancellation 503. Everything else passes through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case IsNotFoundError(err):
		return response.ErrNotFound.WithError(err)
	case errors.Is(err, context.DeadlineExceeded):
		return response.ErrGatewayTimeout.WithError(err)
	case errors.Is(err, context.Canceled):
		return response.ErrServiceUnavailable.WithError(err)
	}

	return err
}
