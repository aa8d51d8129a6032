package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/bulwark/core/response"
)

// Domain-specific MongoDB errors for consistent error handling across
// the application. Use errors.Is() to check error types.
var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongodb")
	ErrEmptyConnectionURL     = errors.New("empty mongodb connection URL")
	ErrHealthcheckFailed      = errors.New("mongodb healthcheck failed")
)

// IsNotFoundError reports whether err indicates an empty query result.
func IsNotFoundError(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// MapError translates MongoDB driver errors into the structured HTTP
// errors the dispatcher renders. Wire it into a dispatcher with
// dispatch.WithErrorMapper(mongo.MapError).
//
// Recognized errors come back as response.HTTPError values carrying
// the original error as cause; everything else passes through
// unchanged so generic failures still surface as internal errors.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case IsNotFoundError(err):
		return response.ErrNotFound.WithError(err)
	case mongo.IsDuplicateKeyError(err):
		return response.ErrConflict.WithError(err)
	case mongo.IsTimeout(err):
		return response.ErrGatewayTimeout.WithError(err)
	case errors.Is(err, context.Canceled):
		return response.ErrServiceUnavailable.WithError(err)
	case mongo.IsNetworkError(err):
		return response.ErrServiceUnavailable.WithError(err)
	}

	return err
}
