package s3

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/bulwark/core/response"
)

// Domain-specific S3 errors for consistent error handling across the
// application. Use errors.Is() to check error types.
var (
	ErrInvalidConfig         = errors.New("s3 bucket and region are required")
	ErrFailedToLoadAWSConfig = errors.New("failed to load AWS config")
	ErrHealthcheckFailed     = errors.New("s3 healthcheck failed")
)

// IsNotFoundError reports whether err indicates a missing object or
// bucket.
func IsNotFoundError(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}
	var nf *types.NotFound
	return errors.As(err, &nf)
}

// MapError translates S3 API errors into the structured HTTP errors
// the dispatcher renders. Wire it into a dispatcher with
// dispatch.WithErrorMapper(s3.MapError).
//
// Recognized errors come back as response.HTTPError values carrying
// the original error as cause; everything else passes through
// unchanged so generic failures still surface as internal errors.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.ErrGatewayTimeout.WithError(err)
	case errors.Is(err, context.Canceled):
		return response.ErrServiceUnavailable.WithError(err)
	case IsNotFoundError(err):
		return response.ErrNotFound.WithError(err)
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.ErrorCode() {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return response.ErrNotFound.WithError(err)
	case "AccessDenied":
		return response.ErrForbidden.WithError(err)
	case "PreconditionFailed":
		return response.ErrPreconditionFailed.WithError(err)
	case "EntityTooLarge":
		return response.ErrRequestEntityTooLarge.WithError(err)
	case "RequestTimeout":
		return response.ErrRequestTimeout.WithError(err)
	case "SlowDown", "ServiceUnavailable":
		return response.ErrServiceUnavailable.WithError(err)
	}

	return err
}
