package opensearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v2"
)

// Domain-specific OpenSearch errors for consistent error handling
// across the application. Use errors.Is() to check error types.
var (
	ErrConnectionFailed  = errors.New("failed to connect to opensearch cluster")
	ErrHealthcheckFailed = errors.New("opensearch healthcheck failed")
)

// New creates an OpenSearch client and verifies cluster connectivity
// before returning it. The immediate info call fails fast on an
// unreachable or misconfigured cluster instead of handing a broken
// client to callers.
func New(ctx context.Context, cfg Config) (*opensearch.Client, error) {
	client, err := opensearch.NewClient(opensearch.Config{
		Addresses:    cfg.Addresses,
		Username:     cfg.Username,
		Password:     cfg.Password,
		MaxRetries:   cfg.MaxRetries,
		DisableRetry: cfg.DisableRetry,
	})
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	res, err := client.Info(client.Info.WithContext(ctx))
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", ErrConnectionFailed, res.Status())
	}

	return client, nil
}

// Healthcheck returns a health check function that verifies cluster
// connectivity with an info call. Suitable for readiness probes.
func Healthcheck(client *opensearch.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}

		res, err := client.Info(client.Info.WithContext(ctx))
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		defer func() { _ = res.Body.Close() }()

		if res.IsError() {
			return fmt.Errorf("%w: %s", ErrHealthcheckFailed, res.Status())
		}
		return nil
	}
}
