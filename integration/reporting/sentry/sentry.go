package sentry

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/dmitrymomot/bulwark/core/dispatch"
)

// Domain-specific Sentry errors for consistent error handling across
// the application. Use errors.Is() to check error types.
var (
	ErrInitFailed   = errors.New("failed to initialize sentry client")
	ErrFlushTimeout = errors.New("sentry flush timed out with events still buffered")
)

const defaultFlushTimeout = 2 * time.Second

// Reporter ships dispatch failure reports to Sentry. It owns a private
// client and hub rather than the SDK's global state, so applications
// that use Sentry elsewhere keep their own configuration untouched.
//
// The SDK buffers and sends events on a background worker; Report only
// enqueues and never blocks on network I/O.
type Reporter struct {
	hub          *sentry.Hub
	flushTimeout time.Duration
}

var _ dispatch.Reporter = (*Reporter)(nil)

// New creates a Sentry reporter from the configuration. A disabled
// configuration yields a reporter whose Report and Close are no-ops,
// so wiring stays unconditional:
//
//	var cfg sentry.Config
//	config.MustLoad(&cfg)
//
//	reporter, err := sentry.New(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer reporter.Close()
//
//	mux.Handle("POST /orders", dispatch.Wrap(createOrder,
//		dispatch.WithReporter[*dispatch.Context](reporter),
//	))
func New(cfg Config) (*Reporter, error) {
	if !cfg.Enabled || cfg.DSN == "" {
		return &Reporter{}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      cfg.Environment,
		Release:          cfg.Release,
		Debug:            cfg.Debug,
		SampleRate:       cfg.SampleRate,
		AttachStacktrace: true,
	})
	if err != nil {
		return nil, errors.Join(ErrInitFailed, err)
	}

	flushTimeout := cfg.FlushTimeout
	if flushTimeout <= 0 {
		flushTimeout = defaultFlushTimeout
	}

	return &Reporter{
		hub:          sentry.NewHub(client, sentry.NewScope()),
		flushTimeout: flushTimeout,
	}, nil
}

// Report implements dispatch.Reporter. The report id, request method,
// path, and written status become event tags so Sentry issues stay
// searchable by the X-Error-Id value a client saw; a recovered panic's
// stack travels along as extra context.
func (r *Reporter) Report(ctx context.Context, report dispatch.Report) {
	if r == nil || r.hub == nil {
		return
	}

	hub := r.hub.Clone()
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(map[string]string{
			"report_id": report.ID,
			"method":    report.Method,
			"path":      report.Path,
			"status":    strconv.Itoa(report.Status),
		})
		if len(report.Stack) > 0 {
			scope.SetExtra("stack", string(report.Stack))
		}
		hub.CaptureException(report.Err)
	})
}

// Close flushes buffered events, waiting up to the configured flush
// timeout. Call it on shutdown; events still in flight when the
// process exits are lost otherwise.
func (r *Reporter) Close() error {
	if r == nil || r.hub == nil {
		return nil
	}
	if !r.hub.Flush(r.flushTimeout) {
		return ErrFlushTimeout
	}
	return nil
}
