// Package sentry ships dispatch failure reports to Sentry for alerting
// and issue tracking.
//
// This package wraps the official Sentry Go SDK behind the
// dispatch.Reporter interface. The dispatcher fans a report out for
// every contained failure that resolved to status 500; the reporter
// turns each one into a Sentry event tagged with the report id, request
// method, path, and written status, so issues stay correlated with the
// X-Error-Id header the client received.
//
// # Configuration
//
// All configuration is handled through the Config struct with
// environment variable mapping:
//
//	type Config struct {
//		DSN          string        `env:"SENTRY_DSN"`
//		Environment  string        `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
//		Release      string        `env:"SENTRY_RELEASE"`
//		Debug        bool          `env:"SENTRY_DEBUG" envDefault:"false"`
//		SampleRate   float64       `env:"SENTRY_SAMPLE_RATE" envDefault:"1.0"`
//		FlushTimeout time.Duration `env:"SENTRY_FLUSH_TIMEOUT" envDefault:"2s"`
//		Enabled      bool          `env:"SENTRY_ENABLED" envDefault:"true"`
//	}
//
// Leaving the DSN empty or setting SENTRY_ENABLED=false disables
// reporting: New returns a no-op reporter, so local development needs
// no special wiring.
//
// # Usage Example
//
//	var cfg sentry.Config
//	config.MustLoad(&cfg)
//
//	reporter, err := sentry.New(cfg)
//	if err != nil {
//		log.Fatal("Failed to initialize Sentry:", err)
//	}
//	defer reporter.Close()
//
//	mux := http.NewServeMux()
//	mux.Handle("POST /orders", dispatch.Wrap(createOrder,
//		dispatch.WithErrorHandler(response.JSONErrorHandler[*dispatch.Context]),
//		dispatch.WithReporter[*dispatch.Context](reporter),
//	))
//
// # Delivery Semantics
//
// Report enqueues the event on the SDK's background worker and returns
// immediately; the request being answered never waits on Sentry's
// ingest endpoint. Close flushes the buffer with a bounded timeout and
// reports ErrFlushTimeout when events were still in flight, which is
// worth logging during shutdown but rarely actionable.
//
// The reporter owns a private client and hub. Applications that also
// use the Sentry SDK directly (for traces, breadcrumbs, or their own
// captures) keep their global configuration untouched.
package sentry
