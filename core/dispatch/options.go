package dispatch

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/bulwark/core/handler"
	"github.com/dmitrymomot/bulwark/core/response"
)

// Option configures a wrapped handler or a Recover middleware.
type Option[C handler.Context] func(*config[C])

type config[C handler.Context] struct {
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
	reporters    []Reporter
	mappers      []func(error) error
}

// newConfig applies options over the defaults: plain-text error rendering,
// slog.Default() for traces, the built-in context for *Context. It panics
// when a custom context type is used without a factory, so misconfiguration
// surfaces at registration rather than per request.
func newConfig[C handler.Context](opts ...Option[C]) *config[C] {
	cfg := &config[C]{
		errorHandler: response.ErrorHandler[C],
		logger:       slog.Default(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.newContext == nil {
		var zero C
		if _, ok := any(zero).(*Context); !ok {
			panic(ErrNoContextFactory)
		}
		cfg.newContext = func(w http.ResponseWriter, r *http.Request) C {
			return any(NewContext(w, r)).(C)
		}
	}

	return cfg
}

// WithErrorHandler sets the error handler invoked for failed requests.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(c *config[C]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets the factory building the request context. Required
// when wrapping handlers with a custom context type.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request) C) Option[C] {
	return func(c *config[C]) {
		if f != nil {
			c.newContext = f
		}
	}
}

// WithLogger sets the logger receiving diagnostic traces.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(c *config[C]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithReporter registers reporters receiving failure reports for
// 500-status outcomes, in order.
func WithReporter[C handler.Context](reporters ...Reporter) Option[C] {
	return func(c *config[C]) {
		for _, r := range reporters {
			if r != nil {
				c.reporters = append(c.reporters, r)
			}
		}
	}
}

// WithErrorMapper registers error mappers that reclassify failures before
// conversion, typically the MapError functions of the integration packages:
//
//	dispatch.Wrap(h, dispatch.WithErrorMapper(pg.MapError, s3.MapError))
//
// Mappers run in order; each receives the previous result.
func WithErrorMapper[C handler.Context](mappers ...func(error) error) Option[C] {
	return func(c *config[C]) {
		for _, m := range mappers {
			if m != nil {
				c.mappers = append(c.mappers, m)
			}
		}
	}
}
