package dispatch

import (
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/bulwark/core/handler"
	"github.com/dmitrymomot/bulwark/core/logger"
	"github.com/dmitrymomot/bulwark/core/response"
)

var (
	// ErrNilHandler reports Wrap being called with a nil handler.
	ErrNilHandler = errors.New("dispatch: nil handler")

	// ErrNoContextFactory reports a custom context type used without a
	// WithContextFactory option.
	ErrNoContextFactory = errors.New("dispatch: no context factory for custom context type")

	// ErrNilResponse reports a handler that returned a nil response.
	ErrNilResponse = errors.New("dispatch: handler returned nil response")
)

// Wrap converts a typed handler into an http.Handler that always answers
// with exactly one well-formed response. Panics, nil responses, and
// rendering errors are routed to the configured error handler (plain text by
// default); failures whose structured error resolves to status 500
// additionally produce one diagnostic trace and fan out to the configured
// Reporters, correlated with the client via an X-Error-Id header.
//
// Wrap panics at registration time when fn is nil or when a custom context
// type lacks a factory. The returned handler itself never panics.
func Wrap[C handler.Context](fn handler.HandlerFunc[C], opts ...Option[C]) http.Handler {
	if fn == nil {
		panic(ErrNilHandler)
	}
	cfg := newConfig(opts...)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := cfg.newContext(ww, r)

		defer func() {
			if p := recover(); p != nil {
				cfg.fail(ctx, ww, r, &panicError{value: p, stack: debug.Stack()})
			}
		}()

		resp := fn(ctx)
		if resp == nil {
			cfg.fail(ctx, ww, r, ErrNilResponse)
			return
		}
		// Render with the context's request: values stored via SetValue
		// during handling stay visible while the response renders.
		if err := resp(ww, ctx.Request()); err != nil {
			cfg.fail(ctx, ww, r, err)
		}
	})
}

// fail turns err into at most one client response. The error handler runs at
// most once; if it writes nothing or the response was already on the wire,
// the boundary degrades to http.Error or log-only, never to a propagated
// failure. Internal failures additionally emit one diagnostic trace and the
// reporter fan-out.
func (c *config[C]) fail(ctx C, ww *responseWriter, r *http.Request, err error) {
	defer func() {
		if p := recover(); p != nil {
			c.logger.ErrorContext(r.Context(), "panic while handling request failure",
				logger.Component("dispatch"),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
				logger.Key("value", p),
				logger.StackTrace(debug.Stack()),
			)
			if !ww.Written() {
				http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}
	}()

	for _, m := range c.mappers {
		if mapped := m(err); mapped != nil {
			err = mapped
		}
	}

	httpErr := response.ToHTTPError(err)
	internal := httpErr.Status == http.StatusInternalServerError

	var reportID string
	if internal {
		reportID = uuid.NewString()
	}

	if !ww.Written() {
		if internal {
			ww.Header().Set("X-Error-Id", reportID)
		}
		c.errorHandler(ctx, err)
		if !ww.Written() {
			// The error handler produced nothing; answer for it.
			http.Error(ww, httpErr.Title, httpErr.Status)
		}
	}

	if !internal {
		return
	}

	var stack []byte
	var pe PanicError
	if errors.As(err, &pe) {
		stack = pe.Stack()
	}

	c.logger.ErrorContext(r.Context(), "request failed",
		logger.Component("dispatch"),
		logger.Error(err),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.StatusCode(ww.Status()),
		logger.ReportID(reportID),
		logger.StackTrace(stack),
	)

	report := Report{
		ID:     reportID,
		Time:   time.Now().UTC(),
		Method: r.Method,
		Path:   r.URL.Path,
		Status: ww.Status(),
		Err:    err,
		Stack:  stack,
	}
	for _, rep := range c.reporters {
		rep.Report(r.Context(), report)
	}
}
