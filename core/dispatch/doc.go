// Package dispatch is the failure boundary between application handlers and
// the HTTP server: it converts typed handlers into http.Handlers that always
// produce exactly one well-formed response, no matter how the handler fails.
//
// # Containment
//
// Wrap runs the handler and renders its response through a write-tracking
// writer. Four failure shapes are contained:
//
//   - the handler panics
//   - the handler returns a nil response
//   - rendering the response returns an error
//   - the error handler itself fails
//
// Every failure is classified into a response.HTTPError: registered error
// mappers run first, then an HTTPError anywhere in the chain wins, then the
// StatusCode() int interface, and anything else becomes a bare 500 with no
// client-facing detail. The configured error handler renders it; the
// response status equals the structured error's status.
//
// Failures that resolve to status 500 additionally emit one diagnostic trace
// through slog (method, path, written status, error, stack for panics) and
// fan out a Report to the configured Reporters. The report id travels to the
// client as the X-Error-Id response header, so an operator can find the
// matching trace from a screenshot.
//
// Outcomes below 500 emit nothing; they are normal application answers, not
// incidents.
//
// # Usage
//
// Handlers register with any router that accepts http.Handler:
//
//	mux := http.NewServeMux()
//	mux.Handle("GET /users/{id}", dispatch.Wrap(getUser))
//
//	mux.Handle("POST /orders", dispatch.Wrap(createOrder,
//		dispatch.WithErrorHandler(response.JSONErrorHandler[*dispatch.Context]),
//		dispatch.WithErrorMapper(pg.MapError),
//		dispatch.WithReporter(sentryReporter),
//	))
//
// The default context reads path parameters via http.Request.PathValue and
// needs no configuration. Custom context types supply a factory:
//
//	dispatch.Wrap(h, dispatch.WithContextFactory(newAppContext))
//
// Wrap panics at registration when the handler is nil or a custom context
// type has no factory; the returned handler never panics.
//
// # Plain Handlers
//
// Recover gives http.Handler chains the same containment for panics:
//
//	srv := &http.Server{
//		Handler: dispatch.Recover(
//			dispatch.WithErrorHandler(response.JSONErrorHandler[*dispatch.Context]),
//		)(mux),
//	}
//
// # Reports
//
// Reporters receive the operator-facing record of each contained internal
// failure. The reporting integrations ship reports to Sentry or OpenSearch;
// custom sinks implement the one-method interface, or use ReporterFunc:
//
//	dispatch.WithReporter(dispatch.ReporterFunc(func(ctx context.Context, rep dispatch.Report) {
//		metrics.Inc("internal_errors")
//	}))
//
// Reporters run synchronously on the request goroutine in registration
// order and must not panic.
package dispatch
