package dispatch

import (
	"net/http"
	"runtime/debug"
)

// Recover applies the dispatcher's failure containment to plain http.Handler
// chains, for routes that bypass Wrap. A panic in next becomes a regular
// error response through the configured error handler, with the same
// trace-and-report behavior as Wrap:
//
//	mux := http.NewServeMux()
//	mux.Handle("/legacy", legacyHandler)
//	srv := &http.Server{Handler: dispatch.Recover()(mux)}
//
// Panic values that unwrap to an HTTPError keep their status; everything
// else answers 500.
func Recover(opts ...Option[*Context]) func(http.Handler) http.Handler {
	cfg := newConfig(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := newResponseWriter(w)

			defer func() {
				if p := recover(); p != nil {
					cfg.fail(cfg.newContext(ww, r), ww, r, &panicError{value: p, stack: debug.Stack()})
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
