package dispatch

import (
	"context"
	"fmt"
	"time"
)

// Report is the operator-facing record of one contained internal failure.
// The dispatcher produces a Report only for failures whose structured error
// resolves to status 500 and fans it out to the configured Reporters.
type Report struct {
	// ID correlates this report with the X-Error-Id response header and the
	// diagnostic log record.
	ID     string
	Time   time.Time
	Method string
	Path   string
	// Status is the status code actually sent to the client. It can differ
	// from 500 when the failure happened after a response was written.
	Status int
	Err    error
	// Stack holds the goroutine stack captured at the recover site. Nil for
	// non-panic failures.
	Stack []byte
}

// Reporter delivers failure reports to an external sink such as Sentry or
// OpenSearch. Reporters run synchronously on the request goroutine in
// registration order; sinks that need buffering own it themselves. A Reporter
// must not panic.
type Reporter interface {
	Report(ctx context.Context, report Report)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(ctx context.Context, report Report)

func (f ReporterFunc) Report(ctx context.Context, report Report) {
	f(ctx, report)
}

// PanicError lets error handlers and reporters detect recovered panics and
// access the original panic value with its stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the recover site.
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap lets errors.Is and errors.As see through panics raised with error
// values.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
