package sentry_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bulwark/core/dispatch"
	"github.com/dmitrymomot/bulwark/core/handler"
	"github.com/dmitrymomot/bulwark/core/response"
	"github.com/dmitrymomot/bulwark/integration/reporting/sentry"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeIngest records envelope submissions so tests can assert on what
// the SDK actually sent.
type fakeIngest struct {
	mu     sync.Mutex
	bodies []string
}

func (f *fakeIngest) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/envelope/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.bodies = append(f.bodies, string(body))
		f.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})
}

func (f *fakeIngest) all() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.bodies...)
}

// newIngest starts a fake ingest endpoint and returns a DSN pointing
// at it.
func newIngest(t *testing.T) (*fakeIngest, string) {
	t.Helper()
	ingest := &fakeIngest{}
	srv := httptest.NewServer(ingest.handler())
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return ingest, "http://publickey@" + u.Host + "/1"
}

func testConfig(dsn string) sentry.Config {
	return sentry.Config{
		DSN:          dsn,
		Environment:  "test",
		SampleRate:   1.0,
		FlushTimeout: 5 * time.Second,
		Enabled:      true,
	}
}

func TestNewDisabled(t *testing.T) {
	t.Parallel()

	t.Run("disabled_flag", func(t *testing.T) {
		t.Parallel()

		reporter, err := sentry.New(sentry.Config{DSN: "http://key@sentry.example.com/1", Enabled: false})
		require.NoError(t, err)

		require.NotPanics(t, func() {
			reporter.Report(context.Background(), dispatch.Report{ID: "r1", Err: errors.New("boom")})
		})
		assert.NoError(t, reporter.Close())
	})

	t.Run("empty_dsn", func(t *testing.T) {
		t.Parallel()

		reporter, err := sentry.New(sentry.Config{Enabled: true})
		require.NoError(t, err)

		require.NotPanics(t, func() {
			reporter.Report(context.Background(), dispatch.Report{ID: "r1", Err: errors.New("boom")})
		})
		assert.NoError(t, reporter.Close())
	})
}

func TestNewInvalidDSN(t *testing.T) {
	t.Parallel()

	_, err := sentry.New(testConfig("not-a-dsn"))
	require.Error(t, err)
	assert.ErrorIs(t, err, sentry.ErrInitFailed)
}

func TestReportDeliversTaggedEvent(t *testing.T) {
	t.Parallel()

	ingest, dsn := newIngest(t)
	reporter, err := sentry.New(testConfig(dsn))
	require.NoError(t, err)

	reporter.Report(context.Background(), dispatch.Report{
		ID:     "0b5b2467-report-id",
		Time:   time.Now().UTC(),
		Method: "POST",
		Path:   "/imports",
		Status: http.StatusInternalServerError,
		Err:    errors.New("csv parser choked"),
		Stack:  []byte("goroutine 1 [running]:\nmain.main()"),
	})
	require.NoError(t, reporter.Close())

	bodies := ingest.all()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "0b5b2467-report-id")
	assert.Contains(t, bodies[0], "csv parser choked")
	assert.Contains(t, bodies[0], "/imports")
}

func TestReporterWithDispatch(t *testing.T) {
	t.Parallel()

	ingest, dsn := newIngest(t)
	reporter, err := sentry.New(testConfig(dsn))
	require.NoError(t, err)

	wrap := func(fn handler.HandlerFunc[*dispatch.Context]) http.Handler {
		return dispatch.Wrap(fn,
			dispatch.WithLogger[*dispatch.Context](discardLogger()),
			dispatch.WithReporter[*dispatch.Context](reporter),
		)
	}

	broken := wrap(func(ctx *dispatch.Context) handler.Response {
		return response.Error(errors.New("payment provider exploded"))
	})
	missing := wrap(func(ctx *dispatch.Context) handler.Response {
		return response.Error(response.ErrNotFound)
	})

	for target, h := range map[string]http.Handler{"/broken": broken, "/missing": missing} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", target, nil))
	}
	require.NoError(t, reporter.Close())

	// Only the internal failure reaches Sentry; the 404 is a normal
	// application answer.
	bodies := ingest.all()
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "payment provider exploded")
	assert.Contains(t, bodies[0], "/broken")
}
