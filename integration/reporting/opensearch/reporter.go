package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/bulwark/core/dispatch"
	"github.com/dmitrymomot/bulwark/core/logger"
)

const (
	defaultIndexPrefix  = "errors"
	defaultIndexTimeout = 5 * time.Second
)

// document is the indexed shape of one failure report. The @timestamp
// field name follows the convention dashboards and index lifecycle
// tooling expect for time-series data.
type document struct {
	ReportID  string    `json:"report_id"`
	Timestamp time.Time `json:"@timestamp"`
	Method    string    `json:"method"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Stack     string    `json:"stack,omitempty"`
}

// Reporter indexes dispatch failure reports into daily OpenSearch
// indices named <prefix>-YYYY.MM.DD, one JSON document per failure
// keyed by report id. Indexing failures are logged and swallowed:
// losing a report must never break the request being answered.
type Reporter struct {
	client  *opensearch.Client
	prefix  string
	timeout time.Duration
	log     *slog.Logger
}

var _ dispatch.Reporter = (*Reporter)(nil)

// Option customizes Reporter construction.
type Option func(*Reporter)

// WithLogger sets the logger receiving indexing failures. Defaults to
// slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(r *Reporter) {
		if log != nil {
			r.log = log
		}
	}
}

// NewReporter creates the OpenSearch client via New and wraps it in a
// Reporter:
//
//	var cfg opensearch.Config
//	config.MustLoad(&cfg)
//
//	reporter, err := opensearch.NewReporter(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mux.Handle("POST /orders", dispatch.Wrap(createOrder,
//		dispatch.WithReporter[*dispatch.Context](reporter),
//	))
func NewReporter(ctx context.Context, cfg Config, opts ...Option) (*Reporter, error) {
	client, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	r := &Reporter{
		client:  client,
		prefix:  cfg.IndexPrefix,
		timeout: cfg.IndexTimeout,
		log:     slog.Default(),
	}
	if r.prefix == "" {
		r.prefix = defaultIndexPrefix
	}
	if r.timeout <= 0 {
		r.timeout = defaultIndexTimeout
	}

	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Report implements dispatch.Reporter by indexing one document per
// failure. The reported failure is often itself a canceled request, so
// indexing runs detached from the request's cancellation under the
// configured timeout.
func (r *Reporter) Report(ctx context.Context, report dispatch.Report) {
	if r == nil || r.client == nil {
		return
	}

	body, err := json.Marshal(document{
		ReportID:  report.ID,
		Timestamp: report.Time,
		Method:    report.Method,
		Path:      report.Path,
		Status:    report.Status,
		Error:     errString(report.Err),
		Stack:     string(report.Stack),
	})
	if err != nil {
		r.log.ErrorContext(ctx, "failed to encode failure report",
			logger.Component("opensearch_reporter"),
			logger.ReportID(report.ID),
			logger.Error(err),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	req := opensearchapi.IndexRequest{
		Index:      r.indexName(report.Time),
		DocumentID: report.ID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		r.log.ErrorContext(ctx, "failed to index failure report",
			logger.Component("opensearch_reporter"),
			logger.ReportID(report.ID),
			logger.Error(err),
		)
		return
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		r.log.ErrorContext(ctx, "opensearch rejected failure report",
			logger.Component("opensearch_reporter"),
			logger.ReportID(report.ID),
			logger.Key("response", res.Status()),
		)
	}
}

func (r *Reporter) indexName(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return r.prefix + "-" + t.UTC().Format("2006.01.02")
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
