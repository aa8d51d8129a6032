// Package opensearch indexes dispatch failure reports into OpenSearch
// for log-style search and dashboarding.
//
// This package wraps the official OpenSearch Go client behind the
// dispatch.Reporter interface. The dispatcher fans a report out for
// every contained failure that resolved to status 500; the reporter
// writes each one as a JSON document into a daily index named
// <prefix>-YYYY.MM.DD, keyed by report id so documents stay correlated
// with the X-Error-Id header the client received.
//
// # Configuration
//
// All configuration is handled through the Config struct with
// environment variable mapping:
//
//	type Config struct {
//		Addresses    []string      `env:"OPENSEARCH_ADDRESSES,required"`
//		Username     string        `env:"OPENSEARCH_USERNAME,notEmpty"`
//		Password     string        `env:"OPENSEARCH_PASSWORD,notEmpty"`
//		IndexPrefix  string        `env:"OPENSEARCH_INDEX_PREFIX" envDefault:"errors"`
//		IndexTimeout time.Duration `env:"OPENSEARCH_INDEX_TIMEOUT" envDefault:"5s"`
//		MaxRetries   int           `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3"`
//		DisableRetry bool          `env:"OPENSEARCH_DISABLE_RETRY" envDefault:"false"`
//	}
//
// The configuration supports multiple cluster addresses for high
// availability; the client fails over between them automatically.
//
// # Usage Example
//
//	ctx := context.Background()
//
//	var cfg opensearch.Config
//	config.MustLoad(&cfg)
//
//	reporter, err := opensearch.NewReporter(ctx, cfg)
//	if err != nil {
//		log.Fatal("Failed to connect to OpenSearch:", err)
//	}
//
//	mux := http.NewServeMux()
//	mux.Handle("POST /orders", dispatch.Wrap(createOrder,
//		dispatch.WithErrorHandler(response.JSONErrorHandler[*dispatch.Context]),
//		dispatch.WithReporter[*dispatch.Context](reporter),
//	))
//
// New is also usable on its own when the application needs a verified
// *opensearch.Client for other workloads; NewReporter rides on it.
//
// # Document Shape
//
// Each report indexes as:
//
//	{
//	  "report_id": "9f2b6c1e-...",
//	  "@timestamp": "2025-08-24T10:32:11Z",
//	  "method": "POST",
//	  "path": "/orders",
//	  "status": 500,
//	  "error": "pq: connection refused",
//	  "stack": "goroutine 1 [running]: ..."
//	}
//
// The @timestamp field and the daily index layout fit the default
// expectations of OpenSearch Dashboards index patterns and ISM
// retention policies.
//
// # Delivery Semantics
//
// Report runs synchronously on the request goroutine but detaches from
// the request's cancellation, since the failure being reported is often
// a canceled request itself. Each index call is bounded by
// IndexTimeout. Indexing failures are logged through the configured
// slog logger and never propagate.
//
// # Health Checking
//
// The package provides a health check function suitable for readiness
// probes or HTTP health endpoints:
//
//	client, err := opensearch.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	healthCheck := opensearch.Healthcheck(client)
//
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := healthCheck(r.Context()); err != nil {
//			http.Error(w, "Search cluster unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
package opensearch
