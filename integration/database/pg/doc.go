// Package pg provides production-ready PostgreSQL connection management
// and driver error classification for web applications.
//
// This package wraps the pgx PostgreSQL driver with application-level
// retry logic, connection pool tuning, and a MapError translator that
// turns driver failures into the structured HTTP errors the request
// dispatcher renders.
//
// # Key Features
//
//   - Connect: Creates a connection pool with retry logic and
//     connection verification
//   - Healthcheck: Returns a health check function for monitoring
//     connectivity
//   - MapError: Translates PostgreSQL errors into structured HTTP
//     errors for the dispatcher
//   - Classification helpers for common PostgreSQL error patterns
//
// # Configuration
//
// All configuration is handled through the Config struct with
// environment variable mapping:
//
//	type Config struct {
//		ConnectionString  string        `env:"PG_CONN_URL,required"`
//		MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//		MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
//		HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
//		MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
//		MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
//		RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
//	}
//
// # Usage Example
//
//	func main() {
//		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
//		defer cancel()
//
//		var cfg pg.Config
//		config.MustLoad(&cfg)
//
//		pool, err := pg.Connect(ctx, cfg)
//		if err != nil {
//			log.Fatal("Failed to connect to PostgreSQL:", err)
//		}
//		defer pool.Close()
//
//		var name string
//		err = pool.QueryRow(ctx, "SELECT 'Hello, PostgreSQL!'").Scan(&name)
//		if err != nil {
//			log.Fatal("Query failed:", err)
//		}
//	}
//
// # Error Mapping
//
// MapError feeds the dispatcher's error classification so handlers can
// return raw repository errors and still produce correct status codes:
//
//	mux.Handle("GET /users/{id}", dispatch.Wrap(getUser,
//		dispatch.WithErrorMapper[*dispatch.Context](pg.MapError),
//	))
//
// The mapping covers the common cases:
//
//   - pgx.ErrNoRows becomes 404 Not Found
//   - Unique and foreign key violations become 409 Conflict
//   - Not-null and check violations become 422 Unprocessable Entity
//   - Data exceptions (SQLSTATE class 22) become 400 Bad Request
//   - Connection and resource errors (classes 08, 53) become
//     503 Service Unavailable
//   - Query cancellation and deadline expiry become 504 Gateway Timeout
//
// Unrecognized errors pass through unchanged and surface as internal
// errors with a diagnostic trace.
//
// # Health Checking
//
// The health check performs a lightweight ping suitable for Kubernetes
// readiness probes or HTTP health endpoints:
//
//	healthCheck := pg.Healthcheck(pool)
//
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := healthCheck(r.Context()); err != nil {
//			http.Error(w, "Database unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
package pg
