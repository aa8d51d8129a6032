// Package mongo provides production-ready MongoDB client
// initialization, health checking, and driver error classification.
//
// This package wraps the official MongoDB Go driver with
// application-level retry logic optimized for cloud deployments,
// particularly MongoDB Atlas, plus a MapError translator that turns
// driver failures into the structured HTTP errors the request
// dispatcher renders.
//
// Both New and NewWithDatabase implement retry logic to handle MongoDB
// Atlas cold starts (5-8 seconds) and brief network interruptions that
// could otherwise cause application startup failures.
//
// Basic usage:
//
//	func main() {
//		ctx := context.Background()
//
//		var cfg mongo.Config
//		config.MustLoad(&cfg)
//
//		client, err := mongo.New(ctx, cfg)
//		if err != nil {
//			log.Fatal("Failed to connect to MongoDB:", err)
//		}
//		defer client.Disconnect(ctx)
//
//		// Or get a database handle directly
//		db, err := mongo.NewWithDatabase(ctx, cfg, "myapp")
//		if err != nil {
//			log.Fatal("Failed to connect to database:", err)
//		}
//
//		collection := db.Collection("users")
//		_, err = collection.InsertOne(ctx, bson.M{"name": "Alice"})
//	}
//
// # Configuration
//
// Configuration is handled through environment variables via the
// Config struct. The default values are optimized for MongoDB Atlas:
//
//	MONGODB_URL                 (required)
//	MONGODB_CONNECT_TIMEOUT     (default: 10s)
//	MONGODB_MAX_POOL_SIZE       (default: 100)
//	MONGODB_MIN_POOL_SIZE       (default: 1)
//	MONGODB_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGODB_RETRY_WRITES        (default: true)
//	MONGODB_RETRY_READS         (default: true)
//	MONGODB_RETRY_ATTEMPTS      (default: 3)
//	MONGODB_RETRY_INTERVAL      (default: 5s)
//
// # Error Mapping
//
// MapError feeds the dispatcher's error classification so handlers can
// return raw repository errors and still produce correct status codes:
//
//	mux.Handle("GET /docs/{id}", dispatch.Wrap(getDoc,
//		dispatch.WithErrorMapper[*dispatch.Context](mongo.MapError),
//	))
//
// mongo.ErrNoDocuments becomes 404 Not Found, duplicate key writes
// become 409 Conflict, driver timeouts become 504 Gateway Timeout, and
// network errors become 503 Service Unavailable. Unrecognized errors
// pass through unchanged and surface as internal errors with a
// diagnostic trace.
//
// # Health Checking
//
// The package provides a health check function for Kubernetes probes
// or HTTP endpoints:
//
//	healthCheck := mongo.Healthcheck(client)
//
//	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
//		if err := healthCheck(r.Context()); err != nil {
//			http.Error(w, "Database unhealthy", http.StatusServiceUnavailable)
//			return
//		}
//		w.WriteHeader(http.StatusOK)
//	})
package mongo
