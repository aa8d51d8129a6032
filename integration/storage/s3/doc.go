// Package s3 provides S3 client construction, health checking, and API
// error classification for Amazon S3 and S3-compatible services.
//
// This package wraps the AWS SDK v2 S3 client with environment-driven
// configuration and a MapError translator that turns S3 API failures
// into the structured HTTP errors the request dispatcher renders. It
// supports AWS S3 as well as MinIO, Wasabi, and other S3-compatible
// services via custom endpoints and path-style addressing.
//
// # Configuration
//
// All configuration is handled through the Config struct with
// environment variable mapping:
//
//	type Config struct {
//		Bucket         string `env:"S3_BUCKET,required"`
//		Region         string `env:"S3_REGION,required"`
//		AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`
//		SecretKey      string `env:"S3_SECRET_KEY"`
//		Endpoint       string `env:"S3_ENDPOINT"`
//		BaseURL        string `env:"S3_BASE_URL"`
//		ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"`
//	}
//
// When AccessKeyID and SecretKey are empty the default AWS credential
// chain applies (IAM roles, environment variables, shared config).
//
// # Usage Example
//
//	ctx := context.Background()
//
//	var cfg s3.Config
//	config.MustLoad(&cfg)
//
//	client, err := s3.New(ctx, cfg)
//	if err != nil {
//		log.Fatal("Failed to create S3 client:", err)
//	}
//
//	_, err = client.PutObject(ctx, &awss3.PutObjectInput{
//		Bucket: aws.String(cfg.Bucket),
//		Key:    aws.String("reports/2025/08.csv"),
//		Body:   file,
//	})
//
// # Error Mapping
//
// MapError feeds the dispatcher's error classification so handlers can
// return raw storage errors and still produce correct status codes:
//
//	mux.Handle("GET /files/{key}", dispatch.Wrap(getFile,
//		dispatch.WithErrorMapper[*dispatch.Context](s3.MapError),
//	))
//
// The mapping covers the common cases:
//
//   - NoSuchKey, NoSuchBucket and NotFound become 404 Not Found
//   - AccessDenied becomes 403 Forbidden
//   - PreconditionFailed becomes 412 Precondition Failed
//   - EntityTooLarge becomes 413 Request Entity Too Large
//   - RequestTimeout becomes 408 Request Timeout
//   - SlowDown and ServiceUnavailable become 503 Service Unavailable
//   - Deadline expiry becomes 504 Gateway Timeout
//
// Unrecognized errors pass through unchanged and surface as internal
// errors with a diagnostic trace.
//
// # Public URLs
//
// ObjectURL generates the public URL for an object key based on the
// configuration:
//
//	cfg := s3.Config{Bucket: "assets", Region: "us-east-1"}
//	s3.ObjectURL(cfg, "logo.png")
//	// https://assets.s3.us-east-1.amazonaws.com/logo.png
//
//	cfg.BaseURL = "https://cdn.example.com"
//	s3.ObjectURL(cfg, "logo.png")
//	// https://cdn.example.com/logo.png
package s3
