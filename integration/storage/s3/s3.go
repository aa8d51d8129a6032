package s3

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3aws "github.com/aws/aws-sdk-go-v2/service/s3"
)

// Option defines a function that customizes client construction.
type Option func(*options)

type options struct {
	httpClient    *http.Client
	configOptions []func(*awsconfig.LoadOptions) error
	clientOptions []func(*s3aws.Options)
}

// WithHTTPClient sets a custom HTTP client for S3 requests.
// Useful for custom timeout, proxy, or TLS configuration.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfigOption adds a custom AWS config option.
func WithConfigOption(option func(*awsconfig.LoadOptions) error) Option {
	return func(o *options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithClientOption adds a custom S3 client option.
func WithClientOption(option func(*s3aws.Options)) Option {
	return func(o *options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// New creates an S3 client for AWS or S3-compatible services. Static
// credentials from the config take precedence; otherwise the default
// AWS credential chain (IAM roles, env vars) applies.
func New(ctx context.Context, cfg Config, opts ...Option) (*s3aws.Client, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	awsOptions := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}

	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions,
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretKey,
				"",
			)),
		)
	}

	if o.httpClient != nil {
		awsOptions = append(awsOptions, awsconfig.WithHTTPClient(o.httpClient))
	}

	awsOptions = append(awsOptions, o.configOptions...)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadAWSConfig, err)
	}

	client := s3aws.NewFromConfig(awsCfg, func(so *s3aws.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.ForcePathStyle

		for _, opt := range o.clientOptions {
			opt(so)
		}
	})

	return client, nil
}

// Healthcheck returns a health check function that verifies bucket
// access with a HeadBucket call. Suitable for readiness probes.
func Healthcheck(client *s3aws.Client, bucket string) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}
		_, err := client.HeadBucket(ctx, &s3aws.HeadBucketInput{
			Bucket: aws.String(bucket),
		})
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// ObjectURL returns the public URL for an object key, picking the
// format the configuration implies:
//   - Custom BaseURL: uses the provided base URL (CDN)
//   - S3-compatible (Endpoint set): path-style or virtual-hosted-style
//     based on ForcePathStyle
//   - AWS S3: standard AWS URL format
func ObjectURL(cfg Config, key string) string {
	key = strings.TrimPrefix(key, "/")

	if cfg.BaseURL != "" {
		return strings.TrimSuffix(cfg.BaseURL, "/") + "/" + key
	}

	if cfg.Endpoint != "" {
		endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
		protocol := "https://"
		if after, ok := strings.CutPrefix(endpoint, "http://"); ok {
			protocol = "http://"
			endpoint = after
		} else if after, ok := strings.CutPrefix(endpoint, "https://"); ok {
			endpoint = after
		}

		if cfg.ForcePathStyle {
			return fmt.Sprintf("%s%s/%s/%s", protocol, endpoint, cfg.Bucket, key)
		}
		return fmt.Sprintf("%s%s.%s/%s", protocol, cfg.Bucket, endpoint, key)
	}

	if cfg.ForcePathStyle {
		return fmt.Sprintf("https://s3.%s.amazonaws.com/%s/%s", cfg.Region, cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", cfg.Bucket, cfg.Region, key)
}
