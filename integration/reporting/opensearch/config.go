package opensearch

import "time"

// Config holds OpenSearch reporter configuration with environment
// variable support. Multiple addresses enable client-side failover
// between cluster nodes.
type Config struct {
	Addresses    []string      `env:"OPENSEARCH_ADDRESSES,required"`
	Username     string        `env:"OPENSEARCH_USERNAME,notEmpty"`
	Password     string        `env:"OPENSEARCH_PASSWORD,notEmpty"`
	IndexPrefix  string        `env:"OPENSEARCH_INDEX_PREFIX" envDefault:"errors"`
	IndexTimeout time.Duration `env:"OPENSEARCH_INDEX_TIMEOUT" envDefault:"5s"`
	MaxRetries   int           `env:"OPENSEARCH_MAX_RETRIES" envDefault:"3"`
	DisableRetry bool          `env:"OPENSEARCH_DISABLE_RETRY" envDefault:"false"`
}
