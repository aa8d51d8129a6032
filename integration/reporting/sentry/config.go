package sentry

import "time"

// Config holds Sentry reporter configuration with environment variable
// support. Reporting is disabled when Enabled is false or DSN is empty;
// New then returns a no-op reporter so call sites need no conditionals.
type Config struct {
	DSN          string        `env:"SENTRY_DSN"`
	Environment  string        `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release      string        `env:"SENTRY_RELEASE"`
	Debug        bool          `env:"SENTRY_DEBUG" envDefault:"false"`
	SampleRate   float64       `env:"SENTRY_SAMPLE_RATE" envDefault:"1.0"`
	FlushTimeout time.Duration `env:"SENTRY_FLUSH_TIMEOUT" envDefault:"2s"`
	Enabled      bool          `env:"SENTRY_ENABLED" envDefault:"true"`
}
