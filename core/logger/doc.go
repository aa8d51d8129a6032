// Package logger provides structured logging utilities built on Go's
// standard slog package: a config-driven constructor and a set of
// pre-built attribute helpers for common logging scenarios.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Environment-driven configuration (level, format, source info)
//   - Attribute helpers for errors, HTTP metadata, identifiers, timing
//   - Nil-safe helpers that return the empty Attr for missing values
//
// # Basic Usage
//
// Build a logger from configuration and log with attribute helpers:
//
//	import "github.com/dmitrymomot/bulwark/core/logger"
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log := logger.New(cfg, nil)
//
//	log.Info("server starting",
//		logger.Component("server"),
//		logger.Event("startup"),
//	)
//
// Configuration is read from LOG_LEVEL (debug, info, warn, error),
// LOG_FORMAT (text, json), LOG_OUTPUT (stdout, stderr) and
// LOG_ADD_SOURCE. Unknown values fall back to info level, text format,
// and stderr. Passing a non-nil writer to New overrides LOG_OUTPUT,
// which tests use to capture records.
//
// # Attribute Helpers
//
// Helpers cover the fields the rest of the framework logs:
//
//	log.Error("request failed",
//		logger.Error(err),
//		logger.Component("dispatch"),
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.StatusCode(500),
//		logger.ReportID(reportID),
//	)
//
// Helpers taking errors, identifiers, or captured stacks return the
// empty Attr when given nil or empty input, so they can be passed
// unconditionally:
//
//	log.Info("done", logger.Error(nil)) // "error" key is omitted
//
// Group composes nested attributes:
//
//	log.Info("request",
//		logger.Group("http",
//			logger.Method("GET"),
//			logger.Path("/users/42"),
//		),
//	)
//
// # Capturing Stacks
//
// Stack records the current goroutine's stack, StackTrace records one
// captured earlier (for example by recover handling):
//
//	log.Error("panic recovered",
//		logger.Error(err),
//		logger.StackTrace(stack),
//	)
package logger
