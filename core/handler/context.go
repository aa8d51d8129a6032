package handler

import (
	"context"
	"net/http"
)

// Context is the contract request contexts must satisfy. It extends the
// standard context.Context with access to the underlying request/response
// pair, path parameters, and request-scoped value storage.
//
// The dispatch package provides a default implementation; applications with
// richer per-request state implement their own and supply a factory via
// dispatch.WithContextFactory.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
