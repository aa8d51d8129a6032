// Package handler defines the contract between application handlers and the
// dispatch layer: type-safe handler functions, deferred response rendering,
// error handling, and composable middleware.
//
// # Core Types
//
// Four function types make up the contract:
//
//	// Response renders an HTTP response
//	type Response func(w http.ResponseWriter, r *http.Request) error
//
//	// Type-safe handler with custom context
//	type HandlerFunc[C Context] func(ctx C) Response
//
//	// Converts errors into client-facing responses
//	type ErrorHandler[C Context] func(ctx C, err error)
//
//	// Wraps handlers for cross-cutting concerns
//	type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
//
// A handler does not write to the network itself; it returns a Response that
// the dispatcher renders. Anything that goes wrong during handling or
// rendering, including a panic or a nil Response, is routed to the configured
// ErrorHandler, so the client always receives exactly one well-formed
// response.
//
// # Context Interface
//
// Context extends the standard context.Context with HTTP-specific accessors:
//
//	type Context interface {
//		context.Context
//		Request() *http.Request
//		ResponseWriter() http.ResponseWriter
//		Param(key string) string
//		SetValue(key, val any)
//	}
//
// # Writing Handlers
//
// Handlers take the context and return a Response, typically built from the
// response package:
//
//	func getUser(ctx handler.Context) handler.Response {
//		user, err := repo.Find(ctx, ctx.Param("id"))
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(user)
//	}
//
// Register them with any router via dispatch.Wrap:
//
//	mux := http.NewServeMux()
//	mux.Handle("GET /users/{id}", dispatch.Wrap(getUser))
//
// # Custom Contexts
//
// Applications that carry per-request state beyond the request itself define
// their own context type:
//
//	type AppContext struct {
//		handler.Context
//		Tenant string
//	}
//
//	func me(ctx *AppContext) handler.Response {
//		return response.String("tenant: " + ctx.Tenant)
//	}
//
//	mux.Handle("GET /me", dispatch.Wrap(me,
//		dispatch.WithContextFactory(func(w http.ResponseWriter, r *http.Request) *AppContext {
//			return &AppContext{Context: dispatch.NewContext(w, r), Tenant: tenantFrom(r)}
//		}),
//	))
//
// # Middleware
//
// Middleware composes around handlers and shares their context type:
//
//	func RequireTenant() handler.Middleware[*AppContext] {
//		return func(next handler.HandlerFunc[*AppContext]) handler.HandlerFunc[*AppContext] {
//			return func(ctx *AppContext) handler.Response {
//				if ctx.Tenant == "" {
//					return response.Error(response.ErrUnauthorized)
//				}
//				return next(ctx)
//			}
//		}
//	}
package handler
