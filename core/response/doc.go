// Package response provides the pieces that turn handler results, and
// handler failures, into well-formed HTTP responses: response constructors
// for plain text, HTML, JSON, templ components, and WebSocket upgrades; the
// HTTPError value type; and the error handlers the dispatch package invokes
// when a handler fails.
//
// # Features
//
//   - HTTPError: immutable structured error with status, title, and detail
//   - Error handlers rendering failures as plain text, JSON, HTML, or templ pages
//   - Response constructors with proper Content-Type headers and status codes
//   - WebSocket upgrades whose handshake failures flow through error containment
//   - Decorators for headers, cookies, and cache suppression
//
// # Structured Errors
//
// HTTPError carries what a client may see (status, title, detail) and keeps
// the internal cause out of responses:
//
//	import "github.com/dmitrymomot/bulwark/core/response"
//
//	// Predefined errors with titles from http.StatusText
//	return response.Error(response.ErrNotFound)
//
//	// Custom detail for the client
//	return response.Error(response.ErrUnprocessableEntity.WithDetail("missing field x"))
//
//	// Attach the internal cause for logs; clients never see it
//	return response.Error(response.ErrConflict.WithError(err))
//
// ToHTTPError converts arbitrary errors. An HTTPError in the chain wins;
// errors exposing StatusCode() int keep their status; everything else becomes
// a bare 500 with no detail:
//
//	httpErr := response.ToHTTPError(err)
//
// # Error Handlers
//
// The three built-in error handlers convert and render in one step, each
// usable directly as the dispatcher's error handler:
//
//	dispatch.Wrap(h)                                                    // plain text by default
//	dispatch.Wrap(h, dispatch.WithErrorHandler(response.JSONErrorHandler[*dispatch.Context]))
//	dispatch.Wrap(h, dispatch.WithErrorHandler(response.HTMLErrorHandler[*dispatch.Context]))
//
// For branded error pages, TemplErrorHandler renders a templ component built
// from the converted error:
//
//	dispatch.Wrap(h, dispatch.WithErrorHandler(
//		response.TemplErrorHandler[*dispatch.Context](views.ErrorPage),
//	))
//
// # Responses
//
// Handlers return responses built from the constructors:
//
//	func getUser(ctx handler.Context) handler.Response {
//		user, err := repo.Find(ctx, ctx.Param("id"))
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(user)
//	}
//
// # Decorators
//
// Decorators wrap a response to add headers before it renders:
//
//	response.WithNoCache(response.JSON(balance))
//
//	response.WithCookie(response.NoContent(), sessionCookie)
//
//	response.WithHeaders(response.String("ok"), map[string]string{
//		"X-Request-Id": reqID,
//	})
//
// # WebSocket
//
// WebSocket responses upgrade the connection and hand it to a message
// handler. A refused handshake surfaces as an HTTPError through the regular
// error path; failures after the upgrade go to the error callback because the
// connection no longer speaks plain HTTP:
//
//	func ws(ctx handler.Context) handler.Response {
//		return response.WebSocket(hub.Serve,
//			response.WithWSOriginCheck(sameOrigin),
//			response.WithWSErrorCallback(func(ctx context.Context, err error) {
//				slog.ErrorContext(ctx, "websocket session failed", "error", err)
//			}),
//		)
//	}
package response
