package response

import (
	"errors"
	"html"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/bulwark/core/handler"
)

// statusCode is implemented by errors that carry their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// ToHTTPError converts any error into an HTTPError. An HTTPError anywhere in
// the chain is extracted as-is. Otherwise the status comes from the error's
// StatusCode method when it names a known HTTP status, else 500; the original
// error is attached as the cause and the detail stays empty so internals
// never reach the client.
func ToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		if s := sc.StatusCode(); http.StatusText(s) != "" {
			status = s
		}
	}

	return NewHTTPError(status).WithError(err)
}

// ErrorHandler renders errors as plain text: the title, then the detail on
// its own line when present. It is the default error handler of the dispatch
// package.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := ToHTTPError(err)
	body := httpErr.Title
	if httpErr.Detail != "" {
		body += "\n" + httpErr.Detail
	}
	Render(ctx, StringWithStatus(body, httpErr.Status))
}

// JSONErrorHandler renders errors as a JSON object with "error", "status",
// and, when detail is present, "detail" keys.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := ToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}

// HTMLErrorHandler renders errors as a minimal HTML fragment: the title in an
// <h1> element, followed by the detail in a <p> element when present. Title
// and detail are HTML-escaped.
func HTMLErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := ToHTTPError(err)
	body := "<h1>" + html.EscapeString(httpErr.Title) + "</h1>"
	if httpErr.Detail != "" {
		body += "\n<p>" + html.EscapeString(httpErr.Detail) + "</p>"
	}
	Render(ctx, HTMLWithStatus(body, httpErr.Status))
}

// TemplErrorHandler builds an error handler that renders a templ error page.
// The page function receives the converted HTTPError and returns the
// component to render, which lets applications ship branded error pages while
// keeping the containment semantics of the built-in handlers.
func TemplErrorHandler[C handler.Context](page func(e HTTPError) templ.Component) handler.ErrorHandler[C] {
	return func(ctx C, err error) {
		httpErr := ToHTTPError(err)
		Render(ctx, TemplWithStatus(page(httpErr), httpErr.Status))
	}
}
