package response

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/bulwark/core/handler"
)

// Templ creates a text/html response rendering a templ component with
// 200 OK status. The component renders with the request's context, so it can
// read request-scoped values.
func Templ(component templ.Component) handler.Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus creates a text/html response rendering a templ component
// with a custom status code. Useful for error pages and other non-200
// responses.
func TemplWithStatus(component templ.Component, status int) handler.Response {
	if component == nil {
		return nil
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)

		if err := component.Render(r.Context(), w); err != nil {
			return fmt.Errorf("templ render: %w", err)
		}
		return nil
	}
}
