package response

import (
	"net/http"

	"github.com/dmitrymomot/bulwark/core/handler"
)

// Error returns a response that propagates the given error to the
// dispatcher's error handler instead of writing anything itself. Handlers use
// it to fail with a specific HTTPError:
//
//	return response.Error(response.ErrNotFound.WithDetail("no such user"))
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
