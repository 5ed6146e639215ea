package shared

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hrapi/internal/transport/http/api"
)

// PathID parses a positive integer path parameter, writing the uniform
// validation body on failure.
func PathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		api.ValidationFailed(w, []api.FieldError{{Field: name, Message: "must be a positive integer"}})
		return 0, false
	}
	return id, true
}
