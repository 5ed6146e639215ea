package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	"hrapi/internal/transport/http/api"
)

// DecodeJSON decodes a request body, writing the uniform validation body on
// malformed input. A body over the configured size cap gets a 413 instead.
// Reports whether decoding succeeded.
func DecodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			api.Error(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		api.ValidationFailed(w, []api.FieldError{{Field: "body", Message: "must be a valid JSON object"}})
		return false
	}
	return true
}
