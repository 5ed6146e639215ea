package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn().Err(err).Msg("write json failed")
	}
}

// Error writes the single-message error body used for not-found and
// business-rule failures.
func Error(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func BusinessRule(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// ValidationFailed writes the uniform field-error body shared by every
// resource family.
func ValidationFailed(w http.ResponseWriter, issues []FieldError) {
	WriteJSON(w, http.StatusBadRequest, map[string]any{"errors": issues})
}

func ServerError(w http.ResponseWriter, detail string, includeDetail bool) {
	body := map[string]string{"error": "Internal Server Error"}
	if includeDetail && detail != "" {
		body["message"] = detail
	}
	WriteJSON(w, http.StatusInternalServerError, body)
}
