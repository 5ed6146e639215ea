package shared

import (
	"net/http"
	"net/mail"
	"strings"
	"time"

	"hrapi/internal/transport/http/api"
)

// Validator accumulates field-level issues for a single request. Handlers
// run every check, then call Reject once: any issue fails the whole request
// before a lookup or mutation happens.
type Validator struct {
	issues []api.FieldError
}

func NewValidator() *Validator {
	return &Validator{issues: make([]api.FieldError, 0, 4)}
}

func (v *Validator) Add(field, message string) {
	if v == nil || strings.TrimSpace(message) == "" {
		return
	}
	v.issues = append(v.issues, api.FieldError{
		Field:   strings.TrimSpace(field),
		Message: strings.TrimSpace(message),
	})
}

func (v *Validator) Required(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, message)
	}
}

// Enum checks membership when a value is present; empty values pass so the
// same check serves required and optional fields.
func (v *Validator) Enum(field, value string, allowed []string, message string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	v.Add(field, message)
}

func (v *Validator) Email(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, message)
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, message)
	}
}

// OptionalEmail validates format only when a value is present.
func (v *Validator) OptionalEmail(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, message)
	}
}

func (v *Validator) Date(field, raw, message string) (time.Time, bool) {
	parsed, err := ParseDate(strings.TrimSpace(raw))
	if err != nil || parsed.IsZero() {
		v.Add(field, message)
		return time.Time{}, false
	}
	return parsed, true
}

func (v *Validator) IntMin(field string, value, min int, message string) {
	if value < min {
		v.Add(field, message)
	}
}

func (v *Validator) IntRange(field string, value, min, max int, message string) {
	if value < min || value > max {
		v.Add(field, message)
	}
}

// FloatRange validates a bounded optional numeric; nil passes.
func (v *Validator) FloatRange(field string, value *float64, min, max float64, message string) {
	if value == nil {
		return
	}
	if *value < min || *value > max {
		v.Add(field, message)
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []api.FieldError {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]api.FieldError, len(v.issues))
	copy(out, v.issues)
	return out
}

// Reject writes the uniform 400 body and reports whether the request was
// short-circuited.
func (v *Validator) Reject(w http.ResponseWriter) bool {
	if !v.HasIssues() {
		return false
	}
	api.ValidationFailed(w, v.Issues())
	return true
}
