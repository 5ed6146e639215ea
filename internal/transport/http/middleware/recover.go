package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"hrapi/internal/requestctx"
	"hrapi/internal/transport/http/api"
)

// Recoverer downgrades handler panics to a generic 500. Panic detail is
// surfaced in the body only in development mode.
func Recoverer(logger zerolog.Logger, includeDetail bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().
						Str("requestId", requestctx.GetRequestID(r.Context())).
						Str("path", r.URL.Path).
						Str("panic", fmt.Sprint(rec)).
						Bytes("stack", debug.Stack()).
						Msg("handler panic")
					api.ServerError(w, fmt.Sprint(rec), includeDetail)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
