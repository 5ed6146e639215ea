package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"hrapi/internal/platform/metrics"
	"hrapi/internal/requestctx"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logger emits one structured line per request and feeds the metrics
// collector. A nil collector disables recording.
func Logger(logger zerolog.Logger, collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			duration := time.Since(start)
			if collector != nil {
				collector.Record(recorder.status, duration)
			}

			event := logger.Info()
			if recorder.status >= 500 {
				event = logger.Error()
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", recorder.status).
				Int64("durationMs", duration.Milliseconds()).
				Str("requestId", requestctx.GetRequestID(r.Context()))
			if principal, ok := requestctx.GetPrincipal(r.Context()); ok && principal.Subject != "" {
				event = event.Str("subject", principal.Subject)
			}
			event.Msg("request")
		})
	}
}
