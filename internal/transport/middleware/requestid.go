package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/HaniMe9/abe-garage-hani/pkg/logger"
)

// RequestID assigns each request a trace id, honoring one supplied by the
// caller, and threads it through the request-scoped logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.WithTraceID(r.Context(), traceID)
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
