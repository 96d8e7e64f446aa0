package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/palavrapasse/import-web-api/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength caps client-supplied trace ids so they cannot bloat
	// every log line of a long import.
	maxTraceIDLength = 128
)

// withTraceID attaches a request-scoped child logger carrying "trace_id".
// The id comes from the X-Trace-ID header when present and reasonable,
// otherwise a time-ordered UUID is generated. It is echoed in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
