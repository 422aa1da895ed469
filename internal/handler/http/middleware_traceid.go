package http

import (
	"context"
	"net/http"
	"regexp"

	"github.com/MKhiriev/spotted-relay/internal/utils"
	"github.com/google/uuid"
)

const traceIDHeader = "X-Trace-ID"

// incoming trace ids are echoed into logs and headers, so only short
// token-like values are accepted
var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if !traceIDPattern.MatchString(traceID) {
			traceID = uuid.NewString()
		}

		ctx, _ = h.logger.WithTrace(context.WithValue(ctx, utils.TraceIDCtxKey, traceID), traceID)
		r = r.WithContext(ctx)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
