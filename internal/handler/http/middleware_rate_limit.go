package http

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// rateLimiter limits requests per client IP as resolved by keyByClientIP.
func (h *Handler) rateLimiter(limit int, window time.Duration, message string) func(http.Handler) http.Handler {
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(h.keyByClientIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeErrorMessage(w, http.StatusTooManyRequests, message)
		}),
	)
}

func (h *Handler) withUploadRateLimit() func(http.Handler) http.Handler {
	return h.rateLimiter(h.securityCfg.UploadRateLimit, h.securityCfg.UploadRateWindow, MsgUploadRateLimited)
}

func (h *Handler) withAPIRateLimit() func(http.Handler) http.Handler {
	return h.rateLimiter(h.securityCfg.APIRateLimit, h.securityCfg.APIRateWindow, MsgAPIRateLimited)
}
