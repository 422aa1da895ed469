package http

import "net/http"

// withJSONBodyLimit caps JSON request bodies at the configured size.
func (h *Handler) withJSONBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > h.serverCfg.MaxJSONBodyBytes {
			writeError(w, r, "*Handler.withJSONBodyLimit", ErrJSONBodyTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, h.serverCfg.MaxJSONBodyBytes)
		next.ServeHTTP(w, r)
	})
}
