package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withSecurityHeaders, h.withCORS())

	router.With(h.withUploadRateLimit()).Post("/upload", h.upload)

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withAPIRateLimit())
		if h.serverCfg.RequestTimeout > 0 {
			r.Use(middleware.Timeout(h.serverCfg.RequestTimeout))
		}

		r.Get("/praca", h.listWorks)
		r.With(h.withJSONBodyLimit).Post("/praca/favorites", h.checkFavorites)
		r.Get("/praca/{id}", h.getWork)
		r.Get("/praca/{id}/contact", h.getWorkContact)
		r.Get("/*", h.catchAll)
	})

	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
	router.Get("/*", h.catchAll)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorMessage(w, http.StatusNotFound, MsgRouteNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
