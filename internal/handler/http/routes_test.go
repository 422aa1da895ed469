package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_RegistersRoutes(t *testing.T) {
	router := newTestHandlerWith(t, newTestServices()).Init()
	require.NotNil(t, router)

	registered := map[string]bool{}
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	for _, want := range []string{
		"POST /upload",
		"GET /api/praca",
		"POST /api/praca/favorites",
		"GET /api/praca/{id}",
		"GET /api/praca/{id}/contact",
		"GET /healthz",
		"GET /version",
		"GET /metrics",
		"GET /*",
	} {
		assert.True(t, registered[want], "route %q is not registered", want)
	}
}

func TestInit_FavoritesIsNotAnID(t *testing.T) {
	h := newTestHandlerWith(t, newTestServices())

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/api/praca/favorites", nil))

	assert.Equal(t, http.StatusOK, rr.Code, "mock GetByID accepts any id")

	rr = serve(h, httptest.NewRequest(http.MethodPost, "/api/praca/favorites", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, MsgInvalidBody, decodeError(t, rr))
}

func TestInit_UnknownNonGETIsJSON404(t *testing.T) {
	h := newTestHandlerWith(t, newTestServices())

	rr := serve(h, httptest.NewRequest(http.MethodPost, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, MsgRouteNotFound, decodeError(t, rr))
}

func TestInit_MetricsEndpoint(t *testing.T) {
	h := newTestHandlerWith(t, newTestServices())
	router := h.Init()

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `spotted_relay_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestInit_RecoversFromPanics(t *testing.T) {
	svcs := newTestServices()
	svcs.AppInfoService = nil
	h := newTestHandlerWith(t, svcs)

	rr := serve(h, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestInit_UploadLimitIgnoresForgedForwardedFor(t *testing.T) {
	h := newTestHandlerWith(t, newTestServices(), func(cfg *config.StructuredConfig) {
		cfg.App.Env = config.EnvProduction
		cfg.Security.TrustProxy = "1"
	})
	router := h.Init()
	limit := h.securityCfg.UploadRateLimit

	limited := 0
	for i := 0; i < limit+12; i++ {
		req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(""))
		req.RemoteAddr = "10.0.0.1:40000"
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("198.51.100.%d, 203.0.113.7", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("192.0.2.%d", i))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code == http.StatusTooManyRequests {
			limited++
		}
	}

	assert.Equal(t, 12, limited)

	// another client behind the same proxy has its own budget
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(""))
	req.RemoteAddr = "10.0.0.1:40001"
	req.Header.Set("X-Forwarded-For", "203.0.113.8")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.NotEqual(t, http.StatusTooManyRequests, rr.Code)
}
