package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeRequest creates a test request with a buffer-backed logger in context,
// the same way withTraceID attaches one.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		handlerStatus   int
		handlerResponse string
		wantLog         []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/healthz",
			handlerStatus:   http.StatusOK,
			handlerResponse: "OK",
			wantLog:         []string{`"method":"GET"`, `"uri":"/healthz"`, `"status":200`, `"duration":`, `"size":2`},
		},
		{
			name:          "POST 429 no body",
			method:        http.MethodPost,
			path:          "/upload",
			handlerStatus: http.StatusTooManyRequests,
			wantLog:       []string{`"method":"POST"`, `"uri":"/upload"`, `"status":429`, `"size":0`},
		},
		{
			name:            "query preserved",
			method:          http.MethodGet,
			path:            "/api/praca?limit=5",
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			wantLog:         []string{`"uri":"/api/praca?limit=5"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBareHandler()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			h.withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &buf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, want := range tt.wantLog {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	var buf bytes.Buffer
	h := newBareHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h.withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/", &buf))

	assert.Contains(t, buf.String(), `"status":200`)
}

func TestWithLogging_RecordsRoutePattern(t *testing.T) {
	m := metrics.New()
	h := &Handler{logger: logger.Nop(), metrics: m}

	router := chi.NewRouter()
	router.Use(h.withLogging)
	router.Get("/api/praca/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/praca/65f0c0ffee0000000000000a", nil))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `spotted_relay_http_requests_total{method="GET",route="/api/praca/{id}",status="404"} 1`)
	assert.NotContains(t, rr.Body.String(), "65f0c0ffee0000000000000a")
}

func TestRoutePattern_WithoutRouter(t *testing.T) {
	assert.Equal(t, unmatchedRoute, routePattern(httptest.NewRequest(http.MethodGet, "/x", nil)))
}
