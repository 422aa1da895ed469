// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/utils"
	"github.com/MKhiriev/spotted-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMailConfig(endpoint string) config.Mail {
	return config.Mail{
		Driver:  config.MailDriverHTTP,
		From:    "relay@spottedlezajsk.pl",
		To:      "owner@spottedlezajsk.pl",
		Subject: "Nowa wiadomość APP",
		HTTP:    config.MailHTTP{Endpoint: endpoint, Token: "secret-token"},
	}
}

// newTestRelay creates an httpMailRelay pointed at the test server
func newTestRelay(t *testing.T, serverURL string) *httpMailRelay {
	t.Helper()
	r, err := NewHTTPMailRelay(newTestMailConfig(serverURL+"/v1/send"), logger.Nop())
	require.NoError(t, err)
	return r.(*httpMailRelay)
}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

// ── Deliver ──────────────────────────────────────────────────────────────────

func TestHTTPDeliver_Success(t *testing.T) {
	content := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	path := writeTempFile(t, "1700000000000-abc-kot.png", content)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/send", r.URL.Path)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "relay@spottedlezajsk.pl", r.FormValue("from"))
		assert.Equal(t, "owner@spottedlezajsk.pl", r.FormValue("to"))
		assert.Equal(t, "Nowa wiadomość APP", r.FormValue("subject"))
		assert.Equal(t, "<h1>Od Spottera:</h1><p>a &lt;b&gt; c</p>", r.FormValue("html"))

		file, header, err := r.FormFile("attachment")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "kot.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		got, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, got)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	relay := newTestRelay(t, srv.URL)
	err := relay.Deliver(context.Background(), "Od Spottera", "a <b> c", []models.UploadedFile{
		{OriginalName: "kot.png", Path: path, Size: int64(len(content)), MIMEType: "image/png"},
	})

	require.NoError(t, err)
}

func TestHTTPDeliver_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, ErrBadRequest},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"rate limited", http.StatusTooManyRequests, ErrTooManyRequests},
		{"internal", http.StatusInternalServerError, ErrInternalServerError},
		{"unavailable", http.StatusServiceUnavailable, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("nope"))
			}))
			defer srv.Close()

			err := newTestRelay(t, srv.URL).Deliver(context.Background(), "Od Spottera", "hello", nil)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSendingMessage)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHTTPDeliver_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestRelay(t, srv.URL).Deliver(context.Background(), "Od Spottera", "hello", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestHTTPDeliver_MissingFile(t *testing.T) {
	relay := newTestRelay(t, "http://127.0.0.1:1")

	err := relay.Deliver(context.Background(), "Od Spottera", "hello", []models.UploadedFile{
		{OriginalName: "gone.jpg", Path: filepath.Join(t.TempDir(), "gone.jpg"), MIMEType: "image/jpeg"},
	})

	assert.ErrorIs(t, err, ErrBuildingMessage)
}

func TestHTTPDeliver_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := newTestRelay(t, url).Deliver(context.Background(), "Od Spottera", "hello", nil)

	assert.ErrorIs(t, err, ErrSendingMessage)
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeEndpoint(t *testing.T) {
	got, err := normalizeEndpoint("  mail.example.com/send ")
	require.NoError(t, err)
	assert.Equal(t, "https://mail.example.com/send", got)

	got, err = normalizeEndpoint("http://localhost:8025/api")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8025/api", got)

	_, err = normalizeEndpoint("")
	assert.Error(t, err)

	_, err = normalizeEndpoint("http://")
	assert.Error(t, err)
}

func TestNewMailRelay_SelectsDriver(t *testing.T) {
	cfg := newTestMailConfig("https://mail.example.com/send")

	relay, err := NewMailRelay(cfg, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpMailRelay{}, relay)

	cfg.Driver = config.MailDriverSMTP
	cfg.SMTP = config.SMTP{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p"}
	relay, err = NewMailRelay(cfg, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &smtpMailRelay{}, relay)

	cfg.Driver = "pigeon"
	_, err = NewMailRelay(cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownMailDriver)
}

func TestHTTPDeliver_ForwardsTraceID(t *testing.T) {
	var gotTraceID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = r.Header.Get("X-Trace-ID")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx := context.WithValue(context.Background(), utils.TraceIDCtxKey, "trace-42")
	require.NoError(t, newTestRelay(t, srv.URL).Deliver(ctx, "Od Spottera", "abc", nil))

	assert.Equal(t, "trace-42", gotTraceID)
}
