package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "relay.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

const fullRelayConfig = `{
	"app": {"env": "production", "log_level": "info"},
	"server": {"http_address": "127.0.0.1:8080", "request_timeout": "30s", "shutdown_timeout": 5000000000},
	"upload": {
		"temp_dir": "/var/spool/spotted",
		"max_files": 2,
		"allowed_senders": ["Od Spottera"],
		"sweep_interval": "5m",
		"stale_after": "30m"
	},
	"storage": {
		"driver": "postgres",
		"mongo": {"host": "db.local", "collection": "praca", "connect_timeout": "3s"},
		"postgres": {"dsn": "postgres://relay@localhost/spotted", "auto_migrate": true}
	},
	"mail": {
		"driver": "http",
		"to": "redakcja@example.com",
		"smtp": {"host": "smtp.local", "port": 25, "username": "u", "password": "p"},
		"http": {"endpoint": "https://mail.example.com/v1/send", "timeout": "10s"}
	},
	"security": {"cors_origins": ["https://spotted.example"], "trust_proxy": "2", "api_rate_window": "10m"}
}`

func TestParseJSON_FullFile(t *testing.T) {
	cfg, err := parseJSON(writeConfigFile(t, fullRelayConfig))
	require.NoError(t, err)

	assert.Equal(t, App{Env: EnvProduction, LogLevel: "info"}, cfg.App)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout, "integer nanoseconds")

	assert.Equal(t, "/var/spool/spotted", cfg.Upload.TempDir)
	assert.Equal(t, 2, cfg.Upload.MaxFiles)
	assert.Equal(t, []string{"Od Spottera"}, cfg.Upload.AllowedSenders)
	assert.Equal(t, 5*time.Minute, cfg.Upload.SweepInterval)
	assert.Equal(t, 30*time.Minute, cfg.Upload.StaleAfter)

	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, "db.local", cfg.Storage.Mongo.Host)
	assert.Equal(t, 3*time.Second, cfg.Storage.Mongo.ConnectTimeout)
	assert.Equal(t, Postgres{DSN: "postgres://relay@localhost/spotted", AutoMigrate: true}, cfg.Storage.Postgres)

	assert.Equal(t, MailDriverHTTP, cfg.Mail.Driver)
	assert.Equal(t, "redakcja@example.com", cfg.Mail.Recipient())
	assert.Equal(t, SMTP{Host: "smtp.local", Port: 25, Username: "u", Password: "p"}, cfg.Mail.SMTP)
	assert.Equal(t, 10*time.Second, cfg.Mail.HTTP.Timeout)

	assert.Equal(t, []string{"https://spotted.example"}, cfg.Security.CORSOrigins)
	assert.Equal(t, "2", cfg.Security.TrustProxy)
	assert.Equal(t, 10*time.Minute, cfg.Security.APIRateWindow)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"malformed", `{ not json }`, "error decoding json configs"},
		{"bad duration string", `{"server": {"request_timeout": "soon"}}`, "invalid duration"},
		{"duration of wrong type", `{"upload": {"stale_after": true}}`, "duration must be"},
		{"unknown key", `{"upload": {"max_filez": 4}}`, "max_filez"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseJSON(writeConfigFile(t, tt.body))
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseJSON_MissingFile(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseJSON_EmptyObjectLeavesZeroConfig(t *testing.T) {
	cfg, err := parseJSON(writeConfigFile(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_JSONRoundTrip(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))

	var d Duration
	require.NoError(t, d.UnmarshalJSON(b))
	assert.Equal(t, 90*time.Second, d.std())
}
