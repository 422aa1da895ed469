// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// spotted-relay service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the deployment environment
	// and log level.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Upload holds the limits enforced by the contact-form upload pipeline.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Storage holds configuration for the job-posting catalog back ends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Mail holds configuration for the mail relay that delivers uploads.
	Mail Mail `envPrefix:"MAIL_"`

	// Security holds CORS, proxy and rate-limit settings.
	Security Security `envPrefix:"SECURITY_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Env is the deployment environment name; "production" enables
	// production behaviour (no debug upload logs, trusted proxy by default).
	Env string `env:"ENV"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL"`
}

// IsProduction reports whether the service runs in production mode.
func (a App) IsProduction() bool {
	return a.Env == EnvProduction
}

// Server holds HTTP listener settings.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown of the listener and of the
	// storage connections.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxJSONBodyBytes caps JSON request bodies of the catalog API.
	MaxJSONBodyBytes int64 `env:"MAX_JSON_BODY_BYTES"`
}

// Upload holds limits of the contact-form upload.
type Upload struct {
	// TempDir is where the transport layer writes incoming files.
	TempDir string `env:"TEMP_DIR"`

	MaxFiles     int   `env:"MAX_FILES"`
	MaxFileSize  int64 `env:"MAX_FILE_SIZE"`
	MaxTotalSize int64 `env:"MAX_TOTAL_SIZE"`

	MinMessageLength int `env:"MIN_MESSAGE_LENGTH"`
	MaxMessageLength int `env:"MAX_MESSAGE_LENGTH"`

	AllowedSenders    []string `env:"ALLOWED_SENDERS" envSeparator:","`
	AllowedMIMETypes  []string `env:"ALLOWED_MIME_TYPES" envSeparator:","`
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envSeparator:","`

	// SweepInterval is how often the temp directory is scanned for files
	// older than StaleAfter. Zero disables the sweeper.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
	StaleAfter    time.Duration `env:"STALE_AFTER"`
}

// MaxBodySize returns the hard ceiling for a whole multipart upload body:
// the aggregate file limit plus room for the text fields and part headers.
func (u Upload) MaxBodySize() int64 {
	return u.MaxTotalSize + int64(u.MaxFiles)*u.MaxFileSize + multipartOverheadBytes
}

// Storage groups the configuration for the catalog back ends.
type Storage struct {
	// Driver selects the catalog back end: "mongo" or "postgres".
	Driver string `env:"DRIVER"`

	Mongo    Mongo    `envPrefix:"MONGO_"`
	Postgres Postgres `envPrefix:"POSTGRES_"`
}

// Mongo holds MongoDB connection settings. URI takes precedence; otherwise
// the URI is assembled from the remaining fields.
type Mongo struct {
	URI        string `env:"URI"`
	Protocol   string `env:"PROTOCOL"`
	Host       string `env:"HOST"`
	Port       int    `env:"PORT"`
	User       string `env:"USER"`
	Password   string `env:"PASSWORD"`
	DBName     string `env:"DB_NAME"`
	Collection string `env:"COLLECTION"`

	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Postgres holds the relational catalog connection settings.
type Postgres struct {
	DSN string `env:"DATABASE_URI"`

	// AutoMigrate applies embedded schema migrations on startup.
	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

// Mail holds the mail relay settings.
type Mail struct {
	// Driver selects the relay: "smtp" or "http".
	Driver string `env:"DRIVER"`

	// From and To default to the SMTP username when empty.
	From    string `env:"FROM"`
	To      string `env:"TO"`
	Subject string `env:"SUBJECT"`

	SMTP SMTP     `envPrefix:"SMTP_"`
	HTTP MailHTTP `envPrefix:"HTTP_"`
}

// Sender returns the envelope sender address.
func (m Mail) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.SMTP.Username
}

// Recipient returns the address every upload is delivered to.
func (m Mail) Recipient() string {
	if m.To != "" {
		return m.To
	}
	return m.Sender()
}

// SMTP holds SMTP relay credentials.
type SMTP struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

// MailHTTP holds settings of an HTTP mail API relay.
type MailHTTP struct {
	Endpoint string        `env:"ENDPOINT"`
	Token    string        `env:"TOKEN"`
	Timeout  time.Duration `env:"TIMEOUT"`
}

// Security holds CORS, proxy and rate-limit settings.
type Security struct {
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// TrustProxy is "true", "false" or a number of trusted hops. Empty means
	// one hop in production and none otherwise.
	TrustProxy string `env:"TRUST_PROXY"`

	UploadRateLimit  int           `env:"UPLOAD_RATE_LIMIT"`
	UploadRateWindow time.Duration `env:"UPLOAD_RATE_WINDOW"`
	APIRateLimit     int           `env:"API_RATE_LIMIT"`
	APIRateWindow    time.Duration `env:"API_RATE_WINDOW"`
}

// GetStructuredConfig assembles the service configuration from environment
// variables, command-line flags, an optional JSON file and defaults, in that
// order of precedence, and validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
