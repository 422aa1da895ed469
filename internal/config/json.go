package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration decodes either a Go duration string ("90s") or a nanosecond count.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}

	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration must be a string or integer nanoseconds: %w", err)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d Duration) std() time.Duration { return time.Duration(d) }

type jsonApp struct {
	Env      string `json:"env"`
	LogLevel string `json:"log_level"`
}

type jsonServer struct {
	HTTPAddress      string   `json:"http_address"`
	RequestTimeout   Duration `json:"request_timeout"`
	ReadTimeout      Duration `json:"read_timeout"`
	WriteTimeout     Duration `json:"write_timeout"`
	ShutdownTimeout  Duration `json:"shutdown_timeout"`
	MaxJSONBodyBytes int64    `json:"max_json_body_bytes"`
}

type jsonUpload struct {
	TempDir           string   `json:"temp_dir"`
	MaxFiles          int      `json:"max_files"`
	MaxFileSize       int64    `json:"max_file_size"`
	MaxTotalSize      int64    `json:"max_total_size"`
	MinMessageLength  int      `json:"min_message_length"`
	MaxMessageLength  int      `json:"max_message_length"`
	AllowedSenders    []string `json:"allowed_senders"`
	AllowedMIMETypes  []string `json:"allowed_mime_types"`
	AllowedExtensions []string `json:"allowed_extensions"`
	SweepInterval     Duration `json:"sweep_interval"`
	StaleAfter        Duration `json:"stale_after"`
}

type jsonMongo struct {
	URI            string   `json:"uri"`
	Protocol       string   `json:"protocol"`
	Host           string   `json:"host"`
	Port           int      `json:"port"`
	User           string   `json:"user"`
	Password       string   `json:"password"`
	DBName         string   `json:"db_name"`
	Collection     string   `json:"collection"`
	ConnectTimeout Duration `json:"connect_timeout"`
}

type jsonPostgres struct {
	DSN         string `json:"dsn"`
	AutoMigrate bool   `json:"auto_migrate"`
}

type jsonStorage struct {
	Driver   string       `json:"driver"`
	Mongo    jsonMongo    `json:"mongo"`
	Postgres jsonPostgres `json:"postgres"`
}

type jsonMailHTTP struct {
	Endpoint string   `json:"endpoint"`
	Token    string   `json:"token"`
	Timeout  Duration `json:"timeout"`
}

type jsonSMTP struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type jsonMail struct {
	Driver  string       `json:"driver"`
	From    string       `json:"from"`
	To      string       `json:"to"`
	Subject string       `json:"subject"`
	SMTP    jsonSMTP     `json:"smtp"`
	HTTP    jsonMailHTTP `json:"http"`
}

type jsonSecurity struct {
	CORSOrigins      []string `json:"cors_origins"`
	TrustProxy       string   `json:"trust_proxy"`
	UploadRateLimit  int      `json:"upload_rate_limit"`
	UploadRateWindow Duration `json:"upload_rate_window"`
	APIRateLimit     int      `json:"api_rate_limit"`
	APIRateWindow    Duration `json:"api_rate_window"`
}

// StructuredJSONConfig is the on-disk shape of the config file: snake_case
// keys and string durations.
type StructuredJSONConfig struct {
	App      jsonApp      `json:"app"`
	Server   jsonServer   `json:"server"`
	Upload   jsonUpload   `json:"upload"`
	Storage  jsonStorage  `json:"storage"`
	Mail     jsonMail     `json:"mail"`
	Security jsonSecurity `json:"security"`
}

func (j *StructuredJSONConfig) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App(j.App),
		Server: Server{
			HTTPAddress:      j.Server.HTTPAddress,
			RequestTimeout:   j.Server.RequestTimeout.std(),
			ReadTimeout:      j.Server.ReadTimeout.std(),
			WriteTimeout:     j.Server.WriteTimeout.std(),
			ShutdownTimeout:  j.Server.ShutdownTimeout.std(),
			MaxJSONBodyBytes: j.Server.MaxJSONBodyBytes,
		},
		Upload: Upload{
			TempDir:           j.Upload.TempDir,
			MaxFiles:          j.Upload.MaxFiles,
			MaxFileSize:       j.Upload.MaxFileSize,
			MaxTotalSize:      j.Upload.MaxTotalSize,
			MinMessageLength:  j.Upload.MinMessageLength,
			MaxMessageLength:  j.Upload.MaxMessageLength,
			AllowedSenders:    j.Upload.AllowedSenders,
			AllowedMIMETypes:  j.Upload.AllowedMIMETypes,
			AllowedExtensions: j.Upload.AllowedExtensions,
			SweepInterval:     j.Upload.SweepInterval.std(),
			StaleAfter:        j.Upload.StaleAfter.std(),
		},
		Storage: Storage{
			Driver: j.Storage.Driver,
			Mongo: Mongo{
				URI:            j.Storage.Mongo.URI,
				Protocol:       j.Storage.Mongo.Protocol,
				Host:           j.Storage.Mongo.Host,
				Port:           j.Storage.Mongo.Port,
				User:           j.Storage.Mongo.User,
				Password:       j.Storage.Mongo.Password,
				DBName:         j.Storage.Mongo.DBName,
				Collection:     j.Storage.Mongo.Collection,
				ConnectTimeout: j.Storage.Mongo.ConnectTimeout.std(),
			},
			Postgres: Postgres(j.Storage.Postgres),
		},
		Mail: Mail{
			Driver:  j.Mail.Driver,
			From:    j.Mail.From,
			To:      j.Mail.To,
			Subject: j.Mail.Subject,
			SMTP:    SMTP(j.Mail.SMTP),
			HTTP: MailHTTP{
				Endpoint: j.Mail.HTTP.Endpoint,
				Token:    j.Mail.HTTP.Token,
				Timeout:  j.Mail.HTTP.Timeout.std(),
			},
		},
		Security: Security{
			CORSOrigins:      j.Security.CORSOrigins,
			TrustProxy:       j.Security.TrustProxy,
			UploadRateLimit:  j.Security.UploadRateLimit,
			UploadRateWindow: j.Security.UploadRateWindow.std(),
			APIRateLimit:     j.Security.APIRateLimit,
			APIRateWindow:    j.Security.APIRateWindow.std(),
		},
	}
}

// parseJSON reads a config file. Unknown keys are rejected so a typo does
// not silently fall back to a default.
func parseJSON(path string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var j StructuredJSONConfig
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return j.toConfig(), nil
}
