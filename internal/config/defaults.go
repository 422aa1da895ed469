package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DriverMongo    = "mongo"
	DriverPostgres = "postgres"

	MailDriverSMTP = "smtp"
	MailDriverHTTP = "http"

	multipartOverheadBytes = 1 << 20
)

// Defaults returns the configuration used for every field no other source
// sets. It mirrors the limits of the public contact form.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:      EnvDevelopment,
			LogLevel: "debug",
		},
		Server: Server{
			HTTPAddress:      ":5000",
			RequestTimeout:   time.Minute,
			ReadTimeout:      time.Minute,
			WriteTimeout:     2 * time.Minute,
			ShutdownTimeout:  15 * time.Second,
			MaxJSONBodyBytes: 100 << 10,
		},
		Upload: Upload{
			TempDir:           filepath.Join(os.TempDir(), "spotted-upload-temp"),
			MaxFiles:          3,
			MaxFileSize:       15 << 20,
			MaxTotalSize:      20 << 20,
			MinMessageLength:  3,
			MaxMessageLength:  2000,
			AllowedSenders:    []string{"Od Spottera", "Od Spotterki"},
			AllowedMIMETypes:  []string{"image/jpeg", "image/png", "image/jpg"},
			AllowedExtensions: []string{".jpg", ".jpeg", ".png"},
			SweepInterval:     10 * time.Minute,
			StaleAfter:        time.Hour,
		},
		Storage: Storage{
			Driver: DriverMongo,
			Mongo: Mongo{
				Protocol:       "mongodb",
				Host:           "mongo56.mydevil.net",
				Port:           27017,
				Collection:     "praca",
				ConnectTimeout: 10 * time.Second,
			},
		},
		Mail: Mail{
			Driver:  MailDriverSMTP,
			Subject: "Nowa wiadomość APP",
			SMTP: SMTP{
				Host: "smtp.gmail.com",
				Port: 587,
			},
			HTTP: MailHTTP{
				Timeout: 30 * time.Second,
			},
		},
		Security: Security{
			CORSOrigins:      []string{"https://spottedlezajsk.pl", "https://www.spottedlezajsk.pl"},
			UploadRateLimit:  8,
			UploadRateWindow: 15 * time.Minute,
			APIRateLimit:     120,
			APIRateWindow:    15 * time.Minute,
		},
	}
}
