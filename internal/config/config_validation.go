// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxJSONBodyBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	u := cfg.Upload
	if u.TempDir == "" || u.MaxFiles < 1 || u.MaxFileSize <= 0 || u.MaxTotalSize <= 0 {
		return fmt.Errorf("%w: limits must be positive", ErrInvalidUploadConfigs)
	}
	if u.MinMessageLength < 0 || u.MaxMessageLength < u.MinMessageLength {
		return fmt.Errorf("%w: message length bounds", ErrInvalidUploadConfigs)
	}
	if len(u.AllowedSenders) == 0 || len(u.AllowedMIMETypes) == 0 {
		return fmt.Errorf("%w: allowed senders and types must not be empty", ErrInvalidUploadConfigs)
	}
	if u.SweepInterval > 0 && u.StaleAfter <= 0 {
		return fmt.Errorf("%w: stale-after must be positive when sweeping", ErrInvalidUploadConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverMongo:
		if cfg.Storage.Mongo.URI == "" && cfg.Storage.Mongo.Host == "" {
			return fmt.Errorf("%w: mongo host or uri required", ErrInvalidStorageConfigs)
		}
		if cfg.Storage.Mongo.Collection == "" {
			return fmt.Errorf("%w: mongo collection required", ErrInvalidStorageConfigs)
		}
	case DriverPostgres:
		if cfg.Storage.Postgres.DSN == "" {
			return fmt.Errorf("%w: postgres dsn required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	switch cfg.Mail.Driver {
	case MailDriverSMTP:
		if cfg.Mail.SMTP.Host == "" || cfg.Mail.SMTP.Port < 1 {
			return fmt.Errorf("%w: smtp host and port required", ErrInvalidMailConfigs)
		}
	case MailDriverHTTP:
		if cfg.Mail.HTTP.Endpoint == "" {
			return fmt.Errorf("%w: http endpoint required", ErrInvalidMailConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidMailConfigs, cfg.Mail.Driver)
	}

	s := cfg.Security
	if s.UploadRateLimit < 1 || s.APIRateLimit < 1 || s.UploadRateWindow <= 0 || s.APIRateWindow <= 0 {
		return fmt.Errorf("%w: rate limits must be positive", ErrInvalidSecurityConfigs)
	}
	if _, err := ParseTrustProxy(s.TrustProxy, cfg.App.IsProduction()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSecurityConfigs, err)
	}

	return nil
}
