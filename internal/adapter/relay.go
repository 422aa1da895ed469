package adapter

import (
	"fmt"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
)

// NewMailRelay returns the driver selected by cfg.Driver.
func NewMailRelay(cfg config.Mail, log *logger.Logger) (MailRelay, error) {
	switch cfg.Driver {
	case config.MailDriverSMTP, "":
		return NewSMTPMailRelay(cfg, log)
	case config.MailDriverHTTP:
		return NewHTTPMailRelay(cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMailDriver, cfg.Driver)
	}
}
