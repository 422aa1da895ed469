package http

import (
	"fmt"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/metrics"
	"github.com/MKhiriev/spotted-relay/internal/service"
	"github.com/MKhiriev/spotted-relay/internal/validators"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	serverCfg   config.Server
	securityCfg config.Security
	uploadCfg   config.Upload
	trustProxy  int

	catalogValidator *validators.CatalogValidator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, metrics *metrics.Metrics, logger *logger.Logger) (*Handler, error) {
	trustProxy, err := config.ParseTrustProxy(cfg.Security.TrustProxy, cfg.App.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("invalid trust proxy setting: %w", err)
	}

	logger.Info().Int("trust_proxy", trustProxy).Msg("http handler created")
	return &Handler{
		services:    services,
		metrics:     metrics,
		serverCfg:   cfg.Server,
		securityCfg: cfg.Security,
		uploadCfg:   cfg.Upload,
		trustProxy:  trustProxy,

		catalogValidator: validators.NewCatalogValidator(),

		logger: logger,
	}, nil
}
