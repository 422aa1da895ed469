package service

import (
	"github.com/MKhiriev/spotted-relay/internal/adapter"
	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/store"
	"github.com/MKhiriev/spotted-relay/internal/validators"
	"github.com/MKhiriev/spotted-relay/models"
)

type Services struct {
	UploadService  UploadService
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, mailRelay adapter.MailRelay, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	catalogValidator := validators.NewCatalogValidator()

	return &Services{
		UploadService: NewUploadService(storages.UploadStorage, mailRelay, cfg.Upload, cfg.App, logger),
		CatalogService: NewCatalogValidationService(catalogValidator).
			Wrap(NewCatalogService(storages.WorkRepository, catalogValidator, logger)),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
