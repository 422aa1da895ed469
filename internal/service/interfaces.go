package service

import (
	"context"
	"mime/multipart"

	"github.com/MKhiriev/spotted-relay/models"
)

// UploadService accepts contact-form uploads.
type UploadService interface {
	// Receive persists the file parts of body to temporary storage and
	// collects the text fields. Nothing is left on disk when it fails.
	Receive(ctx context.Context, body *multipart.Reader) (models.UploadRequest, error)

	// Process runs a received upload through validation and delivery. The
	// temporary files of the request are always removed before it returns.
	Process(ctx context.Context, request models.UploadRequest) error
}

// CatalogService serves the read-only job-posting catalog.
type CatalogService interface {
	List(ctx context.Context, query models.ListQuery) (models.WorkPage, error)
	GetByID(ctx context.Context, id string) (models.WorkRecord, error)
	GetContact(ctx context.Context, id string) (models.Contact, error)
	CheckFavorites(ctx context.Context, ids []string) (models.FavoritesResult, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

// CatalogServiceWrapper defines middleware composition for CatalogService.
// Implementations wrap an existing CatalogService to add behavior such as
// validating.
type CatalogServiceWrapper interface {
	Wrap(CatalogService) CatalogService // returns a decorated CatalogService applying additional behavior
}
