package service

import (
	"context"

	"github.com/MKhiriev/spotted-relay/internal/validators"
	"github.com/MKhiriev/spotted-relay/models"
)

// catalogValidationService normalizes and validates catalog input before it
// reaches the wrapped service. Only the first failing field is reported.
type catalogValidationService struct {
	inner     CatalogService
	validator *validators.CatalogValidator
}

func NewCatalogValidationService(validator *validators.CatalogValidator) CatalogServiceWrapper {
	return &catalogValidationService{validator: validator}
}

func (v *catalogValidationService) List(ctx context.Context, query models.ListQuery) (models.WorkPage, error) {
	if err := v.validator.Validate(ctx, query); err != nil {
		return models.WorkPage{}, err
	}
	if query.Cursor != "" {
		cursor, err := v.validator.NormalizeID(query.Cursor)
		if err != nil {
			return models.WorkPage{}, err
		}
		query.Cursor = cursor
	}
	return v.inner.List(ctx, query)
}

func (v *catalogValidationService) GetByID(ctx context.Context, id string) (models.WorkRecord, error) {
	id, err := v.validator.NormalizeID(id)
	if err != nil {
		return models.WorkRecord{}, err
	}
	return v.inner.GetByID(ctx, id)
}

func (v *catalogValidationService) GetContact(ctx context.Context, id string) (models.Contact, error) {
	id, err := v.validator.NormalizeID(id)
	if err != nil {
		return models.Contact{}, err
	}
	return v.inner.GetContact(ctx, id)
}

func (v *catalogValidationService) CheckFavorites(ctx context.Context, ids []string) (models.FavoritesResult, error) {
	ids, err := v.validator.NormalizeFavorites(ids)
	if err != nil {
		return models.FavoritesResult{}, err
	}
	return v.inner.CheckFavorites(ctx, ids)
}

func (v *catalogValidationService) Wrap(wrapped CatalogService) CatalogService {
	v.inner = wrapped
	return v
}
