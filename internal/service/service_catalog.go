package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/internal/store"
	"github.com/MKhiriev/spotted-relay/internal/validators"
	"github.com/MKhiriev/spotted-relay/models"
)

// catalogService expects normalized input; see catalogValidationService.
type catalogService struct {
	workRepository store.WorkRepository
	validator      *validators.CatalogValidator

	logger *logger.Logger
}

func NewCatalogService(workRepository store.WorkRepository, validator *validators.CatalogValidator, logger *logger.Logger) CatalogService {
	return &catalogService{
		workRepository: workRepository,
		validator:      validator,
		logger:         logger,
	}
}

// List fetches one extra record to learn whether a further page exists.
func (c *catalogService) List(ctx context.Context, query models.ListQuery) (models.WorkPage, error) {
	works, err := c.workRepository.FindWorks(ctx, query.Cursor, query.Limit+1)
	if err != nil {
		return models.WorkPage{}, fmt.Errorf("error listing works: %w", err)
	}

	page := models.WorkPage{Items: works}
	if len(works) > query.Limit {
		page.Items = works[:query.Limit]
		next := page.Items[len(page.Items)-1].ID
		page.NextCursor = &next
	}
	if page.Items == nil {
		page.Items = []models.WorkRecord{}
	}

	return page, nil
}

func (c *catalogService) GetByID(ctx context.Context, id string) (models.WorkRecord, error) {
	return c.workRepository.FindWorkByID(ctx, id)
}

func (c *catalogService) GetContact(ctx context.Context, id string) (models.Contact, error) {
	raw, err := c.workRepository.FindWorkContact(ctx, id)
	if err != nil {
		return models.Contact{}, err
	}

	contact, err := c.validator.ContactFromRaw(raw)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "catalogService.GetContact").Str("id", id).Msg("stored contact failed output schema")
		return models.Contact{}, fmt.Errorf("%w: %w", ErrContactIntegrity, err)
	}

	return contact, nil
}

// CheckFavorites keeps the order of ids in both found and missing.
func (c *catalogService) CheckFavorites(ctx context.Context, ids []string) (models.FavoritesResult, error) {
	works, err := c.workRepository.FindWorksByIDs(ctx, ids)
	if err != nil {
		return models.FavoritesResult{}, fmt.Errorf("error checking favorites: %w", err)
	}

	byID := make(map[string]models.WorkRecord, len(works))
	for _, w := range works {
		byID[w.ID] = w
	}

	result := models.FavoritesResult{
		Found:   make([]models.WorkRecord, 0, len(works)),
		Missing: make([]models.MissingWork, 0),
	}
	for _, id := range ids {
		if w, ok := byID[id]; ok {
			result.Found = append(result.Found, w)
			continue
		}
		result.Missing = append(result.Missing, models.MissingWork{ID: id, Message: MsgWorkNotCurrent})
	}

	return result, nil
}
