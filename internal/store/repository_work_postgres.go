package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/models"
	"github.com/jackc/pgx/v5/pgtype"
)

// postgresWorkRepository is the PostgreSQL-backed implementation of
// [WorkRepository] over the "works" table.
type postgresWorkRepository struct {
	*DB
	typeMap *pgtype.Map
	logger  *logger.Logger
}

// NewPostgresWorkRepository constructs a [WorkRepository] backed by db.
func NewPostgresWorkRepository(db *DB, logger *logger.Logger) WorkRepository {
	logger.Debug().Msg("creating postgres work repository")
	return &postgresWorkRepository{
		DB:      db,
		typeMap: pgtype.NewMap(),
		logger:  logger,
	}
}

func (p *postgresWorkRepository) FindWorks(ctx context.Context, cursor string, n int) ([]models.WorkRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindWorksQuery(cursor, n)
	if err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorks").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrQueryingWorks, err)
	}

	works, err := p.selectWorks(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorks").Str("cursor", cursor).Msg("failed to list works")
		return nil, err
	}
	return works, nil
}

func (p *postgresWorkRepository) FindWorkByID(ctx context.Context, id string) (models.WorkRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindWorkByIDQuery(id)
	if err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorkByID").Msg("failed to create query")
		return models.WorkRecord{}, fmt.Errorf("%w: %w", ErrQueryingWorks, err)
	}

	works, err := p.selectWorks(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorkByID").Str("id", id).Msg("failed to find work")
		return models.WorkRecord{}, err
	}
	if len(works) == 0 {
		return models.WorkRecord{}, ErrWorkNotFound
	}
	return works[0], nil
}

func (p *postgresWorkRepository) FindWorkContact(ctx context.Context, id string) (models.RawContact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindWorkContactQuery(id)
	if err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorkContact").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrQueryingWorks, err)
	}

	rows, err := p.queryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorkContact").Str("id", id).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w: %w", ErrQueryingWorks, ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrQueryingWorks, ErrScanningRows, err)
		}
		return nil, ErrWorkNotFound
	}

	var raw []byte
	if err = rows.Scan(&raw); err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorkContact").Str("id", id).Msg("failed to scan contact")
		return nil, fmt.Errorf("%w: %w: %w", ErrQueryingWorks, ErrScanningRow, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var contact models.RawContact
	if err = json.Unmarshal(raw, &contact); err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorkContact").Str("id", id).Msg("failed to decode contact")
		return nil, fmt.Errorf("%w: %w: %w", ErrQueryingWorks, ErrScanningRow, err)
	}
	return contact, nil
}

func (p *postgresWorkRepository) FindWorksByIDs(ctx context.Context, ids []string) ([]models.WorkRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindWorksByIDsQuery(ids)
	if err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorksByIDs").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrQueryingWorks, err)
	}

	works, err := p.selectWorks(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "postgresWorkRepository.FindWorksByIDs").Int("ids", len(ids)).Msg("failed to find works by ids")
		return nil, err
	}
	return works, nil
}

func (p *postgresWorkRepository) selectWorks(ctx context.Context, query string, args []any) ([]models.WorkRecord, error) {
	rows, err := p.queryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrQueryingWorks, ErrExecutingQuery, err)
	}
	defer rows.Close()

	works := make([]models.WorkRecord, 0, 26)
	for rows.Next() {
		work, scanErr := p.scanWork(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrQueryingWorks, ErrScanningRow, scanErr)
		}
		works = append(works, work)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrQueryingWorks, ErrScanningRows, err)
	}
	return works, nil
}

func (p *postgresWorkRepository) scanWork(rows *sql.Rows) (models.WorkRecord, error) {
	var work models.WorkRecord
	var tags []string

	err := rows.Scan(
		&work.ID,
		&work.Slug,
		&work.Title,
		&work.Description,
		p.typeMap.SQLScanner(&tags),
		&work.CreatedAt,
	)
	if err != nil {
		return models.WorkRecord{}, err
	}

	if tags == nil {
		tags = []string{}
	}
	work.Tags = tags
	return work, nil
}
