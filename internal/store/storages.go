package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
)

// Storages groups the catalog repository and the temporary upload storage
// together with the connection that backs the repository.
type Storages struct {
	WorkRepository WorkRepository
	UploadStorage  UploadStorage
	UploadSweeper  StaleUploadSweeper

	closers []func(ctx context.Context) error
}

// NewStorages connects to the configured catalog back end and prepares the
// temporary upload directory.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	uploads, err := NewTempFileStorage(cfg.Upload, log)
	if err != nil {
		return nil, err
	}

	storages := &Storages{UploadStorage: uploads}
	if sweeper, ok := uploads.(StaleUploadSweeper); ok {
		storages.UploadSweeper = sweeper
	}

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.Storage.Postgres, log)
		if err != nil {
			return nil, err
		}
		storages.WorkRepository = NewPostgresWorkRepository(db, log)
		storages.closers = append(storages.closers, db.Close)
	case config.DriverMongo, "":
		mongoDB, err := NewConnectMongo(ctx, cfg.Storage.Mongo, log)
		if err != nil {
			return nil, err
		}
		storages.WorkRepository = NewMongoWorkRepository(mongoDB.Collection(cfg.Storage.Mongo.Collection), log)
		storages.closers = append(storages.closers, mongoDB.Close)
	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", config.ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	return storages, nil
}

// Close releases every connection held by the storages.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
