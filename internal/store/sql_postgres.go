package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"github.com/MKhiriev/spotted-relay/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB is a PostgreSQL connection pool with the error classifier used to
// decide on retries.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed pool and pings it. When
// cfg.AutoMigrate is set the embedded migrations are applied.
func NewConnectPostgres(ctx context.Context, cfg config.Postgres, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}

	if cfg.AutoMigrate {
		if err = db.Migrate(ctx); err != nil {
			log.Err(err).Str("func", "NewConnectPostgres").Msg("error migrating database")
			_ = conn.Close()
			return nil, err
		}
	}

	return db, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	applied, err := migrations.Migrate(ctx, db.DB)
	if err != nil {
		return err
	}
	db.logger.Info().Str("func", "*DB.Migrate").Ints64("versions", applied).Msg("schema migrated")
	return nil
}

// Close closes the pool. The context is accepted for symmetry with the
// other back ends.
func (db *DB) Close(_ context.Context) error {
	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}
	db.logger.Info().Str("func", "*DB.Close").Msg("database closed")
	return nil
}

// queryContext runs a read-only query and retries it once when the first
// failure is classified as transient.
func (db *DB) queryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*DB.queryContext").Msg("retrying query after transient error")
		rows, err = db.QueryContext(ctx, query, args...)
	}
	return rows, err
}
