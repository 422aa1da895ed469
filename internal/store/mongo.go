package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/spotted-relay/internal/config"
	"github.com/MKhiriev/spotted-relay/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDB is a connected MongoDB client bound to the configured database.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to MongoDB and verifies the connection with a
// ping. The connection attempt is bounded by cfg.ConnectTimeout.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during mongo connection")
		return nil, fmt.Errorf("error occured during mongo connection: %w", err)
	}

	if err = client.Ping(connectCtx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error connecting mongo (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("db", cfg.DBName).Msg("connected to mongo successfully")

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.DBName),
		logger:   log,
	}, nil
}

// Collection returns the named collection of the bound database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.Database.Collection(name)
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	if err := m.Client.Disconnect(ctx); err != nil {
		m.logger.Err(err).Str("func", "*MongoDB.Close").Msg("error disconnecting mongo")
		return fmt.Errorf("error disconnecting mongo: %w", err)
	}
	m.logger.Info().Str("func", "*MongoDB.Close").Msg("mongo disconnected")
	return nil
}
