package main

import (
	"context"
	"petregistry/internal/config"
	"petregistry/pkg/logger"
	"petregistry/pkg/storage"
	"petregistry/pkg/storage/memory"
	"petregistry/pkg/storage/mongo"
	"petregistry/pkg/storage/postgres"

	"go.uber.org/zap"
)

// backend is a storage that can report whether it is reachable.
type backend interface {
	storage.Storage
	Ping(ctx context.Context) error
}

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getMongo connects to MongoDB and returns the storage with a cleanup
// function disconnecting the client.
func getMongo(ctx context.Context, cfg *config.Config) (*mongo.Mongo, func()) {
	m, err := mongo.New(ctx, mongo.Options{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
		MaxPoolSize:    cfg.Mongo.MaxPoolSize,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create mongo storage", zap.Error(err))
	}

	return m, func() {
		logger.Info(ctx, "closing mongo client...")
		if err = m.Close(); err != nil {
			logger.Warn(ctx, "could not close mongo connection", zap.Error(err))
		}
	}
}

// getStorage opens the backend selected by storage.driver.
func getStorage(ctx context.Context, cfg *config.Config) (backend, func()) {
	switch cfg.Storage.Driver {
	case config.DriverMongo:
		return getMongo(ctx, cfg)
	case config.DriverMemory:
		logger.Warn(ctx, "using in-memory storage, data does not survive restarts")

		return memory.New(), func() {}
	default:
		return getPostgres(ctx, cfg)
	}
}
