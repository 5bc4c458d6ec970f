package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config selects and configures a backend for Open.
type Config struct {
	Driver      string
	Database    DatabaseConfig
	SQLitePath  string
	RedisURL    string
	RedisPrefix string
}

// Open builds the backend named by cfg.Driver.
func Open(ctx context.Context, cfg Config, logger *zap.Logger) (Storage, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	switch cfg.Driver {
	case DriverMemory, "":
		logger.Info("Using in-memory storage")
		return NewMemoryStorage(), nil
	case DriverSQLite:
		logger.Info("Using SQLite storage", zap.String("path", cfg.SQLitePath))
		return NewSQLiteStorage(cfg.SQLitePath, logger)
	case DriverPostgres:
		logger.Info("Using PostgreSQL storage",
			zap.String("host", cfg.Database.Host),
			zap.String("dbname", cfg.Database.DBName))
		return NewPostgresStorage(cfg.Database, logger)
	case DriverRedis:
		logger.Info("Using Redis storage", zap.String("prefix", cfg.RedisPrefix))
		return NewRedisStorageFromURL(ctx, cfg.RedisURL, cfg.RedisPrefix)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
