package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/echosell-api/internal/config"
	"github.com/MKhiriev/echosell-api/internal/logger"
)

// Storages aggregates every persistence backend the service depends on.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
	TokenCache     TokenCache

	db  *DB
	rdb *redis.Client
}

// PingDB reports whether the PostgreSQL connection is alive.
func (s *Storages) PingDB(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// PingCache reports whether the Redis connection is alive.
func (s *Storages) PingCache(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// NewStorages connects to PostgreSQL and Redis, applies pending schema
// migrations, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting postgres: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	rdb, err := NewConnectRedis(ctx, cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
		TokenCache:     NewTokenCache(rdb, log),
		db:             db,
		rdb:            rdb,
	}, nil
}
