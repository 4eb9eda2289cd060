// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/echosell-api/internal/config"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/redis/go-redis/v9"
)

// tokenCacheKeyPrefix namespaces cached session tokens inside Redis.
const tokenCacheKeyPrefix = "user_token:"

// tokenCache is the Redis-backed implementation of [TokenCache]. Each cached
// token is stored under its own key with a per-entry TTL; Redis expiry is the
// only eviction policy.
type tokenCache struct {
	rdb    *redis.Client
	logger *logger.Logger
}

// NewConnectRedis opens a Redis client for the token cache and verifies
// connectivity with a ping.
func NewConnectRedis(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return rdb, nil
}

// NewTokenCache constructs a [TokenCache] backed by the provided Redis client.
func NewTokenCache(rdb *redis.Client, logger *logger.Logger) TokenCache {
	logger.Debug().Msg("creating token cache")
	return &tokenCache{
		rdb:    rdb,
		logger: logger,
	}
}

// Cache records the token as present for the given TTL.
func (c *tokenCache) Cache(ctx context.Context, token string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, tokenCacheKeyPrefix+token, token, ttl).Err(); err != nil {
		return fmt.Errorf("error caching token: %w", err)
	}

	return nil
}

// Exists reports whether the token is still tracked by the cache. A false
// result only means the cache entry expired or was evicted, not that the
// token itself is invalid.
func (c *tokenCache) Exists(ctx context.Context, token string) (bool, error) {
	_, err := c.rdb.Get(ctx, tokenCacheKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading token cache: %w", err)
	}

	return true, nil
}

// Evict removes the token's cache entry. Evicting an unknown token is not an
// error.
func (c *tokenCache) Evict(ctx context.Context, token string) error {
	if err := c.rdb.Del(ctx, tokenCacheKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("error evicting token: %w", err)
	}

	return nil
}
