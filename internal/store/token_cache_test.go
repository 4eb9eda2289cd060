// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/echosell-api/internal/logger"
)

func newTestTokenCache(t *testing.T) (TokenCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewTokenCache(rdb, logger.Nop()), mr
}

func TestTokenCache_CacheAndExists(t *testing.T) {
	cache, mr := newTestTokenCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Cache(ctx, "tok-123", 10*time.Minute))

	present, err := cache.Exists(ctx, "tok-123")
	require.NoError(t, err)
	assert.True(t, present)

	// stored under the namespaced key
	assert.True(t, mr.Exists("user_token:tok-123"))
}

func TestTokenCache_ExistsMissing(t *testing.T) {
	cache, _ := newTestTokenCache(t)

	present, err := cache.Exists(context.Background(), "never-cached")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestTokenCache_EntryExpires(t *testing.T) {
	cache, mr := newTestTokenCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Cache(ctx, "tok-ttl", 600*time.Second))

	ttl := mr.TTL("user_token:tok-ttl")
	assert.Equal(t, 600*time.Second, ttl)

	mr.FastForward(601 * time.Second)

	present, err := cache.Exists(ctx, "tok-ttl")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestTokenCache_Evict(t *testing.T) {
	cache, _ := newTestTokenCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Cache(ctx, "tok-evict", time.Minute))
	require.NoError(t, cache.Evict(ctx, "tok-evict"))

	present, err := cache.Exists(ctx, "tok-evict")
	require.NoError(t, err)
	assert.False(t, present)
}

func TestTokenCache_EvictUnknownTokenIsNoError(t *testing.T) {
	cache, _ := newTestTokenCache(t)

	require.NoError(t, cache.Evict(context.Background(), "unknown"))
}
