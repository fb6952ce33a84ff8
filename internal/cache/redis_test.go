package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*RedisCartCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCartCache(client), mr
}

func TestGet_Success(t *testing.T) {
	cartCache, mr := setupTestCache(t)

	cartItems := map[string]int64{"P1": 2, "P2": 3}
	data, err := json.Marshal(cartItems)
	require.NoError(t, err)
	require.NoError(t, mr.Set(cacheKey("user123"), string(data)))

	result, err := cartCache.Get(context.Background(), "user123")
	require.NoError(t, err)
	assert.Equal(t, cartItems, result)
}

func TestGet_CacheMiss(t *testing.T) {
	cartCache, _ := setupTestCache(t)

	result, err := cartCache.Get(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, result)
}

func TestGet_InvalidJSON(t *testing.T) {
	cartCache, mr := setupTestCache(t)
	require.NoError(t, mr.Set(cacheKey("user123"), "not-json"))

	_, err := cartCache.Get(context.Background(), "user123")
	require.ErrorContains(t, err, "unmarshal cart failed")
}

func TestSet_ThenGet(t *testing.T) {
	cartCache, mr := setupTestCache(t)
	ctx := context.Background()

	cartItems := map[string]int64{"P1": 1}
	require.NoError(t, cartCache.Set(ctx, "user123", cartItems))

	result, err := cartCache.Get(ctx, "user123")
	require.NoError(t, err)
	assert.Equal(t, cartItems, result)

	// entry expires
	assert.Positive(t, mr.TTL(cacheKey("user123")))
}

func TestDelete(t *testing.T) {
	cartCache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cartCache.Set(ctx, "user123", map[string]int64{"P1": 1}))
	require.NoError(t, cartCache.Delete(ctx, "user123"))

	_, err := cartCache.Get(ctx, "user123")
	assert.ErrorIs(t, err, ErrCacheMiss)

	// deleting an absent key is fine
	require.NoError(t, cartCache.Delete(ctx, "user123"))
}
