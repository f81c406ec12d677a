package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	// Create an in-memory Redis instance for testing
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return NewCache(client, zap.NewNop(), "movie-search"), mr
}

func TestCache_SetAndGet(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "search:stal:1", []byte(`{"movies":[]}`), time.Minute)
	require.NoError(t, err)

	data, err := cache.Get(ctx, "search:stal:1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"movies":[]}`), data)
}

func TestCache_Get_Miss(t *testing.T) {
	cache, _ := setupTestCache(t)

	data, err := cache.Get(context.Background(), "search:missing:1")
	require.NoError(t, err)
	assert.Nil(t, data, "Missing key should return nil without error")
}

func TestCache_KeyPrefix(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "search:blade:1", []byte("x"), time.Minute)
	require.NoError(t, err)

	// The stored key must be namespaced under the configured prefix
	assert.True(t, mr.Exists("movie-search:search:blade:1"))
}

func TestCache_Set_TTL(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	err := cache.Set(ctx, "search:stal:1", []byte("x"), 15*time.Minute)
	require.NoError(t, err)

	mr.FastForward(16 * time.Minute)

	data, err := cache.Get(ctx, "search:stal:1")
	require.NoError(t, err)
	assert.Nil(t, data, "Entry should expire after its TTL")
}

func TestCache_Delete(t *testing.T) {
	cache, _ := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "search:stal:1", []byte("x"), time.Minute))
	require.NoError(t, cache.Delete(ctx, "search:stal:1"))

	data, err := cache.Get(ctx, "search:stal:1")
	require.NoError(t, err)
	assert.Nil(t, data)

	// Deleting again is a no-op
	require.NoError(t, cache.Delete(ctx, "search:stal:1"))
}

func TestCache_Clear(t *testing.T) {
	cache, mr := setupTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "search:stal:1", []byte("a"), time.Minute))
	require.NoError(t, cache.Set(ctx, "search:stal:2", []byte("b"), time.Minute))

	// A key outside our prefix must survive the clear
	mr.Set("other-app:key", "keep")

	require.NoError(t, cache.Clear(ctx))

	data, err := cache.Get(ctx, "search:stal:1")
	require.NoError(t, err)
	assert.Nil(t, data)

	assert.True(t, mr.Exists("other-app:key"))
}
