package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &Client{Redis: redisClient}, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "test:key1", "value1", 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "test:key1")
	require.NoError(t, err)
	assert.Equal(t, "value1", val)
}

func TestClient_GetMissing(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "test:missing")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "test:key1", "value1", 1*time.Hour))
	require.NoError(t, client.Delete(ctx, "test:key1"))

	exists, err := client.Exists(ctx, "test:key1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "test:key1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, client.Set(ctx, "test:key1", "value1", 1*time.Hour))

	exists, err = client.Exists(ctx, "test:key1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "pricing:catalog", "a", 1*time.Hour))
	require.NoError(t, client.Set(ctx, "pricing:preview:100", "b", 1*time.Hour))
	require.NoError(t, client.Set(ctx, "other:key", "c", 1*time.Hour))

	require.NoError(t, client.DeletePattern(ctx, "pricing:*"))

	exists, _ := client.Exists(ctx, "pricing:catalog")
	assert.False(t, exists)
	exists, _ = client.Exists(ctx, "pricing:preview:100")
	assert.False(t, exists)
	exists, _ = client.Exists(ctx, "other:key")
	assert.True(t, exists)
}

func TestClient_Expiration(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "test:ttl", "value", 1*time.Hour))

	ttl, err := client.TTL(ctx, "test:ttl")
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	mr.FastForward(2 * time.Hour)

	exists, err := client.Exists(ctx, "test:ttl")
	require.NoError(t, err)
	assert.False(t, exists)
}
