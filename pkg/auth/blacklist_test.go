package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivasaude/vivasaude/pkg/cache"
)

func setupTestRedis(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisURL := "redis://" + mr.Addr()
	client, err := cache.NewClient(redisURL)
	require.NoError(t, err)

	return client, mr
}

func TestTokenBlacklist_Add(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	token := "test.jwt.token"

	err := blacklist.Add(ctx, token, 1*time.Hour)
	assert.NoError(t, err)

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, token)
	assert.NoError(t, err)
	assert.True(t, isBlacklisted, "Token should be blacklisted")
}

func TestTokenBlacklist_IsBlacklisted_NotFound(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)

	isBlacklisted, err := blacklist.IsBlacklisted(context.Background(), "nonexistent.jwt.token")
	assert.NoError(t, err)
	assert.False(t, isBlacklisted, "Token should not be blacklisted")
}

func TestTokenBlacklist_Expiration(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	token := "expiring.jwt.token"

	err := blacklist.Add(ctx, token, 1*time.Second)
	assert.NoError(t, err)

	isBlacklisted, err := blacklist.IsBlacklisted(ctx, token)
	assert.NoError(t, err)
	assert.True(t, isBlacklisted)

	mr.FastForward(2 * time.Second)

	isBlacklisted, err = blacklist.IsBlacklisted(ctx, token)
	assert.NoError(t, err)
	assert.False(t, isBlacklisted, "Token should expire after TTL")
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("senha-secreta")
	require.NoError(t, err)
	assert.NotEqual(t, "senha-secreta", hash)

	assert.True(t, CheckPassword(hash, "senha-secreta"))
	assert.False(t, CheckPassword(hash, "senha-errada"))
}
