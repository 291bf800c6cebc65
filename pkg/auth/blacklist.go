package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/vivasaude/vivasaude/pkg/cache"
)

// TokenBlacklist manages revoked JWT tokens
type TokenBlacklist struct {
	cache *cache.Client
}

// NewTokenBlacklist creates a new token blacklist
func NewTokenBlacklist(cache *cache.Client) *TokenBlacklist {
	return &TokenBlacklist{
		cache: cache,
	}
}

// Add revokes a token until its natural expiration. The stored value is the
// revocation time, which makes logout incidents traceable in Redis directly.
func (b *TokenBlacklist) Add(ctx context.Context, token string, expiration time.Duration) error {
	revokedAt := time.Now().UTC().Format(time.RFC3339)
	return b.cache.Set(ctx, b.key(token), revokedAt, expiration)
}

// IsBlacklisted checks if a token has been revoked
func (b *TokenBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	return b.cache.Exists(ctx, b.key(token))
}

// key hashes the token so raw bearer tokens never land in Redis
func (b *TokenBlacklist) key(token string) string {
	hash := sha256.Sum256([]byte(token))
	return fmt.Sprintf("auth:revoked:%s", hex.EncodeToString(hash[:]))
}
