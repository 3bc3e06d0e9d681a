// Package auth holds the Redis-backed token revocation list used to
// invalidate sessions on sign-out before their JWTs expire.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps revoked token hashes in Redis until the token would
// have expired anyway. A nil client disables revocation entirely.
type TokenStore struct{ rdb *redis.Client }

func NewTokenStore(rdb *redis.Client) *TokenStore { return &TokenStore{rdb: rdb} }

// Tokens are stored hashed; the raw JWT never reaches Redis.
func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}

// Revoke denylists a token until expiresAt. Already-expired tokens are
// ignored since RequireAuth rejects them on its own.
func (s *TokenStore) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedKey(token), "1", ttl).Err()
}

// IsRevoked reports whether a token has been denylisted. Redis errors
// count as not revoked: an unreachable revocation list must not lock
// every user out.
func (s *TokenStore) IsRevoked(ctx context.Context, token string) bool {
	if s == nil || s.rdb == nil {
		return false
	}
	n, err := s.rdb.Exists(ctx, revokedKey(token)).Result()
	return err == nil && n > 0
}
