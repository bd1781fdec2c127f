package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/psokolova/meetsync/internal/logger"
	"github.com/redis/go-redis/v9"
)

// TokenRevocationRepository stores revoked token ids in Redis.
// A revoked entry only needs to live until the token's natural expiry,
// so each key carries the remaining token lifetime as its TTL.
type TokenRevocationRepository struct {
	client *redis.Client
}

func NewTokenRevocationRepository(client *redis.Client) *TokenRevocationRepository {
	return &TokenRevocationRepository{client: client}
}

func revocationKey(tokenID string) string {
	return fmt.Sprintf("revoked_token:%s", tokenID)
}

// Revoke marks a token id as revoked until its expiry.
func (r *TokenRevocationRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to revoke.
		return nil
	}

	key := revocationKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("revoke token",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether the token id has been revoked.
func (r *TokenRevocationRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revocationKey(tokenID)

	_, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		logger.Log.Errorw("revocation lookup failed", "key", key, "error", err)
		return false, err
	}

	return true, nil
}

// ScheduleCacheRepository caches serialized user schedules in Redis,
// keyed by username.
type ScheduleCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewScheduleCacheRepository(client *redis.Client, expiration time.Duration) *ScheduleCacheRepository {
	return &ScheduleCacheRepository{client: client, exp: expiration}
}

func scheduleKey(username string) string {
	return fmt.Sprintf("schedule:%s", username)
}

// Get fetches a cached schedule. A cache miss is returned as an error.
func (r *ScheduleCacheRepository) Get(ctx context.Context, username string) ([]byte, error) {
	key := scheduleKey(username)

	val, err := r.client.Get(ctx, key).Bytes()

	logger.Log.Infow("cache get",
		"key", key,
		"hit", err == nil,
		"error", err,
	)

	if err == redis.Nil {
		return nil, fmt.Errorf("schedule not cached for %s", username)
	}
	if err != nil {
		return nil, err
	}

	return val, nil
}

// Set stores a serialized schedule with the configured expiration.
func (r *ScheduleCacheRepository) Set(ctx context.Context, username string, schedule []byte) error {
	key := scheduleKey(username)
	err := r.client.Set(ctx, key, schedule, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"error", err,
	)

	return err
}

// Delete drops the cached schedule, used when the owner overwrites it.
func (r *ScheduleCacheRepository) Delete(ctx context.Context, username string) error {
	key := scheduleKey(username)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("cache delete",
		"key", key,
		"error", err,
	)

	return err
}
