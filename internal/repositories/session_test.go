package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisClient(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	assert.NoError(t, rdb.Ping(ctx).Err())

	teardown := func() {
		rdb.Close()
		redisC.Terminate(ctx)
	}

	return rdb, teardown
}

func TestTokenRevocationRepository(t *testing.T) {
	rdb, teardown := setupRedisClient(t)
	defer teardown()

	repo := NewTokenRevocationRepository(rdb)
	ctx := context.Background()

	t.Run("Revoke and check", func(t *testing.T) {
		err := repo.Revoke(ctx, "jti-1", time.Minute)
		assert.NoError(t, err)

		revoked, err := repo.IsRevoked(ctx, "jti-1")
		assert.NoError(t, err)
		assert.True(t, revoked)
	})

	t.Run("Unknown token is not revoked", func(t *testing.T) {
		revoked, err := repo.IsRevoked(ctx, "jti-unknown")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Expired token is a no-op", func(t *testing.T) {
		err := repo.Revoke(ctx, "jti-expired", -time.Minute)
		assert.NoError(t, err)

		revoked, err := repo.IsRevoked(ctx, "jti-expired")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("Revocation expires with the token", func(t *testing.T) {
		err := repo.Revoke(ctx, "jti-short", time.Second)
		assert.NoError(t, err)

		time.Sleep(2 * time.Second)

		revoked, err := repo.IsRevoked(ctx, "jti-short")
		assert.NoError(t, err)
		assert.False(t, revoked)
	})
}

func TestScheduleCacheRepository(t *testing.T) {
	rdb, teardown := setupRedisClient(t)
	defer teardown()

	repo := NewScheduleCacheRepository(rdb, 2*time.Second)
	ctx := context.Background()

	schedule := []byte(`{"monday": [true, false]}`)

	t.Run("Set and Get", func(t *testing.T) {
		err := repo.Set(ctx, "alice", schedule)
		assert.NoError(t, err)

		got, err := repo.Get(ctx, "alice")
		assert.NoError(t, err)
		assert.Equal(t, schedule, got)
	})

	t.Run("Miss returns error", func(t *testing.T) {
		_, err := repo.Get(ctx, "nobody")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not cached")
	})

	t.Run("Delete drops the entry", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "bob", schedule))
		assert.NoError(t, repo.Delete(ctx, "bob"))

		_, err := repo.Get(ctx, "bob")
		assert.Error(t, err)
	})

	t.Run("Cached value expires", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, "carol", schedule))

		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, "carol")
		assert.Error(t, err)
	})
}
