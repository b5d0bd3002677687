package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})
	return client
}

func TestRedisMessageDeduplicator_FirstSeen(t *testing.T) {
	dedup := NewRedisMessageDeduplicator(setupTestRedis(t))
	ctx := context.Background()

	first, err := dedup.FirstSeen(ctx, "wamid.1", time.Minute)
	require.NoError(t, err)
	assert.True(t, first)

	again, err := dedup.FirstSeen(ctx, "wamid.1", time.Minute)
	require.NoError(t, err)
	assert.False(t, again)

	other, err := dedup.FirstSeen(ctx, "wamid.2", time.Minute)
	require.NoError(t, err)
	assert.True(t, other)
}
