package ratelimit

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redisForTest uses DB 15 on a local Redis and skips when none is running.
func redisForTest(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis unavailable: %v", err)
	}
	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		_ = client.Close()
	})
	return client
}

func TestRedisRateLimiter_PinAttempts(t *testing.T) {
	limiter := NewRedisRateLimiter(redisForTest(t))
	ctx := context.Background()
	limits := RateLimitConfig{RequestsPerHour: 5}

	results := make([]bool, 0, 6)
	for i := 0; i < 6; i++ {
		ok, err := limiter.Allow(ctx, "pin:12:10.0.0.1", limits)
		require.NoError(t, err)
		results = append(results, ok)
	}
	assert.Equal(t, []bool{true, true, true, true, true, false}, results)

	ok, err := limiter.Allow(ctx, "pin:12:10.0.0.2", limits)
	require.NoError(t, err)
	assert.True(t, ok, "other client has its own budget")
}

func TestRedisRateLimiter_ResetClearsAllWindows(t *testing.T) {
	limiter := NewRedisRateLimiter(redisForTest(t))
	ctx := context.Background()
	limits := RateLimitConfig{RequestsPerMinute: 1, RequestsPerDay: 1}

	ok, err := limiter.Allow(ctx, "login:ops", limits)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = limiter.Allow(ctx, "login:ops", limits)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, limiter.Reset(ctx, "login:ops"))

	ok, err = limiter.Allow(ctx, "login:ops", limits)
	require.NoError(t, err)
	assert.True(t, ok)
}
