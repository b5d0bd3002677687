package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "estatedesk:ratelimit:"

// RedisRateLimiter keeps one sorted set per key and window, scored by attempt
// time, so counts are shared across server instances.
type RedisRateLimiter struct {
	client *redis.Client
}

func NewRedisRateLimiter(client *redis.Client) RateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error) {
	now := time.Now()
	for _, w := range config.windows() {
		if w.limit <= 0 {
			continue
		}
		ok, err := l.record(ctx, windowKey(key, w.duration), w, now)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// record trims expired attempts, counts the rest and adds this one.
func (l *RedisRateLimiter) record(ctx context.Context, setKey string, w window, now time.Time) (bool, error) {
	stamp := now.UnixNano()
	cutoff := strconv.FormatInt(now.Add(-w.duration).UnixNano(), 10)

	var count *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, setKey, "-inf", cutoff)
		count = p.ZCard(ctx, setKey)
		p.ZAdd(ctx, setKey, redis.Z{Score: float64(stamp), Member: stamp})
		p.Expire(ctx, setKey, w.duration+time.Minute)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", setKey, err)
	}
	return count.Val() < int64(w.limit), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	keys := make([]string, 0, 3)
	for _, w := range (RateLimitConfig{}).windows() {
		keys = append(keys, windowKey(key, w.duration))
	}
	if err := l.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("reset rate limit %s: %w", key, err)
	}
	return nil
}

func windowKey(key string, d time.Duration) string {
	return keyPrefix + key + ":" + d.String()
}
