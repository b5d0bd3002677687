package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// messageKeyPrefix is the prefix for inbound webhook message ids
const messageKeyPrefix = "wa_msg:"

// RedisMessageDeduplicator records inbound message ids so that webhook
// retries delivered to any instance are handled once.
type RedisMessageDeduplicator struct {
	client *redis.Client
}

func NewRedisMessageDeduplicator(client *redis.Client) *RedisMessageDeduplicator {
	return &RedisMessageDeduplicator{client: client}
}

// FirstSeen atomically claims the id using SetNX. It returns true only for
// the first caller within ttl.
func (d *RedisMessageDeduplicator) FirstSeen(ctx context.Context, messageID string, ttl time.Duration) (bool, error) {
	acquired, err := d.client.SetNX(ctx, messageKeyPrefix+messageID, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record message id: %w", err)
	}
	return acquired, nil
}
