package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryRateLimiter keeps attempt timestamps per key in process. It is used
// when no Redis is configured; limits then apply per instance.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	now      func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

func (l *MemoryRateLimiter) Allow(_ context.Context, key string, config RateLimitConfig) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	longest := time.Duration(0)
	allowed := true
	for _, w := range config.windows() {
		if w.limit <= 0 {
			continue
		}
		if w.duration > longest {
			longest = w.duration
		}
		if countSince(l.attempts[key], now.Add(-w.duration)) >= w.limit {
			allowed = false
		}
	}

	kept := l.attempts[key][:0]
	for _, t := range l.attempts[key] {
		if t.After(now.Add(-longest)) {
			kept = append(kept, t)
		}
	}
	l.attempts[key] = append(kept, now)
	return allowed, nil
}

func (l *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	l.mu.Lock()
	delete(l.attempts, key)
	l.mu.Unlock()
	return nil
}

func countSince(ts []time.Time, since time.Time) int {
	n := 0
	for _, t := range ts {
		if t.After(since) {
			n++
		}
	}
	return n
}
