// Package ratelimit counts attempts per key in sliding windows, in Redis when
// configured and in process otherwise.
package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

func (c RateLimitConfig) windows() []window {
	return []window{
		{time.Minute, c.RequestsPerMinute},
		{time.Hour, c.RequestsPerHour},
		{24 * time.Hour, c.RequestsPerDay},
	}
}

type window struct {
	duration time.Duration
	limit    int
}

// RateLimiter records an attempt and reports whether it is within every
// configured window. Windows with a limit of zero are ignored.
type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	Reset(ctx context.Context, key string) error
}
