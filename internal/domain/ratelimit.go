package domain

import (
	"context"
	"time"
)

type RateLimitDecision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// RateLimiter counts hits per key inside a fixed window. Implementations
// backed by process memory do not coordinate across instances.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int) (RateLimitDecision, error)
}
