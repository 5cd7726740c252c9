package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// allowScript returns {allowed, retryAfterMs}. The window starts at the
// first hit and expires with the key.
var allowScript = redis.NewScript(`
local hits = redis.call('GET', KEYS[1])
if not hits then
  redis.call('SET', KEYS[1], 1, 'PX', ARGV[2])
  return {1, 0}
end
if tonumber(hits) + 1 > tonumber(ARGV[1]) then
  local ttl = redis.call('PTTL', KEYS[1])
  if ttl < 0 then
    ttl = 0
  end
  return {0, ttl}
end
redis.call('INCR', KEYS[1])
return {1, 0}
`)

// RedisLimiter shares windows between instances through redis.
type RedisLimiter struct {
	client redis.Scripter
	window time.Duration
}

func NewRedisLimiter(client redis.Scripter, windowSize time.Duration) *RedisLimiter {
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}
	return &RedisLimiter{client: client, window: windowSize}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int) (domain.RateLimitDecision, error) {
	res, err := allowScript.Run(ctx, l.client, []string{keyPrefix + key}, limit, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return domain.RateLimitDecision{}, fmt.Errorf("rate limit %s: %w", key, err)
	}
	if len(res) != 2 {
		return domain.RateLimitDecision{}, fmt.Errorf("rate limit %s: unexpected reply %v", key, res)
	}
	if res[0] == 1 {
		return domain.RateLimitDecision{Allowed: true}, nil
	}
	return domain.RateLimitDecision{
		Allowed:    false,
		RetryAfter: time.Duration(res[1]) * time.Millisecond,
	}, nil
}
