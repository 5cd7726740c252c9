package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultWindow    = time.Minute
	DefaultCacheSize = 1000
)

type window struct {
	hits     int
	firstHit time.Time
}

// MemoryLimiter keeps fixed windows in a bounded LRU. Counters are local to
// the process; evicted keys start over.
type MemoryLimiter struct {
	mu     sync.Mutex
	cache  *lru.Cache[string, *window]
	window time.Duration
	now    func() time.Time
}

func NewMemoryLimiter(size int, windowSize time.Duration) (*MemoryLimiter, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if windowSize <= 0 {
		windowSize = DefaultWindow
	}
	cache, err := lru.New[string, *window](size)
	if err != nil {
		return nil, err
	}
	return &MemoryLimiter{cache: cache, window: windowSize, now: time.Now}, nil
}

func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int) (domain.RateLimitDecision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.cache.Get(key)
	if !ok || now.Sub(entry.firstHit) > l.window {
		l.cache.Add(key, &window{hits: 1, firstHit: now})
		return domain.RateLimitDecision{Allowed: true}, nil
	}

	if entry.hits+1 > limit {
		return domain.RateLimitDecision{
			Allowed:    false,
			RetryAfter: l.window - now.Sub(entry.firstHit),
		}, nil
	}

	entry.hits++
	return domain.RateLimitDecision{Allowed: true}, nil
}
