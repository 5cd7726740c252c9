package ratelimit

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(t *testing.T, size int) (*MemoryLimiter, *fakeClock) {
	t.Helper()
	l, err := NewMemoryLimiter(size, time.Minute)
	require.NoError(t, err)
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	l.now = clock.Now
	return l, clock
}

func TestMemoryLimiter_FiveThenDenied(t *testing.T) {
	l, clock := newTestLimiter(t, 10)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		d, err := l.Allow(ctx, "comment:u1:1.2.3.4", 5)
		require.NoError(t, err)
		assert.True(t, d.Allowed, "hit %d", i+1)
		clock.Advance(time.Second)
	}

	d, err := l.Allow(ctx, "comment:u1:1.2.3.4", 5)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 55*time.Second, d.RetryAfter)
}

func TestMemoryLimiter_ResetsAfterWindow(t *testing.T) {
	l, clock := newTestLimiter(t, 10)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := l.Allow(ctx, "k", 5)
		require.NoError(t, err)
	}
	d, _ := l.Allow(ctx, "k", 5)
	require.False(t, d.Allowed)

	clock.Advance(time.Minute)
	d, _ = l.Allow(ctx, "k", 5)
	assert.False(t, d.Allowed, "window boundary is inclusive")

	clock.Advance(time.Millisecond)
	d, _ = l.Allow(ctx, "k", 5)
	assert.True(t, d.Allowed)
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(t, 10)
	ctx := context.Background()

	d, _ := l.Allow(ctx, "a", 1)
	assert.True(t, d.Allowed)
	d, _ = l.Allow(ctx, "a", 1)
	assert.False(t, d.Allowed)
	d, _ = l.Allow(ctx, "b", 1)
	assert.True(t, d.Allowed)
}

func TestMemoryLimiter_EvictsLeastRecentlyUsed(t *testing.T) {
	l, _ := newTestLimiter(t, 2)
	ctx := context.Background()

	_, _ = l.Allow(ctx, "a", 1)
	for i := 0; i < 2; i++ {
		_, _ = l.Allow(ctx, fmt.Sprintf("other-%d", i), 1)
	}

	d, _ := l.Allow(ctx, "a", 1)
	assert.True(t, d.Allowed, "evicted key starts a new window")
}
