package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)

	t.Run(`limit within one window`, func(t *testing.T) {
		limiter := NewMemoryLimiter()
		limiter.now = func() time.Time { return start }
		for idx := 0; idx < 3; idx++ {
			allowed, err := limiter.Allow(ctx, "user-1", 3, time.Minute)
			require.NoError(t, err)
			require.True(t, allowed)
		}
		allowed, _ := limiter.Allow(ctx, "user-1", 3, time.Minute)
		require.False(t, allowed)

		allowed, _ = limiter.Allow(ctx, "user-2", 3, time.Minute)
		require.True(t, allowed, "keys are counted separately")
	})

	t.Run(`next window starts over`, func(t *testing.T) {
		limiter := NewMemoryLimiter()
		now := start
		limiter.now = func() time.Time { return now }
		allowed, _ := limiter.Allow(ctx, "user-1", 1, time.Minute)
		require.True(t, allowed)
		allowed, _ = limiter.Allow(ctx, "user-1", 1, time.Minute)
		require.False(t, allowed)

		now = start.Add(time.Minute)
		allowed, _ = limiter.Allow(ctx, "user-1", 1, time.Minute)
		require.True(t, allowed)
	})

	t.Run(`cleanup drops finished windows`, func(t *testing.T) {
		limiter := NewMemoryLimiter()
		now := start
		limiter.now = func() time.Time { return now }
		_, _ = limiter.Allow(ctx, "user-1", 5, time.Minute)
		_, _ = limiter.Allow(ctx, "user-2", 5, time.Minute)
		require.Zero(t, limiter.Cleanup())

		now = start.Add(2 * time.Minute)
		require.Equal(t, 2, limiter.Cleanup())
	})

	t.Run(`disabled limits always allow`, func(t *testing.T) {
		limiter := NewMemoryLimiter()
		allowed, _ := limiter.Allow(ctx, "", 1, time.Minute)
		require.True(t, allowed)
		allowed, _ = limiter.Allow(ctx, "user-1", 0, time.Minute)
		require.True(t, allowed)
	})

	t.Run(`concurrent hits never exceed the limit`, func(t *testing.T) {
		limiter := NewMemoryLimiter()
		limiter.now = func() time.Time { return start }
		var wg sync.WaitGroup
		var mu sync.Mutex
		allowedCount := 0
		for idx := 0; idx < 50; idx++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if allowed, _ := limiter.Allow(ctx, "user-1", 10, time.Minute); allowed {
					mu.Lock()
					allowedCount++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		require.Equal(t, 10, allowedCount)
	})
}
