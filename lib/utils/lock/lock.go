package lock

import (
	"context"
	"strings"
	"sync"
	"time"
)

const pollInterval = 50 * time.Millisecond

var (
	holders sync.Map
)

// BatchKey scopes a batch operation to one coordinator.
func BatchKey(operation, coordinatorID string) string {
	return strings.Join([]string{"batch", operation, coordinatorID}, ":")
}

// IsHeld reports whether key is currently locked in this process.
func IsHeld(key string) bool {
	_, ok := holders.Load(key)
	return ok
}

// WithDelay waits up to wait for key and runs safeCode while holding it.
// success is false when the key stayed busy or ctx ended first; safeCode is not run then.
func WithDelay(ctx context.Context, key string, wait time.Duration, safeCode func() error) (success bool, err error) {
	if !acquire(ctx, key, wait) {
		return false, nil
	}
	defer holders.Delete(key)
	return true, safeCode()
}

func acquire(ctx context.Context, key string, wait time.Duration) bool {
	if _, busy := holders.LoadOrStore(key, time.Now()); !busy {
		return true
	}
	deadline := time.NewTimer(wait)
	defer deadline.Stop()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-deadline.C:
			return false
		case <-ctx.Done():
			return false
		case <-ticker.C:
			if _, busy := holders.LoadOrStore(key, time.Now()); !busy {
				return true
			}
		}
	}
}
