package lock

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchKey(t *testing.T) {
	require.Equal(t, "batch:verify:c1", BatchKey("verify", "c1"))
}

func TestWithDelay(t *testing.T) {
	t.Run("runs code and releases key", func(t *testing.T) {
		key := BatchKey("verify", "free")
		var held bool
		ok, err := WithDelay(context.Background(), key, time.Second, func() error {
			held = IsHeld(key)
			return nil
		})
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, held)
		assert.False(t, IsHeld(key))
	})
	t.Run("returns code error", func(t *testing.T) {
		ok, err := WithDelay(context.Background(), BatchKey("approve", "err"), time.Second, func() error {
			return errors.New("write failed")
		})
		require.True(t, ok)
		require.EqualError(t, err, "write failed")
	})
	t.Run("busy key times out", func(t *testing.T) {
		key := BatchKey("approve", "busy")
		release := make(chan struct{})
		started := make(chan struct{})
		go func() {
			_, _ = WithDelay(context.Background(), key, time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		called := false
		ok, err := WithDelay(context.Background(), key, 120*time.Millisecond, func() error {
			called = true
			return nil
		})
		close(release)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, called)
	})
	t.Run("cancelled context", func(t *testing.T) {
		key := BatchKey("verify", "cancel")
		holders.Store(key, time.Now())
		defer holders.Delete(key)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		ok, err := WithDelay(ctx, key, time.Second, func() error { return nil })
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
