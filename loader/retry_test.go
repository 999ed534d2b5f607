package loader

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/certsearch/storage"
)

func always(error) bool { return true }

func TestRetryWithBackoff(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds first time", func(t *testing.T) {
		calls := 0
		err := retryWithBackoff(ctx, func() error { calls++; return nil }, always, 3, time.Millisecond)
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("succeeds after retries", func(t *testing.T) {
		calls := 0
		err := retryWithBackoff(ctx, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, always, 3, time.Millisecond)
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("returns last error", func(t *testing.T) {
		calls := 0
		err := retryWithBackoff(ctx, func() error { calls++; return errors.New("still failing") }, always, 2, time.Millisecond)
		assert.EqualError(t, err, "still failing")
		assert.Equal(t, 2, calls)
	})

	t.Run("permanent errors are not retried", func(t *testing.T) {
		calls := 0
		err := retryWithBackoff(ctx, func() error { calls++; return storage.ErrDuplicateKey }, isTransient, 5, time.Millisecond)
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)
		assert.Equal(t, 1, calls)
	})

	t.Run("invalid attempts", func(t *testing.T) {
		err := retryWithBackoff(ctx, func() error { return nil }, always, 0, time.Millisecond)
		assert.ErrorIs(t, err, ErrInvalidMaxAttempts)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		err := retryWithBackoff(cancelled, func() error { return nil }, always, 3, time.Millisecond)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
