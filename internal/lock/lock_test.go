package lock_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mikropanel/internal/lock"
)

func TestLocal_Obtain(t *testing.T) {
	ctx := context.Background()
	l := lock.NewLocal(0)

	lease, err := l.Obtain(ctx, "shipment:1", time.Minute)
	require.NoError(t, err)

	_, err = l.Obtain(ctx, "shipment:1", time.Minute)
	assert.ErrorIs(t, err, lock.ErrNotObtained)

	other, err := l.Obtain(ctx, "shipment:2", time.Minute)
	require.NoError(t, err)
	require.NoError(t, other.Release(ctx))

	require.NoError(t, lease.Release(ctx))

	again, err := l.Obtain(ctx, "shipment:1", time.Minute)
	require.NoError(t, err)
	require.NoError(t, again.Release(ctx))
}

func TestLocal_ExpiredLeaseIsTakenOver(t *testing.T) {
	ctx := context.Background()
	l := lock.NewLocal(0)

	stale, err := l.Obtain(ctx, "k", time.Millisecond)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	fresh, err := l.Obtain(ctx, "k", time.Minute)
	require.NoError(t, err)

	// Releasing the expired lease must not free the new holder.
	require.NoError(t, stale.Release(ctx))

	_, err = l.Obtain(ctx, "k", time.Minute)
	assert.ErrorIs(t, err, lock.ErrNotObtained)

	require.NoError(t, fresh.Release(ctx))
}

func TestWith_Serializes(t *testing.T) {
	ctx := context.Background()
	l := lock.NewLocal(5 * time.Second)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			err := lock.With(ctx, l, "closing:auto:2025-03", time.Minute, func() error {
				mu.Lock()
				inside++
				maxSeen = max(maxSeen, inside)
				mu.Unlock()

				time.Sleep(2 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()

				return nil
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestWith_ReturnsFnError(t *testing.T) {
	boom := errors.New("boom")

	err := lock.With(context.Background(), lock.NewLocal(0), "k", time.Minute, func() error { return boom })

	assert.ErrorIs(t, err, boom)
}
