package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/lock"
	"github.com/MrJamesThe3rd/mikropanel/internal/metrics"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/scheduler"
)

type closerFunc func(ctx context.Context, now time.Time) (*closing.AutoResult, error)

func (f closerFunc) AutoClose(ctx context.Context, now time.Time) (*closing.AutoResult, error) {
	return f(ctx, now)
}

type recorder struct {
	triggers []string
}

func (r *recorder) ClosingSaved(trigger string) {
	r.triggers = append(r.triggers, trigger)
}

var havana = time.FixedZone("CST", -4*60*60)

func TestScheduler_Run(t *testing.T) {
	// 03:30 UTC on the 6th is still the 5th in Havana.
	utc := time.Date(2025, 5, 6, 3, 30, 0, 0, time.UTC)

	type testCase struct {
		name         string
		result       *closing.AutoResult
		err          error
		wantErr      bool
		wantTriggers []string
	}

	tests := []testCase{
		{
			name:         "SavedRecordsMetric",
			result:       &closing.AutoResult{Due: true, Saved: true, Archived: true},
			wantTriggers: []string{metrics.TriggerAuto},
		},
		{
			name:   "AlreadyDone",
			result: &closing.AutoResult{Due: true},
		},
		{
			name:    "Failure",
			err:     errors.New("db down"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}

			var got time.Time

			closer := closerFunc(func(_ context.Context, now time.Time) (*closing.AutoResult, error) {
				got = now
				return tt.result, tt.err
			})

			s := scheduler.New(closer, lock.NewLocal(0), rec, havana, "00:05").
				WithClock(func() time.Time { return utc })

			res, err := s.Run(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				assert.Empty(t, rec.triggers)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.result, res)
			assert.Equal(t, 5, got.Day())
			assert.Equal(t, tt.wantTriggers, rec.triggers)
		})
	}
}

func TestScheduler_Run_SkipsWhenLocked(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 5, 0, 5, 0, 0, havana)
	locker := lock.NewLocal(0)

	lease, err := locker.Obtain(ctx, scheduler.LockKey(period.Of(now)), time.Minute)
	require.NoError(t, err)
	defer lease.Release(ctx)

	called := false
	closer := closerFunc(func(context.Context, time.Time) (*closing.AutoResult, error) {
		called = true
		return &closing.AutoResult{}, nil
	})

	res, err := scheduler.New(closer, locker, nil, havana, "00:05").
		WithClock(func() time.Time { return now }).
		Run(ctx)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.False(t, called)
}

func TestLockKey(t *testing.T) {
	m, err := period.Parse("2025-05")
	require.NoError(t, err)

	assert.Equal(t, "closing:auto:2025-05", scheduler.LockKey(m))
}
