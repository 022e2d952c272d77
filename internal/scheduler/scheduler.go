// Package scheduler runs the automatic monthly closing once a day.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/lock"
	"github.com/MrJamesThe3rd/mikropanel/internal/metrics"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

const lockTTL = 2 * time.Minute

type Closer interface {
	AutoClose(ctx context.Context, now time.Time) (*closing.AutoResult, error)
}

type Recorder interface {
	ClosingSaved(trigger string)
}

type Scheduler struct {
	closer   Closer
	locker   lock.Locker
	recorder Recorder
	loc      *time.Location
	at       string
	now      func() time.Time
	cron     *gocron.Scheduler
}

func New(closer Closer, locker lock.Locker, recorder Recorder, loc *time.Location, at string) *Scheduler {
	return &Scheduler{
		closer:   closer,
		locker:   locker,
		recorder: recorder,
		loc:      loc,
		at:       at,
		now:      time.Now,
	}
}

// WithClock replaces the time source.
func (s *Scheduler) WithClock(now func() time.Time) *Scheduler {
	s.now = now
	return s
}

// LockKey names the lock guarding the automatic closing of month.
func LockKey(month period.Month) string {
	return "closing:auto:" + month.String()
}

// Run performs one automatic closing attempt. When another instance holds the
// lock the attempt is skipped.
func (s *Scheduler) Run(ctx context.Context) (*closing.AutoResult, error) {
	now := s.now().In(s.loc)

	var res *closing.AutoResult

	err := lock.With(ctx, s.locker, LockKey(period.Of(now)), lockTTL, func() error {
		var err error

		res, err = s.closer.AutoClose(ctx, now)

		return err
	})
	if errors.Is(err, lock.ErrNotObtained) {
		slog.Info("automatic closing skipped, lock held elsewhere", "month", period.Of(now).String())
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("automatic closing: %w", err)
	}

	if res.Saved && s.recorder != nil {
		s.recorder.ClosingSaved(metrics.TriggerAuto)
	}

	return res, nil
}

func (s *Scheduler) job() {
	if _, err := s.Run(context.Background()); err != nil {
		slog.Error("automatic closing failed", "error", err)
	}
}

// Start schedules the daily job and runs one catch-up attempt right away.
func (s *Scheduler) Start() error {
	s.cron = gocron.NewScheduler(s.loc)

	if _, err := s.cron.Every(1).Day().At(s.at).Do(s.job); err != nil {
		return fmt.Errorf("scheduling automatic closing: %w", err)
	}

	s.cron.StartAsync()

	go s.job()

	slog.Info("scheduler started", "at", s.at, "timezone", s.loc.String())

	return nil
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
