package closing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

var ErrNotFound = errors.New("closing not found")

// AutoActor signs closings and archives made by the scheduled run.
const AutoActor = "system"

// Run records which automatic steps already happened for a month.
type Run struct {
	Month     period.Month
	AutoSaved bool
	AutoReset bool
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=closing
type Repository interface {
	ActiveClients(ctx context.Context) ([]*client.Client, error)
	Tariffs(ctx context.Context) (zone.Tariffs, error)
	ListZones(ctx context.Context) ([]*zone.Zone, error)
	SumAdjustments(ctx context.Context, month period.Month) (int64, error)
	GetClosing(ctx context.Context, month period.Month) (*Figures, error)
	ListClosings(ctx context.Context, from, to period.Month) ([]*Figures, error)
	ListMovements(ctx context.Context, filter inventory.MovementFilter) ([]*inventory.Movement, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx spans the closing row, the remittance it opens, the adjustment archive
// and the automatic run flags.
type Tx interface {
	LockRun(ctx context.Context, month period.Month) (*Run, error)
	SaveRun(ctx context.Context, run *Run) error
	SumAdjustments(ctx context.Context, month period.Month) (int64, error)
	UpsertClosing(ctx context.Context, f *Figures) error
	DeleteClosing(ctx context.Context, month period.Month) error
	OpenRemittance(ctx context.Context, month period.Month, total int64) error
	ClearRemittance(ctx context.Context, month period.Month) error
	ArchiveAdjustments(ctx context.Context, month period.Month, actor string) (*adjustment.Archive, error)
	Commit() error
	Rollback() error
}

// Settings configures the closing service. Amounts are in cents.
type Settings struct {
	Params
	CycleDay      int
	TargetUnits   int
	SalesResetDay int
	NanoGain      int64
	RouterFee     int64
}

type Service struct {
	repo     Repository
	settings Settings
	now      func() time.Time
}

func NewService(repo Repository, settings Settings) *Service {
	return &Service{repo: repo, settings: settings, now: time.Now}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) billing(ctx context.Context) ([]*client.Client, zone.Tariffs, error) {
	clients, err := s.repo.ActiveClients(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("listing clients: %w", err)
	}

	tariffs, err := s.repo.Tariffs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading tariffs: %w", err)
	}

	return clients, tariffs, nil
}

// Preview computes month's figures from the current clients without saving.
func (s *Service) Preview(ctx context.Context, month period.Month) (*Figures, error) {
	clients, tariffs, err := s.billing(ctx)
	if err != nil {
		return nil, err
	}

	adj, err := s.repo.SumAdjustments(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("summing adjustments: %w", err)
	}

	return Compute(month, clients, tariffs, adj, s.settings.Params), nil
}

func (s *Service) Get(ctx context.Context, month period.Month) (*Figures, error) {
	return s.repo.GetClosing(ctx, month)
}

// Save stores month's closing, replacing an earlier one, and opens the
// remittance for its net amount.
func (s *Service) Save(ctx context.Context, month period.Month, actor string) (*Figures, error) {
	clients, tariffs, err := s.billing(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	f, err := s.save(ctx, tx, month, clients, tariffs, actor)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return f, nil
}

func (s *Service) save(ctx context.Context, tx Tx, month period.Month, clients []*client.Client, tariffs zone.Tariffs, actor string) (*Figures, error) {
	adj, err := tx.SumAdjustments(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("summing adjustments: %w", err)
	}

	f := Compute(month, clients, tariffs, adj, s.settings.Params)
	f.ClosedBy = actor

	if err := tx.UpsertClosing(ctx, f); err != nil {
		return nil, fmt.Errorf("saving closing: %w", err)
	}

	if err := tx.OpenRemittance(ctx, month, f.Net); err != nil {
		return nil, fmt.Errorf("opening remittance: %w", err)
	}

	return f, nil
}

// Reset undoes month's closing: the closing and remittance are removed, the
// adjustments are archived and cleared, and the automatic run may happen again.
func (s *Service) Reset(ctx context.Context, month period.Month, actor string) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.LockRun(ctx, month); err != nil {
		return fmt.Errorf("locking run: %w", err)
	}

	if err := tx.DeleteClosing(ctx, month); err != nil {
		return fmt.Errorf("deleting closing: %w", err)
	}

	if _, err := tx.ArchiveAdjustments(ctx, month, actor); err != nil {
		return fmt.Errorf("archiving adjustments: %w", err)
	}

	if err := tx.SaveRun(ctx, &Run{Month: month}); err != nil {
		return fmt.Errorf("clearing run: %w", err)
	}

	if err := tx.ClearRemittance(ctx, month); err != nil {
		return fmt.Errorf("clearing remittance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// AutoResult reports what an automatic run did.
type AutoResult struct {
	Month    period.Month
	Due      bool
	Saved    bool
	Archived bool
	Figures  *Figures
}

// AutoClose runs on the cycle day: it saves the month's closing once and then
// archives its adjustments once. Other days do nothing.
func (s *Service) AutoClose(ctx context.Context, now time.Time) (*AutoResult, error) {
	res := &AutoResult{Month: period.Of(now)}

	if now.Day() != s.settings.CycleDay {
		return res, nil
	}

	res.Due = true

	clients, tariffs, err := s.billing(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	run, err := tx.LockRun(ctx, res.Month)
	if err != nil {
		return nil, fmt.Errorf("locking run: %w", err)
	}

	if !run.AutoSaved {
		f, err := s.save(ctx, tx, res.Month, clients, tariffs, AutoActor)
		if err != nil {
			return nil, err
		}

		run.AutoSaved = true
		res.Saved = true
		res.Figures = f
	}

	if !run.AutoReset {
		if _, err := tx.ArchiveAdjustments(ctx, res.Month, AutoActor); err != nil {
			return nil, fmt.Errorf("archiving adjustments: %w", err)
		}

		run.AutoReset = true
		res.Archived = true
	}

	if !res.Saved && !res.Archived {
		return res, nil
	}

	if err := tx.SaveRun(ctx, run); err != nil {
		return nil, fmt.Errorf("saving run: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	slog.Info("automatic closing",
		"month", res.Month.String(),
		"saved", res.Saved,
		"archived", res.Archived,
	)

	return res, nil
}

// Series returns the stored closings of the last n months, oldest first. Months
// without a closing come back zeroed.
func (s *Service) Series(ctx context.Context, n int) ([]*Figures, error) {
	months := period.Series(period.Of(s.now()), n)
	if len(months) == 0 {
		return nil, nil
	}

	saved, err := s.repo.ListClosings(ctx, months[0], months[len(months)-1])
	if err != nil {
		return nil, err
	}

	byMonth := make(map[period.Month]*Figures, len(saved))
	for _, f := range saved {
		byMonth[f.Month] = f
	}

	out := make([]*Figures, len(months))
	for i, m := range months {
		if f, ok := byMonth[m]; ok {
			out[i] = f
			continue
		}

		out[i] = &Figures{Month: m}
	}

	return out, nil
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	clients, tariffs, err := s.billing(ctx)
	if err != nil {
		return nil, err
	}

	zones, err := s.repo.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}

	return Summarize(zones, clients, tariffs, s.settings.TargetUnits, s.settings.Params), nil
}

// SalesBonus counts the sales gains of the current sales period, which starts
// on the most recent sales reset day.
func (s *Service) SalesBonus(ctx context.Context) (*SalesBonus, error) {
	since, _ := period.Cycle(s.now(), s.settings.SalesResetDay)

	movements, err := s.repo.ListMovements(ctx, inventory.MovementFilter{From: &since})
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}

	return CountBonus(since, movements, s.settings.NanoGain, s.settings.RouterFee), nil
}
