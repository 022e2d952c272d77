package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

var ErrNotFound = errors.New("expense not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	ListExpenses(ctx context.Context, filter ListFilter) ([]*Expense, error)
	ListExpenseAdjustments(ctx context.Context, month period.Month) ([]*adjustment.Adjustment, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx keeps an expense and its adjustment in step.
type Tx interface {
	CreateExpense(ctx context.Context, e *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	InsertAdjustment(ctx context.Context, adj *adjustment.Adjustment) (bool, error)
	DeleteAdjustments(ctx context.Context, originRef string, kinds []adjustment.Kind) (int64, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type CreateParams struct {
	Date   *time.Time
	Reason string
	Amount int64
	Actor  string
}

type ListFilter struct {
	Month  *period.Month
	Search *string
}

// Create records an expense together with its negative adjustment. The date
// defaults to today.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	var verr validation.Error

	reason := strings.TrimSpace(params.Reason)
	if reason == "" {
		verr.Add("reason", "is required")
	}

	if params.Amount <= 0 {
		verr.Add("amount", "must be greater than zero")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	date := s.now()
	if params.Date != nil {
		date = *params.Date
	}

	e := &Expense{
		Date:   period.DayStart(date),
		Reason: reason,
		Amount: params.Amount,
		User:   params.Actor,
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.CreateExpense(ctx, e); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	if _, err := tx.InsertAdjustment(ctx, e.Adjustment()); err != nil {
		return nil, fmt.Errorf("insert adjustment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return e, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Expense, error) {
	if filter.Search != nil {
		q := strings.TrimSpace(*filter.Search)
		if q == "" {
			filter.Search = nil
		} else {
			filter.Search = &q
		}
	}

	return s.repo.ListExpenses(ctx, filter)
}

// Delete removes the expense and its adjustment.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := tx.DeleteExpense(ctx, id); err != nil {
		return err
	}

	if _, err := tx.DeleteAdjustments(ctx, id.String(), []adjustment.Kind{adjustment.KindExpense}); err != nil {
		return fmt.Errorf("delete adjustment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

type ReconcileResult struct {
	Created int
	Removed int
}

// Reconcile makes month's expense adjustments match month's expenses: missing
// ones are created and those whose expense is gone are removed.
func (s *Service) Reconcile(ctx context.Context, month period.Month) (*ReconcileResult, error) {
	expenses, err := s.repo.ListExpenses(ctx, ListFilter{Month: &month})
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	adjs, err := s.repo.ListExpenseAdjustments(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("listing adjustments: %w", err)
	}

	byOrigin := make(map[string]bool, len(adjs))
	for _, a := range adjs {
		byOrigin[a.OriginRef] = true
	}

	ids := make(map[string]bool, len(expenses))
	for _, e := range expenses {
		ids[e.ID.String()] = true
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res := &ReconcileResult{}

	for _, e := range expenses {
		if byOrigin[e.ID.String()] {
			continue
		}

		created, err := tx.InsertAdjustment(ctx, e.Adjustment())
		if err != nil {
			return nil, fmt.Errorf("insert adjustment: %w", err)
		}

		if created {
			res.Created++
		}
	}

	for ref := range byOrigin {
		if ids[ref] {
			continue
		}

		n, err := tx.DeleteAdjustments(ctx, ref, []adjustment.Kind{adjustment.KindExpense})
		if err != nil {
			return nil, fmt.Errorf("delete adjustment: %w", err)
		}

		res.Removed += int(n)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}
