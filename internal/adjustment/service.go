package adjustment

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

var (
	ErrNotFound  = errors.New("adjustment not found")
	ErrDuplicate = errors.New("adjustment already registered for this origin")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=adjustment
type Repository interface {
	CreateAdjustment(ctx context.Context, adj *Adjustment) error
	ListAdjustments(ctx context.Context, filter ListFilter) ([]*Adjustment, error)
	DeleteAdjustment(ctx context.Context, id uuid.UUID) error
	SumAdjustments(ctx context.Context, month period.Month) (int64, error)
	ArchiveMonth(ctx context.Context, month period.Month, actor string) (*Archive, error)
	ListArchives(ctx context.Context) ([]*Archive, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Month  period.Month
	Amount int64
	Label  string
	Actor  string
}

type ListFilter struct {
	Month     *period.Month
	Kind      *Kind
	OriginRef *string
}

// Create records a hand-entered adjustment. Adjustments tied to movements,
// expenses or clients are written by their owning services.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Adjustment, error) {
	var verr validation.Error

	if params.Month.IsZero() {
		verr.Add("month", "is required")
	}

	if params.Amount == 0 {
		verr.Add("amount", "must not be zero")
	}

	label := strings.TrimSpace(params.Label)
	if label == "" {
		verr.Add("label", "is required")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	adj := &Adjustment{
		Month:  params.Month,
		Amount: params.Amount,
		Label:  label,
		Kind:   KindCustom,
		Actor:  params.Actor,
	}
	if err := s.repo.CreateAdjustment(ctx, adj); err != nil {
		return nil, err
	}

	return adj, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Adjustment, error) {
	return s.repo.ListAdjustments(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAdjustment(ctx, id)
}

func (s *Service) Total(ctx context.Context, month period.Month) (int64, error) {
	return s.repo.SumAdjustments(ctx, month)
}

// Archive snapshots the month's adjustments and removes them from the ledger.
func (s *Service) Archive(ctx context.Context, month period.Month, actor string) (*Archive, error) {
	return s.repo.ArchiveMonth(ctx, month, actor)
}

func (s *Service) Archives(ctx context.Context) ([]*Archive, error) {
	return s.repo.ListArchives(ctx)
}
