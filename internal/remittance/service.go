package remittance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

var (
	ErrNotFound         = errors.New("no remittance open for this month")
	ErrExceedsRemaining = errors.New("amount exceeds the remaining balance")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=remittance
type Repository interface {
	GetState(ctx context.Context, month period.Month) (*State, error)
	ListSends(ctx context.Context, month period.Month) ([]*Send, error)
	OpenState(ctx context.Context, month period.Month, total int64) (*State, error)
	ClearState(ctx context.Context, month period.Month) error
	Begin(ctx context.Context) (Tx, error)
}

type Tx interface {
	GetStateForUpdate(ctx context.Context, month period.Month) (*State, error)
	InsertSend(ctx context.Context, send *Send) error
	SetRemaining(ctx context.Context, month period.Month, remaining int64) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SendParams struct {
	Month       period.Month
	Amount      int64
	Note        string
	Actor       string
	AllowExcess bool
}

func (s *Service) Get(ctx context.Context, month period.Month) (*State, error) {
	return s.repo.GetState(ctx, month)
}

func (s *Service) Sends(ctx context.Context, month period.Month) ([]*Send, error) {
	return s.repo.ListSends(ctx, month)
}

// Open starts month over: remaining becomes total and earlier sends are dropped.
func (s *Service) Open(ctx context.Context, month period.Month, total int64) (*State, error) {
	return s.repo.OpenState(ctx, month, total)
}

func (s *Service) Clear(ctx context.Context, month period.Month) error {
	return s.repo.ClearState(ctx, month)
}

// Send records money sent against month. Sending more than what remains needs
// AllowExcess; the remaining balance never goes below zero.
func (s *Service) Send(ctx context.Context, params SendParams) (*State, *Send, error) {
	if params.Amount <= 0 {
		return nil, nil, validation.Single("amount", "must be greater than zero")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	state, err := tx.GetStateForUpdate(ctx, params.Month)
	if err != nil {
		return nil, nil, err
	}

	if params.Amount > state.Remaining && !params.AllowExcess {
		return nil, nil, fmt.Errorf("%w: %d > %d", ErrExceedsRemaining, params.Amount, state.Remaining)
	}

	send := &Send{
		Month:  params.Month,
		Amount: params.Amount,
		Note:   strings.TrimSpace(params.Note),
		Actor:  params.Actor,
	}

	if err := tx.InsertSend(ctx, send); err != nil {
		return nil, nil, fmt.Errorf("insert send: %w", err)
	}

	state.Remaining = max(0, state.Remaining-params.Amount)

	if err := tx.SetRemaining(ctx, params.Month, state.Remaining); err != nil {
		return nil, nil, fmt.Errorf("set remaining: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("commit: %w", err)
	}

	return state, send, nil
}
