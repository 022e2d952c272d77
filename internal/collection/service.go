package collection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

var ErrNotFound = errors.New("collection item not found")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=collection
type Repository interface {
	ListItems(ctx context.Context, month period.Month) ([]*Item, error)
	InsertItems(ctx context.Context, items []*Item) error
	ReplaceItems(ctx context.Context, month period.Month, items []*Item) error
	SetPaid(ctx context.Context, id string, paid bool, actor string, at time.Time) (*Item, error)
	ActiveClients(ctx context.Context) ([]*client.Client, error)
	Tariffs(ctx context.Context) (zone.Tariffs, error)
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

func (s *Service) build(ctx context.Context, month period.Month) ([]*Item, error) {
	clients, err := s.repo.ActiveClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}

	tariffs, err := s.repo.Tariffs(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tariffs: %w", err)
	}

	return Build(month, clients, tariffs), nil
}

// Get returns month's batch, building and storing it the first time. Once
// stored the batch only changes through SetPaid or Force.
func (s *Service) Get(ctx context.Context, month period.Month) ([]*Item, error) {
	items, err := s.repo.ListItems(ctx, month)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		return items, nil
	}

	built, err := s.build(ctx, month)
	if err != nil {
		return nil, err
	}

	if len(built) == 0 {
		return built, nil
	}

	if err := s.repo.InsertItems(ctx, built); err != nil {
		return nil, fmt.Errorf("storing batch: %w", err)
	}

	// A concurrent first read may have stored the batch too; the stored rows win.
	return s.repo.ListItems(ctx, month)
}

// Force rebuilds month's batch from the current clients, discarding paid flags.
func (s *Service) Force(ctx context.Context, month period.Month) ([]*Item, error) {
	built, err := s.build(ctx, month)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceItems(ctx, month, built); err != nil {
		return nil, fmt.Errorf("replacing batch: %w", err)
	}

	return built, nil
}

func (s *Service) SetPaid(ctx context.Context, id string, paid bool, actor string) (*Item, error) {
	return s.repo.SetPaid(ctx, id, paid, actor, s.now())
}

func (s *Service) Summary(ctx context.Context, month period.Month) (*Summary, error) {
	items, err := s.Get(ctx, month)
	if err != nil {
		return nil, err
	}

	return Summarize(month, items), nil
}
