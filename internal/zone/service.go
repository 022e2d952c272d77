package zone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

var (
	ErrNotFound  = errors.New("zone not found")
	ErrDuplicate = errors.New("zone already exists")
	ErrInUse     = errors.New("zone has clients")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=zone
type Repository interface {
	CreateZone(ctx context.Context, z *Zone) error
	GetZone(ctx context.Context, id string) (*Zone, error)
	ListZones(ctx context.Context) ([]*Zone, error)
	DeleteZone(ctx context.Context, id string) error
	CountClients(ctx context.Context, zoneID string) (int, error)
	GetTariffs(ctx context.Context) (Tariffs, error)
	ReplaceTariffs(ctx context.Context, tariffs Tariffs) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name   string
	Tariff int64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Zone, error) {
	var verr validation.Error

	name := strings.TrimSpace(params.Name)
	id := Slug(name)

	if id == "" {
		verr.Add("name", "is required")
	}

	if params.Tariff <= 0 {
		verr.Add("tariff", "must be greater than 0")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	z := &Zone{ID: id, Name: name, Tariff: params.Tariff}
	if err := s.repo.CreateZone(ctx, z); err != nil {
		return nil, err
	}

	return z, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Zone, error) {
	return s.repo.GetZone(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Zone, error) {
	return s.repo.ListZones(ctx)
}

// Delete removes the zone and its tariff. Zones referenced by any client,
// active or not, cannot be deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	n, err := s.repo.CountClients(ctx, id)
	if err != nil {
		return fmt.Errorf("counting zone clients: %w", err)
	}

	if n > 0 {
		return fmt.Errorf("%w: %d client(s) in %s", ErrInUse, n, id)
	}

	return s.repo.DeleteZone(ctx, id)
}

func (s *Service) Tariffs(ctx context.Context) (Tariffs, error) {
	return s.repo.GetTariffs(ctx)
}

// SaveTariffs overwrites the whole tariff table. Every zone id must exist and
// every price must be positive.
func (s *Service) SaveTariffs(ctx context.Context, tariffs Tariffs) error {
	zones, err := s.repo.ListZones(ctx)
	if err != nil {
		return fmt.Errorf("listing zones: %w", err)
	}

	known := make(map[string]struct{}, len(zones))
	for _, z := range zones {
		known[z.ID] = struct{}{}
	}

	var verr validation.Error

	for id, price := range tariffs {
		if _, ok := known[id]; !ok {
			verr.Add(id, "unknown zone")
			continue
		}

		if price <= 0 {
			verr.Add(id, "must be greater than 0")
		}
	}

	if err := verr.Err(); err != nil {
		return err
	}

	return s.repo.ReplaceTariffs(ctx, tariffs)
}
