package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

var ErrNotFound = errors.New("client not found")

// Via values recorded in the detail of assignment movements.
const (
	ViaCreate = "alta_usuario"
	ViaUpdate = "editar_usuario"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=client
type Repository interface {
	GetClient(ctx context.Context, id uuid.UUID) (*Client, error)
	ListClients(ctx context.Context, filter ListFilter) ([]*Client, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	DeleteClient(ctx context.Context, id uuid.UUID) error
	ZoneExists(ctx context.Context, zoneID string) (bool, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx spans a client write and the equipment and adjustment writes it causes.
type Tx interface {
	CreateClient(ctx context.Context, c *Client) error
	GetClientForUpdate(ctx context.Context, id uuid.UUID) (*Client, error)
	UpdateClient(ctx context.Context, c *Client) error
	Tariffs(ctx context.Context) (zone.Tariffs, error)

	TakeAvailable(ctx context.Context, key string, limit int) ([]*inventory.Equipment, error)
	MarkAssigned(ctx context.Context, id uuid.UUID, clientID uuid.UUID, clientName string, at time.Time) error
	CreateMovement(ctx context.Context, mv *inventory.Movement) error

	InsertAdjustment(ctx context.Context, adj *adjustment.Adjustment) (bool, error)

	Commit() error
	Rollback() error
}

type Service struct {
	repo      Repository
	anchorDay int
	now       func() time.Time
}

// NewService builds the client service. anchorDay is the day of the month
// billing cycles start on.
func NewService(repo Repository, anchorDay int) *Service {
	return &Service{repo: repo, anchorDay: anchorDay, now: time.Now}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type ListFilter struct {
	ZoneID *string
	Active *bool
	Search *string
}

type CreateParams struct {
	Params
	ApplyProration bool
	Actor          string
}

type UpdateParams struct {
	Params
	Active *bool
	Actor  string
}

func (s *Service) validate(ctx context.Context, params Params) (Params, error) {
	p, err := params.normalize()

	var verr *validation.Error
	if err != nil && !errors.As(err, &verr) {
		return p, err
	}

	if p.ZoneID != "" {
		ok, zerr := s.repo.ZoneExists(ctx, p.ZoneID)
		if zerr != nil {
			return p, fmt.Errorf("checking zone: %w", zerr)
		}

		if !ok {
			if verr == nil {
				verr = &validation.Error{}
			}

			verr.Add("zone_id", "unknown zone")
		}
	}

	if verr != nil {
		return p, verr.Err()
	}

	return p, nil
}

// Create registers a client, assigns the requested router and switch, and
// optionally records the prorated first charge. Nothing is persisted when any
// step fails, including a missing unit.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Client, error) {
	p, err := s.validate(ctx, params.Params)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	c := &Client{
		Name:         p.Name,
		IP:           p.IP,
		MAC:          p.MAC,
		ServiceUnits: p.ServiceUnits,
		ZoneID:       p.ZoneID,
		Active:       true,
		Router:       p.Router,
		Switch:       p.Switch,
	}

	if err := tx.CreateClient(ctx, c); err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	now := s.now()

	if err := assignEquipment(ctx, tx, c, p.Router, p.Switch, params.Actor, ViaCreate, now); err != nil {
		return nil, err
	}

	if params.ApplyProration {
		if err := s.prorate(ctx, tx, c, params.Actor, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return c, nil
}

func (s *Service) prorate(ctx context.Context, tx Tx, c *Client, actor string, now time.Time) error {
	tariffs, err := tx.Tariffs(ctx)
	if err != nil {
		return fmt.Errorf("tariffs: %w", err)
	}

	amount := Prorate(now, s.anchorDay, c.MonthlyFee(tariffs))
	if amount <= 0 {
		return nil
	}

	adj := &adjustment.Adjustment{
		Month:     period.Of(now),
		Amount:    amount,
		Label:     fmt.Sprintf("Ajuste prorrateo (%s) hasta día %d", c.Name, s.anchorDay),
		Kind:      adjustment.KindProration,
		OriginRef: c.ID.String(),
		Actor:     actor,
	}

	if _, err := tx.InsertAdjustment(ctx, adj); err != nil {
		return fmt.Errorf("insert proration: %w", err)
	}

	return nil
}

func assignEquipment(ctx context.Context, tx Tx, c *Client, router, sw bool, actor, via string, at time.Time) error {
	labels := make([]string, 0, 2)
	if router {
		labels = append(labels, inventory.LabelRouter)
	}

	if sw {
		labels = append(labels, inventory.LabelSwitch)
	}

	for _, label := range labels {
		_, err := inventory.AssignUnit(ctx, tx, inventory.AssignParams{
			Label:      label,
			ClientID:   c.ID,
			ClientName: c.Name,
			Actor:      actor,
			Via:        via,
		}, at)
		if err != nil {
			return fmt.Errorf("assign %s: %w", label, err)
		}
	}

	return nil
}

// Update saves the client. A router or switch flag turned on assigns a unit in
// the same transaction; a flag turned off only changes the flag.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Client, error) {
	p, err := s.validate(ctx, params.Params)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	c, err := tx.GetClientForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	addRouter := p.Router && !c.Router
	addSwitch := p.Switch && !c.Switch

	c.Name = p.Name
	c.IP = p.IP
	c.MAC = p.MAC
	c.ServiceUnits = p.ServiceUnits
	c.ZoneID = p.ZoneID
	c.Router = p.Router
	c.Switch = p.Switch

	if params.Active != nil {
		c.Active = *params.Active
	}

	if err := tx.UpdateClient(ctx, c); err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}

	if err := assignEquipment(ctx, tx, c, addRouter, addSwitch, params.Actor, ViaUpdate, s.now()); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Client, error) {
	return s.repo.GetClient(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Client, error) {
	if filter.Search != nil {
		q := strings.TrimSpace(*filter.Search)
		if q == "" {
			filter.Search = nil
		} else {
			filter.Search = &q
		}
	}

	return s.repo.ListClients(ctx, filter)
}

func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*Client, error) {
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return nil, err
	}

	return s.repo.GetClient(ctx, id)
}

// Delete removes the client for good. Equipment and movements keep the
// client's name.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteClient(ctx, id)
}
