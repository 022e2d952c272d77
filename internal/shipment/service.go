package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/lock"
)

var (
	ErrNotFound          = errors.New("shipment not found")
	ErrInvalidTransition = errors.New("invalid shipment status transition")
)

const lockTTL = 30 * time.Second

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=shipment
type Repository interface {
	ListShipments(ctx context.Context, status *Status) ([]*Shipment, error)
	GetShipment(ctx context.Context, id uuid.UUID) (*Shipment, error)
	CreateShipment(ctx context.Context, sh *Shipment) error
	Begin(ctx context.Context) (Tx, error)
}

// Tx spans a shipment change and the inventory units it adds or removes.
type Tx interface {
	GetShipmentForUpdate(ctx context.Context, id uuid.UUID) (*Shipment, error)
	MarkArrived(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkPickedUp(ctx context.Context, id uuid.UUID, actor string, at time.Time) (bool, error)
	ReplaceItems(ctx context.Context, id uuid.UUID, items []Item, note string) error
	DeleteShipment(ctx context.Context, id uuid.UUID) error

	AddUnits(ctx context.Context, label string, price *int64, qty int) ([]*inventory.Equipment, error)
	TakeAvailable(ctx context.Context, key string, limit int) ([]*inventory.Equipment, error)
	DeleteUnits(ctx context.Context, ids []uuid.UUID) error

	Commit() error
	Rollback() error
}

type Service struct {
	repo   Repository
	locker lock.Locker
	now    func() time.Time
}

func NewService(repo Repository, locker lock.Locker) *Service {
	return &Service{repo: repo, locker: locker, now: time.Now}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type CreateParams struct {
	Items []Item
	Note  string
	Actor string
}

type UpdateParams struct {
	Items []Item
	Note  string
}

func (s *Service) List(ctx context.Context, status *Status) ([]*Shipment, error) {
	return s.repo.ListShipments(ctx, status)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Shipment, error) {
	return s.repo.GetShipment(ctx, id)
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Shipment, error) {
	items, err := NormalizeItems(params.Items)
	if err != nil {
		return nil, err
	}

	sh := &Shipment{
		CreatedBy: params.Actor,
		Note:      strings.TrimSpace(params.Note),
		Items:     items,
		Status:    StatusInTransit,
	}

	if err := s.repo.CreateShipment(ctx, sh); err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	return sh, nil
}

// inTx runs fn on the locked shipment id and commits when fn succeeds.
func (s *Service) inTx(ctx context.Context, id uuid.UUID, fn func(tx Tx, sh *Shipment) error) error {
	return lock.With(ctx, s.locker, "shipment:"+id.String(), lockTTL, func() error {
		tx, err := s.repo.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback()

		sh, err := tx.GetShipmentForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := fn(tx, sh); err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit: %w", err)
		}

		return nil
	})
}

// MarkAvailable moves an in-transit shipment to available.
func (s *Service) MarkAvailable(ctx context.Context, id uuid.UUID) (*Shipment, error) {
	var out *Shipment

	err := s.inTx(ctx, id, func(tx Tx, sh *Shipment) error {
		if sh.Status != StatusInTransit {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, sh.Status, StatusAvailable)
		}

		at := s.now()
		if err := tx.MarkArrived(ctx, id, at); err != nil {
			return fmt.Errorf("mark arrived: %w", err)
		}

		sh.Status = StatusAvailable
		sh.ArrivedAt = &at
		out = sh

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// PickUp moves an available shipment to picked up and adds its quantities to
// inventory. The quantities are added once: picking up an applied shipment
// again returns it unchanged with applied false.
func (s *Service) PickUp(ctx context.Context, id uuid.UUID, actor string) (sh *Shipment, applied bool, err error) {
	err = s.inTx(ctx, id, func(tx Tx, cur *Shipment) error {
		sh = cur

		if cur.InventoryApplied {
			return nil
		}

		if cur.Status != StatusAvailable {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, cur.Status, StatusPickedUp)
		}

		at := s.now()

		ok, err := tx.MarkPickedUp(ctx, id, actor, at)
		if err != nil {
			return fmt.Errorf("mark picked up: %w", err)
		}

		if !ok {
			return nil
		}

		for _, it := range cur.Items {
			if _, err := tx.AddUnits(ctx, it.Display, nil, it.Qty); err != nil {
				return fmt.Errorf("add %s: %w", it.Key, err)
			}
		}

		cur.Status = StatusPickedUp
		cur.PickedAt = &at
		cur.PickedBy = actor
		cur.InventoryApplied = true
		applied = true

		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return sh, applied, nil
}

// UpdateItems replaces the items. On a shipment already added to inventory the
// per-group difference is applied too; if any decrease lacks available units
// nothing changes.
func (s *Service) UpdateItems(ctx context.Context, id uuid.UUID, params UpdateParams) (*Shipment, error) {
	items, err := NormalizeItems(params.Items)
	if err != nil {
		return nil, err
	}

	var out *Shipment

	err = s.inTx(ctx, id, func(tx Tx, sh *Shipment) error {
		if sh.InventoryApplied {
			surplus, deficit := Diff(sh.Items, items)

			if err := subtract(ctx, tx, deficit); err != nil {
				return err
			}

			for _, it := range surplus {
				if _, err := tx.AddUnits(ctx, it.Display, nil, it.Qty); err != nil {
					return fmt.Errorf("add %s: %w", it.Key, err)
				}
			}
		}

		note := strings.TrimSpace(params.Note)
		if err := tx.ReplaceItems(ctx, id, items, note); err != nil {
			return fmt.Errorf("replace items: %w", err)
		}

		sh.Items = items
		sh.Note = note
		out = sh

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Delete removes the shipment. One already added to inventory first takes its
// units back out; a shortfall blocks the deletion.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.inTx(ctx, id, func(tx Tx, sh *Shipment) error {
		if sh.InventoryApplied {
			if err := subtract(ctx, tx, sh.Items); err != nil {
				return err
			}
		}

		if err := tx.DeleteShipment(ctx, id); err != nil {
			return fmt.Errorf("delete shipment: %w", err)
		}

		return nil
	})
}

// subtract removes available units for every item, or nothing when any group
// falls short.
func subtract(ctx context.Context, tx Tx, items []Item) error {
	var (
		ids     []uuid.UUID
		missing map[string]int
	)

	for _, it := range items {
		units, err := tx.TakeAvailable(ctx, it.Key, it.Qty)
		if err != nil {
			return fmt.Errorf("take %s: %w", it.Key, err)
		}

		if len(units) < it.Qty {
			if missing == nil {
				missing = make(map[string]int)
			}

			missing[it.Key] = it.Qty - len(units)

			continue
		}

		for _, u := range units {
			ids = append(ids, u.ID)
		}
	}

	if missing != nil {
		return &inventory.StockError{Missing: missing}
	}

	if err := tx.DeleteUnits(ctx, ids); err != nil {
		return fmt.Errorf("delete units: %w", err)
	}

	return nil
}
