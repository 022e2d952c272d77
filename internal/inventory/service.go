package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrOutOfStock        = errors.New("insufficient stock")
	ErrNotAssignable     = errors.New("only router or switch units can be assigned")
	ErrNotRouterMovement = errors.New("movement is not a router assignment")
	ErrNotSale           = errors.New("movement is not a sale")
	ErrDuplicateGain     = errors.New("gain already registered for this movement")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=inventory
type Repository interface {
	ListEquipment(ctx context.Context) ([]*Equipment, error)
	ListMovements(ctx context.Context, filter MovementFilter) ([]*Movement, error)
	Begin(ctx context.Context) (Tx, error)
}

// Tx groups the writes that must land together.
type Tx interface {
	AddUnits(ctx context.Context, label string, price *int64, qty int) ([]*Equipment, error)
	TakeAvailable(ctx context.Context, key string, limit int) ([]*Equipment, error)
	GetEquipment(ctx context.Context, id uuid.UUID) (*Equipment, error)
	MarkSold(ctx context.Context, ids []uuid.UUID, at time.Time) error
	MarkAssigned(ctx context.Context, id uuid.UUID, clientID uuid.UUID, clientName string, at time.Time) error
	Release(ctx context.Context, id uuid.UUID) error
	DeleteUnits(ctx context.Context, ids []uuid.UUID) error
	DeleteAvailable(ctx context.Context, key string) (int, error)
	EnsurePlaceholder(ctx context.Context, label string) error
	UpdatePrice(ctx context.Context, key string, price int64) error
	ClientName(ctx context.Context, clientID uuid.UUID) (string, error)

	CreateMovement(ctx context.Context, mv *Movement) error
	GetMovementForUpdate(ctx context.Context, id uuid.UUID) (*Movement, error)
	SetMovementPaid(ctx context.Context, id uuid.UUID, paid bool) error
	DeleteMovement(ctx context.Context, id uuid.UUID) error

	InsertAdjustment(ctx context.Context, adj *adjustment.Adjustment) (bool, error)
	DeleteAdjustments(ctx context.Context, originRef string, kinds []adjustment.Kind) (int64, error)

	Commit() error
	Rollback() error
}

// UnitAssigner is the part of a transaction needed to hand a unit to a client.
// Other services assigning equipment inside their own transactions satisfy it.
type UnitAssigner interface {
	TakeAvailable(ctx context.Context, key string, limit int) ([]*Equipment, error)
	MarkAssigned(ctx context.Context, id uuid.UUID, clientID uuid.UUID, clientName string, at time.Time) error
	CreateMovement(ctx context.Context, mv *Movement) error
}

type Service struct {
	repo      Repository
	routerFee int64
	now       func() time.Time
}

// NewService builds the inventory service. routerFee is the amount in cents
// credited when a router assignment is marked paid.
func NewService(repo Repository, routerFee int64) *Service {
	return &Service{repo: repo, routerFee: routerFee, now: time.Now}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type MovementFilter struct {
	Actor *string
	Kind  *Kind
	Key   *string
	Paid  *bool
	From  *time.Time
	To    *time.Time
}

type AddParams struct {
	Label string
	Price *int64
	Qty   int
	Actor string
}

type SellParams struct {
	Label string
	Qty   int
	Price *int64
	Actor string
}

type AssignParams struct {
	Label      string
	ClientID   uuid.UUID
	ClientName string
	Paid       bool
	Actor      string
	Via        string
}

type RecordParams struct {
	EquipmentID uuid.UUID
	ClientID    *uuid.UUID
	Kind        Kind
	Detail      map[string]any
	Amount      *int64
	Actor       string
}

type GroupQuantityParams struct {
	Label string
	Qty   int
	Price *int64
}

func (s *Service) Groups(ctx context.Context) ([]Group, error) {
	units, err := s.repo.ListEquipment(ctx)
	if err != nil {
		return nil, err
	}

	return Aggregate(units), nil
}

func (s *Service) ListMovements(ctx context.Context, filter MovementFilter) ([]*Movement, error) {
	return s.repo.ListMovements(ctx, filter)
}

// AddEquipment adds qty available units under label and drops the label's
// placeholder.
func (s *Service) AddEquipment(ctx context.Context, params AddParams) ([]*Equipment, error) {
	var verr validation.Error

	label := strings.TrimSpace(params.Label)
	if label == "" {
		verr.Add("label", "is required")
	}

	if params.Price != nil && *params.Price < 0 {
		verr.Add("price", "must not be negative")
	}

	if params.Qty < 1 {
		verr.Add("qty", "must be at least 1")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	units, err := tx.AddUnits(ctx, label, params.Price, params.Qty)
	if err != nil {
		return nil, fmt.Errorf("add units: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return units, nil
}

// Sell marks qty available units of label as sold and records one sale
// movement per unit. Either every unit is sold or none is.
func (s *Service) Sell(ctx context.Context, params SellParams) ([]*Movement, error) {
	key := Key(params.Label)

	var verr validation.Error

	if key == "" {
		verr.Add("label", "is required")
	}

	if params.Qty < 1 {
		verr.Add("qty", "must be at least 1")
	}

	if params.Price != nil && *params.Price < 0 {
		verr.Add("price", "must not be negative")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	units, err := tx.TakeAvailable(ctx, key, params.Qty)
	if err != nil {
		return nil, fmt.Errorf("take available: %w", err)
	}

	if len(units) < params.Qty {
		return nil, shortage(key, params.Qty-len(units))
	}

	now := s.now()
	ids := make([]uuid.UUID, len(units))

	for i, u := range units {
		ids[i] = u.ID
	}

	if err := tx.MarkSold(ctx, ids, now); err != nil {
		return nil, fmt.Errorf("mark sold: %w", err)
	}

	movements := make([]*Movement, len(units))

	for i, u := range units {
		price := u.Price
		if params.Price != nil {
			price = params.Price
		}

		mv := &Movement{
			At:          now,
			EquipmentID: new(u.ID),
			Label:       strings.TrimSpace(u.Label),
			Actor:       params.Actor,
			Kind:        KindSale,
			Amount:      price,
			Detail:      map[string]any{},
		}
		if err := tx.CreateMovement(ctx, mv); err != nil {
			return nil, fmt.Errorf("create movement: %w", err)
		}

		movements[i] = mv
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return movements, nil
}

// AssignUnit hands the first available unit of label to a client and records
// the assignment. Router assignments carry a paid flag (false unless paid is
// set); switch assignments carry none.
func AssignUnit(ctx context.Context, tx UnitAssigner, params AssignParams, at time.Time) (*Movement, error) {
	key := Key(params.Label)
	if key != LabelRouter && key != LabelSwitch {
		return nil, ErrNotAssignable
	}

	units, err := tx.TakeAvailable(ctx, key, 1)
	if err != nil {
		return nil, fmt.Errorf("take available: %w", err)
	}

	if len(units) == 0 {
		return nil, shortage(key, 1)
	}

	unit := units[0]
	if err := tx.MarkAssigned(ctx, unit.ID, params.ClientID, params.ClientName, at); err != nil {
		return nil, fmt.Errorf("mark assigned: %w", err)
	}

	detail := map[string]any{"tipo": key}
	if params.Via != "" {
		detail["via"] = params.Via
	}

	mv := &Movement{
		At:          at,
		EquipmentID: new(unit.ID),
		Label:       strings.TrimSpace(unit.Label),
		Actor:       params.Actor,
		Kind:        KindAssignment,
		ClientID:    new(params.ClientID),
		ClientName:  params.ClientName,
		Detail:      detail,
	}

	if key == LabelRouter {
		mv.Paid = new(params.Paid)
	}

	if err := tx.CreateMovement(ctx, mv); err != nil {
		return nil, fmt.Errorf("create movement: %w", err)
	}

	return mv, nil
}

// Assign gives one router or switch to a client. A router assigned as paid
// also credits the router fee.
func (s *Service) Assign(ctx context.Context, params AssignParams) (*Movement, error) {
	key := Key(params.Label)
	if key != LabelRouter && key != LabelSwitch {
		return nil, ErrNotAssignable
	}

	if params.ClientID == uuid.Nil {
		return nil, validation.Single("client_id", "is required")
	}

	if key != LabelRouter {
		params.Paid = false
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	name, err := tx.ClientName(ctx, params.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client: %w", err)
	}

	params.ClientName = name

	mv, err := AssignUnit(ctx, tx, params, s.now())
	if err != nil {
		return nil, err
	}

	if params.Paid {
		if _, err := tx.InsertAdjustment(ctx, s.routerFeeAdjustment(mv, params.Actor)); err != nil {
			return nil, fmt.Errorf("insert adjustment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return mv, nil
}

// SetPaid flips the paid flag of a router assignment. Paid inserts the router
// fee adjustment unless it already exists; unpaid removes it. Repeated toggles
// always leave zero or one fee adjustment for the movement.
func (s *Service) SetPaid(ctx context.Context, movementID uuid.UUID, paid bool, actor string) (*Movement, error) {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	mv, err := tx.GetMovementForUpdate(ctx, movementID)
	if err != nil {
		return nil, err
	}

	if !mv.IsRouterAssignment() {
		return nil, ErrNotRouterMovement
	}

	if err := tx.SetMovementPaid(ctx, mv.ID, paid); err != nil {
		return nil, fmt.Errorf("set paid: %w", err)
	}

	mv.Paid = new(paid)

	if paid {
		if _, err := tx.InsertAdjustment(ctx, s.routerFeeAdjustment(mv, actor)); err != nil {
			return nil, fmt.Errorf("insert adjustment: %w", err)
		}
	} else {
		if _, err := tx.DeleteAdjustments(ctx, mv.ID.String(), []adjustment.Kind{adjustment.KindAuto}); err != nil {
			return nil, fmt.Errorf("delete adjustment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return mv, nil
}

func (s *Service) routerFeeAdjustment(mv *Movement, actor string) *adjustment.Adjustment {
	return &adjustment.Adjustment{
		Month:     period.Of(mv.At),
		Amount:    s.routerFee,
		Label:     fmt.Sprintf("Pago instalación Router (+%s)", money.ToDecimal(s.routerFee).String()),
		Kind:      adjustment.KindAuto,
		OriginRef: mv.ID.String(),
		Actor:     actor,
	}
}

// RegisterGain records the one manual gain allowed per sale movement.
func (s *Service) RegisterGain(ctx context.Context, movementID uuid.UUID, amount int64, actor string) (*adjustment.Adjustment, error) {
	if amount < 0 {
		return nil, validation.Single("amount", "must not be negative")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	mv, err := tx.GetMovementForUpdate(ctx, movementID)
	if err != nil {
		return nil, err
	}

	if mv.Kind != KindSale {
		return nil, ErrNotSale
	}

	adj := &adjustment.Adjustment{
		Month:     period.Of(mv.At),
		Amount:    amount,
		Label:     "Ganancia venta " + mv.Label,
		Kind:      adjustment.KindManual,
		OriginRef: mv.ID.String(),
		Actor:     actor,
	}

	inserted, err := tx.InsertAdjustment(ctx, adj)
	if err != nil {
		return nil, fmt.Errorf("insert adjustment: %w", err)
	}

	if !inserted {
		return nil, ErrDuplicateGain
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return adj, nil
}

// DeleteMovement removes a movement and compensates for it: a sold or
// assigned unit goes back to available and every adjustment referencing the
// movement is removed. The unit's earlier history is not restored.
func (s *Service) DeleteMovement(ctx context.Context, movementID uuid.UUID) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	mv, err := tx.GetMovementForUpdate(ctx, movementID)
	if err != nil {
		return err
	}

	if mv.EquipmentID != nil && (mv.Kind == KindSale || mv.Kind == KindAssignment) {
		if err := tx.Release(ctx, *mv.EquipmentID); err != nil && !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("release unit: %w", err)
		}
	}

	if err := tx.DeleteMovement(ctx, mv.ID); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}

	if _, err := tx.DeleteAdjustments(ctx, mv.ID.String(), nil); err != nil {
		return fmt.Errorf("delete adjustments: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// DeleteGroup removes the available units of a group, keeping sold and
// assigned units for history.
func (s *Service) DeleteGroup(ctx context.Context, key string) (int, error) {
	key = Key(key)
	if key == "" {
		return 0, validation.Single("key", "is required")
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.DeleteAvailable(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("delete available: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return n, nil
}

// SetGroupQuantity adds or removes available units until the group holds
// exactly qty of them. A group brought to zero keeps a placeholder.
func (s *Service) SetGroupQuantity(ctx context.Context, params GroupQuantityParams) error {
	label := strings.TrimSpace(params.Label)
	key := Key(label)

	var verr validation.Error

	if key == "" {
		verr.Add("label", "is required")
	}

	if params.Qty < 0 {
		verr.Add("qty", "must not be negative")
	}

	if params.Price != nil && *params.Price < 0 {
		verr.Add("price", "must not be negative")
	}

	if err := verr.Err(); err != nil {
		return err
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	units, err := tx.TakeAvailable(ctx, key, 0)
	if err != nil {
		return fmt.Errorf("take available: %w", err)
	}

	switch have := len(units); {
	case params.Qty > have:
		if _, err := tx.AddUnits(ctx, label, params.Price, params.Qty-have); err != nil {
			return fmt.Errorf("add units: %w", err)
		}
	case params.Qty < have:
		surplus := units[params.Qty:]

		ids := make([]uuid.UUID, len(surplus))
		for i, u := range surplus {
			ids[i] = u.ID
		}

		if err := tx.DeleteUnits(ctx, ids); err != nil {
			return fmt.Errorf("delete units: %w", err)
		}
	}

	if params.Qty == 0 {
		if err := tx.EnsurePlaceholder(ctx, label); err != nil {
			return fmt.Errorf("ensure placeholder: %w", err)
		}
	}

	if params.Price != nil {
		if err := tx.UpdatePrice(ctx, key, *params.Price); err != nil {
			return fmt.Errorf("update price: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	return nil
}

// Record appends a free-form movement for an existing unit without touching
// its state.
func (s *Service) Record(ctx context.Context, params RecordParams) (*Movement, error) {
	var verr validation.Error

	if params.EquipmentID == uuid.Nil {
		verr.Add("equipo_id", "is required")
	}

	if !params.Kind.Valid() {
		verr.Add("tipo", "is required and must be a known movement type")
	}

	if err := verr.Err(); err != nil {
		return nil, err
	}

	actor := strings.TrimSpace(params.Actor)
	if actor == "" {
		actor = "system"
	}

	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	unit, err := tx.GetEquipment(ctx, params.EquipmentID)
	if err != nil {
		return nil, err
	}

	detail := params.Detail
	if detail == nil {
		detail = map[string]any{}
	}

	mv := &Movement{
		At:          s.now(),
		EquipmentID: new(unit.ID),
		Label:       strings.TrimSpace(unit.Label),
		Actor:       actor,
		Kind:        params.Kind,
		ClientID:    params.ClientID,
		Detail:      detail,
		Amount:      params.Amount,
	}

	if params.ClientID != nil {
		name, err := tx.ClientName(ctx, *params.ClientID)
		if err != nil {
			return nil, fmt.Errorf("client: %w", err)
		}

		mv.ClientName = name
	}

	if err := tx.CreateMovement(ctx, mv); err != nil {
		return nil, fmt.Errorf("create movement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return mv, nil
}
