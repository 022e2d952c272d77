package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	invStore "github.com/MrJamesThe3rd/mikropanel/internal/inventory/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/shipment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectShipmentColumns = `
	id, created_at, created_by, note, status, arrived_at, picked_at, COALESCE(picked_by, ''), inventory_applied
`

func scanShipment(s scanner) (*shipment.Shipment, error) {
	var (
		sh        shipment.Shipment
		status    string
		arrivedAt sql.NullTime
		pickedAt  sql.NullTime
	)

	if err := s.Scan(
		&sh.ID, &sh.CreatedAt, &sh.CreatedBy, &sh.Note, &status,
		&arrivedAt, &pickedAt, &sh.PickedBy, &sh.InventoryApplied,
	); err != nil {
		return nil, err
	}

	sh.Status = shipment.Status(status)

	if arrivedAt.Valid {
		sh.ArrivedAt = &arrivedAt.Time
	}

	if pickedAt.Valid {
		sh.PickedAt = &pickedAt.Time
	}

	return &sh, nil
}

func loadItems(ctx context.Context, q database.Querier, shipments []*shipment.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*shipment.Shipment, len(shipments))
	ids := make([]string, len(shipments))

	for i, sh := range shipments {
		byID[sh.ID] = sh
		ids[i] = sh.ID.String()
	}

	rows, err := q.QueryContext(ctx, `
		SELECT shipment_id, key, display, qty
		FROM shipment_items
		WHERE shipment_id = ANY($1::uuid[])
		ORDER BY key ASC`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("listing shipment items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id uuid.UUID
			it shipment.Item
		)

		if err := rows.Scan(&id, &it.Key, &it.Display, &it.Qty); err != nil {
			return fmt.Errorf("scanning shipment item: %w", err)
		}

		if sh, ok := byID[id]; ok {
			sh.Items = append(sh.Items, it)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating shipment items: %w", err)
	}

	return nil
}

func insertItems(ctx context.Context, q database.Querier, id uuid.UUID, items []shipment.Item) error {
	for _, it := range items {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO shipment_items (shipment_id, key, display, qty) VALUES ($1, $2, $3, $4)`,
			id, it.Key, it.Display, it.Qty,
		); err != nil {
			return fmt.Errorf("inserting shipment item: %w", err)
		}
	}

	return nil
}

func (s *Store) ListShipments(ctx context.Context, status *shipment.Status) ([]*shipment.Shipment, error) {
	query := `SELECT ` + selectShipmentColumns + ` FROM shipments`

	var args []any

	if status != nil {
		query += ` WHERE status = $1`

		args = append(args, string(*status))
	}

	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing shipments: %w", err)
	}
	defer rows.Close()

	var shipments []*shipment.Shipment

	for rows.Next() {
		sh, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shipment: %w", err)
		}

		shipments = append(shipments, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shipments: %w", err)
	}

	if err := loadItems(ctx, s.db, shipments); err != nil {
		return nil, err
	}

	return shipments, nil
}

func getShipment(ctx context.Context, q database.Querier, id uuid.UUID, forUpdate bool) (*shipment.Shipment, error) {
	query := `SELECT ` + selectShipmentColumns + ` FROM shipments WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	sh, err := scanShipment(q.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shipment.ErrNotFound
		}

		return nil, fmt.Errorf("getting shipment: %w", err)
	}

	if err := loadItems(ctx, q, []*shipment.Shipment{sh}); err != nil {
		return nil, err
	}

	return sh, nil
}

func (s *Store) GetShipment(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error) {
	return getShipment(ctx, s.db, id, false)
}

func (s *Store) CreateShipment(ctx context.Context, sh *shipment.Shipment) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	err = dbTx.QueryRowContext(ctx, `
		INSERT INTO shipments (created_by, note, status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at`,
		sh.CreatedBy, sh.Note, sh.Status,
	).Scan(&sh.ID, &sh.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating shipment: %w", err)
	}

	if err := insertItems(ctx, dbTx, sh.ID, sh.Items); err != nil {
		return err
	}

	return dbTx.Commit()
}

type tx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (shipment.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning shipment tx: %w", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }

func (t *tx) GetShipmentForUpdate(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error) {
	return getShipment(ctx, t.tx, id, true)
}

func (t *tx) MarkArrived(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := t.tx.ExecContext(ctx,
		`UPDATE shipments SET status = $1, arrived_at = $2, updated_at = NOW() WHERE id = $3`,
		shipment.StatusAvailable, at, id,
	); err != nil {
		return fmt.Errorf("marking shipment arrived: %w", err)
	}

	return nil
}

// MarkPickedUp flips inventory_applied from false to true. It reports false
// when another transaction already did.
func (t *tx) MarkPickedUp(ctx context.Context, id uuid.UUID, actor string, at time.Time) (bool, error) {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE shipments
		SET status = $1, picked_at = $2, picked_by = $3, inventory_applied = TRUE, updated_at = NOW()
		WHERE id = $4 AND NOT inventory_applied`,
		shipment.StatusPickedUp, at, actor, id,
	)
	if err != nil {
		return false, fmt.Errorf("marking shipment picked up: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("marking shipment picked up: %w", err)
	}

	return n == 1, nil
}

func (t *tx) ReplaceItems(ctx context.Context, id uuid.UUID, items []shipment.Item, note string) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM shipment_items WHERE shipment_id = $1`, id); err != nil {
		return fmt.Errorf("clearing shipment items: %w", err)
	}

	if err := insertItems(ctx, t.tx, id, items); err != nil {
		return err
	}

	if _, err := t.tx.ExecContext(ctx,
		`UPDATE shipments SET note = $1, updated_at = NOW() WHERE id = $2`, note, id,
	); err != nil {
		return fmt.Errorf("updating shipment: %w", err)
	}

	return nil
}

func (t *tx) DeleteShipment(ctx context.Context, id uuid.UUID) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM shipments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting shipment: %w", err)
	}

	return nil
}

func (t *tx) AddUnits(ctx context.Context, label string, price *int64, qty int) ([]*inventory.Equipment, error) {
	return invStore.AddUnits(ctx, t.tx, label, price, qty)
}

func (t *tx) TakeAvailable(ctx context.Context, key string, limit int) ([]*inventory.Equipment, error) {
	return invStore.TakeAvailable(ctx, t.tx, key, limit)
}

func (t *tx) DeleteUnits(ctx context.Context, ids []uuid.UUID) error {
	return invStore.DeleteUnits(ctx, t.tx, ids)
}
