package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	adjStore "github.com/MrJamesThe3rd/mikropanel/internal/adjustment/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectEquipmentColumns = `
	id, label, price, state, placeholder, sold_at, assigned_at, client_id, client_name, created_at, updated_at
`

func scanEquipment(s scanner) (*inventory.Equipment, error) {
	var (
		e          inventory.Equipment
		state      string
		price      sql.NullInt64
		clientName sql.NullString
	)

	if err := s.Scan(
		&e.ID, &e.Label, &price, &state, &e.Placeholder, &e.SoldAt, &e.AssignedAt,
		&e.ClientID, &clientName, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.State = inventory.State(state)
	e.ClientName = clientName.String

	if price.Valid {
		e.Price = new(price.Int64)
	}

	return &e, nil
}

const selectMovementColumns = `
	id, at, equipment_id, label, actor, kind, client_id, client_name, paid, detail, amount
`

func scanMovement(s scanner) (*inventory.Movement, error) {
	var (
		mv         inventory.Movement
		kind       string
		clientName sql.NullString
		paid       sql.NullBool
		detail     []byte
		amount     sql.NullInt64
	)

	if err := s.Scan(
		&mv.ID, &mv.At, &mv.EquipmentID, &mv.Label, &mv.Actor, &kind,
		&mv.ClientID, &clientName, &paid, &detail, &amount,
	); err != nil {
		return nil, err
	}

	mv.Kind = inventory.Kind(kind)
	mv.ClientName = clientName.String

	if paid.Valid {
		mv.Paid = new(paid.Bool)
	}

	if amount.Valid {
		mv.Amount = new(amount.Int64)
	}

	mv.Detail = map[string]any{}
	if len(detail) > 0 {
		if err := json.Unmarshal(detail, &mv.Detail); err != nil {
			return nil, fmt.Errorf("decoding movement detail: %w", err)
		}
	}

	return &mv, nil
}

func (s *Store) ListEquipment(ctx context.Context) ([]*inventory.Equipment, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectEquipmentColumns+` FROM equipment ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing equipment: %w", err)
	}

	return collectEquipment(rows)
}

func collectEquipment(rows *sql.Rows) ([]*inventory.Equipment, error) {
	defer rows.Close()

	var units []*inventory.Equipment

	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning equipment: %w", err)
		}

		units = append(units, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating equipment: %w", err)
	}

	return units, nil
}

func (s *Store) ListMovements(ctx context.Context, filter inventory.MovementFilter) ([]*inventory.Movement, error) {
	query := `SELECT ` + selectMovementColumns + ` FROM movements WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Actor != nil {
		query += fmt.Sprintf(" AND actor = $%d", argIdx)

		args = append(args, *filter.Actor)
		argIdx++
	}

	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	if filter.Key != nil {
		query += fmt.Sprintf(" AND lower(btrim(label)) = $%d", argIdx)

		args = append(args, inventory.Key(*filter.Key))
		argIdx++
	}

	if filter.Paid != nil {
		query += fmt.Sprintf(" AND kind = '%s' AND lower(btrim(label)) = '%s' AND COALESCE(paid, FALSE) = $%d",
			inventory.KindAssignment, inventory.LabelRouter, argIdx)

		args = append(args, *filter.Paid)
		argIdx++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND at >= $%d", argIdx)

		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND at <= $%d", argIdx)

		args = append(args, *filter.To)
		argIdx++
	}

	query += " ORDER BY at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	defer rows.Close()

	var movements []*inventory.Movement

	for rows.Next() {
		mv, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning movement: %w", err)
		}

		movements = append(movements, mv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating movements: %w", err)
	}

	return movements, nil
}

// AddUnits inserts qty available units of label and removes the label's
// placeholder, if any.
func AddUnits(ctx context.Context, q database.Querier, label string, price *int64, qty int) ([]*inventory.Equipment, error) {
	label = strings.TrimSpace(label)

	if _, err := q.ExecContext(ctx,
		`DELETE FROM equipment WHERE lower(btrim(label)) = $1 AND placeholder`, inventory.Key(label),
	); err != nil {
		return nil, fmt.Errorf("removing placeholder: %w", err)
	}

	query := `
		INSERT INTO equipment (label, price, state, placeholder, created_at, updated_at)
		SELECT $1, $2, $3, FALSE, NOW(), NOW() FROM generate_series(1, $4)
		RETURNING ` + selectEquipmentColumns

	rows, err := q.QueryContext(ctx, query, label, price, inventory.StateAvailable, qty)
	if err != nil {
		return nil, fmt.Errorf("inserting units: %w", err)
	}

	return collectEquipment(rows)
}

// TakeAvailable locks up to limit available, non-placeholder units of key,
// oldest first. A limit of zero or less locks all of them.
func TakeAvailable(ctx context.Context, q database.Querier, key string, limit int) ([]*inventory.Equipment, error) {
	query := `SELECT ` + selectEquipmentColumns + `
		FROM equipment
		WHERE lower(btrim(label)) = $1 AND state = $2 AND NOT placeholder
		ORDER BY created_at ASC, id ASC`

	args := []any{inventory.Key(key), inventory.StateAvailable}

	if limit > 0 {
		query += ` LIMIT $3`

		args = append(args, limit)
	}

	query += ` FOR UPDATE SKIP LOCKED`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("selecting available units: %w", err)
	}

	return collectEquipment(rows)
}

// CountAvailable counts available, non-placeholder units of key.
func CountAvailable(ctx context.Context, q database.Querier, key string) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM equipment WHERE lower(btrim(label)) = $1 AND state = $2 AND NOT placeholder`,
		inventory.Key(key), inventory.StateAvailable,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting available units: %w", err)
	}

	return n, nil
}

func MarkAssigned(ctx context.Context, q database.Querier, id, clientID uuid.UUID, clientName string, at time.Time) error {
	_, err := q.ExecContext(ctx, `
		UPDATE equipment
		SET state = $1, assigned_at = $2, client_id = $3, client_name = $4, updated_at = NOW()
		WHERE id = $5`,
		inventory.StateAssigned, at, clientID, clientName, id,
	)
	if err != nil {
		return fmt.Errorf("assigning unit: %w", err)
	}

	return nil
}

func DeleteUnits(ctx context.Context, q database.Querier, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if _, err := q.ExecContext(ctx, `DELETE FROM equipment WHERE id = ANY($1::uuid[])`, idStrings(ids)); err != nil {
		return fmt.Errorf("deleting units: %w", err)
	}

	return nil
}

func CreateMovement(ctx context.Context, q database.Querier, mv *inventory.Movement) error {
	detail, err := json.Marshal(mv.Detail)
	if err != nil {
		return fmt.Errorf("encoding movement detail: %w", err)
	}

	if mv.Detail == nil {
		detail = []byte("{}")
	}

	query := `
		INSERT INTO movements (at, equipment_id, label, actor, kind, client_id, client_name, paid, detail, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err = q.QueryRowContext(ctx, query,
		mv.At,
		mv.EquipmentID,
		mv.Label,
		mv.Actor,
		mv.Kind,
		mv.ClientID,
		sql.NullString{String: mv.ClientName, Valid: mv.ClientName != ""},
		mv.Paid,
		detail,
		mv.Amount,
	).Scan(&mv.ID)
	if err != nil {
		return fmt.Errorf("creating movement: %w", err)
	}

	return nil
}

// ClientName resolves the display name of a client.
func ClientName(ctx context.Context, q database.Querier, clientID uuid.UUID) (string, error) {
	var name string

	err := q.QueryRowContext(ctx, `SELECT name FROM clients WHERE id = $1`, clientID).Scan(&name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", inventory.ErrNotFound
		}

		return "", fmt.Errorf("getting client name: %w", err)
	}

	return name, nil
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

type tx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (inventory.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning inventory tx: %w", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }

func (t *tx) AddUnits(ctx context.Context, label string, price *int64, qty int) ([]*inventory.Equipment, error) {
	return AddUnits(ctx, t.tx, label, price, qty)
}

func (t *tx) TakeAvailable(ctx context.Context, key string, limit int) ([]*inventory.Equipment, error) {
	return TakeAvailable(ctx, t.tx, key, limit)
}

func (t *tx) GetEquipment(ctx context.Context, id uuid.UUID) (*inventory.Equipment, error) {
	e, err := scanEquipment(t.tx.QueryRowContext(ctx,
		`SELECT `+selectEquipmentColumns+` FROM equipment WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, inventory.ErrNotFound
		}

		return nil, fmt.Errorf("getting equipment: %w", err)
	}

	return e, nil
}

func (t *tx) MarkSold(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE equipment
		SET state = $1, sold_at = $2, updated_at = NOW()
		WHERE id = ANY($3::uuid[])`,
		inventory.StateSold, at, idStrings(ids),
	)
	if err != nil {
		return fmt.Errorf("marking units sold: %w", err)
	}

	return nil
}

func (t *tx) MarkAssigned(ctx context.Context, id uuid.UUID, clientID uuid.UUID, clientName string, at time.Time) error {
	return MarkAssigned(ctx, t.tx, id, clientID, clientName, at)
}

func (t *tx) Release(ctx context.Context, id uuid.UUID) error {
	res, err := t.tx.ExecContext(ctx, `
		UPDATE equipment
		SET state = $1, sold_at = NULL, assigned_at = NULL, client_id = NULL, client_name = NULL, updated_at = NOW()
		WHERE id = $2`,
		inventory.StateAvailable, id,
	)
	if err != nil {
		return fmt.Errorf("releasing unit: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("releasing unit: %w", err)
	}

	if n == 0 {
		return inventory.ErrNotFound
	}

	return nil
}

func (t *tx) DeleteUnits(ctx context.Context, ids []uuid.UUID) error {
	return DeleteUnits(ctx, t.tx, ids)
}

func (t *tx) DeleteAvailable(ctx context.Context, key string) (int, error) {
	res, err := t.tx.ExecContext(ctx,
		`DELETE FROM equipment WHERE lower(btrim(label)) = $1 AND state = $2`,
		inventory.Key(key), inventory.StateAvailable,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting available units: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting available units: %w", err)
	}

	return int(n), nil
}

func (t *tx) EnsurePlaceholder(ctx context.Context, label string) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO equipment (label, state, placeholder, created_at, updated_at)
		SELECT $1, $2, TRUE, NOW(), NOW()
		WHERE NOT EXISTS (
			SELECT 1 FROM equipment WHERE lower(btrim(label)) = $3 AND placeholder
		)`,
		strings.TrimSpace(label), inventory.StateAvailable, inventory.Key(label),
	)
	if err != nil {
		return fmt.Errorf("ensuring placeholder: %w", err)
	}

	return nil
}

func (t *tx) UpdatePrice(ctx context.Context, key string, price int64) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE equipment
		SET price = $1, updated_at = NOW()
		WHERE lower(btrim(label)) = $2 AND state = $3 AND NOT placeholder`,
		price, inventory.Key(key), inventory.StateAvailable,
	)
	if err != nil {
		return fmt.Errorf("updating price: %w", err)
	}

	return nil
}

func (t *tx) ClientName(ctx context.Context, clientID uuid.UUID) (string, error) {
	return ClientName(ctx, t.tx, clientID)
}

func (t *tx) CreateMovement(ctx context.Context, mv *inventory.Movement) error {
	return CreateMovement(ctx, t.tx, mv)
}

func (t *tx) GetMovementForUpdate(ctx context.Context, id uuid.UUID) (*inventory.Movement, error) {
	mv, err := scanMovement(t.tx.QueryRowContext(ctx,
		`SELECT `+selectMovementColumns+` FROM movements WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, inventory.ErrNotFound
		}

		return nil, fmt.Errorf("getting movement: %w", err)
	}

	return mv, nil
}

func (t *tx) SetMovementPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	if _, err := t.tx.ExecContext(ctx, `UPDATE movements SET paid = $1 WHERE id = $2`, paid, id); err != nil {
		return fmt.Errorf("updating paid flag: %w", err)
	}

	return nil
}

func (t *tx) DeleteMovement(ctx context.Context, id uuid.UUID) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM movements WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting movement: %w", err)
	}

	return nil
}

func (t *tx) InsertAdjustment(ctx context.Context, adj *adjustment.Adjustment) (bool, error) {
	return adjStore.Insert(ctx, t.tx, adj)
}

func (t *tx) DeleteAdjustments(ctx context.Context, originRef string, kinds []adjustment.Kind) (int64, error) {
	return adjStore.DeleteByOrigin(ctx, t.tx, originRef, kinds...)
}
