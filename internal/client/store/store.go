package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	adjStore "github.com/MrJamesThe3rd/mikropanel/internal/adjustment/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	invStore "github.com/MrJamesThe3rd/mikropanel/internal/inventory/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
	zoneStore "github.com/MrJamesThe3rd/mikropanel/internal/zone/store"
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

const selectClientColumns = `
	id, name, ip, mac, service_units, zone_id, active, has_router, has_switch, created_at, updated_at
`

func scanClient(s scanner) (*client.Client, error) {
	var c client.Client
	if err := s.Scan(
		&c.ID, &c.Name, &c.IP, &c.MAC, &c.ServiceUnits, &c.ZoneID,
		&c.Active, &c.Router, &c.Switch, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

// List returns clients matching filter using q, ordered by name.
func List(ctx context.Context, q database.Querier, filter client.ListFilter) ([]*client.Client, error) {
	query := `SELECT ` + selectClientColumns + ` FROM clients WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.ZoneID != nil {
		query += fmt.Sprintf(" AND zone_id = $%d", argIdx)

		args = append(args, *filter.ZoneID)
		argIdx++
	}

	if filter.Active != nil {
		query += fmt.Sprintf(" AND active = $%d", argIdx)

		args = append(args, *filter.Active)
		argIdx++
	}

	if filter.Search != nil {
		query += fmt.Sprintf(" AND name ILIKE $%d", argIdx)

		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query += " ORDER BY lower(name) ASC, id ASC"

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*client.Client

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}

	return clients, nil
}

func (s *Store) ListClients(ctx context.Context, filter client.ListFilter) ([]*client.Client, error) {
	return List(ctx, s.db, filter)
}

func (s *Store) GetClient(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	c, err := scanClient(s.db.QueryRowContext(ctx, `SELECT `+selectClientColumns+` FROM clients WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

func (s *Store) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE clients SET active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("updating client status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating client status: %w", err)
	}

	if n == 0 {
		return client.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteClient(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}

	if n == 0 {
		return client.ErrNotFound
	}

	return nil
}

func (s *Store) ZoneExists(ctx context.Context, zoneID string) (bool, error) {
	var exists bool
	if err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM zones WHERE id = $1)`, zoneID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking zone: %w", err)
	}

	return exists, nil
}

type tx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (client.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning client tx: %w", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }

func zoneViolation(err error) error {
	if database.IsForeignKeyViolation(err) {
		return validation.Single("zone_id", "unknown zone")
	}

	return nil
}

func (t *tx) CreateClient(ctx context.Context, c *client.Client) error {
	query := `
		INSERT INTO clients (name, ip, mac, service_units, zone_id, active, has_router, has_switch, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		c.Name, c.IP, c.MAC, c.ServiceUnits, c.ZoneID, c.Active, c.Router, c.Switch,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if verr := zoneViolation(err); verr != nil {
			return verr
		}

		return fmt.Errorf("creating client: %w", err)
	}

	return nil
}

func (t *tx) GetClientForUpdate(ctx context.Context, id uuid.UUID) (*client.Client, error) {
	c, err := scanClient(t.tx.QueryRowContext(ctx,
		`SELECT `+selectClientColumns+` FROM clients WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, client.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return c, nil
}

func (t *tx) UpdateClient(ctx context.Context, c *client.Client) error {
	query := `
		UPDATE clients
		SET name = $1, ip = $2, mac = $3, service_units = $4, zone_id = $5,
			active = $6, has_router = $7, has_switch = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	err := t.tx.QueryRowContext(ctx, query,
		c.Name, c.IP, c.MAC, c.ServiceUnits, c.ZoneID, c.Active, c.Router, c.Switch, c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return client.ErrNotFound
		}

		if verr := zoneViolation(err); verr != nil {
			return verr
		}

		return fmt.Errorf("updating client: %w", err)
	}

	return nil
}

func (t *tx) Tariffs(ctx context.Context) (zone.Tariffs, error) {
	return zoneStore.Tariffs(ctx, t.tx)
}

func (t *tx) TakeAvailable(ctx context.Context, key string, limit int) ([]*inventory.Equipment, error) {
	return invStore.TakeAvailable(ctx, t.tx, key, limit)
}

func (t *tx) MarkAssigned(ctx context.Context, id uuid.UUID, clientID uuid.UUID, clientName string, at time.Time) error {
	return invStore.MarkAssigned(ctx, t.tx, id, clientID, clientName, at)
}

func (t *tx) CreateMovement(ctx context.Context, mv *inventory.Movement) error {
	return invStore.CreateMovement(ctx, t.tx, mv)
}

func (t *tx) InsertAdjustment(ctx context.Context, adj *adjustment.Adjustment) (bool, error) {
	return adjStore.Insert(ctx, t.tx, adj)
}
