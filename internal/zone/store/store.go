package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
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

const selectZoneColumns = `z.id, z.name, COALESCE(t.price, 0), z.created_at`

func scanZone(s scanner) (*zone.Zone, error) {
	var z zone.Zone
	if err := s.Scan(&z.ID, &z.Name, &z.Tariff, &z.CreatedAt); err != nil {
		return nil, err
	}

	return &z, nil
}

func (s *Store) CreateZone(ctx context.Context, z *zone.Zone) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	err = dbTx.QueryRowContext(ctx,
		`INSERT INTO zones (id, name, created_at) VALUES ($1, $2, NOW()) RETURNING created_at`,
		z.ID, z.Name,
	).Scan(&z.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return zone.ErrDuplicate
		}

		return fmt.Errorf("creating zone: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx,
		`INSERT INTO tariffs (zone_id, price, updated_at) VALUES ($1, $2, NOW())`, z.ID, z.Tariff,
	); err != nil {
		return fmt.Errorf("creating tariff: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetZone(ctx context.Context, id string) (*zone.Zone, error) {
	query := `SELECT ` + selectZoneColumns + `
		FROM zones z
		LEFT JOIN tariffs t ON t.zone_id = z.id
		WHERE z.id = $1`

	z, err := scanZone(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, zone.ErrNotFound
		}

		return nil, fmt.Errorf("getting zone: %w", err)
	}

	return z, nil
}

func (s *Store) ListZones(ctx context.Context) ([]*zone.Zone, error) {
	query := `SELECT ` + selectZoneColumns + `
		FROM zones z
		LEFT JOIN tariffs t ON t.zone_id = z.id
		ORDER BY z.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing zones: %w", err)
	}
	defer rows.Close()

	var zones []*zone.Zone

	for rows.Next() {
		z, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning zone: %w", err)
		}

		zones = append(zones, z)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating zones: %w", err)
	}

	return zones, nil
}

// DeleteZone removes the zone; its tariff goes with it through the cascade.
func (s *Store) DeleteZone(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM zones WHERE id = $1`, id)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return zone.ErrInUse
		}

		return fmt.Errorf("deleting zone: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting zone: %w", err)
	}

	if n == 0 {
		return zone.ErrNotFound
	}

	return nil
}

func (s *Store) CountClients(ctx context.Context, zoneID string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients WHERE zone_id = $1`, zoneID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting clients: %w", err)
	}

	return n, nil
}

func (s *Store) GetTariffs(ctx context.Context) (zone.Tariffs, error) {
	return Tariffs(ctx, s.db)
}

// Tariffs loads the tariff table using q.
func Tariffs(ctx context.Context, q database.Querier) (zone.Tariffs, error) {
	rows, err := q.QueryContext(ctx, `SELECT zone_id, price FROM tariffs`)
	if err != nil {
		return nil, fmt.Errorf("listing tariffs: %w", err)
	}
	defer rows.Close()

	tariffs := make(zone.Tariffs)

	for rows.Next() {
		var (
			id    string
			price int64
		)

		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("scanning tariff: %w", err)
		}

		tariffs[id] = price
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tariffs: %w", err)
	}

	return tariffs, nil
}

func (s *Store) ReplaceTariffs(ctx context.Context, tariffs zone.Tariffs) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM tariffs`); err != nil {
		return fmt.Errorf("clearing tariffs: %w", err)
	}

	for id, price := range tariffs {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO tariffs (zone_id, price, updated_at) VALUES ($1, $2, NOW())`, id, price,
		); err != nil {
			return fmt.Errorf("saving tariff %s: %w", id, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
