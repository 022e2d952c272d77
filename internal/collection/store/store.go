package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	clientStore "github.com/MrJamesThe3rd/mikropanel/internal/client/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/collection"
	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
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

const selectItemColumns = `
	id, month, client_id, client_name, zone_id, units, tariff, amount, paid, paid_at, COALESCE(paid_by, '')
`

func scanItem(s scanner) (*collection.Item, error) {
	var (
		it     collection.Item
		month  string
		paidAt sql.NullTime
	)

	if err := s.Scan(
		&it.ID, &month, &it.ClientID, &it.ClientName, &it.ZoneID,
		&it.Units, &it.Tariff, &it.Amount, &it.Paid, &paidAt, &it.PaidBy,
	); err != nil {
		return nil, err
	}

	m, err := period.Parse(month)
	if err != nil {
		return nil, err
	}

	it.Month = m

	if paidAt.Valid {
		it.PaidAt = &paidAt.Time
	}

	return &it, nil
}

func (s *Store) ListItems(ctx context.Context, month period.Month) ([]*collection.Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectItemColumns+` FROM collection_items WHERE month = $1 ORDER BY lower(client_name) ASC, id ASC`,
		month.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing collection items: %w", err)
	}
	defer rows.Close()

	var items []*collection.Item

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning collection item: %w", err)
		}

		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collection items: %w", err)
	}

	return items, nil
}

func insertItems(ctx context.Context, q database.Querier, items []*collection.Item) error {
	query := `
		INSERT INTO collection_items (id, month, client_id, client_name, zone_id, units, tariff, amount, paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE)
		ON CONFLICT (id) DO NOTHING
	`

	for _, it := range items {
		if _, err := q.ExecContext(ctx, query,
			it.ID, it.Month.String(), it.ClientID, it.ClientName, it.ZoneID, it.Units, it.Tariff, it.Amount,
		); err != nil {
			return fmt.Errorf("inserting collection item: %w", err)
		}
	}

	return nil
}

func (s *Store) InsertItems(ctx context.Context, items []*collection.Item) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if err := insertItems(ctx, dbTx, items); err != nil {
		return err
	}

	return dbTx.Commit()
}

func (s *Store) ReplaceItems(ctx context.Context, month period.Month, items []*collection.Item) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM collection_items WHERE month = $1`, month.String()); err != nil {
		return fmt.Errorf("clearing collection batch: %w", err)
	}

	if err := insertItems(ctx, dbTx, items); err != nil {
		return err
	}

	return dbTx.Commit()
}

func (s *Store) SetPaid(ctx context.Context, id string, paid bool, actor string, at time.Time) (*collection.Item, error) {
	var (
		paidAt sql.NullTime
		paidBy sql.NullString
	)

	if paid {
		paidAt = sql.NullTime{Time: at, Valid: true}
		paidBy = sql.NullString{String: actor, Valid: true}
	}

	it, err := scanItem(s.db.QueryRowContext(ctx, `
		UPDATE collection_items SET paid = $1, paid_at = $2, paid_by = $3
		WHERE id = $4
		RETURNING `+selectItemColumns,
		paid, paidAt, paidBy, id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, collection.ErrNotFound
		}

		return nil, fmt.Errorf("updating collection item: %w", err)
	}

	return it, nil
}

func (s *Store) ActiveClients(ctx context.Context) ([]*client.Client, error) {
	return clientStore.List(ctx, s.db, client.ListFilter{Active: new(true)})
}

func (s *Store) Tariffs(ctx context.Context) (zone.Tariffs, error) {
	return zoneStore.Tariffs(ctx, s.db)
}
