package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	adjStore "github.com/MrJamesThe3rd/mikropanel/internal/adjustment/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	clientStore "github.com/MrJamesThe3rd/mikropanel/internal/client/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	invStore "github.com/MrJamesThe3rd/mikropanel/internal/inventory/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	remStore "github.com/MrJamesThe3rd/mikropanel/internal/remittance/store"
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

const selectClosingColumns = `month, gross, margin, technicians, net_base, adjustments, net, closed_by, closed_at`

func scanClosing(s scanner) (*closing.Figures, error) {
	var (
		f        closing.Figures
		month    string
		closedAt sql.NullTime
	)

	if err := s.Scan(
		&month, &f.Gross, &f.Margin, &f.Technicians, &f.NetBase, &f.Adjustments, &f.Net, &f.ClosedBy, &closedAt,
	); err != nil {
		return nil, err
	}

	m, err := period.Parse(month)
	if err != nil {
		return nil, err
	}

	f.Month = m

	if closedAt.Valid {
		f.ClosedAt = &closedAt.Time
	}

	return &f, nil
}

func (s *Store) ActiveClients(ctx context.Context) ([]*client.Client, error) {
	return clientStore.List(ctx, s.db, client.ListFilter{Active: new(true)})
}

func (s *Store) Tariffs(ctx context.Context) (zone.Tariffs, error) {
	return zoneStore.Tariffs(ctx, s.db)
}

func (s *Store) ListZones(ctx context.Context) ([]*zone.Zone, error) {
	return zoneStore.New(s.db).ListZones(ctx)
}

func (s *Store) SumAdjustments(ctx context.Context, month period.Month) (int64, error) {
	return adjStore.Sum(ctx, s.db, month)
}

func (s *Store) ListMovements(ctx context.Context, filter inventory.MovementFilter) ([]*inventory.Movement, error) {
	return invStore.New(s.db).ListMovements(ctx, filter)
}

func (s *Store) GetClosing(ctx context.Context, month period.Month) (*closing.Figures, error) {
	f, err := scanClosing(s.db.QueryRowContext(ctx,
		`SELECT `+selectClosingColumns+` FROM closings WHERE month = $1`, month.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, closing.ErrNotFound
		}

		return nil, fmt.Errorf("getting closing: %w", err)
	}

	return f, nil
}

func (s *Store) ListClosings(ctx context.Context, from, to period.Month) ([]*closing.Figures, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+selectClosingColumns+` FROM closings WHERE month BETWEEN $1 AND $2 ORDER BY month ASC`,
		from.String(), to.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing closings: %w", err)
	}
	defer rows.Close()

	var out []*closing.Figures

	for rows.Next() {
		f, err := scanClosing(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning closing: %w", err)
		}

		out = append(out, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating closings: %w", err)
	}

	return out, nil
}

type tx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (closing.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning closing tx: %w", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }

// LockRun creates month's run row if needed and locks it until the
// transaction ends, so concurrent runs see each other's flags.
func (t *tx) LockRun(ctx context.Context, month period.Month) (*closing.Run, error) {
	if _, err := t.tx.ExecContext(ctx,
		`INSERT INTO closing_runs (month) VALUES ($1) ON CONFLICT (month) DO NOTHING`, month.String(),
	); err != nil {
		return nil, fmt.Errorf("creating closing run: %w", err)
	}

	run := &closing.Run{Month: month}
	if err := t.tx.QueryRowContext(ctx,
		`SELECT auto_saved, auto_reset FROM closing_runs WHERE month = $1 FOR UPDATE`, month.String(),
	).Scan(&run.AutoSaved, &run.AutoReset); err != nil {
		return nil, fmt.Errorf("locking closing run: %w", err)
	}

	return run, nil
}

func (t *tx) SaveRun(ctx context.Context, run *closing.Run) error {
	if _, err := t.tx.ExecContext(ctx,
		`UPDATE closing_runs SET auto_saved = $1, auto_reset = $2 WHERE month = $3`,
		run.AutoSaved, run.AutoReset, run.Month.String(),
	); err != nil {
		return fmt.Errorf("saving closing run: %w", err)
	}

	return nil
}

func (t *tx) SumAdjustments(ctx context.Context, month period.Month) (int64, error) {
	return adjStore.Sum(ctx, t.tx, month)
}

func (t *tx) UpsertClosing(ctx context.Context, f *closing.Figures) error {
	query := `
		INSERT INTO closings (month, gross, margin, technicians, net_base, adjustments, net, closed_by, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (month) DO UPDATE
		SET gross = EXCLUDED.gross, margin = EXCLUDED.margin, technicians = EXCLUDED.technicians,
			net_base = EXCLUDED.net_base, adjustments = EXCLUDED.adjustments, net = EXCLUDED.net,
			closed_by = EXCLUDED.closed_by, closed_at = EXCLUDED.closed_at
		RETURNING closed_at
	`

	var closedAt sql.NullTime
	if err := t.tx.QueryRowContext(ctx, query,
		f.Month.String(), f.Gross, f.Margin, f.Technicians, f.NetBase, f.Adjustments, f.Net, f.ClosedBy,
	).Scan(&closedAt); err != nil {
		return fmt.Errorf("upserting closing: %w", err)
	}

	f.ClosedAt = &closedAt.Time

	return nil
}

func (t *tx) DeleteClosing(ctx context.Context, month period.Month) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM closings WHERE month = $1`, month.String()); err != nil {
		return fmt.Errorf("deleting closing: %w", err)
	}

	return nil
}

func (t *tx) OpenRemittance(ctx context.Context, month period.Month, total int64) error {
	_, err := remStore.Open(ctx, t.tx, month, total)
	return err
}

func (t *tx) ClearRemittance(ctx context.Context, month period.Month) error {
	return remStore.Clear(ctx, t.tx, month)
}

func (t *tx) ArchiveAdjustments(ctx context.Context, month period.Month, actor string) (*adjustment.Archive, error) {
	return adjStore.Archive(ctx, t.tx, month, actor)
}
