package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
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

// Expected column order: id, month, amount, label, kind, origin_ref, actor, created_at
func scanAdjustment(s scanner) (*adjustment.Adjustment, error) {
	var (
		adj    adjustment.Adjustment
		month  string
		kind   string
		origin sql.NullString
	)

	if err := s.Scan(&adj.ID, &month, &adj.Amount, &adj.Label, &kind, &origin, &adj.Actor, &adj.CreatedAt); err != nil {
		return nil, err
	}

	m, err := period.Parse(month)
	if err != nil {
		return nil, err
	}

	adj.Month = m
	adj.Kind = adjustment.Kind(kind)
	adj.OriginRef = origin.String

	return &adj, nil
}

const selectAdjustmentColumns = `id, month, amount, label, kind, origin_ref, actor, created_at`

func nullableOrigin(ref string) sql.NullString {
	return sql.NullString{String: ref, Valid: ref != ""}
}

// Insert writes adj using q. It reports false, without error, when an
// adjustment of the same kind already exists for the same origin.
func Insert(ctx context.Context, q database.Querier, adj *adjustment.Adjustment) (bool, error) {
	query := `
		INSERT INTO adjustments (month, amount, label, kind, origin_ref, actor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (origin_ref, kind) WHERE origin_ref IS NOT NULL DO NOTHING
		RETURNING id, created_at
	`

	err := q.QueryRowContext(ctx, query,
		adj.Month.String(),
		adj.Amount,
		adj.Label,
		adj.Kind,
		nullableOrigin(adj.OriginRef),
		adj.Actor,
	).Scan(&adj.ID, &adj.CreatedAt)
	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("creating adjustment: %w", err)
	}

	return true, nil
}

// DeleteByOrigin removes adjustments linked to ref. With no kinds given every
// kind is removed.
func DeleteByOrigin(ctx context.Context, q database.Querier, ref string, kinds ...adjustment.Kind) (int64, error) {
	query := `DELETE FROM adjustments WHERE origin_ref = $1`
	args := []any{ref}

	if len(kinds) > 0 {
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = string(k)
		}

		query += ` AND kind = ANY($2)`

		args = append(args, names)
	}

	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting adjustments by origin: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted adjustments: %w", err)
	}

	return n, nil
}

// Archive snapshots and deletes month's adjustments using q, which should be a
// transaction.
func Archive(ctx context.Context, q database.Querier, month period.Month, actor string) (*adjustment.Archive, error) {
	items, err := list(ctx, q, adjustment.ListFilter{Month: &month}, true)
	if err != nil {
		return nil, err
	}

	arch := &adjustment.Archive{
		Month:   month,
		Items:   items,
		Total:   adjustment.Sum(items),
		SavedBy: actor,
	}

	payload, err := json.Marshal(toArchiveItems(items))
	if err != nil {
		return nil, fmt.Errorf("encoding archive items: %w", err)
	}

	query := `
		INSERT INTO adjustment_archives (month, items, total, saved_by, saved_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (month) DO UPDATE
		SET items = EXCLUDED.items, total = EXCLUDED.total, saved_by = EXCLUDED.saved_by, saved_at = EXCLUDED.saved_at
		RETURNING saved_at
	`
	if err := q.QueryRowContext(ctx, query, month.String(), payload, arch.Total, actor).Scan(&arch.SavedAt); err != nil {
		return nil, fmt.Errorf("saving adjustment archive: %w", err)
	}

	if _, err := q.ExecContext(ctx, `DELETE FROM adjustments WHERE month = $1`, month.String()); err != nil {
		return nil, fmt.Errorf("clearing archived adjustments: %w", err)
	}

	return arch, nil
}

// Sum returns the total of month's adjustments using q.
func Sum(ctx context.Context, q database.Querier, month period.Month) (int64, error) {
	var total int64
	if err := q.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM adjustments WHERE month = $1`, month.String(),
	).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing adjustments: %w", err)
	}

	return total, nil
}

func (s *Store) CreateAdjustment(ctx context.Context, adj *adjustment.Adjustment) error {
	inserted, err := Insert(ctx, s.db, adj)
	if err != nil {
		return err
	}

	if !inserted {
		return adjustment.ErrDuplicate
	}

	return nil
}

func (s *Store) ListAdjustments(ctx context.Context, filter adjustment.ListFilter) ([]*adjustment.Adjustment, error) {
	return list(ctx, s.db, filter, false)
}

func list(ctx context.Context, q database.Querier, filter adjustment.ListFilter, lock bool) ([]*adjustment.Adjustment, error) {
	query := `SELECT ` + selectAdjustmentColumns + ` FROM adjustments WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Month != nil {
		query += fmt.Sprintf(" AND month = $%d", argIdx)

		args = append(args, filter.Month.String())
		argIdx++
	}

	if filter.Kind != nil {
		query += fmt.Sprintf(" AND kind = $%d", argIdx)

		args = append(args, *filter.Kind)
		argIdx++
	}

	if filter.OriginRef != nil {
		query += fmt.Sprintf(" AND origin_ref = $%d", argIdx)

		args = append(args, *filter.OriginRef)
		argIdx++
	}

	query += " ORDER BY created_at ASC"

	if lock {
		query += " FOR UPDATE"
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing adjustments: %w", err)
	}
	defer rows.Close()

	var adjs []*adjustment.Adjustment

	for rows.Next() {
		adj, err := scanAdjustment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning adjustment: %w", err)
		}

		adjs = append(adjs, adj)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating adjustments: %w", err)
	}

	return adjs, nil
}

func (s *Store) DeleteAdjustment(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM adjustments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting adjustment: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting adjustment: %w", err)
	}

	if n == 0 {
		return adjustment.ErrNotFound
	}

	return nil
}

func (s *Store) SumAdjustments(ctx context.Context, month period.Month) (int64, error) {
	return Sum(ctx, s.db, month)
}

func (s *Store) ArchiveMonth(ctx context.Context, month period.Month, actor string) (*adjustment.Archive, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	arch, err := Archive(ctx, dbTx, month, actor)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return arch, nil
}

func (s *Store) ListArchives(ctx context.Context) ([]*adjustment.Archive, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT month, items, total, saved_by, saved_at FROM adjustment_archives ORDER BY month DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing archives: %w", err)
	}
	defer rows.Close()

	var archives []*adjustment.Archive

	for rows.Next() {
		var (
			arch    adjustment.Archive
			month   string
			payload []byte
		)

		if err := rows.Scan(&month, &payload, &arch.Total, &arch.SavedBy, &arch.SavedAt); err != nil {
			return nil, fmt.Errorf("scanning archive: %w", err)
		}

		if arch.Month, err = period.Parse(month); err != nil {
			return nil, fmt.Errorf("scanning archive: %w", err)
		}

		var items []archiveItem
		if err := json.Unmarshal(payload, &items); err != nil {
			return nil, fmt.Errorf("decoding archive items: %w", err)
		}

		arch.Items = fromArchiveItems(items, arch.Month)
		archives = append(archives, &arch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archives: %w", err)
	}

	return archives, nil
}

type archiveItem struct {
	ID        uuid.UUID `json:"id"`
	Amount    int64     `json:"amount"`
	Label     string    `json:"label"`
	Kind      string    `json:"kind"`
	OriginRef string    `json:"origin_ref,omitempty"`
	Actor     string    `json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

func toArchiveItems(adjs []*adjustment.Adjustment) []archiveItem {
	out := make([]archiveItem, len(adjs))
	for i, a := range adjs {
		out[i] = archiveItem{
			ID:        a.ID,
			Amount:    a.Amount,
			Label:     a.Label,
			Kind:      string(a.Kind),
			OriginRef: a.OriginRef,
			Actor:     a.Actor,
			CreatedAt: a.CreatedAt,
		}
	}

	return out
}

func fromArchiveItems(items []archiveItem, month period.Month) []*adjustment.Adjustment {
	out := make([]*adjustment.Adjustment, len(items))
	for i, it := range items {
		out[i] = &adjustment.Adjustment{
			ID:        it.ID,
			Month:     month,
			Amount:    it.Amount,
			Label:     it.Label,
			Kind:      adjustment.Kind(it.Kind),
			OriginRef: it.OriginRef,
			Actor:     it.Actor,
			CreatedAt: it.CreatedAt,
		}
	}

	return out
}
