package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
	"github.com/MrJamesThe3rd/mikropanel/internal/remittance"
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

const selectStateColumns = `month, total, remaining, created_at, updated_at`

func scanState(s scanner) (*remittance.State, error) {
	var (
		st    remittance.State
		month string
	)

	if err := s.Scan(&month, &st.Total, &st.Remaining, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return nil, err
	}

	m, err := period.Parse(month)
	if err != nil {
		return nil, err
	}

	st.Month = m

	return &st, nil
}

// Open sets month's total and remaining to total and drops its sends, using q.
func Open(ctx context.Context, q database.Querier, month period.Month, total int64) (*remittance.State, error) {
	if _, err := q.ExecContext(ctx, `DELETE FROM remittance_sends WHERE month = $1`, month.String()); err != nil {
		return nil, fmt.Errorf("clearing remittance sends: %w", err)
	}

	st, err := scanState(q.QueryRowContext(ctx, `
		INSERT INTO remittances (month, total, remaining, created_at, updated_at)
		VALUES ($1, $2, $2, NOW(), NOW())
		ON CONFLICT (month) DO UPDATE
		SET total = EXCLUDED.total, remaining = EXCLUDED.remaining, updated_at = NOW()
		RETURNING `+selectStateColumns,
		month.String(), total,
	))
	if err != nil {
		return nil, fmt.Errorf("opening remittance: %w", err)
	}

	return st, nil
}

// Clear removes month's remittance and, through the cascade, its sends.
func Clear(ctx context.Context, q database.Querier, month period.Month) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM remittances WHERE month = $1`, month.String()); err != nil {
		return fmt.Errorf("clearing remittance: %w", err)
	}

	return nil
}

func (s *Store) GetState(ctx context.Context, month period.Month) (*remittance.State, error) {
	st, err := scanState(s.db.QueryRowContext(ctx,
		`SELECT `+selectStateColumns+` FROM remittances WHERE month = $1`, month.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, remittance.ErrNotFound
		}

		return nil, fmt.Errorf("getting remittance: %w", err)
	}

	return st, nil
}

func (s *Store) ListSends(ctx context.Context, month period.Month) ([]*remittance.Send, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, note, actor, created_at
		FROM remittance_sends
		WHERE month = $1
		ORDER BY created_at DESC`,
		month.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing remittance sends: %w", err)
	}
	defer rows.Close()

	var sends []*remittance.Send

	for rows.Next() {
		send := remittance.Send{Month: month}
		if err := rows.Scan(&send.ID, &send.Amount, &send.Note, &send.Actor, &send.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning remittance send: %w", err)
		}

		sends = append(sends, &send)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating remittance sends: %w", err)
	}

	return sends, nil
}

func (s *Store) OpenState(ctx context.Context, month period.Month, total int64) (*remittance.State, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	st, err := Open(ctx, dbTx, month, total)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(); err != nil {
		return nil, fmt.Errorf("committing remittance: %w", err)
	}

	return st, nil
}

func (s *Store) ClearState(ctx context.Context, month period.Month) error {
	return Clear(ctx, s.db, month)
}

type tx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (remittance.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning remittance tx: %w", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }

func (t *tx) GetStateForUpdate(ctx context.Context, month period.Month) (*remittance.State, error) {
	st, err := scanState(t.tx.QueryRowContext(ctx,
		`SELECT `+selectStateColumns+` FROM remittances WHERE month = $1 FOR UPDATE`, month.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, remittance.ErrNotFound
		}

		return nil, fmt.Errorf("getting remittance: %w", err)
	}

	return st, nil
}

func (t *tx) InsertSend(ctx context.Context, send *remittance.Send) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO remittance_sends (month, amount, note, actor, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`,
		send.Month.String(), send.Amount, send.Note, send.Actor,
	).Scan(&send.ID, &send.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting remittance send: %w", err)
	}

	return nil
}

func (t *tx) SetRemaining(ctx context.Context, month period.Month, remaining int64) error {
	if _, err := t.tx.ExecContext(ctx,
		`UPDATE remittances SET remaining = $1, updated_at = NOW() WHERE month = $2`, remaining, month.String(),
	); err != nil {
		return fmt.Errorf("updating remittance: %w", err)
	}

	return nil
}
