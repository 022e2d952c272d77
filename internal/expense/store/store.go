package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	adjStore "github.com/MrJamesThe3rd/mikropanel/internal/adjustment/store"
	"github.com/MrJamesThe3rd/mikropanel/internal/expense"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListExpenses(ctx context.Context, filter expense.ListFilter) ([]*expense.Expense, error) {
	query := `SELECT id, date, reason, amount, username, created_at FROM expenses WHERE TRUE`

	var args []any

	argIdx := 1

	if filter.Month != nil {
		query += fmt.Sprintf(" AND date >= $%d AND date < $%d", argIdx, argIdx+1)

		args = append(args, filter.Month.Start(time.UTC), filter.Month.Add(1).Start(time.UTC))
		argIdx += 2
	}

	if filter.Search != nil {
		query += fmt.Sprintf(" AND (reason ILIKE $%d OR username ILIKE $%d)", argIdx, argIdx)

		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query += " ORDER BY date DESC, created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*expense.Expense

	for rows.Next() {
		var e expense.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Reason, &e.Amount, &e.User, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		expenses = append(expenses, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}

	return expenses, nil
}

func (s *Store) ListExpenseAdjustments(ctx context.Context, month period.Month) ([]*adjustment.Adjustment, error) {
	kind := adjustment.KindExpense
	return adjStore.New(s.db).ListAdjustments(ctx, adjustment.ListFilter{Month: &month, Kind: &kind})
}

type tx struct {
	tx *sql.Tx
}

func (s *Store) Begin(ctx context.Context) (expense.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning expense tx: %w", err)
	}

	return &tx{tx: dbTx}, nil
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }

func (t *tx) CreateExpense(ctx context.Context, e *expense.Expense) error {
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO expenses (date, reason, amount, username, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`,
		e.Date, e.Reason, e.Amount, e.User,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (t *tx) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	if n == 0 {
		return expense.ErrNotFound
	}

	return nil
}

func (t *tx) InsertAdjustment(ctx context.Context, adj *adjustment.Adjustment) (bool, error) {
	return adjStore.Insert(ctx, t.tx, adj)
}

func (t *tx) DeleteAdjustments(ctx context.Context, originRef string, kinds []adjustment.Kind) (int64, error) {
	return adjStore.DeleteByOrigin(ctx, t.tx, originRef, kinds...)
}
