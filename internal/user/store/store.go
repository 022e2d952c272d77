package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/database"
	"github.com/MrJamesThe3rd/mikropanel/internal/user"
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

const selectUserColumns = `
	id, username, password_hash, role, active, login_attempts, last_login, created_at, updated_at
`

func scanUser(s scanner) (*user.User, error) {
	var (
		u         user.User
		lastLogin sql.NullTime
	)

	if err := s.Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Active,
		&u.LoginAttempts, &lastLogin, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if lastLogin.Valid {
		u.LastLogin = &lastLogin.Time
	}

	return &u, nil
}

func (s *Store) getOne(ctx context.Context, where string, arg any) (*user.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, `SELECT `+selectUserColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, user.ErrNotFound
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

func (s *Store) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.getOne(ctx, "username = $1", username)
}

func (s *Store) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.getOne(ctx, "id = $1", id)
}

func (s *Store) ListUsers(ctx context.Context) ([]*user.User, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectUserColumns+` FROM users ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []*user.User

	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}

		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}

	return n, nil
}

func (s *Store) CreateUser(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (username, password_hash, role, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash, u.Role, u.Active).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.ErrDuplicate
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) UpdateUser(ctx context.Context, u *user.User) error {
	err := s.db.QueryRowContext(ctx,
		`UPDATE users SET role = $1, active = $2, updated_at = NOW() WHERE id = $3 RETURNING updated_at`,
		u.Role, u.Active, u.ID,
	).Scan(&u.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return user.ErrNotFound
		}

		return fmt.Errorf("updating user: %w", err)
	}

	return nil
}

func (s *Store) exec(ctx context.Context, op, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return user.ErrNotFound
	}

	return nil
}

func (s *Store) SetPassword(ctx context.Context, id uuid.UUID, hash string) error {
	return s.exec(ctx, "setting password",
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`, hash, id)
}

func (s *Store) RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return s.exec(ctx, "recording login",
		`UPDATE users SET last_login = $1, login_attempts = 0 WHERE id = $2`, at, id)
}

func (s *Store) RecordFailedLogin(ctx context.Context, id uuid.UUID) error {
	return s.exec(ctx, "recording failed login",
		`UPDATE users SET login_attempts = login_attempts + 1 WHERE id = $1`, id)
}
