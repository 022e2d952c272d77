package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MrJamesThe3rd/mikropanel/internal/validation"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicate          = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// MinPasswordLength applies to new and changed passwords.
const MinPasswordLength = 4

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=user
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	CountUsers(ctx context.Context) (int, error)
	CreateUser(ctx context.Context, u *User) error
	UpdateUser(ctx context.Context, u *User) error
	SetPassword(ctx context.Context, id uuid.UUID, hash string) error
	RecordLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	RecordFailedLogin(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
	cost int
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, cost: bcrypt.DefaultCost, now: time.Now}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithCost sets the bcrypt cost used for new hashes.
func (s *Service) WithCost(cost int) *Service {
	s.cost = cost
	return s
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (s *Service) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	return string(h), nil
}

// Authenticate checks a username and password. Every kind of failure yields
// ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, normalizeUsername(username))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}

	if err != nil {
		return nil, err
	}

	if !u.Active {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		if rerr := s.repo.RecordFailedLogin(ctx, u.ID); rerr != nil {
			slog.Error("failed to record login attempt", "user", u.Username, "error", rerr)
		}

		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.repo.RecordLogin(ctx, u.ID, now); err != nil {
		return nil, fmt.Errorf("recording login: %w", err)
	}

	u.LastLogin = &now
	u.LoginAttempts = 0

	return u, nil
}

type CreateParams struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
	Role     Role   `json:"role" validate:"required,oneof=owner admin tech envios viewer"`
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*User, error) {
	params.Username = normalizeUsername(params.Username)

	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	hash, err := s.hash(params.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:     params.Username,
		PasswordHash: hash,
		Role:         params.Role,
		Active:       true,
	}

	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.ListUsers(ctx)
}

type UpdateParams struct {
	Role   *Role
	Active *bool
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*User, error) {
	if params.Role != nil && !params.Role.Valid() {
		return nil, validation.Single("role", "must be one of: owner admin tech envios viewer")
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Role != nil {
		u.Role = *params.Role
	}

	if params.Active != nil {
		u.Active = *params.Active
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// ChangePassword replaces the password of username after checking the
// current one.
func (s *Service) ChangePassword(ctx context.Context, username, current, next string) error {
	if len(next) < MinPasswordLength {
		return validation.Single("new_password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}

	u, err := s.Authenticate(ctx, username, current)
	if err != nil {
		return err
	}

	hash, err := s.hash(next)
	if err != nil {
		return err
	}

	return s.repo.SetPassword(ctx, u.ID, hash)
}

// EnsureBootstrap creates an owner account when there are no users at all.
// It reports whether one was created.
func (s *Service) EnsureBootstrap(ctx context.Context, username, password string) (bool, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return false, nil
	}

	n, err := s.repo.CountUsers(ctx)
	if err != nil {
		return false, fmt.Errorf("counting users: %w", err)
	}

	if n > 0 {
		return false, nil
	}

	if _, err := s.Create(ctx, CreateParams{Username: username, Password: password, Role: RoleOwner}); err != nil {
		return false, fmt.Errorf("creating bootstrap user: %w", err)
	}

	return true, nil
}
