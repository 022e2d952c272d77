package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner    Role = "owner"
	RoleAdmin    Role = "admin"
	RoleTech     Role = "tech"
	RoleShipping Role = "envios"
	RoleViewer   Role = "viewer"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleTech, RoleShipping, RoleViewer:
		return true
	}

	return false
}

type User struct {
	ID            uuid.UUID
	Username      string
	PasswordHash  string
	Role          Role
	Active        bool
	LoginAttempts int
	LastLogin     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
