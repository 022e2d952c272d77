// Package auth issues session tokens and guards routes by role permission.
package auth

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/user"
)

type Permission string

const (
	ViewConfig      Permission = "viewConfig"
	NewEquipment    Permission = "newEquipo"
	DeleteEquipment Permission = "deleteEquipo"
	AddUser         Permission = "addUsuario"
	EditUser        Permission = "editUsuario"
	DeleteUser      Permission = "deleteUsuario"
	ViewCollections Permission = "viewCobros"
	RecordMovement  Permission = "registrarMov"
	AddExpense      Permission = "addGasto"
	CreateShipment  Permission = "crearEnvio"
	MarkAvailable   Permission = "marcarDisponible"
	PickUpShipment  Permission = "recogerEnvio"
)

// permissions lists the roles granted each permission besides the owner.
var permissions = map[Permission][]user.Role{
	ViewConfig:      {user.RoleAdmin},
	NewEquipment:    {user.RoleAdmin},
	DeleteEquipment: {user.RoleAdmin},
	AddUser:         {user.RoleAdmin},
	EditUser:        {user.RoleAdmin},
	DeleteUser:      {user.RoleAdmin},
	ViewCollections: {user.RoleAdmin},
	RecordMovement:  {user.RoleAdmin, user.RoleTech, user.RoleShipping},
	AddExpense:      {user.RoleAdmin, user.RoleTech},
	CreateShipment:  {user.RoleAdmin, user.RoleShipping},
	MarkAvailable:   {user.RoleAdmin, user.RoleShipping},
	PickUpShipment:  {user.RoleAdmin, user.RoleTech},
}

// Allowed reports whether role holds p. The owner holds every permission.
func Allowed(role user.Role, p Permission) bool {
	if role == user.RoleOwner {
		return true
	}

	return slices.Contains(permissions[p], role)
}

// Session identifies the authenticated caller of a request.
type Session struct {
	UserID   uuid.UUID
	Username string
	Role     user.Role
}

func (s *Session) Can(p Permission) bool {
	return s != nil && Allowed(s.Role, p)
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored by the middleware, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

// Actor is the username recorded on writes made by the request.
func Actor(ctx context.Context) string {
	if s := FromContext(ctx); s != nil {
		return s.Username
	}

	return ""
}
