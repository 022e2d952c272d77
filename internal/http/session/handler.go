package session

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/user"
)

type Handler struct {
	users *user.Service
	auth  *auth.Authenticator
}

func NewHandler(users *user.Service, authenticator *auth.Authenticator) *Handler {
	return &Handler{users: users, auth: authenticator}
}

// PublicRoutes mounts the endpoints reachable without a session.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/me", h.me)
	r.Post("/change-password", h.changePassword)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Role      user.Role  `json:"role"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		respond.Message(w, http.StatusBadRequest, "username and password are required")
		return
	}

	u, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	token, exp, err := h.auth.Issuer().Issue(auth.Session{UserID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.auth.SetCookie(w, token)

	respond.OK(w, sessionResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		Token:     token,
		ExpiresAt: &exp,
	})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.auth.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	s := auth.FromContext(r.Context())

	respond.OK(w, sessionResponse{ID: s.UserID, Username: s.Username, Role: s.Role})
}

type changePasswordRequest struct {
	Current string `json:"current_password"`
	New     string `json:"new_password"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if err := h.users.ChangePassword(r.Context(), auth.Actor(r.Context()), req.Current, req.New); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
