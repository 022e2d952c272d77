package user

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/user"
)

type Handler struct {
	svc *user.Service
}

func NewHandler(svc *user.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.With(auth.Require(auth.AddUser)).Get("/", h.list)
	r.With(auth.Require(auth.AddUser)).Post("/", h.create)
	r.With(auth.Require(auth.EditUser)).Patch("/{id}", h.update)
}

type userResponse struct {
	ID            uuid.UUID  `json:"id"`
	Username      string     `json:"username"`
	Role          user.Role  `json:"role"`
	Active        bool       `json:"active"`
	LoginAttempts int        `json:"login_attempts"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toResponse(u *user.User) userResponse {
	return userResponse{
		ID:            u.ID,
		Username:      u.Username,
		Role:          u.Role,
		Active:        u.Active,
		LoginAttempts: u.LoginAttempts,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = toResponse(u)
	}

	respond.OK(w, resp)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req user.CreateParams
	if !respond.Decode(w, r, &req) {
		return
	}

	u, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(u))
}

type updateRequest struct {
	Role   *user.Role `json:"role,omitempty"`
	Active *bool      `json:"active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	u, err := h.svc.Update(r.Context(), id, user.UpdateParams{Role: req.Role, Active: req.Active})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(u))
}
