package zone

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

type Handler struct {
	svc *zone.Service
}

func NewHandler(svc *zone.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/tariffs", h.tariffs)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(auth.ViewConfig))
		r.Post("/", h.create)
		r.Put("/tariffs", h.saveTariffs)
		r.Delete("/{id}", h.delete)
	})
}

type zoneResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Tariff    decimal.Decimal `json:"tariff"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(z *zone.Zone) zoneResponse {
	return zoneResponse{ID: z.ID, Name: z.Name, Tariff: money.ToDecimal(z.Tariff), CreatedAt: z.CreatedAt}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	zones, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]zoneResponse, len(zones))
	for i, z := range zones {
		resp[i] = toResponse(z)
	}

	respond.OK(w, resp)
}

type createRequest struct {
	Name   string          `json:"name"`
	Tariff decimal.Decimal `json:"tariff"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	z, err := h.svc.Create(r.Context(), zone.CreateParams{Name: req.Name, Tariff: money.FromDecimal(req.Tariff)})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(z))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) tariffs(w http.ResponseWriter, r *http.Request) {
	tariffs, err := h.svc.Tariffs(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make(map[string]decimal.Decimal, len(tariffs))
	for id, price := range tariffs {
		resp[id] = money.ToDecimal(price)
	}

	respond.OK(w, resp)
}

func (h *Handler) saveTariffs(w http.ResponseWriter, r *http.Request) {
	var req map[string]decimal.Decimal
	if !respond.Decode(w, r, &req) {
		return
	}

	tariffs := make(zone.Tariffs, len(req))
	for id, price := range req {
		tariffs[id] = money.FromDecimal(price)
	}

	if err := h.svc.SaveTariffs(r.Context(), tariffs); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.tariffs(w, r)
}
