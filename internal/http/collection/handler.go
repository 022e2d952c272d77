package collection

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/collection"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
)

type Handler struct {
	svc *collection.Service
}

func NewHandler(svc *collection.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Use(auth.Require(auth.ViewCollections))

	r.Patch("/items/{id}", h.setPaid)
	r.Get("/{month}", h.get)
	r.Post("/{month}/force", h.force)
	r.Get("/{month}/summary", h.summary)
}

type itemResponse struct {
	ID         string          `json:"id"`
	Month      string          `json:"month"`
	ClientID   uuid.UUID       `json:"client_id"`
	ClientName string          `json:"client_name"`
	ZoneID     string          `json:"zone_id"`
	Units      int             `json:"units"`
	Tariff     decimal.Decimal `json:"tariff"`
	Amount     decimal.Decimal `json:"amount"`
	Paid       bool            `json:"paid"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
	PaidBy     string          `json:"paid_by,omitempty"`
}

func toResponse(it *collection.Item) itemResponse {
	return itemResponse{
		ID:         it.ID,
		Month:      it.Month.String(),
		ClientID:   it.ClientID,
		ClientName: it.ClientName,
		ZoneID:     it.ZoneID,
		Units:      it.Units,
		Tariff:     money.ToDecimal(it.Tariff),
		Amount:     money.ToDecimal(it.Amount),
		Paid:       it.Paid,
		PaidAt:     it.PaidAt,
		PaidBy:     it.PaidBy,
	}
}

func toResponseList(items []*collection.Item) []itemResponse {
	resp := make([]itemResponse, len(items))
	for i, it := range items {
		resp[i] = toResponse(it)
	}

	return resp
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	month, err := respond.Month(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	items, err := h.svc.Get(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponseList(items))
}

func (h *Handler) force(w http.ResponseWriter, r *http.Request) {
	month, err := respond.Month(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	items, err := h.svc.Force(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponseList(items))
}

type paidRequest struct {
	Paid bool `json:"paid"`
}

func (h *Handler) setPaid(w http.ResponseWriter, r *http.Request) {
	var req paidRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	it, err := h.svc.SetPaid(r.Context(), chi.URLParam(r, "id"), req.Paid, auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(it))
}

type totalsResponse struct {
	Count     int             `json:"count"`
	Paid      int             `json:"paid"`
	Amount    decimal.Decimal `json:"amount"`
	Collected decimal.Decimal `json:"collected"`
}

type zoneTotalsResponse struct {
	ZoneID string `json:"zone_id"`
	totalsResponse
}

type summaryResponse struct {
	Month string `json:"month"`
	totalsResponse
	Complete bool                 `json:"complete"`
	Zones    []zoneTotalsResponse `json:"zones"`
}

func toTotals(t collection.Totals) totalsResponse {
	return totalsResponse{
		Count:     t.Count,
		Paid:      t.Paid,
		Amount:    money.ToDecimal(t.Amount),
		Collected: money.ToDecimal(t.Collected),
	}
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	month, err := respond.Month(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	sum, err := h.svc.Summary(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := summaryResponse{
		Month:          sum.Month.String(),
		totalsResponse: toTotals(sum.Totals),
		Complete:       sum.Complete(),
		Zones:          make([]zoneTotalsResponse, len(sum.Zones)),
	}

	for i, z := range sum.Zones {
		resp.Zones[i] = zoneTotalsResponse{ZoneID: z.ZoneID, totalsResponse: toTotals(z.Totals)}
	}

	respond.OK(w, resp)
}
