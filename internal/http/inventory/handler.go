package inventory

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
)

type Handler struct {
	svc *inventory.Service
}

func NewHandler(svc *inventory.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/groups", h.groups)
	r.Get("/movements", h.movements)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(auth.NewEquipment))
		r.Post("/equipment", h.addEquipment)
		r.Put("/groups/{key}", h.setGroupQuantity)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(auth.DeleteEquipment))
		r.Delete("/groups/{key}", h.deleteGroup)
		r.Delete("/movements/{id}", h.deleteMovement)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(auth.RecordMovement))
		r.Post("/sales", h.sell)
		r.Post("/assignments", h.assign)
		r.Post("/movements", h.record)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(auth.ViewCollections))
		r.Patch("/movements/{id}/paid", h.setPaid)
		r.Post("/movements/{id}/gain", h.registerGain)
	})
}

func price(d *decimal.Decimal) *int64 {
	if d == nil {
		return nil
	}

	return new(money.FromDecimal(*d))
}

func amount(cents *int64) *decimal.Decimal {
	if cents == nil {
		return nil
	}

	return new(money.ToDecimal(*cents))
}

type groupResponse struct {
	Key      string           `json:"key"`
	Display  string           `json:"display"`
	Quantity int              `json:"quantity"`
	Assigned int              `json:"assigned"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	LastAt   time.Time        `json:"last_at"`
}

type movementResponse struct {
	ID          uuid.UUID        `json:"id"`
	At          time.Time        `json:"at"`
	EquipmentID *uuid.UUID       `json:"equipment_id,omitempty"`
	Label       string           `json:"label"`
	Actor       string           `json:"actor"`
	Kind        inventory.Kind   `json:"kind"`
	ClientID    *uuid.UUID       `json:"client_id,omitempty"`
	ClientName  string           `json:"client_name,omitempty"`
	Paid        *bool            `json:"paid,omitempty"`
	Detail      map[string]any   `json:"detail,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

func toMovementResponse(m *inventory.Movement) movementResponse {
	return movementResponse{
		ID:          m.ID,
		At:          m.At,
		EquipmentID: m.EquipmentID,
		Label:       m.Label,
		Actor:       m.Actor,
		Kind:        m.Kind,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		Paid:        m.Paid,
		Detail:      m.Detail,
		Amount:      amount(m.Amount),
	}
}

func toMovementList(mvs []*inventory.Movement) []movementResponse {
	resp := make([]movementResponse, len(mvs))
	for i, m := range mvs {
		resp[i] = toMovementResponse(m)
	}

	return resp
}

func movementID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) groups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.Groups(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]groupResponse, len(groups))
	for i, g := range groups {
		resp[i] = groupResponse{
			Key:      g.Key,
			Display:  g.Display,
			Quantity: g.Quantity,
			Assigned: g.Assigned,
			Price:    amount(g.Price),
			LastAt:   g.LastAt,
		}
	}

	respond.OK(w, resp)
}

func (h *Handler) movements(w http.ResponseWriter, r *http.Request) {
	filter := inventory.MovementFilter{}
	q := r.URL.Query()

	if s := q.Get("actor"); s != "" {
		filter.Actor = new(s)
	}

	if s := q.Get("kind"); s != "" {
		filter.Kind = new(inventory.Kind(s))
	}

	if s := q.Get("key"); s != "" {
		filter.Key = new(inventory.Key(s))
	}

	if s := q.Get("paid"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			filter.Paid = new(b)
		}
	}

	if s := q.Get("from"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.From = new(t)
		}
	}

	if s := q.Get("to"); s != "" {
		if t, err := time.Parse(time.DateOnly, s); err == nil {
			filter.To = new(t.AddDate(0, 0, 1))
		}
	}

	mvs, err := h.svc.ListMovements(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toMovementList(mvs))
}

type addRequest struct {
	Label string           `json:"label"`
	Qty   int              `json:"qty"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

func (h *Handler) addEquipment(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	units, err := h.svc.AddEquipment(r.Context(), inventory.AddParams{
		Label: req.Label,
		Price: price(req.Price),
		Qty:   req.Qty,
		Actor: auth.Actor(r.Context()),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]int{"added": len(units)})
}

func (h *Handler) setGroupQuantity(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	if req.Label == "" {
		req.Label = chi.URLParam(r, "key")
	}

	if err := h.svc.SetGroupQuantity(r.Context(), inventory.GroupQuantityParams{
		Label: req.Label,
		Qty:   req.Qty,
		Price: price(req.Price),
	}); err != nil {
		respond.Error(w, r, err)
		return
	}

	h.groups(w, r)
}

func (h *Handler) deleteGroup(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.DeleteGroup(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, map[string]int{"deleted": n})
}

func (h *Handler) sell(w http.ResponseWriter, r *http.Request) {
	var req addRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	mvs, err := h.svc.Sell(r.Context(), inventory.SellParams{
		Label: req.Label,
		Qty:   req.Qty,
		Price: price(req.Price),
		Actor: auth.Actor(r.Context()),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toMovementList(mvs))
}

type assignRequest struct {
	Label    string    `json:"label"`
	ClientID uuid.UUID `json:"client_id"`
	Paid     bool      `json:"paid"`
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	mv, err := h.svc.Assign(r.Context(), inventory.AssignParams{
		Label:    req.Label,
		ClientID: req.ClientID,
		Paid:     req.Paid,
		Actor:    auth.Actor(r.Context()),
		Via:      "inventario",
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toMovementResponse(mv))
}

type recordRequest struct {
	EquipmentID uuid.UUID        `json:"equipment_id"`
	ClientID    *uuid.UUID       `json:"client_id,omitempty"`
	Kind        inventory.Kind   `json:"kind"`
	Detail      map[string]any   `json:"detail,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

func (h *Handler) record(w http.ResponseWriter, r *http.Request) {
	var req recordRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	mv, err := h.svc.Record(r.Context(), inventory.RecordParams{
		EquipmentID: req.EquipmentID,
		ClientID:    req.ClientID,
		Kind:        req.Kind,
		Detail:      req.Detail,
		Amount:      price(req.Amount),
		Actor:       auth.Actor(r.Context()),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toMovementResponse(mv))
}

type paidRequest struct {
	Paid bool `json:"paid"`
}

func (h *Handler) setPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := movementID(w, r)
	if !ok {
		return
	}

	var req paidRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	mv, err := h.svc.SetPaid(r.Context(), id, req.Paid, auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toMovementResponse(mv))
}

type gainRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type adjustmentResponse struct {
	ID     uuid.UUID       `json:"id"`
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"`
}

func (h *Handler) registerGain(w http.ResponseWriter, r *http.Request) {
	id, ok := movementID(w, r)
	if !ok {
		return
	}

	var req gainRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	adj, err := h.svc.RegisterGain(r.Context(), id, money.FromDecimal(req.Amount), auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, adjustmentResponse{
		ID:     adj.ID,
		Month:  adj.Month.String(),
		Amount: money.ToDecimal(adj.Amount),
		Label:  adj.Label,
	})
}

func (h *Handler) deleteMovement(w http.ResponseWriter, r *http.Request) {
	id, ok := movementID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteMovement(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
