package shipment

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/shipment"
)

type Recorder interface {
	UnitsAdded(n int)
}

type Handler struct {
	svc      *shipment.Service
	recorder Recorder
}

func NewHandler(svc *shipment.Service, recorder Recorder) *Handler {
	return &Handler{svc: svc, recorder: recorder}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(auth.CreateShipment))
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})

	r.With(auth.Require(auth.MarkAvailable)).Post("/{id}/arrive", h.arrive)
	r.With(auth.Require(auth.PickUpShipment)).Post("/{id}/pickup", h.pickUp)
}

type itemDTO struct {
	Key   string `json:"key,omitempty"`
	Label string `json:"label"`
	Qty   int    `json:"qty"`
}

type shipmentResponse struct {
	ID               uuid.UUID       `json:"id"`
	Status           shipment.Status `json:"status"`
	Note             string          `json:"note,omitempty"`
	Items            []itemDTO       `json:"items"`
	Units            int             `json:"units"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
	ArrivedAt        *time.Time      `json:"arrived_at,omitempty"`
	PickedAt         *time.Time      `json:"picked_at,omitempty"`
	PickedBy         string          `json:"picked_by,omitempty"`
	InventoryApplied bool            `json:"inventory_applied"`
}

func toResponse(sh *shipment.Shipment) shipmentResponse {
	items := make([]itemDTO, len(sh.Items))
	for i, it := range sh.Items {
		items[i] = itemDTO{Key: it.Key, Label: it.Display, Qty: it.Qty}
	}

	return shipmentResponse{
		ID:               sh.ID,
		Status:           sh.Status,
		Note:             sh.Note,
		Items:            items,
		Units:            sh.Units(),
		CreatedBy:        sh.CreatedBy,
		CreatedAt:        sh.CreatedAt,
		ArrivedAt:        sh.ArrivedAt,
		PickedAt:         sh.PickedAt,
		PickedBy:         sh.PickedBy,
		InventoryApplied: sh.InventoryApplied,
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var status *shipment.Status
	if s := r.URL.Query().Get("status"); s != "" {
		status = new(shipment.Status(s))
	}

	shipments, err := h.svc.List(r.Context(), status)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]shipmentResponse, len(shipments))
	for i, sh := range shipments {
		resp[i] = toResponse(sh)
	}

	respond.OK(w, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	sh, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(sh))
}

type shipmentRequest struct {
	Items []itemDTO `json:"items"`
	Note  string    `json:"note"`
}

func (req shipmentRequest) items() []shipment.Item {
	items := make([]shipment.Item, len(req.Items))
	for i, it := range req.Items {
		items[i] = shipment.Item{Display: it.Label, Qty: it.Qty}
	}

	return items
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req shipmentRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	sh, err := h.svc.Create(r.Context(), shipment.CreateParams{
		Items: req.items(),
		Note:  req.Note,
		Actor: auth.Actor(r.Context()),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(sh))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req shipmentRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	sh, err := h.svc.UpdateItems(r.Context(), id, shipment.UpdateParams{Items: req.items(), Note: req.Note})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(sh))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) arrive(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	sh, err := h.svc.MarkAvailable(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(sh))
}

func (h *Handler) pickUp(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	sh, applied, err := h.svc.PickUp(r.Context(), id, auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if applied && h.recorder != nil {
		h.recorder.UnitsAdded(sh.Units())
	}

	respond.OK(w, toResponse(sh))
}
