package adjustment

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mikropanel/internal/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

type Handler struct {
	svc *adjustment.Service
	now func() time.Time
}

func NewHandler(svc *adjustment.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Use(auth.Require(auth.ViewCollections))

	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/archives", h.archives)
	r.Delete("/{id}", h.delete)
}

type adjustmentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Month     string          `json:"month"`
	Amount    decimal.Decimal `json:"amount"`
	Label     string          `json:"label"`
	Kind      adjustment.Kind `json:"kind"`
	OriginRef string          `json:"origin_ref,omitempty"`
	Actor     string          `json:"actor"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(a *adjustment.Adjustment) adjustmentResponse {
	return adjustmentResponse{
		ID:        a.ID,
		Month:     a.Month.String(),
		Amount:    money.ToDecimal(a.Amount),
		Label:     a.Label,
		Kind:      a.Kind,
		OriginRef: a.OriginRef,
		Actor:     a.Actor,
		CreatedAt: a.CreatedAt,
	}
}

func toResponseList(adjs []*adjustment.Adjustment) []adjustmentResponse {
	resp := make([]adjustmentResponse, len(adjs))
	for i, a := range adjs {
		resp[i] = toResponse(a)
	}

	return resp
}

type listResponse struct {
	Month string               `json:"month"`
	Total decimal.Decimal      `json:"total"`
	Items []adjustmentResponse `json:"items"`
}

func (h *Handler) month(r *http.Request) (period.Month, error) {
	if s := r.URL.Query().Get("month"); s != "" {
		return period.Parse(s)
	}

	return period.Of(h.now()), nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	month, err := h.month(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter := adjustment.ListFilter{Month: &month}
	if s := r.URL.Query().Get("kind"); s != "" {
		filter.Kind = new(adjustment.Kind(s))
	}

	adjs, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, listResponse{
		Month: month.String(),
		Total: money.ToDecimal(adjustment.Sum(adjs)),
		Items: toResponseList(adjs),
	})
}

type createRequest struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Label  string          `json:"label"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	month := period.Of(h.now())

	if req.Month != "" {
		m, err := period.Parse(req.Month)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		month = m
	}

	adj, err := h.svc.Create(r.Context(), adjustment.CreateParams{
		Month:  month,
		Amount: money.FromDecimal(req.Amount),
		Label:  req.Label,
		Actor:  auth.Actor(r.Context()),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(adj))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type archiveResponse struct {
	Month   string               `json:"month"`
	Total   decimal.Decimal      `json:"total"`
	Items   []adjustmentResponse `json:"items"`
	SavedBy string               `json:"saved_by"`
	SavedAt time.Time            `json:"saved_at"`
}

func (h *Handler) archives(w http.ResponseWriter, r *http.Request) {
	archives, err := h.svc.Archives(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]archiveResponse, len(archives))
	for i, a := range archives {
		resp[i] = archiveResponse{
			Month:   a.Month.String(),
			Total:   money.ToDecimal(a.Total),
			Items:   toResponseList(a.Items),
			SavedBy: a.SavedBy,
			SavedAt: a.SavedAt,
		}
	}

	respond.OK(w, resp)
}
