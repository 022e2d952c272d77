package expense

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/expense"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/period"
)

type Handler struct {
	svc *expense.Service
	now func() time.Time
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Use(auth.Require(auth.AddExpense))

	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/reconcile", h.reconcile)
	r.Delete("/{id}", h.delete)
}

type expenseResponse struct {
	ID        uuid.UUID       `json:"id"`
	Date      string          `json:"date"`
	Reason    string          `json:"reason"`
	Amount    decimal.Decimal `json:"amount"`
	User      string          `json:"user"`
	CreatedAt time.Time       `json:"created_at"`
}

func toResponse(e *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:        e.ID,
		Date:      e.Date.Format(time.DateOnly),
		Reason:    e.Reason,
		Amount:    money.ToDecimal(e.Amount),
		User:      e.User,
		CreatedAt: e.CreatedAt,
	}
}

type listResponse struct {
	Total decimal.Decimal   `json:"total"`
	Items []expenseResponse `json:"items"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := expense.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("month"); s != "" {
		m, err := period.Parse(s)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		filter.Month = &m
	}

	if s := q.Get("q"); s != "" {
		filter.Search = new(s)
	}

	expenses, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := listResponse{Total: money.ToDecimal(expense.Total(expenses)), Items: make([]expenseResponse, len(expenses))}
	for i, e := range expenses {
		resp.Items[i] = toResponse(e)
	}

	respond.OK(w, resp)
}

type createRequest struct {
	Date   string          `json:"date"`
	Reason string          `json:"reason"`
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	params := expense.CreateParams{
		Reason: req.Reason,
		Amount: money.FromDecimal(req.Amount),
		Actor:  auth.Actor(r.Context()),
	}

	if req.Date != "" {
		d, err := time.ParseInLocation(time.DateOnly, req.Date, time.Local)
		if err != nil {
			respond.Message(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}

		params.Date = &d
	}

	e, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(e))
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

type reconcileResponse struct {
	Month   string `json:"month"`
	Created int    `json:"created"`
	Removed int    `json:"removed"`
}

func (h *Handler) reconcile(w http.ResponseWriter, r *http.Request) {
	month := period.Of(h.now())

	if s := r.URL.Query().Get("month"); s != "" {
		m, err := period.Parse(s)
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		month = m
	}

	res, err := h.svc.Reconcile(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, reconcileResponse{Month: month.String(), Created: res.Created, Removed: res.Removed})
}
