package remittance

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/remittance"
)

type Handler struct {
	svc *remittance.Service
}

func NewHandler(svc *remittance.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Use(auth.Require(auth.ViewCollections))

	r.Get("/{month}", h.get)
	r.Post("/{month}/sends", h.send)
}

type stateResponse struct {
	Month     string          `json:"month"`
	Total     decimal.Decimal `json:"total"`
	Remaining decimal.Decimal `json:"remaining"`
	Sent      decimal.Decimal `json:"sent"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type sendResponse struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	Actor     string          `json:"actor"`
	CreatedAt time.Time       `json:"created_at"`
}

type remittanceResponse struct {
	stateResponse
	Sends []sendResponse `json:"sends"`
}

func toState(s *remittance.State) stateResponse {
	return stateResponse{
		Month:     s.Month.String(),
		Total:     money.ToDecimal(s.Total),
		Remaining: money.ToDecimal(s.Remaining),
		Sent:      money.ToDecimal(s.Sent()),
		UpdatedAt: s.UpdatedAt,
	}
}

func toSend(s *remittance.Send) sendResponse {
	return sendResponse{
		ID:        s.ID,
		Amount:    money.ToDecimal(s.Amount),
		Note:      s.Note,
		Actor:     s.Actor,
		CreatedAt: s.CreatedAt,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	month, err := respond.Month(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	state, err := h.svc.Get(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	sends, err := h.svc.Sends(r.Context(), month)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := remittanceResponse{stateResponse: toState(state), Sends: make([]sendResponse, len(sends))}
	for i, s := range sends {
		resp.Sends[i] = toSend(s)
	}

	respond.OK(w, resp)
}

type sendRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note"`
	AllowExcess bool            `json:"allow_excess"`
}

type sendResultResponse struct {
	State stateResponse `json:"state"`
	Send  sendResponse  `json:"send"`
}

func (h *Handler) send(w http.ResponseWriter, r *http.Request) {
	month, err := respond.Month(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req sendRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	state, send, err := h.svc.Send(r.Context(), remittance.SendParams{
		Month:       month,
		Amount:      money.FromDecimal(req.Amount),
		Note:        req.Note,
		Actor:       auth.Actor(r.Context()),
		AllowExcess: req.AllowExcess,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, sendResultResponse{State: toState(state), Send: toSend(send)})
}
