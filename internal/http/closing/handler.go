package closing

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/metrics"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
)

const (
	defaultSeries = 6
	maxSeries     = 24
)

type Recorder interface {
	ClosingSaved(trigger string)
}

type Handler struct {
	svc      *closing.Service
	recorder Recorder
}

func NewHandler(svc *closing.Service, recorder Recorder) *Handler {
	return &Handler{svc: svc, recorder: recorder}
}

func (h *Handler) Routes(r chi.Router) {
	r.Use(auth.Require(auth.ViewCollections))

	r.Get("/overview", h.overview)
	r.Get("/series", h.series)
	r.Get("/sales-bonus", h.salesBonus)
	r.Get("/{month}", h.get)
	r.Post("/{month}", h.save)
	r.Delete("/{month}", h.reset)
}

type figuresResponse struct {
	Month       string          `json:"month"`
	Gross       decimal.Decimal `json:"gross"`
	Margin      decimal.Decimal `json:"margin"`
	Technicians decimal.Decimal `json:"technicians"`
	NetBase     decimal.Decimal `json:"net_base"`
	Adjustments decimal.Decimal `json:"adjustments"`
	Net         decimal.Decimal `json:"net"`
	Saved       bool            `json:"saved"`
	ClosedBy    string          `json:"closed_by,omitempty"`
	ClosedAt    *time.Time      `json:"closed_at,omitempty"`
}

func toResponse(f *closing.Figures) figuresResponse {
	return figuresResponse{
		Month:       f.Month.String(),
		Gross:       money.ToDecimal(f.Gross),
		Margin:      money.ToDecimal(f.Margin),
		Technicians: money.ToDecimal(f.Technicians),
		NetBase:     money.ToDecimal(f.NetBase),
		Adjustments: money.ToDecimal(f.Adjustments),
		Net:         money.ToDecimal(f.Net),
		Saved:       f.Saved(),
		ClosedBy:    f.ClosedBy,
		ClosedAt:    f.ClosedAt,
	}
}

// get returns the stored closing of the month, or a live preview when the
// month has not been closed.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	month, err := respond.Month(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	f, err := h.svc.Get(r.Context(), month)
	if errors.Is(err, closing.ErrNotFound) {
		f, err = h.svc.Preview(r.Context(), month)
	}

	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(f))
}

func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	month, err := respond.Month(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	f, err := h.svc.Save(r.Context(), month, auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if h.recorder != nil {
		h.recorder.ClosingSaved(metrics.TriggerManual)
	}

	respond.OK(w, toResponse(f))
}

func (h *Handler) reset(w http.ResponseWriter, r *http.Request) {
	month, err := respond.Month(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.Reset(r.Context(), month, auth.Actor(r.Context())); err != nil {
		respond.Error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) series(w http.ResponseWriter, r *http.Request) {
	n := defaultSeries

	if s := r.URL.Query().Get("n"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 || v > maxSeries {
			respond.Message(w, http.StatusBadRequest, "n must be between 1 and 24")
			return
		}

		n = v
	}

	figures, err := h.svc.Series(r.Context(), n)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]figuresResponse, len(figures))
	for i, f := range figures {
		resp[i] = toResponse(f)
	}

	respond.OK(w, resp)
}

type zoneIncomeResponse struct {
	ZoneID  string          `json:"zone_id"`
	Name    string          `json:"name"`
	Units   int             `json:"units"`
	Clients int             `json:"clients"`
	Tariff  decimal.Decimal `json:"tariff"`
	Income  decimal.Decimal `json:"income"`
}

type overviewResponse struct {
	Units       int                  `json:"units"`
	Clients     int                  `json:"clients"`
	TargetUnits int                  `json:"target_units"`
	Missing     int                  `json:"missing"`
	Progress    float64              `json:"progress"`
	Income      decimal.Decimal      `json:"income"`
	Margin      decimal.Decimal      `json:"margin"`
	Net         decimal.Decimal      `json:"net"`
	Technicians decimal.Decimal      `json:"technicians"`
	Zones       []zoneIncomeResponse `json:"zones"`
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Overview(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := overviewResponse{
		Units:       ov.Units,
		Clients:     ov.Clients,
		TargetUnits: ov.TargetUnits,
		Missing:     ov.Missing(),
		Progress:    ov.Progress,
		Income:      money.ToDecimal(ov.Income),
		Margin:      money.ToDecimal(ov.Margin),
		Net:         money.ToDecimal(ov.Net),
		Technicians: money.ToDecimal(ov.Technicians),
		Zones:       make([]zoneIncomeResponse, len(ov.Zones)),
	}

	for i, z := range ov.Zones {
		resp.Zones[i] = zoneIncomeResponse{
			ZoneID:  z.ZoneID,
			Name:    z.Name,
			Units:   z.Units,
			Clients: z.Clients,
			Tariff:  money.ToDecimal(z.Tariff),
			Income:  money.ToDecimal(z.Income),
		}
	}

	respond.OK(w, resp)
}

type salesBonusResponse struct {
	Since      time.Time       `json:"since"`
	NanoSales  int             `json:"nano_sales"`
	PaidRouter int             `json:"paid_router"`
	Total      decimal.Decimal `json:"total"`
}

func (h *Handler) salesBonus(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.SalesBonus(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, salesBonusResponse{
		Since:      b.Since,
		NanoSales:  b.NanoSales,
		PaidRouter: b.PaidRouter,
		Total:      money.ToDecimal(b.Total),
	})
}
