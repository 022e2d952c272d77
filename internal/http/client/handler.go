package client

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
	"github.com/MrJamesThe3rd/mikropanel/internal/importer"
	"github.com/MrJamesThe3rd/mikropanel/internal/money"
	"github.com/MrJamesThe3rd/mikropanel/internal/zone"
)

const maxImportSize = 10 << 20

type Handler struct {
	svc      *client.Service
	zones    *zone.Service
	importer *importer.Service
}

func NewHandler(svc *client.Service, zones *zone.Service, importSvc *importer.Service) *Handler {
	return &Handler{svc: svc, zones: zones, importer: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(auth.RecordMovement))
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Patch("/{id}/active", h.setActive)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Require(auth.ViewConfig))
		r.Delete("/{id}", h.delete)
		r.Post("/import", h.importCSV)
	})
}

type clientResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	IP           string          `json:"ip"`
	MAC          string          `json:"mac"`
	ServiceUnits int             `json:"service_units"`
	ZoneID       string          `json:"zone_id"`
	Active       bool            `json:"active"`
	Router       bool            `json:"router"`
	Switch       bool            `json:"switch"`
	MonthlyFee   decimal.Decimal `json:"monthly_fee"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func toResponse(c *client.Client, tariffs zone.Tariffs) clientResponse {
	return clientResponse{
		ID:           c.ID,
		Name:         c.Name,
		IP:           c.IP,
		MAC:          c.MAC,
		ServiceUnits: c.ServiceUnits,
		ZoneID:       c.ZoneID,
		Active:       c.Active,
		Router:       c.Router,
		Switch:       c.Switch,
		MonthlyFee:   money.ToDecimal(c.MonthlyFee(tariffs)),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, c *client.Client) {
	tariffs, err := h.zones.Tariffs(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, status, toResponse(c, tariffs))
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
	filter := client.ListFilter{}
	q := r.URL.Query()

	if s := q.Get("zone"); s != "" {
		filter.ZoneID = new(s)
	}

	if s := q.Get("active"); s != "" {
		filter.Active = new(s == "true")
	}

	if s := q.Get("q"); s != "" {
		filter.Search = new(s)
	}

	clients, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	tariffs, err := h.zones.Tariffs(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]clientResponse, len(clients))
	for i, c := range clients {
		resp[i] = toResponse(c, tariffs)
	}

	respond.OK(w, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.write(w, r, http.StatusOK, c)
}

type clientRequest struct {
	Name         string `json:"name"`
	IP           string `json:"ip"`
	MAC          string `json:"mac"`
	ServiceUnits int    `json:"service_units"`
	ZoneID       string `json:"zone_id"`
	Router       bool   `json:"router"`
	Switch       bool   `json:"switch"`
}

func (req clientRequest) params() client.Params {
	return client.Params{
		Name:         req.Name,
		IP:           req.IP,
		MAC:          req.MAC,
		ServiceUnits: req.ServiceUnits,
		ZoneID:       req.ZoneID,
		Router:       req.Router,
		Switch:       req.Switch,
	}
}

type createRequest struct {
	clientRequest
	ApplyProration bool `json:"apply_proration"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), client.CreateParams{
		Params:         req.params(),
		ApplyProration: req.ApplyProration,
		Actor:          auth.Actor(r.Context()),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.write(w, r, http.StatusCreated, c)
}

type updateRequest struct {
	clientRequest
	Active *bool `json:"active,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	c, err := h.svc.Update(r.Context(), id, client.UpdateParams{
		Params: req.params(),
		Active: req.Active,
		Actor:  auth.Actor(r.Context()),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.write(w, r, http.StatusOK, c)
}

type activeRequest struct {
	Active bool `json:"active"`
}

func (h *Handler) setActive(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req activeRequest
	if !respond.Decode(w, r, &req) {
		return
	}

	c, err := h.svc.SetActive(r.Context(), id, req.Active)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.write(w, r, http.StatusOK, c)
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

type lineErrorResponse struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

type importResponse struct {
	Imported int                 `json:"imported"`
	Errors   []lineErrorResponse `json:"errors"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		respond.Message(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Message(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	res, err := h.importer.Import(r.Context(), file, auth.Actor(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := importResponse{Imported: len(res.Created), Errors: make([]lineErrorResponse, len(res.Errors))}
	for i, e := range res.Errors {
		resp.Errors[i] = lineErrorResponse{Line: e.Line, Message: e.Message}
	}

	respond.OK(w, resp)
}
