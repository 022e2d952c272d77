package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/mikropanel/internal/auth"
	"github.com/MrJamesThe3rd/mikropanel/internal/events"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/adjustment"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/client"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/closing"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/collection"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/expense"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/inventory"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/remittance"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/report"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/session"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/shipment"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/user"
	"github.com/MrJamesThe3rd/mikropanel/internal/http/zone"
	"github.com/MrJamesThe3rd/mikropanel/internal/metrics"
)

type Handlers struct {
	Session     *session.Handler
	Users       *user.Handler
	Zones       *zone.Handler
	Clients     *client.Handler
	Inventory   *inventory.Handler
	Adjustments *adjustment.Handler
	Collection  *collection.Handler
	Closing     *closing.Handler
	Remittance  *remittance.Handler
	Shipments   *shipment.Handler
	Expenses    *expense.Handler
	Reports     *report.Handler
}

type Options struct {
	CORSOrigins []string
	Timeout     time.Duration
}

func New(
	h Handlers,
	authenticator *auth.Authenticator,
	broker *events.Broker,
	m *metrics.Metrics,
	opts Options,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(m.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	router.Method(http.MethodGet, "/metrics", m.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.Timeout(opts.Timeout))
			h.Session.PublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(authenticator.Middleware)
				h.Session.Routes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator.Middleware)

			r.Get("/events", broker.ServeHTTP)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Timeout(opts.Timeout))

				mount := func(path string, routes func(chi.Router), topics ...events.Topic) {
					r.Route(path, func(r chi.Router) {
						r.Use(broker.Notify(topics...))
						routes(r)
					})
				}

				mount("/users", h.Users.Routes, events.TopicUsers)
				mount("/zones", h.Zones.Routes, events.TopicZones)
				mount("/clients", h.Clients.Routes, events.TopicClients, events.TopicInventory, events.TopicAdjustments)
				mount("/inventory", h.Inventory.Routes, events.TopicInventory, events.TopicAdjustments)
				mount("/adjustments", h.Adjustments.Routes, events.TopicAdjustments)
				mount("/collection", h.Collection.Routes, events.TopicCollection)
				mount("/closing", h.Closing.Routes, events.TopicClosing, events.TopicAdjustments)
				mount("/remittance", h.Remittance.Routes, events.TopicClosing)
				mount("/shipments", h.Shipments.Routes, events.TopicShipments, events.TopicInventory)
				mount("/expenses", h.Expenses.Routes, events.TopicExpenses, events.TopicAdjustments)
				r.Route("/reports", h.Reports.Routes)
			})
		})
	})

	return router
}
