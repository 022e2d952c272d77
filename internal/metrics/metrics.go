// Package metrics exposes request and business counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Closing triggers.
const (
	TriggerManual = "manual"
	TriggerAuto   = "auto"
)

type Metrics struct {
	gatherer prometheus.Gatherer

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	UnitsApplied    prometheus.Counter
	ClosingsSaved   *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"path"},
		),
		UnitsApplied: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mikropanel_inventory_units_applied_total",
			Help: "Equipment units added to inventory by shipment pickups",
		}),
		ClosingsSaved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mikropanel_closings_saved_total",
				Help: "Monthly closings saved",
			},
			[]string{"trigger"},
		),
	}

	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.UnitsApplied, m.ClosingsSaved)

	return m
}

// Middleware records every request under its chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := "undefined"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				path = p
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.RequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	})
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) UnitsAdded(n int) {
	if n > 0 {
		m.UnitsApplied.Add(float64(n))
	}
}

func (m *Metrics) ClosingSaved(trigger string) {
	m.ClosingsSaved.WithLabelValues(trigger).Inc()
}
