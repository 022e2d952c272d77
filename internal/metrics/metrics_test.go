package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/mikropanel/internal/metrics"
)

func TestMetrics_Middleware(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/clients/{id}", func(w http.ResponseWriter, r *http.Request) {})
	r.Post("/clients", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clients/a", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/clients/b", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/clients", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/clients/{id}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "/clients", "201")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestMetrics_DomainCounters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.UnitsAdded(3)
	m.UnitsAdded(0)
	m.ClosingSaved(metrics.TriggerAuto)
	m.ClosingSaved(metrics.TriggerManual)
	m.ClosingSaved(metrics.TriggerManual)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.UnitsApplied))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ClosingsSaved.WithLabelValues(metrics.TriggerManual)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ClosingsSaved.WithLabelValues(metrics.TriggerAuto)))
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.UnitsAdded(1)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mikropanel_inventory_units_applied_total 1")
}
