package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	FilterSelections *prometheus.CounterVec
	TileFetches      *prometheus.CounterVec
}

// New registers the service collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "riskmap_http_requests_total",
			Help: "Total HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "riskmap_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		FilterSelections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "riskmap_filter_selections_total",
			Help: "Site list derivations by filter value",
		}, []string{"filter"}),
		TileFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "riskmap_tile_fetches_total",
			Help: "Tile proxy lookups by result (hit, fetched, failed)",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.FilterSelections,
		m.TileFetches,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveFilter(filter string) {
	m.FilterSelections.WithLabelValues(filter).Inc()
}

func (m *Metrics) ObserveTile(result string) {
	m.TileFetches.WithLabelValues(result).Inc()
}
