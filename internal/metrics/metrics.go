// Package metrics exposes Prometheus collectors for HTTP traffic and game activity.
//
// Collectors:
//   - <ns>_http_request_duration_seconds{method,path,status} histogram
//   - <ns>_http_requests_inflight gauge
//   - <ns>_http_request_errors_total{method,path,status} counter (4xx/5xx)
//   - <ns>_registrations_total counter
//   - <ns>_clicks_total counter
//   - <ns>_click_points_total counter
//   - <ns>_purchases_total{upgrade} counter
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector of the service.
type Metrics struct {
	registry *prometheus.Registry

	reqDuration *prometheus.HistogramVec
	reqInflight prometheus.Gauge
	reqErrors   *prometheus.CounterVec

	registrations prometheus.Counter
	clicks        prometheus.Counter
	clickPoints   prometheus.Counter
	purchases     *prometheus.CounterVec
}

// New creates the collectors and registers them in a fresh registry
// together with the Go runtime and process collectors.
func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}, []string{"method", "path", "status"}),
		reqInflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "http_requests_inflight",
			Help:      "HTTP requests currently being served.",
		}),
		reqErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_request_errors_total",
			Help:      "HTTP requests that ended with a 4xx or 5xx status.",
		}, []string{"method", "path", "status"}),
		registrations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registered players.",
		}),
		clicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clicks_total",
			Help:      "Clicks recorded by the server.",
		}),
		clickPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "click_points_total",
			Help:      "Points awarded for clicks, upgrade bonuses included.",
		}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Upgrade purchases by upgrade name.",
		}, []string{"upgrade"}),
	}

	m.registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		m.reqDuration, m.reqInflight, m.reqErrors,
		m.registrations, m.clicks, m.clickPoints, m.purchases,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RequestStarted marks a request as in flight.
func (m *Metrics) RequestStarted() {
	m.reqInflight.Inc()
}

// RequestFinished records a completed request.
func (m *Metrics) RequestFinished(method, path string, status int, duration time.Duration) {
	m.reqInflight.Dec()

	code := strconv.Itoa(status)
	m.reqDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	if status >= http.StatusBadRequest {
		m.reqErrors.WithLabelValues(method, path, code).Inc()
	}
}

// Registered counts a new player.
func (m *Metrics) Registered() {
	m.registrations.Inc()
}

// Clicked counts a click worth points.
func (m *Metrics) Clicked(points int64) {
	m.clicks.Inc()
	m.clickPoints.Add(float64(points))
}

// Purchased counts an upgrade purchase.
func (m *Metrics) Purchased(upgrade string) {
	m.purchases.WithLabelValues(upgrade).Inc()
}
