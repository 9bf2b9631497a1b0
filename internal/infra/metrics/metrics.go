// Package metrics provides Prometheus instrumentation for the storefront API.
//
// A Metrics value owns its registry so tests can build isolated instances.
// The HTTP middleware labels requests by route template, not raw path, to
// keep label cardinality bounded.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

// Metrics bundles the collectors exported on the scrape endpoint.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	requestInFlight prometheus.Gauge
	checkoutTotal   *prometheus.CounterVec
}

// New creates the registry with Go runtime, process and application collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		requestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		checkoutTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "checkout_total",
				Help:      "Checkout attempts by outcome.",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requestDuration,
		m.requestTotal,
		m.requestInFlight,
		m.checkoutTotal,
	)

	return m
}

// NewCheckoutRecorder exposes m as the domain-level recorder.
func NewCheckoutRecorder(m *Metrics) service.CheckoutRecorder {
	return m
}

// RecordCheckout implements service.CheckoutRecorder.
func (m *Metrics) RecordCheckout(outcome string) {
	m.checkoutTotal.WithLabelValues(outcome).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Middleware records duration, count and in-flight gauge for every request.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			m.requestInFlight.Inc()
			defer m.requestInFlight.Dec()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				// The central error handler has not written yet; derive the code it will send.
				status = http.StatusInternalServerError
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			code := strconv.Itoa(status)

			m.requestDuration.WithLabelValues(c.Request().Method, path, code).Observe(time.Since(start).Seconds())
			m.requestTotal.WithLabelValues(c.Request().Method, path, code).Inc()

			return err
		}
	}
}

// Handler serves the Prometheus exposition page.
func (m *Metrics) Handler() echo.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})

	return echo.WrapHandler(h)
}
