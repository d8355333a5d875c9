// Package metrics exposes prometheus instrumentation for the HTTP surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vouch"

// Metrics holds the request-level collectors registered on the default
// prometheus registry.
type Metrics struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	submissionsTotal *prometheus.CounterVec
}

// New registers and returns the service metrics.
func New() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		submissionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "public_submissions_total",
				Help:      "Total number of public review submissions",
			},
			[]string{"outcome"},
		),
	}
}

// Middleware records request count and duration per method/path/status.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			method := c.Request().Method
			path := c.Path()
			status := strconv.Itoa(c.Response().Status)

			m.requestsTotal.WithLabelValues(method, path, status).Inc()
			m.requestDuration.WithLabelValues(method, path, status).Observe(duration)

			return err
		}
	}
}

// RecordSubmission counts a public submission by outcome (accepted/rejected).
func (m *Metrics) RecordSubmission(outcome string) {
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

// Handler serves the /metrics scrape endpoint.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
