package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics contains all metrics for HTTP request monitoring
type HTTPMetrics struct {
	requestDuration  *prometheus.HistogramVec
	requestsTotal    *prometheus.CounterVec
	responseSize     *prometheus.HistogramVec
	inFlightRequests *prometheus.GaugeVec
}

// NewHTTPMetrics creates a new instance of HTTP metrics
func NewHTTPMetrics() *HTTPMetrics {
	return &HTTPMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lending_backend_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
			},
			[]string{"method", "path", "status"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lending_backend_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		responseSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lending_backend_http_response_size_bytes",
				Help:    "Size of HTTP responses in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 2, 8), // 100B to 12KB
			},
			[]string{"method", "path", "status"},
		),
		inFlightRequests: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lending_backend_http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
			[]string{"method", "path"},
		),
	}
}

// MustRegister registers all HTTP metrics with the provided registry
func (m *HTTPMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.responseSize,
		m.inFlightRequests,
	)
}

// HTTPMetricsMiddleware creates a Gin middleware for HTTP metrics collection.
// Paths are labelled by route template so account ids do not explode cardinality.
func HTTPMetricsMiddleware(metrics *HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		method := c.Request.Method

		if path == "" {
			path = "unmatched"
		}

		metrics.inFlightRequests.WithLabelValues(method, path).Inc()
		defer metrics.inFlightRequests.WithLabelValues(method, path).Dec()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		responseSize := float64(c.Writer.Size())

		metrics.requestDuration.WithLabelValues(method, path, status).Observe(duration)
		metrics.requestsTotal.WithLabelValues(method, path, status).Inc()
		if responseSize > 0 {
			metrics.responseSize.WithLabelValues(method, path, status).Observe(responseSize)
		}
	}
}
