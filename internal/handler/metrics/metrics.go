package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler serves the lending backend registry at /metrics
type MetricsHandler struct {
	registry *prometheus.Registry
}

func NewMetricsHandler(registry *prometheus.Registry) *MetricsHandler {
	return &MetricsHandler{
		registry: registry,
	}
}

// Handler returns the scrape endpoint. Scrapes of the endpoint itself are
// counted in the same registry.
func (h *MetricsHandler) Handler() gin.HandlerFunc {
	handler := promhttp.InstrumentMetricHandler(h.registry, promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	}))

	return gin.WrapH(handler)
}
