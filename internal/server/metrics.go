package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the proxy's Prometheus collectors. Each Metrics owns its
// registry so several servers can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	RequestCounter     *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	QuestionsGenerated *prometheus.CounterVec
	GenerationFailures *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"method", "endpoint"},
		),
		QuestionsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dayne_questions_generated_total",
				Help: "Questions returned to callers",
			},
			[]string{"source"},
		),
		GenerationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dayne_generation_failures_total",
				Help: "Failed generation requests by error code",
			},
			[]string{"code"},
		),
	}
	m.registry.MustRegister(
		m.RequestCounter,
		m.RequestDuration,
		m.QuestionsGenerated,
		m.GenerationFailures,
	)
	return m
}

// Middleware records request counts and latency.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
