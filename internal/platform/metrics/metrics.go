package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/relief_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/relief_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the ledger.
type Metrics struct {
	// Registry owns these metrics; /metrics serves it.
	Registry *prometheus.Registry

	attempts       *prometheus.CounterVec
	rejections     *prometheus.CounterVec
	settledAmount  *prometheus.CounterVec
	engineDuration *prometheus.HistogramVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// NewMetrics creates a dedicated registry and registers all ledger metrics in
// it. A private registry lets tests build as many instances as they like.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		attempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relief_ledger_attempts_total",
				Help: "Transfer and allocation attempts by outcome.",
			},
			[]string{"operation", "status", "category"},
		),
		rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relief_ledger_rejections_total",
				Help: "Rejected transfers by reason.",
			},
			[]string{"reason"},
		),
		settledAmount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relief_ledger_settled_amount_total",
				Help: "Sum of successfully applied amounts.",
			},
			[]string{"operation", "category"},
		),
		engineDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "relief_ledger_engine_duration_seconds",
				Help:    "Time spent validating and applying an attempt, lock wait included.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relief_http_requests_total",
				Help: "HTTP requests by route and status code.",
			},
			[]string{"method", "route", "code"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "relief_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

var _ portssvc.LedgerObserver = (*Metrics)(nil)

// ObserveLedgerOutcome records one engine attempt.
func (m *Metrics) ObserveLedgerOutcome(operation string, rec domain.TransactionRecord, elapsed time.Duration) {
	m.attempts.WithLabelValues(operation, string(rec.Status), rec.CategoryID).Inc()
	m.engineDuration.WithLabelValues(operation).Observe(elapsed.Seconds())

	if rec.Succeeded() {
		amount, _ := rec.Amount.Float64()
		m.settledAmount.WithLabelValues(operation, rec.CategoryID).Add(amount)
		return
	}
	m.rejections.WithLabelValues(rec.Reason).Inc()
}

// GinMiddleware counts requests per matched route. Unmatched paths are
// grouped so scanners cannot blow up label cardinality.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
