package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeCompleted      = "completed"
	OutcomeEmptyResult    = "empty_result"
	OutcomeParseError     = "parse_error"
	OutcomeDocumentFailed = "document_failed"

	AttemptSucceeded = "succeeded"
	AttemptFailed    = "failed"
	AttemptEmpty     = "empty"
)

// Metrics holds the collectors exported by the service.
type Metrics struct {
	requests      *prometheus.CounterVec
	evaluations   *prometheus.CounterVec
	modelAttempts *prometheus.CounterVec
	duration      prometheus.Histogram
	gatherer      prometheus.Gatherer
}

// New creates the collectors and registers them on reg.
func New(reg *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evaluations_total",
				Help: "Résumé evaluations by outcome.",
			},
			[]string{"outcome"},
		),
		modelAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "model_attempts_total",
				Help: "Generative model calls by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "evaluation_duration_seconds",
			Help:    "End-to-end evaluation duration in seconds.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		}),
		gatherer: reg,
	}

	for _, c := range []prometheus.Collector{m.requests, m.evaluations, m.modelAttempts, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveEvaluation records one finished evaluation.
func (m *Metrics) ObserveEvaluation(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.evaluations.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// IncModelAttempt records one model call.
func (m *Metrics) IncModelAttempt(outcome string) {
	if m == nil {
		return
	}
	m.modelAttempts.WithLabelValues(outcome).Inc()
}

// Middleware counts requests by route pattern and status.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

// Handler exposes metrics in Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{}))
}
