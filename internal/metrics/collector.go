package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Collector records request, error and token metrics for one client.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
	tokensUsed      *prometheus.CounterVec

	logger *zap.Logger
}

// NewCollector registers the client metrics with reg under the given
// namespace. A nil registerer leaves the metrics unregistered, which
// keeps a library client from touching the global registry unasked.
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	factory := promauto.With(reg)

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.requestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"resource", "method", "status"},
	)

	c.requestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"resource", "method"},
	)

	c.requestErrors = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_request_errors_total",
			Help:      "Total number of failed API requests",
		},
		[]string{"resource", "code"},
	)

	c.tokensUsed = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_tokens_used_total",
			Help:      "Total number of tokens billed",
		},
		[]string{"model", "type"}, // type: prompt, completion
	)

	logger.Debug("metrics collector initialized", zap.String("namespace", namespace))

	return c
}

// RecordRequest records one finished request, whatever its outcome.
func (c *Collector) RecordRequest(resource, method string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(resource, method, statusCode(status)).Inc()
	c.requestDuration.WithLabelValues(resource, method).Observe(duration.Seconds())
}

// RecordError counts a failed request by its error code.
func (c *Collector) RecordError(resource, code string) {
	c.requestErrors.WithLabelValues(resource, code).Inc()
}

// RecordTokens adds the tokens a response reported as billed.
func (c *Collector) RecordTokens(model string, promptTokens, completionTokens int) {
	if model == "" {
		model = "unknown"
	}
	c.tokensUsed.WithLabelValues(model, "prompt").Add(float64(promptTokens))
	c.tokensUsed.WithLabelValues(model, "completion").Add(float64(completionTokens))
}

// statusCode folds an HTTP status into a low-cardinality label.
func statusCode(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
