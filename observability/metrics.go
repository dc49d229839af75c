package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/jy130131/go-openai"

// Metrics instruments API requests with OpenTelemetry traces and
// metrics. Instruments are created against the global providers, so
// the application decides where spans and measurements go.
type Metrics struct {
	tracer trace.Tracer
	meter  metric.Meter
	// counters
	requestTotal metric.Int64Counter
	tokenTotal   metric.Int64Counter
	errorTotal   metric.Int64Counter
	// histograms
	requestDuration metric.Float64Histogram
	tokenCount      metric.Int64Histogram
	// gauges
	activeRequests metric.Int64UpDownCounter
}

// NewMetrics creates the instrument set.
func NewMetrics() (*Metrics, error) {
	tracer := otel.Tracer(instrumentationName)
	meter := otel.Meter(instrumentationName)

	m := &Metrics{
		tracer: tracer,
		meter:  meter,
	}

	var err error

	m.requestTotal, err = meter.Int64Counter("openai.request.total",
		metric.WithDescription("Total number of API requests"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err
	}

	m.tokenTotal, err = meter.Int64Counter("openai.token.total",
		metric.WithDescription("Total tokens billed"),
		metric.WithUnit("{token}"))
	if err != nil {
		return nil, err
	}

	m.errorTotal, err = meter.Int64Counter("openai.error.total",
		metric.WithDescription("Total number of failed requests"),
		metric.WithUnit("{error}"))
	if err != nil {
		return nil, err
	}

	m.requestDuration, err = meter.Float64Histogram("openai.request.duration",
		metric.WithDescription("Request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30))
	if err != nil {
		return nil, err
	}

	m.tokenCount, err = meter.Int64Histogram("openai.token.count",
		metric.WithDescription("Token count per request"),
		metric.WithUnit("{token}"),
		metric.WithExplicitBucketBoundaries(100, 500, 1000, 2000, 4000, 8000, 16000, 32000))
	if err != nil {
		return nil, err
	}

	m.activeRequests, err = meter.Int64UpDownCounter("openai.request.active",
		metric.WithDescription("Number of in-flight requests"),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RequestAttrs describes a request before it is sent.
type RequestAttrs struct {
	Resource  string
	Method    string
	RequestID string
}

// ResponseAttrs describes the outcome of a request.
type ResponseAttrs struct {
	Status           int
	ErrorCode        string
	Model            string
	PromptTokens     int
	CompletionTokens int
	Duration         time.Duration
}

// StartRequest opens a span for one API request and bumps the
// in-flight gauge. The returned context carries the span and must be
// the one the request is sent with.
func (m *Metrics) StartRequest(ctx context.Context, attrs RequestAttrs) (context.Context, trace.Span) {
	ctx, span := m.tracer.Start(ctx, "openai."+attrs.Resource,
		trace.WithAttributes(
			attribute.String("openai.resource", attrs.Resource),
			attribute.String("http.method", attrs.Method),
			attribute.String("openai.request_id", attrs.RequestID),
		))

	m.activeRequests.Add(ctx, 1,
		metric.WithAttributes(attribute.String("resource", attrs.Resource)))

	return ctx, span
}

// EndRequest closes the span and records the request's measurements.
func (m *Metrics) EndRequest(ctx context.Context, span trace.Span, req RequestAttrs, resp ResponseAttrs) {
	defer span.End()

	commonAttrs := []attribute.KeyValue{
		attribute.String("resource", req.Resource),
		attribute.String("method", req.Method),
		attribute.Int("status", resp.Status),
	}

	m.activeRequests.Add(ctx, -1,
		metric.WithAttributes(attribute.String("resource", req.Resource)))

	m.requestTotal.Add(ctx, 1, metric.WithAttributes(commonAttrs...))
	m.requestDuration.Record(ctx, resp.Duration.Seconds(), metric.WithAttributes(commonAttrs...))

	totalTokens := int64(resp.PromptTokens + resp.CompletionTokens)
	if totalTokens > 0 {
		m.tokenTotal.Add(ctx, int64(resp.PromptTokens), metric.WithAttributes(
			attribute.String("model", resp.Model),
			attribute.String("type", "prompt")))

		m.tokenTotal.Add(ctx, int64(resp.CompletionTokens), metric.WithAttributes(
			attribute.String("model", resp.Model),
			attribute.String("type", "completion")))

		m.tokenCount.Record(ctx, totalTokens, metric.WithAttributes(commonAttrs...))
	}

	if resp.ErrorCode != "" {
		m.errorTotal.Add(ctx, 1, metric.WithAttributes(
			attribute.String("resource", req.Resource),
			attribute.String("error_code", resp.ErrorCode)))

		span.SetAttributes(attribute.String("error.code", resp.ErrorCode))
	}

	span.SetAttributes(
		attribute.Int("http.status_code", resp.Status),
		attribute.String("openai.model", resp.Model),
		attribute.Int("openai.tokens.prompt", resp.PromptTokens),
		attribute.Int("openai.tokens.completion", resp.CompletionTokens),
		attribute.Float64("openai.duration_ms", float64(resp.Duration.Milliseconds())))
}

// Tracer exposes the underlying tracer for callers that want to nest
// their own spans around API calls.
func (m *Metrics) Tracer() trace.Tracer {
	return m.tracer
}
