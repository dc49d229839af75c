package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupProviders points the global otel providers at in-memory
// recorders and restores the previous ones when the test ends.
func setupProviders(t *testing.T) (*tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	prevTracer := otel.GetTracerProvider()
	prevMeter := otel.GetMeterProvider()
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTracer)
		otel.SetMeterProvider(prevMeter)
	})

	return recorder, reader
}

func findMetric(rm metricdata.ResourceMetrics, name string) (metricdata.Metrics, bool) {
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == name {
				return m, true
			}
		}
	}
	return metricdata.Metrics{}, false
}

func TestNewMetrics(t *testing.T) {
	setupProviders(t)

	m, err := NewMetrics()
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.NotNil(t, m.Tracer())
}

func TestStartEndRequest_RecordsSpanAndMetrics(t *testing.T) {
	recorder, reader := setupProviders(t)

	m, err := NewMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	req := RequestAttrs{Resource: "moderations", Method: "POST", RequestID: "req-1"}

	ctx, span := m.StartRequest(ctx, req)
	m.EndRequest(ctx, span, req, ResponseAttrs{
		Status:           200,
		Model:            "text-moderation-latest",
		PromptTokens:     12,
		CompletionTokens: 0,
		Duration:         80 * time.Millisecond,
	})

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "openai.moderations", spans[0].Name())

	attrs := spans[0].Attributes()
	assert.Contains(t, attrs, attribute.String("openai.resource", "moderations"))
	assert.Contains(t, attrs, attribute.Int("http.status_code", 200))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	total, ok := findMetric(rm, "openai.request.total")
	require.True(t, ok, "openai.request.total not collected")
	sum, ok := total.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(1), sum.DataPoints[0].Value)

	tokens, ok := findMetric(rm, "openai.token.total")
	require.True(t, ok, "openai.token.total not collected")
	tokenSum, ok := tokens.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var billed int64
	for _, dp := range tokenSum.DataPoints {
		billed += dp.Value
	}
	assert.Equal(t, int64(12), billed)
}

func TestEndRequest_RecordsErrorCode(t *testing.T) {
	recorder, reader := setupProviders(t)

	m, err := NewMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	req := RequestAttrs{Resource: "completions", Method: "POST", RequestID: "req-2"}

	ctx, span := m.StartRequest(ctx, req)
	m.EndRequest(ctx, span, req, ResponseAttrs{
		Status:    429,
		ErrorCode: "rate_limited",
		Duration:  10 * time.Millisecond,
	})

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Contains(t, spans[0].Attributes(), attribute.String("error.code", "rate_limited"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	errTotal, ok := findMetric(rm, "openai.error.total")
	require.True(t, ok, "openai.error.total not collected")
	sum, ok := errTotal.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(1), sum.DataPoints[0].Value)

	// No tokens were billed, so no token metrics should appear.
	_, ok = findMetric(rm, "openai.token.total")
	assert.False(t, ok)
}
