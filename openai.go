package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/jy130131/go-openai/internal/metrics"
	"github.com/jy130131/go-openai/internal/tlsutil"
	"github.com/jy130131/go-openai/observability"
)

const contentTypeJSON = "application/json"

// Client executes API requests for the resource packages. It holds no
// per-call state, so one Client can serve any number of goroutines.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Collector
	obs        *observability.Metrics
}

// New returns a Client with default settings for the given API key.
func New(apiKey string) *Client {
	return NewClient(NewConfig(apiKey), nil)
}

// NewClient returns a Client for the given Config. A nil logger
// disables logging.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.baseURL == nil {
		cfg.baseURL = mustParseURL(DefaultBaseURL)
	}

	return &Client{
		cfg:        cfg,
		httpClient: tlsutil.SecureHTTPClient(cfg.timeout),
		logger:     logger.With(zap.String("component", "openai")),
	}
}

// Config returns the Config the Client was built from.
func (c *Client) Config() Config { return c.cfg }

// SetHTTPClient swaps the underlying HTTP client, for callers that
// need a custom transport (proxies, recording, connection limits).
func (c *Client) SetHTTPClient(h *http.Client) {
	if h != nil {
		c.httpClient = h
	}
}

// EnableMetrics registers Prometheus collectors for request counts,
// latencies, errors and token usage with the given registerer.
func (c *Client) EnableMetrics(reg prometheus.Registerer) {
	c.metrics = metrics.NewCollector("openai", reg, c.logger)
}

// SetObservability attaches OpenTelemetry tracing and metrics; every
// request then runs inside its own span.
func (c *Client) SetObservability(m *observability.Metrics) {
	c.obs = m
}

// Get issues a GET against path and decodes the response into T.
func Get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	data, err := c.doRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	return decode[T](data)
}

// Post marshals body as JSON, issues a POST against path and decodes
// the response into T.
func Post[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &Error{Code: ErrInvalidRequest, Message: "encode request: " + err.Error()}
	}
	data, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(payload), contentTypeJSON)
	if err != nil {
		return nil, err
	}
	return decode[T](data)
}

// PostForm sends a multipart form against path and decodes the
// response into T.
func PostForm[T any](ctx context.Context, c *Client, path string, form *Form) (*T, error) {
	contentType, body, err := form.encode()
	if err != nil {
		return nil, &Error{Code: ErrInvalidRequest, Message: "encode form: " + err.Error()}
	}
	data, err := c.doRequest(ctx, http.MethodPost, path, body, contentType)
	if err != nil {
		return nil, err
	}
	return decode[T](data)
}

// Delete issues a DELETE against path and decodes the response into T.
func Delete[T any](ctx context.Context, c *Client, path string) (*T, error) {
	data, err := c.doRequest(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return nil, err
	}
	return decode[T](data)
}

// GetBytes issues a GET against path and returns the raw body, for
// endpoints that serve file content rather than JSON.
func (c *Client) GetBytes(ctx context.Context, path string) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil, "")
}

func decode[T any](data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, &Error{Code: ErrDecode, Message: "decode response: " + err.Error()}
	}
	return &out, nil
}

// doRequest is the shared request path: build, send, map errors,
// record telemetry. It returns the raw body of a 2xx response.
func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	requestID := uuid.NewString()
	resource := resourceFromPath(path)
	reqAttrs := observability.RequestAttrs{
		Resource:  resource,
		Method:    method,
		RequestID: requestID,
	}

	var span trace.Span
	if c.obs != nil {
		ctx, span = c.obs.StartRequest(ctx, reqAttrs)
	}

	start := time.Now()
	data, status, err := c.roundTrip(ctx, method, path, body, contentType, requestID)
	duration := time.Since(start)

	var model string
	var usage TokenUsage
	if err == nil && (c.metrics != nil || c.obs != nil) {
		model, usage = probeUsage(data)
	}

	if c.metrics != nil {
		c.metrics.RecordRequest(resource, method, status, duration)
		if err != nil {
			c.metrics.RecordError(resource, errorCode(err))
		} else if usage.TotalTokens > 0 {
			c.metrics.RecordTokens(model, usage.PromptTokens, usage.CompletionTokens)
		}
	}
	if c.obs != nil {
		c.obs.EndRequest(ctx, span, reqAttrs, observability.ResponseAttrs{
			Status:           status,
			ErrorCode:        errorCode(err),
			Model:            model,
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			Duration:         duration,
		})
	}

	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.Error(err))
		return nil, err
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Int("status", status),
		zap.Duration("duration", duration))
	return data, nil
}

func (c *Client) roundTrip(ctx context.Context, method, path string, body io.Reader, contentType, requestID string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return nil, 0, &Error{Code: ErrInvalidRequest, Message: "build request: " + err.Error()}
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.apiKey)
	req.Header.Set("X-Request-Id", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.cfg.organization != "" {
		req.Header.Set("OpenAI-Organization", c.cfg.organization)
	}
	for key, values := range c.cfg.headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, &Error{
			Code:      ErrConnection,
			Message:   "request failed: " + err.Error(),
			Retryable: true,
		}
	}
	defer safeCloseBody(resp.Body, c.logger)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, &Error{
			Code:       ErrConnection,
			Message:    "read response: " + err.Error(),
			HTTPStatus: resp.StatusCode,
			Retryable:  true,
		}
	}

	if resp.StatusCode >= 400 {
		return nil, resp.StatusCode, apiError(resp.StatusCode, data)
	}
	return data, resp.StatusCode, nil
}

// endpoint joins the base URL and a resource path without doubling
// slashes, whatever the trailing/leading slash situation.
func (c *Client) endpoint(path string) string {
	base := strings.TrimRight(c.cfg.baseURL.String(), "/")
	return base + "/" + strings.TrimLeft(path, "/")
}

// resourceFromPath returns the leading path segment as a
// low-cardinality label for metrics and spans.
func resourceFromPath(path string) string {
	p := strings.TrimLeft(path, "/")
	if i := strings.IndexByte(p, '/'); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "unknown"
	}
	return p
}

// probeUsage pulls the usage block out of a response body when token
// accounting is enabled. Bodies without one report zero usage.
func probeUsage(data []byte) (string, TokenUsage) {
	var probe struct {
		Model string      `json:"model"`
		Usage *TokenUsage `json:"usage"`
	}
	if err := json.Unmarshal(data, &probe); err != nil || probe.Usage == nil {
		return "", TokenUsage{}
	}
	return probe.Model, *probe.Usage
}

func safeCloseBody(body io.Closer, logger *zap.Logger) {
	if err := body.Close(); err != nil {
		logger.Debug("close response body", zap.Error(err))
	}
}
