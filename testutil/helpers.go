package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jy130131/go-openai"
)

// TestContext returns a context bounded to 30s, cancelled when the
// test ends.
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// TestContextWithTimeout returns a test context with a custom bound.
func TestContextWithTimeout(t *testing.T, timeout time.Duration) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// CancelledContext returns a context that is already cancelled.
func CancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

// ServerClient starts an httptest server around handler and returns a
// Client pointed at it. Both are torn down with the test.
func ServerClient(t *testing.T, handler http.Handler) *openai.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	base, err := url.Parse(server.URL)
	require.NoError(t, err)

	cfg := openai.NewConfig("sk-test").WithBaseURL(base)
	return openai.NewClient(cfg, zap.NewNop())
}

// BrokenClient returns a Client whose server is already gone, for
// exercising transport failures.
func BrokenClient(t *testing.T) *openai.Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base, err := url.Parse(server.URL)
	require.NoError(t, err)
	server.Close()

	cfg := openai.NewConfig("sk-test").WithBaseURL(base)
	return openai.NewClient(cfg, zap.NewNop())
}

// JSONHandler replies to every request with the given status and body.
func JSONHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	})
}

// CaptureHandler records the last request's method, path and body
// before replying like JSONHandler. Read the fields after the call.
type CaptureHandler struct {
	Status int
	Body   string

	Method   string
	Path     string
	ReqBody  []byte
	Header   http.Header
	Requests int
}

func (h *CaptureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Method = r.Method
	h.Path = r.URL.Path
	h.Header = r.Header.Clone()
	h.ReqBody, _ = io.ReadAll(r.Body)
	h.Requests++

	w.Header().Set("Content-Type", "application/json")
	status := h.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	io.WriteString(w, h.Body)
}
