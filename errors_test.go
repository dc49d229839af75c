package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		message   string
		wantCode  ErrorCode
		retryable bool
	}{
		{"bad request", 400, "invalid input", ErrInvalidRequest, false},
		{"quota keyword", 400, "You exceeded your current quota", ErrQuotaExceeded, false},
		{"billing keyword", 400, "please check your plan and billing details", ErrQuotaExceeded, false},
		{"credit keyword", 400, "insufficient credit balance", ErrQuotaExceeded, false},
		{"unauthorized", 401, "invalid api key", ErrUnauthorized, false},
		{"forbidden", 403, "access denied", ErrForbidden, false},
		{"not found", 404, "no such model", ErrNotFound, false},
		{"rate limited", 429, "slow down", ErrRateLimited, true},
		{"internal", 500, "server error", ErrUpstreamError, true},
		{"bad gateway", 502, "bad gateway", ErrUpstreamError, true},
		{"unavailable", 503, "unavailable", ErrUpstreamError, true},
		{"gateway timeout", 504, "timeout", ErrUpstreamError, true},
		{"overloaded", 529, "overloaded", ErrModelOverloaded, true},
		{"teapot", 418, "teapot", ErrUpstreamError, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := mapStatus(tc.status, tc.message)
			assert.Equal(t, tc.wantCode, e.Code)
			assert.Equal(t, tc.status, e.HTTPStatus)
			assert.Equal(t, tc.message, e.Message)
			assert.Equal(t, tc.retryable, e.Retryable)
		})
	}
}

func TestAPIError_ParsesEnvelope(t *testing.T) {
	body := []byte(`{"error": {"message": "Invalid value for 'input'", "type": "invalid_request_error", "param": "input", "code": "invalid_value"}}`)

	e := apiError(400, body)
	assert.Equal(t, ErrInvalidRequest, e.Code)
	assert.Equal(t, "Invalid value for 'input'", e.Message)
	assert.Equal(t, "invalid_request_error", e.Type)
	assert.Equal(t, "input", e.Param)
	assert.Equal(t, 400, e.HTTPStatus)
}

func TestAPIError_RawBodyFallback(t *testing.T) {
	e := apiError(502, []byte("upstream proxy choked\n"))
	assert.Equal(t, ErrUpstreamError, e.Code)
	assert.Equal(t, "upstream proxy choked", e.Message)
	assert.Empty(t, e.Type)
	assert.True(t, e.Retryable)
}

func TestAPIError_EmptyEnvelopeFallsBack(t *testing.T) {
	// Valid JSON without the envelope keeps the raw body.
	e := apiError(500, []byte(`{"detail": "boom"}`))
	assert.Equal(t, `{"detail": "boom"}`, e.Message)
}

func TestError_Error(t *testing.T) {
	withMessage := &Error{Code: ErrRateLimited, Message: "slow down", HTTPStatus: 429}
	assert.Equal(t, "slow down", withMessage.Error())

	bare := &Error{Code: ErrUpstreamError, HTTPStatus: 503}
	assert.Equal(t, "openai: upstream_error (http 503)", bare.Error())
}

func TestErrorCodeLabel(t *testing.T) {
	assert.Equal(t, "", errorCode(nil))
	assert.Equal(t, "rate_limited", errorCode(&Error{Code: ErrRateLimited}))
	assert.Equal(t, "unknown", errorCode(assert.AnError))
}
