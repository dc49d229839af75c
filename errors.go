package openai

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode classifies a failed call independently of wording and
// HTTP status, so callers can branch without string matching.
type ErrorCode string

const (
	ErrInvalidRequest  ErrorCode = "invalid_request"  // malformed or rejected request
	ErrUnauthorized    ErrorCode = "unauthorized"     // missing or bad API key
	ErrForbidden       ErrorCode = "forbidden"        // key lacks access to the resource
	ErrNotFound        ErrorCode = "not_found"        // unknown model, file or job
	ErrRateLimited     ErrorCode = "rate_limited"     // request rate exceeded
	ErrQuotaExceeded   ErrorCode = "quota_exceeded"   // account quota or credit exhausted
	ErrModelOverloaded ErrorCode = "model_overloaded" // upstream capacity, retry later
	ErrUpstreamError   ErrorCode = "upstream_error"   // 5xx or unclassified API failure
	ErrConnection      ErrorCode = "connection"       // request never got an HTTP response
	ErrDecode          ErrorCode = "decode"           // 2xx body did not match the schema
)

// Error is the single error type returned by every call in this
// module. HTTPStatus is zero when no HTTP response was received, which
// is what distinguishes a transport failure from an API rejection.
type Error struct {
	Code       ErrorCode
	Message    string
	HTTPStatus int
	Retryable  bool

	// Type and Param echo the API's error envelope when present.
	Type  string
	Param string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("openai: %s (http %d)", e.Code, e.HTTPStatus)
}

// apiError turns a non-2xx response into an *Error. The body is
// expected to be the standard `{"error": {...}}` envelope; anything
// else is carried verbatim as the message.
func apiError(status int, body []byte) *Error {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
			Param   string `json:"param"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	message := strings.TrimSpace(string(body))
	var errType, param string
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
		errType = envelope.Error.Type
		param = envelope.Error.Param
	}

	e := mapStatus(status, message)
	e.Type = errType
	e.Param = param
	return e
}

// mapStatus maps an HTTP status to an ErrorCode and retryability.
func mapStatus(status int, message string) *Error {
	e := &Error{Message: message, HTTPStatus: status}

	switch status {
	case http.StatusUnauthorized:
		e.Code = ErrUnauthorized
	case http.StatusForbidden:
		e.Code = ErrForbidden
	case http.StatusNotFound:
		e.Code = ErrNotFound
	case http.StatusTooManyRequests:
		e.Code = ErrRateLimited
		e.Retryable = true
	case http.StatusBadRequest:
		// The API reports exhausted quota as a plain 400; sniff the
		// message so callers can tell it apart from a bad payload.
		lower := strings.ToLower(message)
		if strings.Contains(lower, "quota") || strings.Contains(lower, "credit") || strings.Contains(lower, "billing") {
			e.Code = ErrQuotaExceeded
		} else {
			e.Code = ErrInvalidRequest
		}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		e.Code = ErrUpstreamError
		e.Retryable = true
	case 529:
		e.Code = ErrModelOverloaded
		e.Retryable = true
	default:
		e.Code = ErrUpstreamError
		if status >= 500 {
			e.Retryable = true
		}
	}
	return e
}

// errorCode extracts the ErrorCode for metric labels, "" for nil.
func errorCode(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok {
		return string(e.Code)
	}
	return "unknown"
}
