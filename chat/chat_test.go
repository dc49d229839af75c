package chat

import (
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jy130131/go-openai"
	"github.com/jy130131/go-openai/testutil"
	"github.com/jy130131/go-openai/testutil/fixtures"
)

func TestMessageConstructors(t *testing.T) {
	assert.Equal(t, Message{Role: "system", Content: "be brief"}, SystemMessage("be brief"))
	assert.Equal(t, Message{Role: "user", Content: "hi"}, UserMessage("hi"))
	assert.Equal(t, Message{Role: "assistant", Content: "hello"}, AssistantMessage("hello"))
}

func TestCreate_Validation(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: fixtures.ChatBasic}
	client := testutil.ServerClient(t, handler)
	ctx := testutil.TestContext(t)

	var apiErr *openai.Error

	_, err := Create(ctx, client, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, openai.ErrInvalidRequest, apiErr.Code)

	_, err = Create(ctx, client, NewParam("", UserMessage("hi")))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, openai.ErrInvalidRequest, apiErr.Code)

	_, err = Create(ctx, client, NewParam("gpt-3.5-turbo"))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, openai.ErrInvalidRequest, apiErr.Code)

	assert.Zero(t, handler.Requests)
}

func TestCreate_SendsConversation(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: fixtures.ChatBasic}
	client := testutil.ServerClient(t, handler)

	param := NewParam("gpt-3.5-turbo",
		SystemMessage("You are terse."),
		UserMessage("Why is the sky blue?"),
	).WithTemperature(0.2).WithMaxTokens(64)

	out, err := Create(testutil.TestContext(t), client, param)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, handler.Method)
	assert.Equal(t, "/chat/completions", handler.Path)

	var body struct {
		Model       string    `json:"model"`
		Messages    []Message `json:"messages"`
		Temperature float64   `json:"temperature"`
		MaxTokens   int       `json:"max_tokens"`
	}
	require.NoError(t, json.Unmarshal(handler.ReqBody, &body))
	assert.Equal(t, "gpt-3.5-turbo", body.Model)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Equal(t, "user", body.Messages[1].Role)
	assert.InDelta(t, 0.2, body.Temperature, 1e-9)
	assert.Equal(t, 64, body.MaxTokens)

	assert.Equal(t, "chatcmpl-123", out.ID)
	assert.Equal(t, "Hello there, how may I assist you today?", out.Content())
	require.NotNil(t, out.TokenUsage)
	assert.Equal(t, 21, out.TokenUsage.TotalTokens)
}

func TestCompletion_ContentEmptyWithoutChoices(t *testing.T) {
	assert.Empty(t, (&Completion{}).Content())
}

func TestCreate_RateLimited(t *testing.T) {
	client := testutil.ServerClient(t, testutil.JSONHandler(http.StatusTooManyRequests, fixtures.ErrorRateLimited))

	_, err := Create(testutil.TestContext(t), client, NewParam("gpt-3.5-turbo", UserMessage("hi")))
	require.Error(t, err)

	var apiErr *openai.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, openai.ErrRateLimited, apiErr.Code)
	assert.True(t, apiErr.Retryable)
}

func TestCreate_Live(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY not set, skipping live API test")
	}

	client := openai.New(apiKey)
	out, err := Create(testutil.TestContext(t), client, NewParam("gpt-3.5-turbo",
		UserMessage("Say the word hello and nothing else."),
	).WithMaxTokens(8))
	require.NoError(t, err)
	assert.NotEmpty(t, out.Content())
}
