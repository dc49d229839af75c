package edit

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jy130131/go-openai"
	"github.com/jy130131/go-openai/testutil"
	"github.com/jy130131/go-openai/testutil/fixtures"
)

func TestCreate_Validation(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: fixtures.EditBasic}
	client := testutil.ServerClient(t, handler)
	ctx := testutil.TestContext(t)

	var apiErr *openai.Error

	_, err := Create(ctx, client, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, openai.ErrInvalidRequest, apiErr.Code)

	_, err = Create(ctx, client, NewParam("", "fix spelling"))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, openai.ErrInvalidRequest, apiErr.Code)

	_, err = Create(ctx, client, NewParam("text-davinci-edit-001", ""))
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, openai.ErrInvalidRequest, apiErr.Code)

	assert.Zero(t, handler.Requests)
}

func TestCreate_DecodesResponse(t *testing.T) {
	handler := &testutil.CaptureHandler{Body: fixtures.EditBasic}
	client := testutil.ServerClient(t, handler)

	param := NewParam("text-davinci-edit-001", "Fix the spelling mistakes").
		WithInput("What day of the wek is it?").
		WithTemperature(0.1)

	out, err := Create(testutil.TestContext(t), client, param)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, handler.Method)
	assert.Equal(t, "/edits", handler.Path)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(handler.ReqBody, &body))
	assert.Contains(t, body, "model")
	assert.Contains(t, body, "instruction")
	assert.Contains(t, body, "input")
	assert.NotContains(t, body, "n")

	assert.Equal(t, "What day of the week is it?", out.Text())
	require.NotNil(t, out.TokenUsage)
	assert.Equal(t, 57, out.TokenUsage.TotalTokens)
}

func TestEdit_TextEmptyWithoutChoices(t *testing.T) {
	assert.Empty(t, (&Edit{}).Text())
}
