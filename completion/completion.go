// Package completion generates text from a prompt through the
// completions endpoint.
package completion

import (
	"context"

	"github.com/jy130131/go-openai"
)

// Param is the request payload for Create. Model is required and
// carried by the constructor; every other knob is optional and
// omitted from the wire when zero, leaving the server default in
// charge.
type Param struct {
	Model            string   `json:"model"`
	Prompt           string   `json:"prompt,omitempty"`
	Suffix           string   `json:"suffix,omitempty"`
	MaxTokens        int      `json:"max_tokens,omitempty"`
	Temperature      float64  `json:"temperature,omitempty"`
	TopP             float64  `json:"top_p,omitempty"`
	N                int      `json:"n,omitempty"`
	Logprobs         int      `json:"logprobs,omitempty"`
	Echo             bool     `json:"echo,omitempty"`
	Stop             []string `json:"stop,omitempty"`
	PresencePenalty  float64  `json:"presence_penalty,omitempty"`
	FrequencyPenalty float64  `json:"frequency_penalty,omitempty"`
	BestOf           int      `json:"best_of,omitempty"`

	// LogitBias maps token IDs, as strings, to a bias in [-100, 100]
	// added to the logits before sampling.
	LogitBias map[string]float64 `json:"logit_bias,omitempty"`

	User string `json:"user,omitempty"`
}

// NewParam returns a Param for the given model.
func NewParam(model string) *Param {
	return &Param{Model: model}
}

func (p *Param) WithPrompt(prompt string) *Param { p.Prompt = prompt; return p }

func (p *Param) WithSuffix(suffix string) *Param { p.Suffix = suffix; return p }

func (p *Param) WithMaxTokens(n int) *Param { p.MaxTokens = n; return p }

func (p *Param) WithTemperature(v float64) *Param { p.Temperature = v; return p }

func (p *Param) WithTopP(v float64) *Param { p.TopP = v; return p }

func (p *Param) WithN(n int) *Param { p.N = n; return p }

func (p *Param) WithLogprobs(n int) *Param { p.Logprobs = n; return p }

func (p *Param) WithEcho(echo bool) *Param { p.Echo = echo; return p }

func (p *Param) WithStop(stop ...string) *Param { p.Stop = stop; return p }

func (p *Param) WithPresencePenalty(v float64) *Param { p.PresencePenalty = v; return p }

func (p *Param) WithFrequencyPenalty(v float64) *Param { p.FrequencyPenalty = v; return p }

func (p *Param) WithBestOf(n int) *Param { p.BestOf = n; return p }

func (p *Param) WithLogitBias(bias map[string]float64) *Param { p.LogitBias = bias; return p }

func (p *Param) WithUser(user string) *Param { p.User = user; return p }

// Completion is the response for one Create call.
type Completion struct {
	ID         string             `json:"id"`
	Object     string             `json:"object"`
	Created    int64              `json:"created"`
	Model      string             `json:"model"`
	Choices    []Choice           `json:"choices"`
	TokenUsage *openai.TokenUsage `json:"usage,omitempty"`
}

// Choice is one generated alternative.
type Choice struct {
	Text         string    `json:"text"`
	Index        int       `json:"index"`
	Logprobs     *Logprobs `json:"logprobs,omitempty"`
	FinishReason string    `json:"finish_reason"`
}

// Logprobs carries per-token log probabilities when requested.
type Logprobs struct {
	Tokens        []string             `json:"tokens"`
	TokenLogprobs []float64            `json:"token_logprobs"`
	TopLogprobs   []map[string]float64 `json:"top_logprobs"`
	TextOffset    []int                `json:"text_offset"`
}

// Text returns the first choice's text, "" when there are no choices.
func (c *Completion) Text() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Text
}

// Create generates completions for the prompt. The model is validated
// locally before any network traffic.
func Create(ctx context.Context, c *openai.Client, p *Param) (*Completion, error) {
	if p == nil || p.Model == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "completion: model is required"}
	}
	return openai.Post[Completion](ctx, c, "completions", p)
}
