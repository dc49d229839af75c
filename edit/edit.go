// Package edit rewrites input text according to an instruction.
package edit

import (
	"context"

	"github.com/jy130131/go-openai"
)

// Param is the request payload for Create. Model and instruction are
// required; input may be empty when the instruction stands alone.
type Param struct {
	Model       string  `json:"model"`
	Input       string  `json:"input,omitempty"`
	Instruction string  `json:"instruction"`
	N           int     `json:"n,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
	TopP        float64 `json:"top_p,omitempty"`
}

// NewParam returns a Param for the given model and instruction.
func NewParam(model, instruction string) *Param {
	return &Param{Model: model, Instruction: instruction}
}

func (p *Param) WithInput(input string) *Param { p.Input = input; return p }

func (p *Param) WithN(n int) *Param { p.N = n; return p }

func (p *Param) WithTemperature(v float64) *Param { p.Temperature = v; return p }

func (p *Param) WithTopP(v float64) *Param { p.TopP = v; return p }

// Edit is the response for one Create call.
type Edit struct {
	Object     string             `json:"object"`
	Created    int64              `json:"created"`
	Choices    []Choice           `json:"choices"`
	TokenUsage *openai.TokenUsage `json:"usage,omitempty"`
}

// Choice is one rewritten alternative.
type Choice struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// Text returns the first choice's text, "" when there are no choices.
func (e *Edit) Text() string {
	if len(e.Choices) == 0 {
		return ""
	}
	return e.Choices[0].Text
}

// Create applies the instruction to the input. Model and instruction
// are validated locally.
func Create(ctx context.Context, c *openai.Client, p *Param) (*Edit, error) {
	if p == nil || p.Model == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "edit: model is required"}
	}
	if p.Instruction == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "edit: instruction is required"}
	}
	return openai.Post[Edit](ctx, c, "edits", p)
}
