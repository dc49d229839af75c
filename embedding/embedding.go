// Package embedding turns text into dense vectors through the
// embeddings endpoint.
package embedding

import (
	"context"

	"github.com/jy130131/go-openai"
)

// Param is the request payload for Create. Model and at least one
// input string are required and carried by the constructor.
type Param struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
	User  string   `json:"user,omitempty"`
}

// NewParam returns a Param embedding the given inputs with model.
func NewParam(model string, input ...string) *Param {
	return &Param{Model: model, Input: input}
}

func (p *Param) WithUser(user string) *Param { p.User = user; return p }

// Embedding is the response for one Create call. Data keeps the
// input order; Index makes the pairing explicit.
type Embedding struct {
	Object     string             `json:"object"`
	Data       []Data             `json:"data"`
	Model      string             `json:"model"`
	TokenUsage *openai.TokenUsage `json:"usage,omitempty"`
}

// Data is the vector for one input.
type Data struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float64 `json:"embedding"`
}

// Vectors returns just the vectors, in input order.
func (e *Embedding) Vectors() [][]float64 {
	out := make([][]float64, len(e.Data))
	for i, d := range e.Data {
		out[i] = d.Embedding
	}
	return out
}

// Create embeds the inputs. Model and a non-empty input list are
// validated locally.
func Create(ctx context.Context, c *openai.Client, p *Param) (*Embedding, error) {
	if p == nil || p.Model == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "embedding: model is required"}
	}
	if len(p.Input) == 0 {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "embedding: input is required"}
	}
	return openai.Post[Embedding](ctx, c, "embeddings", p)
}
