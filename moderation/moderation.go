package moderation

import (
	"context"

	"github.com/jy130131/go-openai"
)

// Create classifies the input text. It validates the param before any
// network traffic: a nil param or empty input is rejected locally
// with ErrInvalidRequest.
func Create(ctx context.Context, c *openai.Client, p *Param) (*Moderation, error) {
	if p == nil || p.Input == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "moderation: input is required"}
	}
	return openai.Post[Moderation](ctx, c, "moderations", p)
}
