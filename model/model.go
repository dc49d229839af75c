// Package model lists the models available to the caller and fetches
// per-model metadata such as ownership and permissions.
package model

import (
	"context"

	"github.com/jy130131/go-openai"
)

// Model describes one available model.
type Model struct {
	ID         string       `json:"id"`
	Object     string       `json:"object"`
	Created    int64        `json:"created"`
	OwnedBy    string       `json:"owned_by"`
	Permission []Permission `json:"permission"`
	Root       string       `json:"root"`
	Parent     string       `json:"parent"`
}

// Permission is one grant attached to a model.
type Permission struct {
	ID                 string `json:"id"`
	Object             string `json:"object"`
	Created            int64  `json:"created"`
	AllowCreateEngine  bool   `json:"allow_create_engine"`
	AllowSampling      bool   `json:"allow_sampling"`
	AllowLogprobs      bool   `json:"allow_logprobs"`
	AllowSearchIndices bool   `json:"allow_search_indices"`
	AllowView          bool   `json:"allow_view"`
	AllowFineTuning    bool   `json:"allow_fine_tuning"`
	Organization       string `json:"organization"`
	IsBlocking         bool   `json:"is_blocking"`
}

// Models is the list of models available to the caller.
type Models struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

// List returns every model the API key can use.
func List(ctx context.Context, c *openai.Client) (*Models, error) {
	return openai.Get[Models](ctx, c, "models")
}

// Retrieve returns the metadata of a single model.
func Retrieve(ctx context.Context, c *openai.Client, modelID string) (*Model, error) {
	if modelID == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "model: model id is required"}
	}
	return openai.Get[Model](ctx, c, "models/"+modelID)
}
