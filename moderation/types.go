package moderation

import (
	"github.com/jy130131/go-openai"
)

// Classifier model names accepted by WithModel. When no model is set
// the endpoint picks its default (stable).
const (
	ModelStable = "text-moderation-stable"
	ModelLatest = "text-moderation-latest"
)

// Param is the request payload. Input is required and carried by the
// constructor; the model is optional and omitted from the wire when
// unset, never serialized as null.
type Param struct {
	Model string `json:"model,omitempty"` // classifier version (optional)
	Input string `json:"input"`           // text to classify (required)
}

// NewParam returns a Param for the given input text.
func NewParam(input string) *Param {
	return &Param{Input: input}
}

// WithModel pins the classifier version.
func (p *Param) WithModel(model string) *Param {
	p.Model = model
	return p
}

// Moderation is the response for one Create call.
type Moderation struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Flagged bool     `json:"flagged"`
	Results []Result `json:"results"`

	// TokenUsage is absent on current API versions; kept for
	// forward compatibility with billed variants.
	TokenUsage *openai.TokenUsage `json:"token_usage,omitempty"`
}

// Result holds the verdicts and scores for one evaluated input.
type Result struct {
	Categories     Categories     `json:"categories"`
	CategoryScores CategoryScores `json:"category_scores"`
}

// Categories carries the per-category boolean verdicts. The struct
// tags below are the only definition of the wire names.
type Categories struct {
	Hate            bool `json:"hate"`
	HateThreatening bool `json:"hate/threatening"`
	SelfHarm        bool `json:"self-harm"`
	Sexual          bool `json:"sexual"`
	SexualMinors    bool `json:"sexual/minors"`
	Violence        bool `json:"violence"`
	ViolenceGraphic bool `json:"violence/graphic"`
}

// CategoryScores carries the per-category confidence scores in
// [0, 1], under the same wire names as Categories.
type CategoryScores struct {
	Hate            float64 `json:"hate"`
	HateThreatening float64 `json:"hate/threatening"`
	SelfHarm        float64 `json:"self-harm"`
	Sexual          float64 `json:"sexual"`
	SexualMinors    float64 `json:"sexual/minors"`
	Violence        float64 `json:"violence"`
	ViolenceGraphic float64 `json:"violence/graphic"`
}
