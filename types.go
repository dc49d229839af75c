package openai

// TokenUsage reports the tokens an API call consumed. Endpoints that
// do not bill by token leave it absent.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens"`
}

// Deleted is the acknowledgement envelope returned by DELETE
// endpoints (files, fine-tuned models).
type Deleted struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Deleted bool   `json:"deleted"`
}
