package chat

import (
	"context"

	"github.com/jy130131/go-openai"
)

// Conversation roles understood by the endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name,omitempty"`
}

// SystemMessage returns a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage returns a user-role message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage returns an assistant-role message, for replaying
// prior turns.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Param is the request payload for Create. Model and at least one
// message are required and carried by the constructor.
type Param struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	MaxTokens        int       `json:"max_tokens,omitempty"`
	Temperature      float64   `json:"temperature,omitempty"`
	TopP             float64   `json:"top_p,omitempty"`
	N                int       `json:"n,omitempty"`
	Stop             []string  `json:"stop,omitempty"`
	PresencePenalty  float64   `json:"presence_penalty,omitempty"`
	FrequencyPenalty float64   `json:"frequency_penalty,omitempty"`
	User             string    `json:"user,omitempty"`
}

// NewParam returns a Param for the given model and conversation.
func NewParam(model string, messages ...Message) *Param {
	return &Param{Model: model, Messages: messages}
}

func (p *Param) WithMaxTokens(n int) *Param { p.MaxTokens = n; return p }

func (p *Param) WithTemperature(v float64) *Param { p.Temperature = v; return p }

func (p *Param) WithTopP(v float64) *Param { p.TopP = v; return p }

func (p *Param) WithN(n int) *Param { p.N = n; return p }

func (p *Param) WithStop(stop ...string) *Param { p.Stop = stop; return p }

func (p *Param) WithPresencePenalty(v float64) *Param { p.PresencePenalty = v; return p }

func (p *Param) WithFrequencyPenalty(v float64) *Param { p.FrequencyPenalty = v; return p }

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

// Choice is one generated reply.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Content returns the first choice's message content, "" when there
// are no choices.
func (c *Completion) Content() string {
	if len(c.Choices) == 0 {
		return ""
	}
	return c.Choices[0].Message.Content
}

// Create runs the conversation through the chat completions endpoint.
// The model and a non-empty message list are validated locally.
func Create(ctx context.Context, c *openai.Client, p *Param) (*Completion, error) {
	if p == nil || p.Model == "" {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "chat: model is required"}
	}
	if len(p.Messages) == 0 {
		return nil, &openai.Error{Code: openai.ErrInvalidRequest, Message: "chat: at least one message is required"}
	}
	return openai.Post[Completion](ctx, c, "chat/completions", p)
}
