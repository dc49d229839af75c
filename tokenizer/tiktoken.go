package tokenizer

import (
	"fmt"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/jy130131/go-openai/chat"
)

// Tiktoken wraps tiktoken for OpenAI-family models.
type Tiktoken struct {
	model     string
	encoding  string
	maxTokens int
	enc       *tiktoken.Tiktoken
	once      sync.Once
	initErr   error
}

// modelEncodings maps model names to their tiktoken encoding and
// context size.
var modelEncodings = map[string]struct {
	encoding  string
	maxTokens int
}{
	"gpt-3.5-turbo":          {encoding: "cl100k_base", maxTokens: 4096},
	"text-embedding-ada-002": {encoding: "cl100k_base", maxTokens: 8191},
	"text-davinci-003":       {encoding: "p50k_base", maxTokens: 4097},
	"text-davinci-002":       {encoding: "p50k_base", maxTokens: 4097},
	"code-davinci-002":       {encoding: "p50k_base", maxTokens: 8001},
	"text-davinci-edit-001":  {encoding: "p50k_edit", maxTokens: 2049},
	"code-davinci-edit-001":  {encoding: "p50k_edit", maxTokens: 2049},
	"text-curie-001":         {encoding: "r50k_base", maxTokens: 2049},
	"text-babbage-001":       {encoding: "r50k_base", maxTokens: 2049},
	"text-ada-001":           {encoding: "r50k_base", maxTokens: 2049},
	"davinci":                {encoding: "r50k_base", maxTokens: 2049},
	"curie":                  {encoding: "r50k_base", maxTokens: 2049},
	"babbage":                {encoding: "r50k_base", maxTokens: 2049},
	"ada":                    {encoding: "r50k_base", maxTokens: 2049},
}

// NewTiktoken creates a tiktoken-backed tokenizer for the given
// model. Unknown models resolve by prefix, so fine-tuned names like
// "curie:ft-acme-2023-03-03" pick up the base model's encoding.
func NewTiktoken(model string) *Tiktoken {
	info, ok := modelEncodings[model]
	if !ok {
		for prefix, i := range modelEncodings {
			if len(model) >= len(prefix) && model[:len(prefix)] == prefix {
				info = i
				ok = true
				break
			}
		}
	}

	if !ok {
		info = struct {
			encoding  string
			maxTokens int
		}{encoding: "cl100k_base", maxTokens: 4096}
	}

	return &Tiktoken{
		model:     model,
		encoding:  info.encoding,
		maxTokens: info.maxTokens,
	}
}

// init lazily loads the tiktoken encoding (the data may be downloaded
// on first use).
func (t *Tiktoken) init() error {
	t.once.Do(func() {
		enc, err := tiktoken.GetEncoding(t.encoding)
		if err != nil {
			t.initErr = fmt.Errorf("init tiktoken encoding %s: %w", t.encoding, err)
			return
		}
		t.enc = enc
	})
	return t.initErr
}

func (t *Tiktoken) CountTokens(text string) (int, error) {
	if err := t.init(); err != nil {
		return 0, err
	}
	tokens := t.enc.Encode(text, nil, nil)
	return len(tokens), nil
}

func (t *Tiktoken) CountMessages(messages []chat.Message) (int, error) {
	if err := t.init(); err != nil {
		return 0, err
	}

	total := 0
	for _, msg := range messages {
		// Per-message overhead: <|start|>role\n content<|end|>\n
		total += 4
		total += len(t.enc.Encode(msg.Content, nil, nil))
		total += len(t.enc.Encode(msg.Role, nil, nil))
	}
	total += 3 // conversation-end overhead
	return total, nil
}

func (t *Tiktoken) Encode(text string) ([]int, error) {
	if err := t.init(); err != nil {
		return nil, err
	}
	return t.enc.Encode(text, nil, nil), nil
}

func (t *Tiktoken) Decode(tokens []int) (string, error) {
	if err := t.init(); err != nil {
		return "", err
	}
	return t.enc.Decode(tokens), nil
}

func (t *Tiktoken) MaxTokens() int {
	return t.maxTokens
}

func (t *Tiktoken) Name() string {
	return fmt.Sprintf("tiktoken[%s]", t.encoding)
}

// RegisterDefaults registers tokenizers for every model in the
// encoding table.
func RegisterDefaults() {
	for model := range modelEncodings {
		Register(model, NewTiktoken(model))
	}
}
