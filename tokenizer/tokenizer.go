package tokenizer

import (
	"fmt"
	"sync"

	"github.com/jy130131/go-openai/chat"
)

// Tokenizer counts and encodes tokens for one model family.
type Tokenizer interface {
	// CountTokens returns the token count of the given text.
	CountTokens(text string) (int, error)

	// CountMessages returns the total token count of a conversation,
	// including the per-message overhead (role markers, separators).
	CountMessages(messages []chat.Message) (int, error)

	// Encode converts text into a list of token ids.
	Encode(text string) ([]int, error)

	// Decode converts token ids back into text.
	Decode(tokens []int) (string, error)

	// MaxTokens returns the model's maximum context length.
	MaxTokens() int

	// Name returns the tokenizer's name.
	Name() string
}

var (
	modelTokenizers   = make(map[string]Tokenizer)
	modelTokenizersMu sync.RWMutex
)

// Register binds a tokenizer to a model name.
func Register(model string, t Tokenizer) {
	modelTokenizersMu.Lock()
	defer modelTokenizersMu.Unlock()
	modelTokenizers[model] = t
}

// Lookup returns the tokenizer registered for the given model. It
// also tries prefix matching, so a fine-tuned "curie:ft-acme"
// resolves to the "curie" tokenizer.
func Lookup(model string) (Tokenizer, error) {
	modelTokenizersMu.RLock()
	defer modelTokenizersMu.RUnlock()

	if t, ok := modelTokenizers[model]; ok {
		return t, nil
	}

	for prefix, t := range modelTokenizers {
		if len(model) >= len(prefix) && model[:len(prefix)] == prefix {
			return t, nil
		}
	}

	return nil, fmt.Errorf("no tokenizer registered for model: %s", model)
}

// ForModel returns the registered tokenizer for the model, falling
// back to a generic estimator when none is registered.
func ForModel(model string) Tokenizer {
	t, err := Lookup(model)
	if err != nil {
		return NewEstimator(model, 0)
	}
	return t
}
