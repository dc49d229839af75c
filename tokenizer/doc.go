// Package tokenizer counts tokens for request budgeting, with exact
// tiktoken counts for known models and a character-based estimator as
// the fallback.
package tokenizer
