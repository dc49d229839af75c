// Package openai provides a typed client for the OpenAI REST API.
//
// A Client is built from an immutable Config and is safe to share
// across goroutines. Each API capability lives in its own resource
// package (moderation, completion, chat, embedding, image, file,
// finetune, model) as plain functions that take the Client:
//
//	cfg := openai.NewConfig(os.Getenv("OPENAI_API_KEY"))
//	client := openai.NewClient(cfg, logger)
//
//	mod, err := moderation.Create(ctx, client, moderation.NewParam("some text"))
//
// All failures, transport and API alike, surface as *Error values
// carrying a stable ErrorCode, the HTTP status when one was received,
// and a Retryable hint. Inspect them with errors.As:
//
//	var apiErr *openai.Error
//	if errors.As(err, &apiErr) && apiErr.Retryable {
//		// back off and try again
//	}
package openai
