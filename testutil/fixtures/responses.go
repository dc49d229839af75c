// Package fixtures holds wire-format API response samples shared by
// package tests. Keeping them in one place keeps the tests about
// behavior, not about JSON escaping.
package fixtures

// ModerationFlagged is the documented example response for a flagged
// input. The per-result "flagged" key and full score block are part
// of the wire shape even though not every field is modeled.
const ModerationFlagged = `{
  "id": "modr-5MWoLO",
  "model": "text-moderation-001",
  "results": [
    {
      "categories": {
        "hate": false,
        "hate/threatening": true,
        "self-harm": false,
        "sexual": false,
        "sexual/minors": false,
        "violence": true,
        "violence/graphic": false
      },
      "category_scores": {
        "hate": 0.22714105248451233,
        "hate/threatening": 0.4132447242736816,
        "self-harm": 0.005232391878962517,
        "sexual": 0.01407341007143259,
        "sexual/minors": 0.0038522258400917053,
        "violence": 0.9223177433013916,
        "violence/graphic": 0.036865197122097015
      },
      "flagged": true
    }
  ]
}`

// ModerationClean is a response for benign input, with the top-level
// flagged verdict present.
const ModerationClean = `{
  "id": "modr-ok",
  "model": "text-moderation-latest",
  "flagged": false,
  "results": [
    {
      "categories": {
        "hate": false,
        "hate/threatening": false,
        "self-harm": false,
        "sexual": false,
        "sexual/minors": false,
        "violence": false,
        "violence/graphic": false
      },
      "category_scores": {
        "hate": 0.0001,
        "hate/threatening": 0.0001,
        "self-harm": 0.0001,
        "sexual": 0.0002,
        "sexual/minors": 0.0001,
        "violence": 0.0003,
        "violence/graphic": 0.0001
      },
      "flagged": false
    }
  ]
}`

// CompletionBasic is a one-choice text completion with usage.
const CompletionBasic = `{
  "id": "cmpl-6n9bT",
  "object": "text_completion",
  "created": 1677652288,
  "model": "text-davinci-003",
  "choices": [
    {
      "text": "\n\nOnce upon a time, a robot learned to dream.",
      "index": 0,
      "logprobs": null,
      "finish_reason": "stop"
    }
  ],
  "usage": {"prompt_tokens": 5, "completion_tokens": 12, "total_tokens": 17}
}`

// ChatBasic is a one-choice chat completion with usage.
const ChatBasic = `{
  "id": "chatcmpl-123",
  "object": "chat.completion",
  "created": 1677652288,
  "model": "gpt-3.5-turbo",
  "choices": [
    {
      "index": 0,
      "message": {"role": "assistant", "content": "Hello there, how may I assist you today?"},
      "finish_reason": "stop"
    }
  ],
  "usage": {"prompt_tokens": 9, "completion_tokens": 12, "total_tokens": 21}
}`

// EditBasic is a one-choice edit response.
const EditBasic = `{
  "object": "edit",
  "created": 1589478378,
  "choices": [
    {
      "text": "What day of the week is it?",
      "index": 0
    }
  ],
  "usage": {"prompt_tokens": 25, "completion_tokens": 32, "total_tokens": 57}
}`

// EmbeddingBasic is a single-input embedding response with a short
// vector, enough to check index and value plumbing.
const EmbeddingBasic = `{
  "object": "list",
  "data": [
    {
      "object": "embedding",
      "index": 0,
      "embedding": [0.0023064255, -0.009327292, -0.0028842222]
    }
  ],
  "model": "text-embedding-ada-002",
  "usage": {"prompt_tokens": 8, "total_tokens": 8}
}`

// ImageGenerated is a two-image generation result, one URL and one
// base64 payload.
const ImageGenerated = `{
  "created": 1589478378,
  "data": [
    {"url": "https://images.example/one.png"},
    {"b64_json": "aW1hZ2UgYnl0ZXM="}
  ]
}`

// FileUploaded is a single stored file record.
const FileUploaded = `{
  "id": "file-XjGxS3KTG0uNmNOK362iJua3",
  "object": "file",
  "bytes": 140,
  "created_at": 1613779121,
  "filename": "train.jsonl",
  "purpose": "fine-tune"
}`

// FileList wraps two stored files.
const FileList = `{
  "object": "list",
  "data": [
    {"id": "file-1", "object": "file", "bytes": 140, "created_at": 1613779121, "filename": "train.jsonl", "purpose": "fine-tune"},
    {"id": "file-2", "object": "file", "bytes": 220, "created_at": 1613779200, "filename": "eval.jsonl", "purpose": "fine-tune"}
  ]
}`

// FileDeleted acknowledges a file deletion.
const FileDeleted = `{"id": "file-1", "object": "file", "deleted": true}`

// FineTuneCreated is a freshly queued fine-tune job.
const FineTuneCreated = `{
  "id": "ft-AF1WoRqd3aJAHsqc9NY7iL8F",
  "object": "fine-tune",
  "model": "curie",
  "created_at": 1614807352,
  "updated_at": 1614807352,
  "fine_tuned_model": null,
  "organization_id": "org-123",
  "status": "pending",
  "hyperparams": {"batch_size": 4, "learning_rate_multiplier": 0.1, "n_epochs": 4, "prompt_loss_weight": 0.1},
  "training_files": [
    {"id": "file-XGinujblHPwGLSztz8cPS8XY", "object": "file", "bytes": 1547276, "created_at": 1610062281, "filename": "train.jsonl", "purpose": "fine-tune"}
  ],
  "validation_files": [],
  "result_files": [],
  "events": [
    {"object": "fine-tune-event", "created_at": 1614807352, "level": "info", "message": "Job enqueued. Waiting for jobs ahead to complete."}
  ]
}`

// FineTuneEvents is the event stream of a running job.
const FineTuneEvents = `{
  "object": "list",
  "data": [
    {"object": "fine-tune-event", "created_at": 1614807352, "level": "info", "message": "Job enqueued. Waiting for jobs ahead to complete."},
    {"object": "fine-tune-event", "created_at": 1614807356, "level": "info", "message": "Job started."}
  ]
}`

// ModelList carries two models with their permission blocks.
const ModelList = `{
  "object": "list",
  "data": [
    {
      "id": "text-davinci-003",
      "object": "model",
      "created": 1669599635,
      "owned_by": "openai-internal",
      "permission": [
        {
          "id": "modelperm-1",
          "object": "model_permission",
          "created": 1669085501,
          "allow_create_engine": false,
          "allow_sampling": true,
          "allow_logprobs": true,
          "allow_search_indices": false,
          "allow_view": true,
          "allow_fine_tuning": false,
          "organization": "*",
          "is_blocking": false
        }
      ],
      "root": "text-davinci-003",
      "parent": null
    },
    {
      "id": "gpt-3.5-turbo",
      "object": "model",
      "created": 1677610602,
      "owned_by": "openai",
      "permission": [],
      "root": "gpt-3.5-turbo",
      "parent": null
    }
  ]
}`

// ErrorRateLimited is the standard envelope for a 429.
const ErrorRateLimited = `{
  "error": {
    "message": "Rate limit reached for requests",
    "type": "requests",
    "param": null,
    "code": "rate_limit_exceeded"
  }
}`

// ErrorInvalidKey is the standard envelope for a 401.
const ErrorInvalidKey = `{
  "error": {
    "message": "Incorrect API key provided",
    "type": "invalid_request_error",
    "param": null,
    "code": "invalid_api_key"
  }
}`
