// Package llm provides an OpenAI-compatible chat completion client.
//
// # Configuration
//
// Requires an API key and model; the base URL defaults to OpenRouter's
// chat completions endpoint. When no key is configured every call fails
// with ErrNoAPIKey so callers can fall back to a fixed reply.
//
// # Entry Points
//
// NewClient: construct client from Config.
// Client.Complete: send system/user prompts, receive the model's text.
// DecodeJSON: decode a JSON-mode reply, tolerating code fences and prose.
//
// # Retry Behaviour
//
// Rate limiting and retries on 429/503 are delegated to httpclient.Client,
// which also bounds each call with a timeout.
package llm
