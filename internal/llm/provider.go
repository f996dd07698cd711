package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single entry point for talking to a language model.
type Provider interface {
	// Generate sends the request and returns the model output. When the
	// request carries a Schema, providers use their native structured-output
	// mode and the returned Content has already been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	System   string
	Messages []Message

	// Schema, when non-nil, is the JSON Schema the response must satisfy.
	// When nil, Content holds the raw text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the provider default in place.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema definition. Name doubles as the cache key for
// compiled schemas and as the schema name sent to providers that want one,
// so it should be stable and kebab-case, e.g. "study-set".
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
