package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider is the core abstraction for talking to a text-generation service.
// StudyBuddy only ever sends single-turn prompts and reads the generated
// text back, so the interface stays small.
type Provider interface {
	// Generate sends a prompt and returns the generated content. When the
	// request carries a Schema the provider asks for structured output and
	// validates the result before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt.
	System string

	// Messages is the conversation. Recommendation prompts use exactly one
	// user message.
	Messages []Message

	// Schema, when set, requests structured JSON output. When nil the
	// response Content is the raw generated text.
	Schema *Schema

	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
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

// UserPrompt builds a single-turn request from one user message.
func UserPrompt(text string) Request {
	return Request{Messages: []Message{{Role: RoleUser, Content: text}}}
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema, kebab-case (e.g. "resource-suggestions").
	// Also used as the compiled-schema cache key.
	Name string

	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, otherwise the raw text.
	Content json.RawMessage

	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns the generated content as a trimmed string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(string(r.Content))
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
