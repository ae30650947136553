package llm

import "context"

// Role of a transport message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is the provider-agnostic message we pass to the completions
// backend.
type Message struct {
	Role    Role
	Content string
}

// Request is one chat completion call.
type Request struct {
	Model    string
	Messages []Message
}

// Transport abstracts the completions backend (A4F, Anthropic, etc.).
// Implementations return the assistant's raw text reply.
type Transport interface {
	Send(ctx context.Context, req Request) (string, error)
}
