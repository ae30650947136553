package providers

import (
	"context"
	"fmt"

	anthropic "github.com/liushuangls/go-anthropic/v2"

	"github.com/saad-pie/steveai/internal/llm"
)

const anthropicMaxTokens = 4096

// AnthropicClient implements llm.Transport via the Anthropic SDK. Unlike
// the A4F client it carries a single credential; the model identifier still
// comes from the request.
type AnthropicClient struct {
	client *anthropic.Client
}

// NewAnthropicClient creates an Anthropic-backed transport. Options are
// passed through to the SDK client.
func NewAnthropicClient(apiKey string, opts ...anthropic.ClientOption) *AnthropicClient {
	return &AnthropicClient{client: anthropic.NewClient(apiKey, opts...)}
}

// Send implements llm.Transport.
func (c *AnthropicClient) Send(ctx context.Context, req llm.Request) (string, error) {
	var systemParts []anthropic.MessageSystemPart
	var msgs []anthropic.Message

	for _, m := range req.Messages {
		switch m.Role {
		case llm.RoleSystem:
			systemParts = append(systemParts, anthropic.MessageSystemPart{
				Type: "text",
				Text: m.Content,
			})
		case llm.RoleUser:
			msgs = append(msgs, anthropic.Message{
				Role:    anthropic.RoleUser,
				Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(m.Content)},
			})
		case llm.RoleAssistant:
			msgs = append(msgs, anthropic.Message{
				Role:    anthropic.RoleAssistant,
				Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(m.Content)},
			})
		}
	}

	areq := anthropic.MessagesRequest{
		Model:     anthropic.Model(req.Model),
		Messages:  msgs,
		MaxTokens: anthropicMaxTokens,
	}
	if len(systemParts) > 0 {
		areq.MultiSystem = systemParts
	}

	resp, err := c.client.CreateMessages(ctx, areq)
	if err != nil {
		return "", &TransportError{Err: err, Attempts: 1}
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == anthropic.MessagesContentTypeText && block.Text != nil {
			text += *block.Text
		}
	}
	if text == "" {
		return "", &TransportError{Err: fmt.Errorf("empty response from Anthropic"), Attempts: 1}
	}
	return text, nil
}
