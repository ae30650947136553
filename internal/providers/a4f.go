// Package providers implements llm.Transport against the supported
// completion backends.
package providers

import (
	"context"
	"fmt"
	"log"

	openai "github.com/meguminnnnnnnnn/go-openai"

	"github.com/saad-pie/steveai/internal/llm"
)

// DefaultBaseURL is the A4F OpenAI-compatible API root.
const DefaultBaseURL = "https://api.a4f.co/v1"

// A4FClient implements llm.Transport over an OpenAI-compatible chat
// completions endpoint, rotating through an ordered credential list: any
// non-success status or network failure moves on to the next key, and only
// exhausting the whole list surfaces an error to the caller.
type A4FClient struct {
	clients []*openai.Client
}

// NewA4FClient creates a client with one underlying SDK client per API key.
// The key order is the fallback order.
func NewA4FClient(apiKeys []string, baseURL string) (*A4FClient, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}
	clients := make([]*openai.Client, 0, len(apiKeys))
	for _, key := range apiKeys {
		cfg := openai.DefaultConfig(key)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		clients = append(clients, openai.NewClientWithConfig(cfg))
	}
	return &A4FClient{clients: clients}, nil
}

// Send implements llm.Transport.
func (c *A4FClient) Send(ctx context.Context, req llm.Request) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	var lastErr error
	var lastStatus int
	for i, client := range c.clients {
		resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    req.Model,
			Messages: msgs,
		})
		if err != nil {
			lastErr = err
			lastStatus = httpStatusOf(err)
			if ctx.Err() != nil {
				// Dead context: trying the remaining keys cannot succeed.
				break
			}
			log.Printf("completions call failed on credential %d/%d: %v", i+1, len(c.clients), err)
			continue
		}
		if len(resp.Choices) == 0 {
			lastErr = fmt.Errorf("empty response from completions endpoint")
			lastStatus = 0
			continue
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", &TransportError{Err: lastErr, HTTPStatus: lastStatus, Attempts: len(c.clients)}
}
