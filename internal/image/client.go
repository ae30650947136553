package image

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/meguminnnnnnnnn/go-openai"
)

// MaxPerRequest caps how many images one call may produce.
const MaxPerRequest = 4

// Client generates images through an OpenAI-compatible images endpoint.
type Client struct {
	api *openai.Client
}

// NewClient creates an image client. baseURL may be empty to use the SDK
// default.
func NewClient(apiKey, baseURL string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{api: openai.NewClientWithConfig(cfg)}
}

// Generate requests n images for prompt from the given model and returns
// their URLs in order. The prompt must be non-empty and n must be in
// 1..MaxPerRequest; both are checked before any I/O.
func (c *Client) Generate(ctx context.Context, prompt, modelID string, n int) ([]string, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("image prompt is empty")
	}
	if n < 1 || n > MaxPerRequest {
		return nil, fmt.Errorf("image count %d out of range 1..%d", n, MaxPerRequest)
	}

	resp, err := c.api.CreateImage(ctx, openai.ImageRequest{
		Model:  modelID,
		Prompt: prompt,
		N:      n,
		Size:   openai.CreateImageSize1024x1024,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	urls := make([]string, 0, len(resp.Data))
	for _, d := range resp.Data {
		if d.URL != "" {
			urls = append(urls, d.URL)
		}
	}
	return urls, nil
}
