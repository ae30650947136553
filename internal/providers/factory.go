package providers

import (
	"fmt"
	"os"
	"strings"

	"github.com/saad-pie/steveai/internal/llm"
)

// NewTransportFromEnv creates the llm.Transport selected by environment
// variables. LLM_PROVIDER chooses the backend (default "a4f"); the caller
// is expected to have populated the environment from user config first.
func NewTransportFromEnv() (llm.Transport, error) {
	provider := os.Getenv("LLM_PROVIDER")
	if provider == "" {
		provider = "a4f"
	}

	switch provider {
	case "a4f":
		keys := SplitKeys(os.Getenv("STEVEAI_API_KEYS"))
		if len(keys) == 0 {
			return nil, fmt.Errorf("STEVEAI_API_KEYS not set")
		}

		baseURL := os.Getenv("STEVEAI_BASE_URL")
		if baseURL == "" {
			baseURL = DefaultBaseURL
		}

		return NewA4FClient(keys, baseURL)

	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
		}

		return NewAnthropicClient(apiKey), nil

	default:
		return nil, fmt.Errorf("unknown LLM_PROVIDER: %s (supported: a4f, anthropic)", provider)
	}
}

// SplitKeys parses a comma-separated credential list, preserving order and
// dropping empty entries.
func SplitKeys(s string) []string {
	var keys []string
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
