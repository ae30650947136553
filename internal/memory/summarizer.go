package memory

import (
	"context"
	"strings"

	"github.com/saad-pie/steveai/internal/llm"
)

const (
	summaryModel  = "provider-3/gpt-4o-mini"
	summaryPrompt = "You are SteveAI, made by saadpie. Summarize the following chat context clearly."

	fallbackMaxChars = 800
)

// Summarizer condenses a chat transcript into a compact running summary
// via the completions backend.
type Summarizer struct {
	transport llm.Transport
	model     string
}

// NewSummarizer creates a summarizer over the given transport.
func NewSummarizer(t llm.Transport) *Summarizer {
	return &Summarizer{transport: t, model: summaryModel}
}

// Summarize condenses transcript into a summary string. A transport failure
// is recovered locally: the result is then a bounded replay of the most
// recent turns (recent), so the caller always gets some string back.
// Summarization failures are never surfaced to the user.
func (s *Summarizer) Summarize(ctx context.Context, transcript, recent string) string {
	reply, err := s.transport.Send(ctx, llm.Request{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: summaryPrompt},
			{Role: llm.RoleUser, Content: transcript},
		},
	})
	if err != nil {
		return FallbackSummary(recent)
	}
	return strings.TrimSpace(reply)
}

// FallbackSummary builds the deterministic local summary used when the
// transport is unavailable. It performs no I/O and cannot fail.
func FallbackSummary(recent string) string {
	flat := strings.ReplaceAll(recent, "\n", " ")
	if r := []rune(flat); len(r) > fallbackMaxChars {
		flat = string(r[:fallbackMaxChars])
	}
	return "Summary: " + flat
}
