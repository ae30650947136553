package chat

import (
	"fmt"
	"strings"

	"github.com/saad-pie/steveai/internal/image"
)

// Persona binds a conversation mode to a backend model and a bot identity.
type Persona struct {
	Mode  string
	Model string
	Name  string
}

// DefaultMode is used for unknown or absent modes.
const DefaultMode = "chat"

// modeOrder drives help text and /mode usage output.
var modeOrder = []string{"chat", "reasoning", "fast", "math", "korean", "general", "coding", "arabic"}

var personas = map[string]Persona{
	"chat":      {Mode: "chat", Model: "provider-5/gpt-5-nano", Name: "SteveAI-chat"},
	"reasoning": {Mode: "reasoning", Model: "provider-1/deepseek-r1-0528", Name: "SteveAI-reasoning"},
	"fast":      {Mode: "fast", Model: "provider-2/gemini-2.5-flash", Name: "SteveAI-fast"},
	"math":      {Mode: "math", Model: "provider-1/qwen3-235b-a22b-instruct-2507", Name: "SteveAI-math"},
	"korean":    {Mode: "korean", Model: "provider-1/ax-4.0", Name: "SteveAI-Korean"},
	"general":   {Mode: "general", Model: "provider-3/glm-4.5-free", Name: "SteveAI-general"},
	"coding":    {Mode: "coding", Model: "provider-1/deepseek-v3-0324", Name: "SteveAI-coding"},
	"arabic":    {Mode: "arabic", Model: "provider-1/allam-7b-instruct-preview", Name: "SteveAI-Arabic"},
}

// PersonaFor returns the persona for mode, defaulting to the baseline chat
// persona for unknown or empty modes.
func PersonaFor(mode string) Persona {
	if p, ok := personas[strings.ToLower(mode)]; ok {
		return p
	}
	return personas[DefaultMode]
}

// ValidMode reports whether name is an allowed conversation mode.
func ValidMode(name string) bool {
	_, ok := personas[strings.ToLower(name)]
	return ok
}

// ModeNames returns the allowed mode names in display order.
func ModeNames() []string {
	out := make([]string, len(modeOrder))
	copy(out, modeOrder)
	return out
}

// systemPrompt builds the instruction string for one exchange. It carries
// the two output contracts the response parser relies on: reasoning inside
// <think> tags, and the exact image-generation directive pattern.
func systemPrompt(p Persona, userMsg string) string {
	return fmt.Sprintf(`You are %s, made by saadpie.

1. **Reasoning:** You must always output your reasoning steps inside <think> tags, followed by the final answer, UNLESS an image is being generated.
2. **Image Generation:** If the user asks you to *generate*, *create*, or *show* an image, you must reply with **ONLY** the following exact pattern. **DO NOT add any greetings, explanations, emojis, periods, newlines, or follow-up text whatsoever.** Your output must be the single, raw command string:
   Image Generated:model:model name,prompt:prompt text
   Available image models: %s. Use the most relevant model name in your response.

The user has asked: %s`, p.Name, strings.Join(image.Names(), ", "), userMsg)
}
