// Package parse interprets raw model output: it separates reasoning from
// the final answer and detects the structured image-generation directive
// the model is instructed to emit.
package parse

import (
	"regexp"
	"strings"
)

// Parsed is the split of a raw model reply.
type Parsed struct {
	Answer   string
	Thinking string // empty when the reply carried no <think> block
}

var thinkRe = regexp.MustCompile(`(?s)<think>(.*?)</think>`)

// Substituted when the model returned only a thinking block, so downstream
// display is never blank.
const emptyAnswerPlaceholder = "The model produced a thinking step but no explicit final answer."

// Thinking extracts the first <think>...</think> block from raw text. The
// block may span multiple lines; any later blocks are left inside the
// answer untouched. Without a block the whole input is the answer.
func Thinking(raw string) Parsed {
	loc := thinkRe.FindStringSubmatchIndex(raw)
	if loc == nil {
		return Parsed{Answer: raw}
	}

	thinking := strings.TrimSpace(raw[loc[2]:loc[3]])
	answer := strings.TrimSpace(raw[:loc[0]] + raw[loc[1]:])
	if answer == "" && thinking != "" {
		answer = emptyAnswerPlaceholder
	}
	return Parsed{Answer: answer, Thinking: thinking}
}
