package llm

// ApproxTokens estimates the token cost of text from its character length.
// Uses the rough ratio of one token per four characters, rounded up. Actual
// tokenization varies by model, but this is good enough for triggering
// summarization thresholds.
func ApproxTokens(s string) int {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return (n + 3) / 4
}
