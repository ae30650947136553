package parse

import (
	"regexp"
	"strings"
)

// ImageDirective is a strictly-formatted command string the model emits in
// place of a normal answer, requesting an image generation.
type ImageDirective struct {
	Model  string // free-form model name, resolved against the registry later
	Prompt string
}

const (
	directivePrefix = "image generated:"
	modelKey        = "model:"
	promptKey       = "prompt:"
)

var (
	decorativeRe = regexp.MustCompile(`(?i)(\*\*|🧠|Reasoning/Steps)`)
	controlRe    = regexp.MustCompile(`[\x00-\x1f\x7f-\x9f]`)
)

// ImageCommand scans answer text for the exact pattern
// "Image Generated:model:<name>,prompt:<text>" (case-insensitive). This is
// a strict single-pass structural parse: the model is contractually
// instructed to emit exactly this shape, so anything that deviates returns
// nil and the text falls through to normal display.
func ImageCommand(text string) *ImageDirective {
	clean := strings.TrimSpace(text)
	clean = strings.ReplaceAll(clean, "\n", " ")
	clean = decorativeRe.ReplaceAllString(clean, "")
	clean = controlRe.ReplaceAllString(clean, "")
	clean = strings.TrimSpace(clean)

	if !strings.HasPrefix(strings.ToLower(clean), directivePrefix) {
		return nil
	}
	content := strings.TrimSpace(clean[len(directivePrefix):])

	comma := strings.Index(content, ",")
	if comma == -1 {
		return nil
	}
	modelSeg := strings.TrimSpace(content[:comma])
	promptSeg := strings.TrimSpace(content[comma+1:])

	if !strings.HasPrefix(strings.ToLower(modelSeg), modelKey) {
		return nil
	}
	model := strings.TrimSpace(modelSeg[len(modelKey):])

	if !strings.HasPrefix(strings.ToLower(promptSeg), promptKey) {
		return nil
	}
	prompt := strings.TrimSpace(promptSeg[len(promptKey):])

	if model == "" || prompt == "" {
		return nil
	}
	return &ImageDirective{Model: model, Prompt: prompt}
}
