package command

import (
	"strconv"
	"strings"

	"github.com/saad-pie/steveai/internal/image"
)

// ImageArgs is the parsed argument set of an /image command.
type ImageArgs struct {
	Prompt  string
	ModelID string
	Count   int
}

// ParseImageArgs interprets the free text after /image. An optional
// trailing positive integer is the image count (clamped to the per-request
// maximum); an optional model-name fragment anywhere in the text selects
// the model and is removed from the prompt; everything left is the prompt.
func ParseImageArgs(args []string) ImageArgs {
	out := ImageArgs{Count: 1, ModelID: image.Default().ID}

	prompt := strings.Join(args, " ")
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[len(args)-1]); err == nil && n > 0 {
			out.Count = n
			if out.Count > image.MaxPerRequest {
				out.Count = image.MaxPerRequest
			}
			prompt = strings.Join(args[:len(args)-1], " ")
		}
	}

	if m, frag, ok := matchModelFragment(prompt); ok {
		out.ModelID = m.ID
		prompt = removeFragment(prompt, frag)
	}

	out.Prompt = strings.TrimSpace(prompt)
	return out
}

// matchModelFragment finds a registry model whose display name appears in
// the prompt, case-insensitively. A name with a trailing parenthetical
// also matches on its bare part ("Flux Schnell (Fast)" matches
// "flux schnell"), since users rarely type the full annotation.
func matchModelFragment(prompt string) (image.Model, string, bool) {
	low := strings.ToLower(prompt)
	for _, m := range image.Models {
		for _, frag := range nameFragments(m.Name) {
			if frag != "" && strings.Contains(low, frag) {
				return m, frag, true
			}
		}
	}
	return image.Model{}, "", false
}

func nameFragments(name string) []string {
	full := strings.ToLower(name)
	frags := []string{full}
	if i := strings.Index(full, "("); i > 0 {
		frags = append(frags, strings.TrimSpace(full[:i]))
	}
	return frags
}

// removeFragment deletes only the matched name substring from the prompt,
// case-insensitively, and collapses the leftover whitespace.
func removeFragment(prompt, frag string) string {
	low := strings.ToLower(prompt)
	i := strings.Index(low, frag)
	if i < 0 {
		return prompt
	}
	rest := prompt[:i] + prompt[i+len(frag):]
	return strings.Join(strings.Fields(rest), " ")
}
