// Package command routes slash commands and model-emitted image
// directives to their terminal actions.
package command

import "strings"

// Kind enumerates the slash-command vocabulary.
type Kind int

const (
	KindUnknown Kind = iota
	KindClear
	KindTheme
	KindHelp
	KindExport
	KindContact
	KindPlay
	KindAbout
	KindMode
	KindTime
	KindImage
)

// Command is one parsed user-typed slash command.
type Command struct {
	Kind  Kind
	Name  string    // the typed command word, for unknown-command echo
	Arg   string    // single-argument commands (/mode)
	Image ImageArgs // populated for KindImage
}

// IsCommand reports whether input should go through the dispatcher rather
// than the chat orchestrator.
func IsCommand(input string) bool {
	return strings.HasPrefix(strings.TrimSpace(input), "/")
}

// Parse tokenizes a user-typed command into its tagged variant. It never
// fails: anything outside the vocabulary becomes KindUnknown.
func Parse(input string) Command {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return Command{Kind: KindUnknown}
	}
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "/clear":
		return Command{Kind: KindClear, Name: name}
	case "/theme":
		return Command{Kind: KindTheme, Name: name}
	case "/help":
		return Command{Kind: KindHelp, Name: name}
	case "/export":
		return Command{Kind: KindExport, Name: name}
	case "/contact":
		return Command{Kind: KindContact, Name: name}
	case "/play":
		return Command{Kind: KindPlay, Name: name}
	case "/about":
		return Command{Kind: KindAbout, Name: name}
	case "/mode":
		c := Command{Kind: KindMode, Name: name}
		if len(args) > 0 {
			c.Arg = args[0]
		}
		return c
	case "/time":
		return Command{Kind: KindTime, Name: name}
	case "/image":
		return Command{Kind: KindImage, Name: name, Image: ParseImageArgs(args)}
	default:
		return Command{Kind: KindUnknown, Name: name}
	}
}
