package command

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/saad-pie/steveai/internal/chat"
	"github.com/saad-pie/steveai/internal/image"
	"github.com/saad-pie/steveai/internal/parse"
)

// Generator produces image URLs for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt, modelID string, n int) ([]string, error)
}

// Conversation is the slice of session state commands may act on.
type Conversation interface {
	Clear()
	SetMode(name string) error
	Modes() []string
	EnsureSummary(ctx context.Context) string
	ExportText() string
}

// ThemeToggler is implemented by sinks that support a light/dark switch.
type ThemeToggler interface {
	ToggleTheme()
}

// Dispatcher executes parsed commands. Every command is a terminal action;
// only the image command reaches out over the network.
type Dispatcher struct {
	sink      chat.Sink
	conv      Conversation
	images    Generator
	exportDir string
	now       func() time.Time
}

// NewDispatcher wires a dispatcher. exportDir is where /export writes its
// file; empty means the current directory.
func NewDispatcher(sink chat.Sink, conv Conversation, images Generator, exportDir string) *Dispatcher {
	return &Dispatcher{
		sink:      sink,
		conv:      conv,
		images:    images,
		exportDir: exportDir,
		now:       time.Now,
	}
}

// Handle parses and executes one user-typed slash command.
func (d *Dispatcher) Handle(ctx context.Context, input string) {
	cmd := Parse(input)
	switch cmd.Kind {
	case KindClear:
		d.conv.Clear()
		d.say("🧹 Chat cleared.")
	case KindTheme:
		if t, ok := d.sink.(ThemeToggler); ok {
			t.ToggleTheme()
		}
		d.say("🌓 Theme toggled.")
	case KindHelp:
		d.say(helpText())
	case KindExport:
		d.export()
	case KindContact:
		d.say(contactText)
	case KindPlay:
		d.say("🎬 Generating chat summary...")
		d.say("🧠 **Chat Summary:**\n" + d.conv.EnsureSummary(ctx))
	case KindAbout:
		d.say(aboutText())
	case KindMode:
		if cmd.Arg == "" || d.conv.SetMode(cmd.Arg) != nil {
			d.say("⚙️ Usage: /mode " + strings.Join(d.conv.Modes(), " | "))
			return
		}
		d.say("🧭 Switched mode to **" + strings.ToLower(cmd.Arg) + "**.")
	case KindTime:
		d.say("⏰ Local time: " + d.now().Format("3:04:05 PM"))
	case KindImage:
		if cmd.Image.Prompt == "" {
			d.say("⚠️ Usage: /image <prompt> [model name snippet] [n=1-4]")
			return
		}
		d.generate(ctx, cmd.Image)
	default:
		d.say("❓ Unknown command: " + cmd.Name)
	}
}

// GenerateFromDirective handles the structured path: the directive's model
// name is resolved by exact case-insensitive match with a fixed default
// fallback. The count is pinned to one; the model may not request multiple
// images per directive.
func (d *Dispatcher) GenerateFromDirective(ctx context.Context, dir parse.ImageDirective) {
	m, ok := image.ByName(dir.Model)
	if !ok {
		m = image.Default()
	}
	d.generate(ctx, ImageArgs{Prompt: dir.Prompt, ModelID: m.ID, Count: 1})
}

// Image backends are slower than chat completions, so the bound is looser
// than the orchestrator's per-exchange timeout.
const generateTimeout = 120 * time.Second

func (d *Dispatcher) generate(ctx context.Context, args ImageArgs) {
	name := image.NameByID(args.ModelID)
	d.say(fmt.Sprintf("🎨 Generating **%d** image(s) with **%s** for: *%s* ...", args.Count, name, args.Prompt))

	callCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()
	urls, err := d.images.Generate(callCtx, args.Prompt, args.ModelID, args.Count)
	if err != nil {
		d.say("⚠️ Image generation failed: " + err.Error())
		return
	}
	if len(urls) == 0 {
		d.say("⚠️ No images were returned from the server.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🖼️ **Generated Images:** %q\n", args.Prompt)
	for i, u := range urls {
		fmt.Fprintf(&b, "\n%d. [%s Image %d](%s)", i+1, name, i+1, u)
	}
	d.say(b.String())
}

func (d *Dispatcher) export() {
	name := fmt.Sprintf("SteveAI_Chat_%s.txt", d.now().Format("2006-01-02T15:04:05"))
	path := filepath.Join(d.exportDir, name)

	if err := os.WriteFile(path, []byte(d.conv.ExportText()), 0644); err != nil {
		d.say("⚠️ Export failed: " + err.Error())
		return
	}
	d.say("💾 Chat exported to " + path + ".")
}

func (d *Dispatcher) say(text string) {
	d.sink.Say(text, chat.SenderBot)
}

const contactText = `**📬 Contact SteveAI**
- Creator: [@saadpie](https://github.com/saad-pie)
- Website: [steve-ai.netlify.app](https://steve-ai.netlify.app)
- Feedback: Use /export to send logs.`

func helpText() string {
	return fmt.Sprintf(`**🧭 Available Commands**

- /clear — Clears current chat
- /theme — Toggle dark/light mode
- /help — Show this help
- /image <prompt> [model] [n=1] — Generate image(s)
  - Models: %s
  - Max Images: %d
- /export — Export chat as .txt
- /contact — Show contact info
- /play — Summarize / replay conversation
- /about — About SteveAI
- /mode <%s> — Change mode
- /time — Show local time`,
		strings.Join(image.Names(), ", "), image.MaxPerRequest, strings.Join(chat.ModeNames(), "|"))
}

func aboutText() string {
	return fmt.Sprintf(`🤖 **About SteveAI**
Built by *saadpie* — the bot from the future.

- Models: GPT-5-Nano, DeepSeek-R1, Gemini-2.5-flash, Qwen-3, Ax-4.0, GLM-4.5, Deepseek-v3, Allam-7b, %s
- Modes: %s
- Features: Context memory, Summarization, Commands, Theme toggle, Export

_Type /help to explore commands._`,
		strings.Join(image.Names(), ", "), strings.Join(chat.ModeNames(), " | "))
}
