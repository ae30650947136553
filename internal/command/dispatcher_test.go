package command

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saad-pie/steveai/internal/chat"
	"github.com/saad-pie/steveai/internal/parse"
)

type fakeSink struct {
	texts []string
	theme int
}

func (f *fakeSink) Say(text string, sender chat.Sender) {
	f.texts = append(f.texts, text)
}

func (f *fakeSink) ToggleTheme() {
	f.theme++
}

func (f *fakeSink) last() string {
	if len(f.texts) == 0 {
		return ""
	}
	return f.texts[len(f.texts)-1]
}

type fakeConversation struct {
	cleared int
	mode    string
	summary string
	export  string
}

func (f *fakeConversation) Clear() { f.cleared++ }

func (f *fakeConversation) SetMode(name string) error {
	if name != "chat" && name != "coding" {
		return errors.New("unknown mode")
	}
	f.mode = name
	return nil
}

func (f *fakeConversation) Modes() []string { return []string{"chat", "coding"} }

func (f *fakeConversation) EnsureSummary(ctx context.Context) string { return f.summary }

func (f *fakeConversation) ExportText() string { return f.export }

type fakeGenerator struct {
	urls []string
	err  error

	gotPrompt   string
	gotModel    string
	gotCount    int
	gotDeadline bool
	calls       int
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt, modelID string, n int) ([]string, error) {
	f.calls++
	f.gotPrompt, f.gotModel, f.gotCount = prompt, modelID, n
	_, f.gotDeadline = ctx.Deadline()
	return f.urls, f.err
}

func newTestDispatcher(t *testing.T) (*Dispatcher, *fakeSink, *fakeConversation, *fakeGenerator) {
	t.Helper()
	sink := &fakeSink{}
	conv := &fakeConversation{summary: "the digest", export: "[CHAT LOG]\nUser: hi\nBot: yo"}
	gen := &fakeGenerator{urls: []string{"https://img/1.png"}}
	return NewDispatcher(sink, conv, gen, t.TempDir()), sink, conv, gen
}

func TestHandleClear(t *testing.T) {
	d, sink, conv, _ := newTestDispatcher(t)
	d.Handle(context.Background(), "/clear")
	if conv.cleared != 1 {
		t.Error("conversation not cleared")
	}
	if !strings.Contains(sink.last(), "cleared") {
		t.Errorf("sink got %q", sink.last())
	}
}

func TestHandleTheme(t *testing.T) {
	d, sink, _, _ := newTestDispatcher(t)
	d.Handle(context.Background(), "/theme")
	if sink.theme != 1 {
		t.Error("sink theme not toggled")
	}
	if !strings.Contains(sink.last(), "Theme toggled") {
		t.Errorf("sink got %q", sink.last())
	}
}

func TestHandleUnknown(t *testing.T) {
	d, sink, _, _ := newTestDispatcher(t)
	d.Handle(context.Background(), "/frobnicate now")
	if !strings.Contains(sink.last(), "Unknown command: /frobnicate") {
		t.Errorf("sink got %q", sink.last())
	}
}

func TestHandleMode(t *testing.T) {
	d, sink, conv, _ := newTestDispatcher(t)

	d.Handle(context.Background(), "/mode coding")
	if conv.mode != "coding" {
		t.Errorf("mode = %q", conv.mode)
	}
	if !strings.Contains(sink.last(), "Switched mode to **coding**") {
		t.Errorf("sink got %q", sink.last())
	}

	d.Handle(context.Background(), "/mode nonsense")
	if !strings.Contains(sink.last(), "Usage: /mode chat | coding") {
		t.Errorf("invalid mode should echo usage, got %q", sink.last())
	}

	d.Handle(context.Background(), "/mode")
	if !strings.Contains(sink.last(), "Usage: /mode") {
		t.Errorf("missing argument should echo usage, got %q", sink.last())
	}
}

func TestHandlePlay(t *testing.T) {
	d, sink, _, _ := newTestDispatcher(t)
	d.Handle(context.Background(), "/play")
	if !strings.Contains(sink.last(), "the digest") {
		t.Errorf("summary replay missing, sink got %q", sink.last())
	}
}

func TestHandleImage(t *testing.T) {
	d, sink, _, gen := newTestDispatcher(t)

	d.Handle(context.Background(), "/image dragon flux schnell 3")

	if gen.gotPrompt != "dragon" || gen.gotModel != "provider-4/flux-schnell" || gen.gotCount != 3 {
		t.Errorf("generator called with prompt=%q model=%q count=%d", gen.gotPrompt, gen.gotModel, gen.gotCount)
	}
	if !gen.gotDeadline {
		t.Error("image generation must carry a deadline")
	}
	if !strings.Contains(sink.last(), "https://img/1.png") {
		t.Errorf("image artifact missing link: %q", sink.last())
	}
}

func TestHandleImageWithoutPrompt(t *testing.T) {
	d, sink, _, gen := newTestDispatcher(t)
	d.Handle(context.Background(), "/image")
	if gen.calls != 0 {
		t.Error("generator should not be called without a prompt")
	}
	if !strings.Contains(sink.last(), "Usage: /image") {
		t.Errorf("sink got %q", sink.last())
	}
}

func TestHandleImageEmptyResult(t *testing.T) {
	d, sink, _, gen := newTestDispatcher(t)
	gen.urls = nil
	d.Handle(context.Background(), "/image a fox")
	if !strings.Contains(sink.last(), "No images were returned") {
		t.Errorf("empty result needs a distinct warning, got %q", sink.last())
	}
}

func TestHandleImageFailure(t *testing.T) {
	d, sink, _, gen := newTestDispatcher(t)
	gen.err = errors.New("backend exploded")
	d.Handle(context.Background(), "/image a fox")
	if !strings.Contains(sink.last(), "Image generation failed: backend exploded") {
		t.Errorf("sink got %q", sink.last())
	}
}

func TestGenerateFromDirective(t *testing.T) {
	d, _, _, gen := newTestDispatcher(t)

	d.GenerateFromDirective(context.Background(), parse.ImageDirective{Model: "flux dev", Prompt: "a castle"})
	if gen.gotModel != "provider-4/flux-dev" {
		t.Errorf("directive model resolved to %q", gen.gotModel)
	}
	if gen.gotCount != 1 {
		t.Errorf("directive count = %d, want 1", gen.gotCount)
	}

	// Unresolvable names fall back to the default model.
	d.GenerateFromDirective(context.Background(), parse.ImageDirective{Model: "Phoenix", Prompt: "a red fox"})
	if gen.gotModel != "provider-4/imagen-4" {
		t.Errorf("fallback model = %q", gen.gotModel)
	}
	if gen.gotPrompt != "a red fox" {
		t.Errorf("prompt = %q", gen.gotPrompt)
	}
}

func TestHandleExport(t *testing.T) {
	dir := t.TempDir()
	sink := &fakeSink{}
	conv := &fakeConversation{export: "[CHAT LOG]\nUser: hi\nBot: yo"}
	d := NewDispatcher(sink, conv, &fakeGenerator{}, dir)

	d.Handle(context.Background(), "/export")

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one exported file, got %v (err %v)", entries, err)
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, "SteveAI_Chat_") || !strings.HasSuffix(name, ".txt") {
		t.Errorf("export filename = %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != conv.export {
		t.Errorf("export content = %q", data)
	}
	if !strings.Contains(sink.last(), "Chat exported to") {
		t.Errorf("sink got %q", sink.last())
	}
}
