package chat

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/saad-pie/steveai/internal/llm"
	"github.com/saad-pie/steveai/internal/memory"
	"github.com/saad-pie/steveai/internal/parse"
)

const (
	tokenBudget      = 2200
	summarizeAtTurns = 6
	keepAfterSummary = 4
	recentWindow     = 6

	defaultTimeout = 60 * time.Second
)

// Dispatcher handles a model-emitted image directive. The command package
// provides the concrete implementation.
type Dispatcher interface {
	GenerateFromDirective(ctx context.Context, d parse.ImageDirective)
}

// Orchestrator owns the session state (memory, running summary, turn
// counter, mode) and processes one user message to completion before the
// next is accepted. All mutation of the session state goes through it.
type Orchestrator struct {
	id         string
	transport  llm.Transport
	summarizer *memory.Summarizer
	mem        *memory.Memory
	summary    string
	mode       string
	sink       Sink
	images     Dispatcher
	timeout    time.Duration
}

// Options tunes a new Orchestrator.
type Options struct {
	Mode    string        // initial conversation mode, default "chat"
	Timeout time.Duration // per transport call, default 60s
}

// New creates an orchestrator with a fresh session.
func New(t llm.Transport, sink Sink, images Dispatcher, opts Options) *Orchestrator {
	mode := opts.Mode
	if !ValidMode(mode) {
		mode = DefaultMode
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Orchestrator{
		id:         uuid.NewString(),
		transport:  t,
		summarizer: memory.NewSummarizer(t),
		mem:        memory.New(),
		mode:       mode,
		sink:       sink,
		images:     images,
		timeout:    timeout,
	}
}

// SetImages late-binds the image dispatcher. The dispatcher needs the
// orchestrator for session commands, so the two are wired after both are
// constructed.
func (o *Orchestrator) SetImages(d Dispatcher) {
	o.images = d
}

// ID returns the session identifier.
func (o *Orchestrator) ID() string {
	return o.id
}

// Mode returns the current conversation mode.
func (o *Orchestrator) Mode() string {
	return o.mode
}

// Reply processes one user message end to end: build context, call the
// transport, parse the raw reply, then either display the answer or hand
// an embedded image directive to the dispatcher. Memory is updated only
// after a successful exchange.
func (o *Orchestrator) Reply(ctx context.Context, msg string) {
	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	history := o.buildContext(callCtx)
	p := PersonaFor(o.mode)

	raw, err := o.transport.Send(callCtx, llm.Request{
		Model: p.Model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt(p, msg)},
			{Role: llm.RoleUser, Content: history + "\n\nUser: " + msg},
		},
	})
	if err != nil {
		log.Printf("chat exchange failed (session %s): %v", o.id, err)
		o.sink.Say("⚠️ API unreachable. Check keys or proxy.", SenderBot)
		return
	}

	parsed := parse.Thinking(raw)
	o.mem.Append(msg, raw)

	if d := parse.ImageCommand(parsed.Answer); d != nil && o.images != nil {
		o.images.GenerateFromDirective(ctx, *d)
		return
	}

	if parsed.Thinking != "" {
		o.sink.Say("🧠 **Reasoning/Steps**\n"+parsed.Thinking+"\n\n---\n\n"+parsed.Answer, SenderBot)
		return
	}
	o.sink.Say(parsed.Answer, SenderBot)
}

// shouldSummarize is true only before the first summarization of a
// session: once a summary exists it never re-triggers, so very long
// sessions can grow past the budget again. Known limitation.
func (o *Orchestrator) shouldSummarize() bool {
	if o.summary != "" {
		return false
	}
	return o.mem.Turns() >= summarizeAtTurns || llm.ApproxTokens(o.mem.Transcript()) > tokenBudget
}

// buildContext assembles the history string sent with each request,
// compacting memory behind a summary when thresholds are exceeded.
func (o *Orchestrator) buildContext(ctx context.Context) string {
	if o.shouldSummarize() {
		sum := o.summarizer.Summarize(ctx, o.mem.Transcript(), o.mem.Recent(2))
		if sum != "" {
			o.summary = sum
			o.mem.Prune(keepAfterSummary)
		}
	}
	if o.summary == "" {
		return o.mem.Transcript()
	}
	return fmt.Sprintf("[SESSION SUMMARY]\n%s\n\n[RECENT TURNS]\n%s", o.summary, o.mem.Recent(recentWindow))
}

// Clear resets the whole session state: turns, counter and summary.
func (o *Orchestrator) Clear() {
	o.mem.Reset()
	o.summary = ""
}

// SetMode switches the conversation persona.
func (o *Orchestrator) SetMode(name string) error {
	if !ValidMode(name) {
		return fmt.Errorf("unknown mode: %s", name)
	}
	o.mode = PersonaFor(name).Mode
	return nil
}

// Modes lists the allowed mode names.
func (o *Orchestrator) Modes() []string {
	return ModeNames()
}

// EnsureSummary returns the session summary, generating one on demand if
// none exists yet. The on-demand call is bounded by the same timeout as
// regular exchanges.
func (o *Orchestrator) EnsureSummary(ctx context.Context) string {
	if o.summary == "" {
		callCtx, cancel := context.WithTimeout(ctx, o.timeout)
		defer cancel()
		o.summary = o.summarizer.Summarize(callCtx, o.mem.Transcript(), o.mem.Recent(2))
	}
	return o.summary
}

// ExportText serializes the session to the plain-text export format: an
// optional [SUMMARY] block followed by the [CHAT LOG] block.
func (o *Orchestrator) ExportText() string {
	if o.summary != "" {
		return fmt.Sprintf("[SUMMARY]\n%s\n\n[CHAT LOG]\n%s", o.summary, o.mem.Transcript())
	}
	return "[CHAT LOG]\n" + o.mem.Transcript()
}
