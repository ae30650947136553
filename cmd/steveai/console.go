package main

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/saad-pie/steveai/internal/chat"
)

var (
	userLabel = color.New(color.FgCyan, color.Bold)
	botLabel  = color.New(color.FgGreen, color.Bold)
)

// Console renders bot output to the terminal through a markdown renderer
// and draws the colored input prompt.
type Console struct {
	renderer   *glamour.TermRenderer
	dark       bool
	typewriter bool
}

// NewConsole builds a console sink starting in dark theme.
func NewConsole(typewriter bool) *Console {
	c := &Console{dark: true, typewriter: typewriter}
	c.renderer = newRenderer(c.dark)
	return c
}

func newRenderer(dark bool) *glamour.TermRenderer {
	style := glamour.WithStandardStyle("dark")
	if !dark {
		style = glamour.WithStandardStyle("light")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(100))
	if err != nil {
		// Fall back to plain output; rendering is cosmetic.
		log.Printf("markdown renderer unavailable: %v", err)
		return nil
	}
	return r
}

// Prompt prints the input prompt. The terminal echoes what the user types
// after it, so user turns never come back through Say.
func (c *Console) Prompt() {
	userLabel.Print("you> ")
}

// Say implements chat.Sink. Everything routed through the sink is bot
// output.
func (c *Console) Say(text string, _ chat.Sender) {
	botLabel.Println("steve>")
	out := text
	if c.renderer != nil {
		if rendered, err := c.renderer.Render(text); err == nil {
			out = rendered
		}
	}
	if c.typewriter {
		for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
			fmt.Println(line)
			time.Sleep(30 * time.Millisecond)
		}
		return
	}
	fmt.Print(out)
	if !strings.HasSuffix(out, "\n") {
		fmt.Println()
	}
}

// ToggleTheme switches between the dark and light markdown styles.
func (c *Console) ToggleTheme() {
	c.dark = !c.dark
	c.renderer = newRenderer(c.dark)
}
