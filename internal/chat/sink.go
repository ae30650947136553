// Package chat drives one message exchange at a time: build context, call
// the transport, parse the reply, and route it to display or image
// generation.
package chat

// Sender identifies who a displayed message belongs to.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Sink receives displayable text. Rendering (markdown conversion, colors,
// typing animation) is entirely the sink's business.
type Sink interface {
	Say(text string, sender Sender)
}
