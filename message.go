package subcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// errorStyle paints error messages red. The renderer profile is forced so
// rendering does not depend on a TTY check at output time; the capability
// decision lives on the Message itself.
var errorStyle = lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI)).
	NewStyle().
	Foreground(lipgloss.Color("1"))

// Message is a buffered, line-oriented text accumulator carried inside a
// [Result]. It performs no I/O of its own: [Message.Get] always returns the
// raw buffer verbatim, and color is applied only on the rendering path, only
// for error messages, and only when the terminal capability allows it.
type Message struct {
	buf     strings.Builder
	isError bool
	color   bool
}

// NewMessage returns an empty message. The color capability is detected once
// from the environment; NO_COLOR and dumb terminals disable it.
func NewMessage() *Message {
	return &Message{color: termenv.EnvColorProfile() != termenv.Ascii}
}

// Add appends raw text to the buffer.
func (m *Message) Add(text string) {
	m.buf.WriteString(text)
}

// AddLine appends text followed by a newline.
func (m *Message) AddLine(text string) {
	m.buf.WriteString(text)
	m.buf.WriteByte('\n')
}

// SetError marks or unmarks the message as an error message.
func (m *Message) SetError(isError bool) {
	m.isError = isError
}

// IsError reports whether the message is flagged as an error.
func (m *Message) IsError() bool {
	return m.isError
}

// ColorEnabled reports whether colorized rendering is available.
func (m *Message) ColorEnabled() bool {
	return m.color
}

// Get returns the accumulated buffer verbatim, regardless of the error and
// color flags.
func (m *Message) Get() string {
	return m.buf.String()
}

// Render returns the buffer as it should appear on a terminal: colorized when
// the message is an error and color is enabled, the raw buffer otherwise.
func (m *Message) Render() string {
	if m.isError && m.color {
		return errorStyle.Render(m.Get())
	}
	return m.Get()
}

// Print writes the rendered message to w, followed by a newline.
func (m *Message) Print(w io.Writer) {
	fmt.Fprintln(w, m.Render())
}
