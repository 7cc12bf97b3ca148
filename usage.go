package subcmd

import (
	"fmt"
	"strings"

	"github.com/sdolt/subcmd/pkg/textutil"
)

const helpWidth = 80

// shortUsage is the two-line usage block shared by help and usage-error
// output.
func (h *Handler) shortUsage() string {
	var b strings.Builder
	b.WriteString("Usage:\n")
	fmt.Fprintf(&b, "\t%s <command> [<args>...]\n", h.programName)
	fmt.Fprintf(&b, "\t%s [options]", h.programName)
	return b.String()
}

// helpMessage composes the full top-level help output: the program
// description when set, the usage block, the option listing, the registered
// commands in registration order, and a pointer to per-command help.
func (h *Handler) helpMessage() *Message {
	msg := NewMessage()

	if h.description != "" {
		msg.AddLine(h.description)
		msg.AddLine("")
	}
	msg.AddLine(h.shortUsage())
	msg.AddLine("")
	msg.AddLine("Options:")
	msg.AddLine("    -h, --help          print this help menu")
	msg.AddLine("")
	msg.AddLine("Commands are:")

	rows := make([][2]string, 0, len(h.commands))
	for _, cmd := range h.commands {
		rows = append(rows, [2]string{cmd.Name(), cmd.Description()})
	}
	for _, line := range textutil.TwoColumn(rows, "    ", helpWidth) {
		msg.AddLine(line)
	}

	msg.AddLine("")
	msg.AddLine(fmt.Sprintf("See '%s help <command>' for more information on a specific command.", h.programName))
	return msg
}

// badUsage composes the rejection message for a malformed invocation.
func (h *Handler) badUsage() *Message {
	msg := NewMessage()
	msg.SetError(true)
	msg.AddLine("Invalid arguments.")
	msg.AddLine(h.shortUsage())
	return msg
}
