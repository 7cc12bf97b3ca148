package subcmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/sdolt/subcmd/pkg/suggest"
)

// Handler owns the subcommand registry and the raw argument vector, and
// resolves one invocation into a [Result]. The zero value is not usable;
// create one with [New].
type Handler struct {
	description string
	commands    []Command
	programName string
	args        []string
}

// New returns a handler over the process argument vector.
func New() *Handler {
	args := slices.Clone(os.Args)
	return &Handler{
		programName: args[0],
		args:        args,
	}
}

// SetDescription sets the one-line program description shown at the top of
// the help output.
func (h *Handler) SetDescription(description string) {
	h.description = description
}

// Description returns the program description, or the empty string when none
// has been set.
func (h *Handler) Description() string {
	return h.description
}

// OverrideArgs replaces the argument vector. Index 0 is the program name.
// Intended for embedding programs that rewrite argv, and for tests.
func (h *Handler) OverrideArgs(args []string) {
	if len(args) == 0 {
		return
	}
	h.args = slices.Clone(args)
	h.programName = args[0]
}

// Register adds a command to the registry. Commands are listed in help output
// in registration order. Duplicate names are permitted; the first registered
// command wins exact lookup, but every entry appears in the listing.
func (h *Handler) Register(cmd Command) error {
	if err := validateName(cmd.Name()); err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	h.commands = append(h.commands, cmd)
	return nil
}

// Resolve parses the argument vector and resolves it against the registry.
// It is a one-shot operation: a matched command is removed from the registry
// and moved into the result, so a second call is undefined.
//
// Rejections are values, never errors; every branch of the grammar maps to
// exactly one [Result] variant.
func (h *Handler) Resolve() Result {
	fs := flag.NewFlagSet(h.programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	var help bool
	fs.BoolVar(&help, "h", false, "print this help menu")
	fs.BoolVar(&help, "help", false, "print this help menu")

	// The stdlib parser stops at the first non-flag token, so tokens meant
	// for a subcommand (e.g. "prog build --release") are never interpreted
	// here. An unknown top-level flag rejects the whole invocation.
	if err := fs.Parse(h.args[1:]); err != nil {
		return BadUsage{Message: h.badUsage()}
	}
	free := fs.Args()

	if help {
		// Help must be requested alone.
		if len(free) != 0 {
			return BadUsage{Message: h.badUsage()}
		}
		return Help{Message: h.helpMessage()}
	}

	if len(free) == 0 {
		return BadUsage{Message: h.badUsage()}
	}
	name := free[0]

	if w := h.take(name); w != nil {
		return Dispatch{Wrapper: w}
	}

	// Built-in "help <command>". A missing target is a usage error, not an
	// unknown command.
	if name == "help" && len(free) == 2 {
		if w := h.take(free[1]); w != nil {
			return HelpForCommand{Wrapper: w}
		}
		return BadUsage{Message: h.badUsage()}
	}

	msg := NewMessage()
	msg.SetError(true)
	if near, ok := suggest.Nearest(name, h.names()); ok {
		msg.AddLine("No such subcommand\n")
		msg.AddLine(fmt.Sprintf("    Did you mean `%s`?", near))
	} else {
		msg.AddLine("No such subcommand")
	}
	return UnknownCommand{Message: msg}
}

// take removes the first registered command with the given name from the
// registry and wraps it with the full original argument vector. Returns nil
// when no command matches.
func (h *Handler) take(name string) *Wrapper {
	for i, cmd := range h.commands {
		if cmd.Name() == name {
			h.commands = slices.Delete(h.commands, i, i+1)
			return newWrapper(cmd, h.args)
		}
	}
	return nil
}

func (h *Handler) names() []string {
	names := make([]string, 0, len(h.commands))
	for _, cmd := range h.commands {
		names = append(names, cmd.Name())
	}
	return names
}
