package subcmd

import (
	"context"
	"fmt"
	"io"
	"slices"
)

// Wrapper pairs a command extracted from a handler's registry with the full
// argument vector it should receive, deferring the actual invocation.
// Extraction is destructive: the registry permanently loses the entry.
type Wrapper struct {
	cmd  Command
	args []string
}

func newWrapper(cmd Command, args []string) *Wrapper {
	return &Wrapper{cmd: cmd, args: slices.Clone(args)}
}

// Name returns the wrapped command's name without invoking it.
func (w *Wrapper) Name() string {
	return w.cmd.Name()
}

// Description returns the wrapped command's one-line description.
func (w *Wrapper) Description() string {
	return w.cmd.Description()
}

// Help returns the wrapped command's full help text.
func (w *Wrapper) Help() string {
	return w.cmd.Help()
}

// PrintHelp writes the wrapped command's full help text to out.
func (w *Wrapper) PrintHelp(out io.Writer) {
	fmt.Fprintln(out, w.cmd.Help())
}

// Args returns a copy of the argument vector the command will receive.
func (w *Wrapper) Args() []string {
	return slices.Clone(w.args)
}

// Run invokes the wrapped command with the stored argument vector. The vector
// is the entire original argv, program name and command token included. The
// wrapper adds no behavior of its own; the returned error is the command's.
func (w *Wrapper) Run(ctx context.Context) error {
	return w.cmd.Run(ctx, w.args)
}

// Unwrap returns the embedded command.
func (w *Wrapper) Unwrap() Command {
	return w.cmd
}
