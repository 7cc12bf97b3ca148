package subcmd

import (
	"context"
	"io"
	"os"
)

// RunOptions specifies the output streams for [Handler.Run]. If any stream is
// nil, the corresponding os default is used.
type RunOptions struct {
	Stdout, Stderr io.Writer
}

// Run resolves the invocation and interprets the result: help output goes to
// stdout, rejection messages go to stderr, and a dispatched command is
// invoked with the original argument vector.
//
// For [BadUsage] and [UnknownCommand] it returns an [*Error] so the embedding
// program can choose its exit code; for [Dispatch] it returns whatever the
// command returns. This layer makes no decisions of its own.
//
// The options parameter may be nil, in which case default streams are used.
func (h *Handler) Run(ctx context.Context, options *RunOptions) error {
	options = checkAndSetRunOptions(options)

	switch res := h.Resolve().(type) {
	case Help:
		res.Message.Print(options.Stdout)
		return nil
	case HelpForCommand:
		res.Wrapper.PrintHelp(options.Stdout)
		return nil
	case BadUsage:
		res.Message.Print(options.Stderr)
		return NewError(ErrBadUsage, res.Message)
	case UnknownCommand:
		res.Message.Print(options.Stderr)
		return NewError(ErrUnknownCommand, res.Message)
	case Dispatch:
		return res.Wrapper.Run(ctx)
	}
	return nil
}

func checkAndSetRunOptions(opt *RunOptions) *RunOptions {
	if opt == nil {
		opt = &RunOptions{}
	}
	if opt.Stdout == nil {
		opt.Stdout = os.Stdout
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	return opt
}
