package subcmd

// Result is the outcome of a single [Handler.Resolve] call. It is a closed
// set: exactly one of [Help], [HelpForCommand], [BadUsage], [UnknownCommand]
// or [Dispatch]. Callers consume it with a type switch:
//
//	switch res := handler.Resolve().(type) {
//	case subcmd.Help:
//	    res.Message.Print(os.Stdout)
//	case subcmd.HelpForCommand:
//	    res.Wrapper.PrintHelp(os.Stdout)
//	case subcmd.BadUsage:
//	    res.Message.Print(os.Stderr)
//	case subcmd.UnknownCommand:
//	    res.Message.Print(os.Stderr)
//	case subcmd.Dispatch:
//	    err = res.Wrapper.Run(ctx)
//	}
type Result interface {
	result()
}

// Help is returned when top-level help was requested with -h or --help.
type Help struct {
	Message *Message
}

// HelpForCommand is returned when help for one registered command was
// requested with "help <command>".
type HelpForCommand struct {
	Wrapper *Wrapper
}

// BadUsage is returned when the invocation itself violates the grammar: an
// unknown flag, help combined with other tokens, no command token, or a
// "help <command>" request naming an unregistered command.
type BadUsage struct {
	Message *Message
}

// UnknownCommand is returned when a well-formed invocation names a command
// that is not registered. The message may carry a nearest-name suggestion.
type UnknownCommand struct {
	Message *Message
}

// Dispatch is returned when a registered command was requested. The wrapper
// holds the command and the argument vector it should receive.
type Dispatch struct {
	Wrapper *Wrapper
}

func (Help) result()           {}
func (HelpForCommand) result() {}
func (BadUsage) result()       {}
func (UnknownCommand) result() {}
func (Dispatch) result()       {}
