package subcmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Command is the capability contract every subcommand must satisfy. The name
// is the command's identity within a handler's registry.
type Command interface {
	// Name is a single word used to invoke the command. It must be non-empty
	// and contain no whitespace.
	Name() string

	// Description is a one-line summary shown in the command listing of the
	// top-level help output.
	Description() string

	// Help returns the command's full help text, shown by
	// "<program> help <name>".
	Help() string

	// Run executes the command. It receives the full original argument
	// vector, including the program name and the command's own name token,
	// never a trimmed slice.
	Run(ctx context.Context, argv []string) error
}

// validateName checks the registry identity rules for a command name.
func validateName(name string) error {
	if name == "" {
		return errors.New("command has no name")
	}
	if strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("command name %q contains whitespace", name)
	}
	return nil
}
