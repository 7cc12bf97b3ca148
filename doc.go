// Package subcmd provides a lightweight front-end for building
// multi-subcommand command-line programs, in the style of a version-control or
// package-manager CLI. A program registers its subcommands on a [Handler],
// which parses the argument vector once, locates the requested subcommand and
// returns a [Result] describing what should happen next: show help, run a
// command, or reject the invocation.
//
// The handler never parses subcommand-specific flags. Once a subcommand is
// identified, the entire original argument vector is handed to it unparsed,
// leaving each subcommand free to define its own flag grammar.
package subcmd
