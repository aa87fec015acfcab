// Package builtins holds the commands implemented in-process. Each file
// registers its handlers with the shell's builtin registry from init();
// importing this package for side effects wires the full table.
package builtins

import (
	"fmt"
	"io"

	getopt "github.com/pborman/getopt/v2"

	"github.com/camresh/jshell/core/shell"
)

// SimpleCommand reduces the boilerplate of a builtin that parses flags.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (c *SimpleCommand) Flags() *getopt.Set {
	if c.flags == nil {
		c.flags = getopt.New()
	}
	return c.flags
}

// PrintHelp writes help for the command to the given writer.
func (c *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, c.Use)
	fmt.Fprintln(w, c.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	c.Flags().PrintOptions(w)
}

// Run parses flags and, on success, calls the callback. Flag errors print
// usage and fail the builtin.
func (c *SimpleCommand) Run(s *shell.Shell, args []string, callback func() int) int {
	opts := c.Flags()
	showHelp := opts.BoolLong("help", 'h', "show this help and exit")

	if err := opts.Getopt(args, nil); err != nil {
		fmt.Fprintf(s.Stderr, "error: %s\n\n", err)
		c.PrintHelp(s.Stderr)
		return shell.ExitFailure
	}

	if *showHelp {
		c.PrintHelp(s.Stdout)
		return shell.ExitSuccess
	}

	return callback()
}
