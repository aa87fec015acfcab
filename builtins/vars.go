package builtins

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/camresh/jshell/core/shell"
)

// Env prints environment and session variables, or one variable by name.
// Session variables shadow the process environment, the same precedence
// expansion uses.
func Env(s *shell.Shell, args []string) int {
	if len(args) > 1 {
		name := args[1]
		if value, ok := s.Vars[name]; ok {
			fmt.Fprintf(s.Stdout, "%s=%s\n", name, value)
			return shell.ExitSuccess
		}
		if value, ok := os.LookupEnv(name); ok {
			fmt.Fprintf(s.Stdout, "%s=%s\n", name, value)
			return shell.ExitSuccess
		}
		s.Errorf("variable '%s' not found", name)
		return shell.ExitFailure
	}

	for _, kv := range os.Environ() {
		fmt.Fprintln(s.Stdout, kv)
	}

	if len(s.Vars) > 0 {
		s.Theme.Help.Fprintln(s.Stdout, "\nShell variables:")
		names := make([]string, 0, len(s.Vars))
		for name := range s.Vars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(s.Stdout, "%s=%s\n", name, s.Vars[name])
		}
	}
	return shell.ExitSuccess
}

// Set assigns a session variable and exports it to the process environment
// so child processes see it too. Extra arguments join into the value.
func Set(s *shell.Shell, args []string) int {
	if len(args) < 3 {
		s.Errorf("usage: set <NAME> <VALUE>")
		return shell.ExitFailure
	}

	name := args[1]
	value := strings.Join(args[2:], " ")

	s.Vars[name] = value
	if err := os.Setenv(name, value); err != nil {
		s.Warnf("failed to set environment variable: %v", err)
	}
	return shell.ExitSuccess
}

// Unset removes a variable from both the session table and the process
// environment.
func Unset(s *shell.Shell, args []string) int {
	if len(args) < 2 {
		s.Errorf("usage: unset <NAME>")
		return shell.ExitFailure
	}

	name := args[1]
	delete(s.Vars, name)
	if err := os.Unsetenv(name); err != nil {
		s.Warnf("failed to unset environment variable: %v", err)
	}
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "env",
		Short: "List environment variables",
		Use:   "env [variable]",
		Cmd:   shell.BuiltinFunc(Env),
	}, "env")
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "set",
		Short: "Set variable",
		Use:   "set <name> <value>",
		Cmd:   shell.BuiltinFunc(Set),
	}, "set")
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "unset",
		Short: "Unset variable",
		Use:   "unset <name>",
		Cmd:   shell.BuiltinFunc(Unset),
	}, "unset")
}
