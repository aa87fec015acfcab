package builtins

import (
	"fmt"
	"sort"
	"strings"

	"github.com/camresh/jshell/core/shell"
)

// Alias shows or defines aliases. With no arguments it lists every alias;
// with name=command it defines one, stripping a matched pair of surrounding
// quotes from the replacement text. Last definition wins.
func Alias(s *shell.Shell, args []string) int {
	if len(args) == 1 {
		if len(s.Aliases) == 0 {
			fmt.Fprintln(s.Stdout, "No aliases defined.")
			return shell.ExitSuccess
		}
		names := make([]string, 0, len(s.Aliases))
		for name := range s.Aliases {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(s.Stdout, "%s='%s'\n", name, s.Aliases[name])
		}
		return shell.ExitSuccess
	}

	spec := strings.Join(args[1:], " ")

	eq := strings.Index(spec, "=")
	if eq < 0 {
		if command, ok := s.Aliases[spec]; ok {
			fmt.Fprintf(s.Stdout, "%s='%s'\n", spec, command)
			return shell.ExitSuccess
		}
		s.Errorf("alias '%s' not found", spec)
		return shell.ExitFailure
	}

	name := spec[:eq]
	command := spec[eq+1:]
	if len(command) >= 2 {
		first, last := command[0], command[len(command)-1]
		if (first == '\'' && last == '\'') || (first == '"' && last == '"') {
			command = command[1 : len(command)-1]
		}
	}

	s.Aliases[name] = command
	return shell.ExitSuccess
}

// Unalias removes an alias.
func Unalias(s *shell.Shell, args []string) int {
	if len(args) < 2 {
		s.Errorf("usage: unalias <name>")
		return shell.ExitFailure
	}

	if _, ok := s.Aliases[args[1]]; !ok {
		s.Errorf("alias '%s' not found", args[1])
		return shell.ExitFailure
	}
	delete(s.Aliases, args[1])
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "alias",
		Short: "Create command alias",
		Use:   "alias [name='command']",
		Cmd:   shell.BuiltinFunc(Alias),
	}, "alias")
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "unalias",
		Short: "Remove alias",
		Use:   "unalias <name>",
		Cmd:   shell.BuiltinFunc(Unalias),
	}, "unalias")
}
