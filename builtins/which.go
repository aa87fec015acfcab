package builtins

import (
	"fmt"

	"github.com/camresh/jshell/core/shell"
)

// Which reports how a command name would resolve: alias first, then
// builtin, then the executable search path.
func Which(s *shell.Shell, args []string) int {
	if len(args) < 2 {
		s.Errorf("usage: which <command>")
		return shell.ExitFailure
	}

	name := args[1]

	if command, ok := s.Aliases[name]; ok {
		fmt.Fprintf(s.Stdout, "%s: aliased to '%s'\n", name, command)
		return shell.ExitSuccess
	}

	if shell.LookupBuiltin(name) != nil {
		fmt.Fprintf(s.Stdout, "%s: shell builtin\n", name)
		return shell.ExitSuccess
	}

	if path, err := shell.LookPath(name); err == nil {
		fmt.Fprintln(s.Stdout, path)
		return shell.ExitSuccess
	}

	s.Errorf("which: '%s' not found", name)
	return shell.ExitFailure
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "which",
		Short: "Locate command",
		Use:   "which <command>",
		Cmd:   shell.BuiltinFunc(Which),
	}, "which")
}
