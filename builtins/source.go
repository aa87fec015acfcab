package builtins

import (
	"github.com/camresh/jshell/core/shell"
)

// Source runs a script file line by line in the current shell so its
// variable, alias, and directory changes stick.
func Source(s *shell.Shell, args []string) int {
	if len(args) < 2 {
		s.Errorf("usage: source <script>")
		return shell.ExitFailure
	}
	return s.RunScript(args[1])
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "source",
		Short: "Run commands from a script file",
		Use:   "source <script>",
		Cmd:   shell.BuiltinFunc(Source),
	}, "source")
}
