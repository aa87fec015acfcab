package builtins

import (
	"strconv"

	"github.com/camresh/jshell/core/shell"
)

// Exit clears the running flag so the read-eval loop (or a script in
// flight) stops after this line.
func Exit(s *shell.Shell, args []string) int {
	code := shell.ExitSuccess
	if len(args) > 1 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			parsed = shell.ExitFailure
		}
		code = parsed
	}

	s.Running = false
	s.LastExit = code
	return code
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "exit",
		Short: "Exit the shell",
		Use:   "exit [code]",
		Cmd:   shell.BuiltinFunc(Exit),
	}, "exit")
}
