package builtins

import (
	"fmt"
	"strconv"

	"github.com/camresh/jshell/core/shell"
)

// History prints the remembered command lines, oldest first. An optional
// count limits the output to the most recent N entries.
func History(s *shell.Shell, args []string) int {
	entries := s.History
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 0 {
			s.Errorf("history: invalid count '%s'", args[1])
			return shell.ExitFailure
		}
		if n < len(entries) {
			entries = entries[len(entries)-n:]
		}
	}

	offset := len(s.History) - len(entries)
	for i, line := range entries {
		fmt.Fprintf(s.Stdout, "%5d: %s\n", offset+i+1, line)
	}
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "history",
		Short: "Show command history",
		Use:   "history [count]",
		Cmd:   shell.BuiltinFunc(History),
	}, "history")
}
