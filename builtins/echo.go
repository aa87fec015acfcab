package builtins

import (
	"fmt"
	"strings"

	"github.com/camresh/jshell/core/shell"
)

// Echo prints its arguments separated by single spaces. -n suppresses the
// trailing newline.
func Echo(s *shell.Shell, args []string) int {
	words := args[1:]
	newline := true
	if len(words) > 0 && words[0] == "-n" {
		newline = false
		words = words[1:]
	}

	fmt.Fprint(s.Stdout, strings.Join(words, " "))
	if newline {
		fmt.Fprintln(s.Stdout)
	}
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "echo",
		Short: "Display text",
		Use:   "echo [-n] [text...]",
		Cmd:   shell.BuiltinFunc(Echo),
	}, "echo")
}
