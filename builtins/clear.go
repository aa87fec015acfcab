package builtins

import (
	"fmt"

	"github.com/camresh/jshell/core/shell"
)

// Clear wipes the terminal with an ANSI sequence rather than shelling out
// to a platform clear tool, so it behaves the same on every terminal that
// understands escapes.
func Clear(s *shell.Shell, args []string) int {
	fmt.Fprint(s.Stdout, "\x1b[2J\x1b[H")
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "clear",
		Short: "Clear the screen",
		Use:   "clear",
		Cmd:   shell.BuiltinFunc(Clear),
	}, "clear", "cls")
}
