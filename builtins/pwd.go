package builtins

import (
	"fmt"
	"os"

	"github.com/camresh/jshell/core/shell"
)

// Pwd prints the working directory.
func Pwd(s *shell.Shell, args []string) int {
	wd, err := os.Getwd()
	if err != nil {
		s.Errorf("pwd: %v", err)
		return shell.ExitFailure
	}
	fmt.Fprintln(s.Stdout, wd)
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "pwd",
		Short: "Print working directory",
		Use:   "pwd",
		Cmd:   shell.BuiltinFunc(Pwd),
	}, "pwd")
}
