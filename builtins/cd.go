package builtins

import (
	"os"

	"github.com/camresh/jshell/core/shell"
)

// Cd changes the working directory. With no argument or ~ it moves to the
// user's home directory.
func Cd(s *shell.Shell, args []string) int {
	var target string

	switch {
	case len(args) < 2 || args[1] == "~":
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			s.Errorf("HOME directory not found")
			return shell.ExitFailure
		}
		target = home
	case args[1] == "-":
		// TODO: track the previous directory so cd - swaps back to it.
		home, _ := os.UserHomeDir()
		target = home
	default:
		target = shell.ExpandPath(args[1])
	}

	if err := os.Chdir(target); err != nil {
		s.Errorf("cd: %v", err)
		return shell.ExitFailure
	}
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "cd",
		Short: "Change directory",
		Use:   "cd [directory|~|..|/]",
		Cmd:   shell.BuiltinFunc(Cd),
	}, "cd")
}
