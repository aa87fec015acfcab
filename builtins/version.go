package builtins

import (
	"fmt"
	"runtime"

	"github.com/camresh/jshell/core/shell"
)

// Version prints the interpreter release and build platform.
func Version(s *shell.Shell, args []string) int {
	fmt.Fprintf(s.Stdout, "jshell %s (%s/%s)\n", shell.Version, runtime.GOOS, runtime.GOARCH)
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "version",
		Short: "Show interpreter version",
		Use:   "version",
		Cmd:   shell.BuiltinFunc(Version),
	}, "version")
}
