package builtins

import (
	"os"
	"strconv"

	"github.com/camresh/jshell/core/shell"
)

// Kill terminates a process outright by id. This is the only process
// control beyond what the job table needs: there is no signal-based stop
// or resume in this core.
func Kill(s *shell.Shell, args []string) int {
	if len(args) < 2 {
		s.Errorf("usage: kill <pid>")
		return shell.ExitFailure
	}

	pid, err := strconv.Atoi(args[1])
	if err != nil || pid <= 0 {
		s.Errorf("kill: invalid process ID")
		return shell.ExitFailure
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		s.Errorf("kill: cannot open process %d: %v", pid, err)
		return shell.ExitFailure
	}
	if err := proc.Kill(); err != nil {
		s.Errorf("kill: cannot terminate process %d: %v", pid, err)
		return shell.ExitFailure
	}

	s.Theme.Success.Fprintf(s.Stdout, "Process %d terminated\n", pid)
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "kill",
		Short: "Kill process",
		Use:   "kill <pid>",
		Cmd:   shell.BuiltinFunc(Kill),
	}, "kill")
}
