package shell

import (
	"errors"
	"os/exec"
)

// ProcessHandle is the narrow capability interface over a started process.
// The pipeline coordinator and the job table depend only on this, keeping
// the platform process primitives in one place.
type ProcessHandle interface {
	// Pid returns the operating system process id.
	Pid() int
	// Wait blocks until the process exits and returns its exit code.
	// Safe to call after the process already exited.
	Wait() int
	// TryWait reports whether the process has exited without blocking,
	// returning the exit code when it has.
	TryWait() (int, bool)
	// Kill terminates the process outright.
	Kill() error
}

type osHandle struct {
	cmd  *exec.Cmd
	done chan struct{}
	code int
}

// newOSHandle wraps a started exec.Cmd. A single goroutine owns the
// underlying Wait call; readers observe the exit code through the done
// channel so Wait and TryWait can be called any number of times.
func newOSHandle(cmd *exec.Cmd) *osHandle {
	h := &osHandle{cmd: cmd, done: make(chan struct{})}
	go func() {
		h.code = exitCode(cmd.Wait())
		close(h.done)
	}()
	return h
}

func (h *osHandle) Pid() int {
	return h.cmd.Process.Pid
}

func (h *osHandle) Wait() int {
	<-h.done
	return h.code
}

func (h *osHandle) TryWait() (int, bool) {
	select {
	case <-h.done:
		return h.code, true
	default:
		return 0, false
	}
}

func (h *osHandle) Kill() error {
	return h.cmd.Process.Kill()
}

// exitCode maps an error returned by exec.Cmd.Wait to a shell exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return ExitFailure
}
