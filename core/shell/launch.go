package shell

import (
	"io"
	"os"
	"os/exec"
)

// launch resolves one external command, wires its standard streams, starts
// it, and either waits for the exit code or registers a background job.
//
// stdin and stdout, when non-nil, are pipe endpoints supplied by the
// pipeline coordinator; explicit file redirection on the command wins over
// them, and the shell's own streams are the final fallback. A non-nil jobs
// table makes the background flag register a Job instead of waiting; the
// returned code is then ExitSuccess, a "launched, not waited" placeholder.
//
// Every file handle opened here is released on every exit path.
func (s *Shell) launch(cmd Command, stdin io.Reader, stdout io.Writer, jobs *JobTable) int {
	if len(cmd.Args) == 0 {
		return ExitFailure
	}

	execPath, err := LookPath(cmd.Args[0])
	if err != nil {
		s.Errorf("command not found: '%s'", cmd.Args[0])
		return ExitNotFound
	}

	var opened []*os.File
	closeOpened := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	// Redirection targets are opened on the real filesystem; the child
	// process inherits the descriptors directly.
	if cmd.InputFile != "" {
		f, err := os.Open(cmd.InputFile)
		if err != nil {
			s.Errorf("cannot open input file '%s': %v", cmd.InputFile, err)
			return ExitFailure
		}
		opened = append(opened, f)
		stdin = f
	}
	if cmd.OutputFile != "" {
		f, err := openRedirect(cmd.OutputFile, cmd.AppendOutput)
		if err != nil {
			s.Errorf("cannot open output file '%s': %v", cmd.OutputFile, err)
			closeOpened()
			return ExitFailure
		}
		opened = append(opened, f)
		stdout = f
	}

	var stderr io.Writer
	if cmd.ErrorFile != "" {
		f, err := openRedirect(cmd.ErrorFile, cmd.AppendError)
		if err != nil {
			s.Errorf("cannot open error file '%s': %v", cmd.ErrorFile, err)
			closeOpened()
			return ExitFailure
		}
		opened = append(opened, f)
		stderr = f
	}

	proc := exec.Command(execPath, cmd.Args[1:]...)
	proc.Stdin = s.Stdin
	proc.Stdout = s.Stdout
	proc.Stderr = s.Stderr
	if stdin != nil {
		proc.Stdin = stdin
	}
	if stdout != nil {
		proc.Stdout = stdout
	}
	if stderr != nil {
		proc.Stderr = stderr
	}

	if err := proc.Start(); err != nil {
		s.Errorf("failed to execute '%s': %v", cmd.Args[0], err)
		closeOpened()
		return ExitFailure
	}

	handle := newOSHandle(proc)

	if cmd.Background && jobs != nil {
		// The parent's copies of the redirection handles can be released
		// immediately; the child holds its own.
		closeOpened()
		job := jobs.Register(handle, commandLine(cmd))
		s.Log.Debug().Int("job", job.ID).Int("pid", job.Pid).Str("command", job.CommandLine).Msg("registered background job")
		s.Theme.Success.Fprintf(s.Stdout, "[%d] %d %s\n", job.ID, job.Pid, job.CommandLine)
		return ExitSuccess
	}

	code := handle.Wait()
	closeOpened()
	s.Log.Debug().Str("command", commandLine(cmd)).Int("code", code).Msg("command finished")
	return code
}

func openRedirect(path string, appendTo bool) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if appendTo {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(path, flags, 0644)
}
