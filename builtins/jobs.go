package builtins

import (
	"fmt"
	"strconv"

	"github.com/camresh/jshell/core/shell"
)

// Jobs reaps finished background processes, printing a completion notice
// for each, then lists the jobs still alive.
func Jobs(s *shell.Shell, args []string) int {
	s.Jobs.Reap(func(job *shell.Job, code int) {
		s.Theme.Success.Fprintf(s.Stdout, "[%d]+ Done                    %s\n", job.ID, job.CommandLine)
		s.Log.Debug().Int("job", job.ID).Int("code", code).Msg("reaped background job")
	})

	live := s.Jobs.Jobs()
	if len(live) == 0 {
		fmt.Fprintln(s.Stdout, "No active jobs.")
		return shell.ExitSuccess
	}

	for _, job := range live {
		status := "Running"
		if job.Stopped {
			status = "Stopped"
		}
		fmt.Fprintf(s.Stdout, "[%d]  %s %8d     %s\n", job.ID, status, job.Pid, job.CommandLine)
	}
	return shell.ExitSuccess
}

// Fg removes a job from the table and waits for it to finish, returning
// its exit code. With no argument the most recent job is used. This is
// terminal: the job never returns to the table.
func Fg(s *shell.Shell, args []string) int {
	id, ok := jobID(s, "fg", args)
	if !ok {
		return shell.ExitFailure
	}

	job, err := s.Jobs.Foreground(id)
	if err != nil {
		s.Errorf("fg: %v", err)
		return shell.ExitFailure
	}

	fmt.Fprintln(s.Stdout, job.CommandLine)
	return job.Handle.Wait()
}

// Bg resumes a stopped job in the background. Nothing in this core stops a
// foreground process, so this normally reports an error; see the job table
// for the contract.
func Bg(s *shell.Shell, args []string) int {
	id, ok := jobID(s, "bg", args)
	if !ok {
		return shell.ExitFailure
	}

	job, err := s.Jobs.Background(id)
	if err != nil {
		s.Errorf("bg: %v", err)
		return shell.ExitFailure
	}

	fmt.Fprintf(s.Stdout, "[%d]+ %s &\n", job.ID, job.CommandLine)
	return shell.ExitSuccess
}

// jobID parses the optional job id argument; 0 selects the most recent.
func jobID(s *shell.Shell, name string, args []string) (int, bool) {
	if len(args) < 2 {
		return 0, true
	}
	id, err := strconv.Atoi(args[1])
	if err != nil || id <= 0 {
		s.Errorf("%s: invalid job id '%s'", name, args[1])
		return 0, false
	}
	return id, true
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "jobs",
		Short: "List active jobs",
		Use:   "jobs",
		Cmd:   shell.BuiltinFunc(Jobs),
	}, "jobs")
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "fg",
		Short: "Bring job to foreground",
		Use:   "fg [job_id]",
		Cmd:   shell.BuiltinFunc(Fg),
	}, "fg")
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "bg",
		Short: "Send job to background",
		Use:   "bg [job_id]",
		Cmd:   shell.BuiltinFunc(Bg),
	}, "bg")
}
