package shell

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/camresh/jshell/core/config"
)

// Version is the interpreter release, overridden at link time by the
// release build.
var Version = "1.0.0"

// Exit code conventions shared by builtins and the launcher.
const (
	ExitSuccess  = 0
	ExitFailure  = 1
	ExitNotFound = 127
)

// Shell is the session state threaded through every component: alias and
// variable tables, the job table, streams, and the running flag. There are
// no hidden globals; builtins receive the Shell explicitly.
type Shell struct {
	Config  *config.Configuration
	Aliases map[string]string
	Vars    map[string]string
	Jobs    *JobTable
	History []string
	Theme   *Theme
	FS      afero.Fs
	Log     zerolog.Logger

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Running is cleared by the exit builtin to stop the read-eval loop
	// and any script in flight.
	Running  bool
	LastExit int

	// ShellDir is where per-user state (history, rc file) lives.
	ShellDir string

	// builtinMu serializes builtins invoked from concurrent pipeline
	// stages; they mutate shared session state.
	builtinMu sync.Mutex
}

// New builds a Shell with the interpreter's own standard streams and the
// real filesystem. Tests swap in buffers and an afero.MemMapFs.
func New(cfg *config.Configuration) *Shell {
	return &Shell{
		Config:  cfg,
		Aliases: make(map[string]string),
		Vars:    make(map[string]string),
		Jobs:    NewJobTable(),
		Theme:   NewTheme(cfg.EnableColors),
		FS:      afero.NewOsFs(),
		Log:     zerolog.Nop(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Running: true,
	}
}

// Execute is the single entry point per logical line: parse, expand the
// alias, then dispatch to a builtin, the launcher, or the pipeline
// coordinator. Returns the line's exit code; an empty line is a no-op.
func (s *Shell) Execute(line string) int {
	commands := ParsePipeline(line, s.Vars)
	if len(commands) == 0 || len(commands[0].Args) == 0 {
		return ExitSuccess
	}

	ExpandAlias(commands, s.Aliases)

	var code int
	if len(commands) == 1 {
		// The common case: no pipe allocation.
		if builtin := LookupBuiltin(commands[0].Args[0]); builtin != nil {
			code = builtin.Main(s, commands[0].Args)
		} else {
			code = s.launch(commands[0], nil, nil, s.Jobs)
		}
	} else {
		code = s.runPipeline(commands)
	}

	s.LastExit = code
	return code
}

// Errorf reports a recoverable error to the session's stderr in the error
// color. No condition in this core is fatal; the caller keeps going.
func (s *Shell) Errorf(format string, args ...interface{}) {
	s.Theme.Error.Fprintf(s.Stderr, "jshell: "+format+"\n", args...)
}

// Warnf reports a warning to the session's stderr.
func (s *Shell) Warnf(format string, args ...interface{}) {
	s.Theme.Warning.Fprintf(s.Stderr, "jshell: "+format+"\n", args...)
}

// RememberLine appends a line to the in-memory history, dropping the oldest
// entry past the configured cap and skipping immediate duplicates.
func (s *Shell) RememberLine(line string) {
	if line == "" {
		return
	}
	if n := len(s.History); n > 0 && s.History[n-1] == line {
		return
	}
	if s.Config.MaxHistory > 0 && len(s.History) >= s.Config.MaxHistory {
		s.History = s.History[1:]
	}
	s.History = append(s.History, line)
}

// Prompt renders the configured prompt format, substituting {cwd} with the
// working directory abbreviated with ~ for the home prefix.
func (s *Shell) Prompt() string {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "unknown"
	} else if home, err := os.UserHomeDir(); err == nil && home != "" && strings.HasPrefix(cwd, home) {
		cwd = "~" + strings.TrimPrefix(cwd, home)
	}
	prompt := strings.ReplaceAll(s.Config.PromptFormat, "{cwd}", cwd)
	return s.Theme.Prompt.Sprint(prompt)
}

// commandLine rejoins a command's words for job listings and logs.
func commandLine(cmd Command) string {
	return strings.Join(cmd.Args, " ")
}
