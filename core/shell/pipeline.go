package shell

import (
	"io"
	"os"
	"sync"
)

// runPipeline executes N >= 2 stages connected by N-1 pipes. Every stage is
// launched concurrently: a pipe's buffer is bounded, so stage i writing can
// deadlock against stage i+1 not yet reading if stages ran one at a time.
// The reported exit code is that of the last stage.
//
// Builtins inside a pipeline stay bound to the shell's own streams rather
// than the pipe endpoints; the builtin abstraction takes session state, not
// stream targets. Documented limitation, kept deliberately.
func (s *Shell) runPipeline(commands []Command) int {
	n := len(commands)

	type pipeEnds struct {
		r, w *os.File
	}
	pipes := make([]pipeEnds, n-1)
	for i := range pipes {
		r, w, err := os.Pipe()
		if err != nil {
			for _, p := range pipes[:i] {
				p.r.Close()
				p.w.Close()
			}
			s.Errorf("pipe creation failed: %v", err)
			return ExitFailure
		}
		pipes[i] = pipeEnds{r: r, w: w}
	}

	// Each stage owns exactly its own endpoints and writes only its own
	// slot of codes, so the merge after Wait needs no further locking.
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := range commands {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			var stdin, stdout *os.File
			if i > 0 {
				stdin = pipes[i-1].r
			}
			if i < n-1 {
				stdout = pipes[i].w
			}
			codes[i] = s.runStage(commands[i], stdin, stdout)
		}(i)
	}
	wg.Wait()

	return codes[n-1]
}

// runStage executes one pipeline stage and closes the stage's pipe
// endpoints on every path, so downstream readers observe end-of-stream once
// this stage's writer is finished.
func (s *Shell) runStage(cmd Command, stdin, stdout *os.File) int {
	defer func() {
		if stdin != nil {
			stdin.Close()
		}
		if stdout != nil {
			stdout.Close()
		}
	}()

	if len(cmd.Args) == 0 {
		return ExitFailure
	}

	if builtin := LookupBuiltin(cmd.Args[0]); builtin != nil {
		s.builtinMu.Lock()
		defer s.builtinMu.Unlock()
		return builtin.Main(s, cmd.Args)
	}

	// A nil *os.File must not become a non-nil io.Reader.
	var in io.Reader
	var out io.Writer
	if stdin != nil {
		in = stdin
	}
	if stdout != nil {
		out = stdout
	}
	// Stages never register jobs: backgrounding applies to whole
	// single-stage commands, matching the historical behavior.
	return s.launch(cmd, in, out, nil)
}
