package shell

import (
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/spf13/afero"
)

// HistoryName is the file history is persisted to inside the shell
// directory when save_history is enabled.
const HistoryName = "history"

// Run is the interactive read-eval loop. Line editing, history recall and
// completion are handled by readline; the core only ever sees finished
// lines. Returns when input closes or the running flag is cleared.
func (s *Shell) Run() error {
	cfg := &readline.Config{
		Prompt:          s.Prompt(),
		InterruptPrompt: "^C",
	}
	if s.Config.SaveHistory && s.ShellDir != "" {
		cfg.HistoryFile = filepath.Join(s.ShellDir, HistoryName)
		cfg.HistoryLimit = s.Config.MaxHistory
	}
	if s.Config.AutoComplete {
		cfg.AutoComplete = &completer{shell: s}
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return err
	}
	defer rl.Close()

	for s.Running {
		rl.SetPrompt(s.Prompt())
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return nil

		case err == readline.ErrInterrupt:
			continue

		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		s.RememberLine(line)
		s.Execute(line)
	}

	return nil
}

// completer supplies tab-completion candidates: builtin and alias names for
// the command word, filesystem entries afterwards.
type completer struct {
	shell *Shell
}

func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])

	start := strings.LastIndexAny(prefix, " \t") + 1
	word := prefix[start:]

	var candidates []string
	if start == 0 {
		for name := range AllBuiltins {
			candidates = append(candidates, name)
		}
		for name := range c.shell.Aliases {
			candidates = append(candidates, name)
		}
	}
	candidates = append(candidates, c.fileCandidates(word)...)

	sort.Strings(candidates)

	var out [][]rune
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		if seen[candidate] || !strings.HasPrefix(candidate, word) {
			continue
		}
		seen[candidate] = true
		out = append(out, []rune(candidate[len(word):]))
	}
	return out, len([]rune(word))
}

func (c *completer) fileCandidates(word string) []string {
	dir, base := filepath.Split(ExpandPath(word))
	lookIn := dir
	if lookIn == "" {
		lookIn = "."
	}

	entries, err := afero.ReadDir(c.shell.FS, lookIn)
	if err != nil {
		return nil
	}

	var out []string
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), base) {
			continue
		}
		candidate := dir + entry.Name()
		if entry.IsDir() {
			candidate += string(filepath.Separator)
		}
		out = append(out, candidate)
	}
	return out
}
