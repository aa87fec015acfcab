package shell

import (
	"bufio"
	"strings"
)

// RunScript executes a script file line by line. Blank lines and # comments
// are skipped, a failing line is reported and the rest of the script still
// runs, and the exit builtin stops a script early through the running flag.
// Returns the exit code of the last executed line.
func (s *Shell) RunScript(path string) int {
	file, err := s.FS.Open(ExpandPath(path))
	if err != nil {
		s.Errorf("failed to open script '%s'", path)
		return ExitFailure
	}
	defer file.Close()

	code := ExitSuccess
	lineNumber := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		code = s.Execute(line)
		if code != ExitSuccess {
			s.Log.Debug().Int("line", lineNumber).Int("code", code).Str("script", path).Msg("script line failed")
		}

		if !s.Running {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		s.Errorf("error reading script '%s' at line %d: %v", path, lineNumber, err)
		return ExitFailure
	}

	return code
}
