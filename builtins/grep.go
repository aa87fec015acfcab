package builtins

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"

	"github.com/camresh/jshell/core/shell"
)

// Grep searches a file for lines matching a case-insensitive pattern and
// prints them as file:line: text. A pattern that fails to compile as a
// regular expression falls back to plain substring search. Exit code 0
// when at least one line matched, 1 otherwise.
func Grep(s *shell.Shell, args []string) int {
	if len(args) < 3 {
		s.Errorf("usage: grep <pattern> <file>")
		return shell.ExitFailure
	}

	pattern := args[1]
	path := shell.ExpandPath(args[2])

	file, err := s.FS.Open(path)
	if err != nil {
		s.Errorf("grep: cannot open file '%s'", path)
		return shell.ExitFailure
	}
	defer file.Close()

	match := func(line string) bool {
		return strings.Contains(strings.ToLower(line), strings.ToLower(pattern))
	}
	if re, err := regexp.Compile("(?i)" + pattern); err == nil {
		match = re.MatchString
	}

	found := false
	lineNumber := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if match(line) {
			fmt.Fprintf(s.Stdout, "%s:%d: %s\n", path, lineNumber, line)
			found = true
		}
	}
	if err := scanner.Err(); err != nil {
		s.Errorf("grep: %v", err)
		return shell.ExitFailure
	}

	if found {
		return shell.ExitSuccess
	}
	return shell.ExitFailure
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "grep",
		Short: "Search text patterns",
		Use:   "grep <pattern> <file>",
		Cmd:   shell.BuiltinFunc(Grep),
	}, "grep")
}
