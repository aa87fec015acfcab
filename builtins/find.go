package builtins

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/camresh/jshell/core/shell"
)

// Find walks a directory tree printing files whose name matches a
// case-insensitive pattern, with the same regex-then-substring fallback as
// grep. Unreadable subtrees are skipped, not fatal.
func Find(s *shell.Shell, args []string) int {
	if len(args) < 3 {
		s.Errorf("usage: find <path> <pattern>")
		return shell.ExitFailure
	}

	root := shell.ExpandPath(args[1])
	pattern := args[2]

	match := func(name string) bool {
		return strings.Contains(strings.ToLower(name), strings.ToLower(pattern))
	}
	if re, err := regexp.Compile("(?i)" + pattern); err == nil {
		match = re.MatchString
	}

	found := false
	walkErr := afero.Walk(s.FS, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable entries
		}
		if !info.IsDir() && match(info.Name()) {
			fmt.Fprintln(s.Stdout, path)
			found = true
		}
		return nil
	})
	if walkErr != nil {
		s.Errorf("find: %v", walkErr)
		return shell.ExitFailure
	}

	if found {
		return shell.ExitSuccess
	}
	return shell.ExitFailure
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "find",
		Short: "Find files",
		Use:   "find <path> <pattern>",
		Cmd:   shell.BuiltinFunc(Find),
	}, "find")
}
