package builtins

import (
	"io"

	"github.com/camresh/jshell/core/shell"
)

// Cat copies each named file to stdout. A file that fails to open is
// reported and the remaining files still print; the result is the last
// nonzero status.
func Cat(s *shell.Shell, args []string) int {
	if len(args) < 2 {
		s.Errorf("usage: cat <file> [files...]")
		return shell.ExitFailure
	}

	code := shell.ExitSuccess
	for _, arg := range args[1:] {
		path := shell.ExpandPath(arg)
		file, err := s.FS.Open(path)
		if err != nil {
			s.Errorf("cat: cannot open file '%s'", path)
			code = shell.ExitFailure
			continue
		}
		if _, err := io.Copy(s.Stdout, file); err != nil {
			s.Errorf("cat: %v", err)
			code = shell.ExitFailure
		}
		file.Close()
	}
	return code
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "cat",
		Short: "Display file contents",
		Use:   "cat <file> [files...]",
		Cmd:   shell.BuiltinFunc(Cat),
	}, "cat")
}
