package builtins

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/camresh/jshell/core/shell"
)

// Ls lists directory contents. -l switches to a long format with mode,
// size and modification time; -a includes dotfiles. Directories print in
// the theme's directory color with a trailing slash.
func Ls(s *shell.Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "ls [-la] [path]",
		Short: "List directory contents",
	}

	opt := cmd.Flags()
	long := opt.Bool('l', "use a long listing format")
	all := opt.Bool('a', "don't ignore entries starting with .")

	return cmd.Run(s, args, func() int {
		path := "."
		if rest := opt.Args(); len(rest) > 0 {
			path = shell.ExpandPath(rest[0])
		}

		info, err := s.FS.Stat(path)
		if err != nil {
			s.Errorf("ls: %v", err)
			return shell.ExitFailure
		}

		if !info.IsDir() {
			if *long {
				fmt.Fprintf(s.Stdout, "%s %10d %s %s\n", info.Mode(), info.Size(), info.ModTime().Format("Jan _2 15:04"), info.Name())
			} else {
				fmt.Fprintln(s.Stdout, info.Name())
			}
			return shell.ExitSuccess
		}

		entries, err := afero.ReadDir(s.FS, path)
		if err != nil {
			s.Errorf("ls: %v", err)
			return shell.ExitFailure
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name() < entries[j].Name()
		})

		for _, entry := range entries {
			if !*all && strings.HasPrefix(entry.Name(), ".") {
				continue
			}

			if *long {
				size := entry.Size()
				if entry.IsDir() {
					size = 0
				}
				fmt.Fprintf(s.Stdout, "%s %10d %s ", entry.Mode(), size, entry.ModTime().Format("Jan _2 15:04"))
			}

			if entry.IsDir() {
				s.Theme.Dir.Fprint(s.Stdout, entry.Name())
				fmt.Fprintln(s.Stdout, "/")
			} else {
				fmt.Fprintln(s.Stdout, entry.Name())
			}
		}
		return shell.ExitSuccess
	})
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "ls",
		Short: "List directory contents",
		Use:   "ls [-la] [path]",
		Cmd:   shell.BuiltinFunc(Ls),
	}, "ls", "dir")
}
