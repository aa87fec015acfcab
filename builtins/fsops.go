package builtins

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/camresh/jshell/core/shell"
)

// Mkdir creates directories. -p creates missing parents and tolerates
// existing targets. Keeps going past a failing target.
func Mkdir(s *shell.Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "mkdir [-p] <directory> [directories...]",
		Short: "Create directory",
	}

	opt := cmd.Flags()
	parents := opt.Bool('p', "make parent directories as needed")

	return cmd.Run(s, args, func() int {
		targets := opt.Args()
		if len(targets) == 0 {
			s.Errorf("usage: mkdir [-p] <directory>")
			return shell.ExitFailure
		}

		code := shell.ExitSuccess
		for _, target := range targets {
			path := shell.ExpandPath(target)
			var err error
			if *parents {
				err = s.FS.MkdirAll(path, 0755)
			} else {
				err = s.FS.Mkdir(path, 0755)
			}
			if err != nil {
				s.Errorf("mkdir: %v", err)
				code = shell.ExitFailure
			}
		}
		return code
	})
}

// Rm removes files, or directories with -r. -f suppresses missing-target
// errors. Keeps going past a failing target and reports the last nonzero
// status.
func Rm(s *shell.Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "rm [-rf] <path> [paths...]",
		Short: "Remove files/directories",
	}

	opt := cmd.Flags()
	recursive := opt.Bool('r', "remove directories and their contents recursively")
	force := opt.Bool('f', "ignore nonexistent files, never prompt")

	return cmd.Run(s, args, func() int {
		targets := opt.Args()
		if len(targets) == 0 {
			s.Errorf("usage: rm [-rf] <path>")
			return shell.ExitFailure
		}

		code := shell.ExitSuccess
		for _, target := range targets {
			path := shell.ExpandPath(target)

			info, err := s.FS.Stat(path)
			if err != nil {
				if !*force {
					s.Errorf("rm: '%s' does not exist", path)
					code = shell.ExitFailure
				}
				continue
			}

			if info.IsDir() && !*recursive {
				s.Errorf("rm: '%s' is a directory (use -r for recursive removal)", path)
				code = shell.ExitFailure
				continue
			}

			if *recursive {
				err = s.FS.RemoveAll(path)
			} else {
				err = s.FS.Remove(path)
			}
			if err != nil && !*force {
				s.Errorf("rm: %v", err)
				code = shell.ExitFailure
			}
		}
		return code
	})
}

// Touch creates empty files, or refreshes timestamps on existing ones.
func Touch(s *shell.Shell, args []string) int {
	if len(args) < 2 {
		s.Errorf("usage: touch <filename>")
		return shell.ExitFailure
	}

	code := shell.ExitSuccess
	for _, arg := range args[1:] {
		path := shell.ExpandPath(arg)

		if _, err := s.FS.Stat(path); err == nil {
			now := time.Now()
			if err := s.FS.Chtimes(path, now, now); err != nil {
				s.Errorf("touch: %v", err)
				code = shell.ExitFailure
			}
			continue
		}

		file, err := s.FS.Create(path)
		if err != nil {
			s.Errorf("touch: cannot create file '%s'", path)
			code = shell.ExitFailure
			continue
		}
		file.Close()
	}
	return code
}

// Cp copies a file, or a directory tree with -r.
func Cp(s *shell.Shell, args []string) int {
	cmd := &SimpleCommand{
		Use:   "cp [-r] <source> <destination>",
		Short: "Copy files",
	}

	opt := cmd.Flags()
	recursive := opt.Bool('r', "copy directories recursively")

	return cmd.Run(s, args, func() int {
		rest := opt.Args()
		if len(rest) < 2 {
			s.Errorf("usage: cp [-r] <source> <destination>")
			return shell.ExitFailure
		}

		src := shell.ExpandPath(rest[0])
		dst := shell.ExpandPath(rest[1])

		info, err := s.FS.Stat(src)
		if err != nil {
			s.Errorf("cp: source '%s' does not exist", src)
			return shell.ExitFailure
		}

		if info.IsDir() {
			if !*recursive {
				s.Errorf("cp: source is a directory (use -r for recursive copy)")
				return shell.ExitFailure
			}
			if err := copyTree(s.FS, src, dst); err != nil {
				s.Errorf("cp: %v", err)
				return shell.ExitFailure
			}
			return shell.ExitSuccess
		}

		if err := copyFile(s.FS, src, dst, info.Mode()); err != nil {
			s.Errorf("cp: %v", err)
			return shell.ExitFailure
		}
		return shell.ExitSuccess
	})
}

// Mv renames a file or directory.
func Mv(s *shell.Shell, args []string) int {
	if len(args) < 3 {
		s.Errorf("usage: mv <source> <destination>")
		return shell.ExitFailure
	}

	src := shell.ExpandPath(args[1])
	dst := shell.ExpandPath(args[2])
	if err := s.FS.Rename(src, dst); err != nil {
		s.Errorf("mv: %v", err)
		return shell.ExitFailure
	}
	return shell.ExitSuccess
}

func copyFile(fsys afero.Fs, src, dst string, mode os.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyTree(fsys afero.Fs, src, dst string) error {
	return afero.Walk(fsys, src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return fsys.MkdirAll(target, info.Mode())
		}
		return copyFile(fsys, path, target, info.Mode())
	})
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "mkdir",
		Short: "Create directory",
		Use:   "mkdir [-p] <directory>",
		Cmd:   shell.BuiltinFunc(Mkdir),
	}, "mkdir")
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "rm",
		Short: "Remove files/directories",
		Use:   "rm [-rf] <path>",
		Cmd:   shell.BuiltinFunc(Rm),
	}, "rm", "del")
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "touch",
		Short: "Create empty file",
		Use:   "touch <file>",
		Cmd:   shell.BuiltinFunc(Touch),
	}, "touch")
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "cp",
		Short: "Copy files",
		Use:   "cp [-r] <source> <destination>",
		Cmd:   shell.BuiltinFunc(Cp),
	}, "cp", "copy")
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "mv",
		Short: "Move/rename files",
		Use:   "mv <source> <destination>",
		Cmd:   shell.BuiltinFunc(Mv),
	}, "mv", "move")
}
