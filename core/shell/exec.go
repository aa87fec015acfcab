package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file.
var ErrNotFound = exec.ErrNotFound

// execSuffixes lists the suffixes tried for a bare command name, in order.
func execSuffixes() []string {
	if runtime.GOOS == "windows" {
		return []string{"", ".exe", ".bat", ".cmd", ".com"}
	}
	return []string{""}
}

func findExecutable(file string) error {
	info, err := os.Stat(file)
	if err != nil {
		return err
	}
	if info.Mode().IsDir() {
		return os.ErrPermission
	}
	if runtime.GOOS != "windows" && info.Mode()&0111 == 0 {
		return os.ErrPermission
	}
	return nil
}

// LookPath resolves a command name to an executable path. A name containing
// a path separator is tried literally and the search path is not consulted.
// Otherwise the current directory is searched first, then each directory on
// PATH, trying the bare name plus each platform executable suffix.
func LookPath(name string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}

	if strings.ContainsAny(name, `/\`) {
		if err := findExecutable(name); err == nil {
			return name, nil
		}
		return "", ErrNotFound
	}

	for _, suffix := range execSuffixes() {
		candidate := name + suffix
		if err := findExecutable(candidate); err == nil {
			abs, err := filepath.Abs(candidate)
			if err != nil {
				return candidate, nil
			}
			return abs, nil
		}
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			dir = "."
		}
		for _, suffix := range execSuffixes() {
			candidate := filepath.Join(dir, name+suffix)
			if err := findExecutable(candidate); err == nil {
				return candidate, nil
			}
		}
	}

	return "", ErrNotFound
}
