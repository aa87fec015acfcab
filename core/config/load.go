package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// ShellDir returns the per-user shell state directory, creating it if
// needed. Falls back to the working directory when no user config
// directory is available.
func ShellDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	dir := filepath.Join(base, "jshell")
	if err := os.MkdirAll(dir, 0700); err != nil {
		wd, _ := os.Getwd()
		return wd
	}
	return dir
}

// Load reads the configuration from the given directory. A missing file is
// not an error: the defaults apply, matching a fresh install. Unknown keys
// and invalid values are errors.
func Load(fsys afero.Fs, dir string) (*Configuration, error) {
	out := Default()

	contents, err := afero.ReadFile(fsys, filepath.Join(dir, ConfigurationName))
	switch {
	case os.IsNotExist(err):
		return out, nil
	case err != nil:
		return nil, err
	}

	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Initialize writes the default configuration into the directory unless a
// configuration already exists there. Returns the path written or found.
func Initialize(fsys afero.Fs, dir string) (string, error) {
	path := filepath.Join(dir, ConfigurationName)

	if _, err := fsys.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	if err := afero.WriteFile(fsys, path, defaultConfigData, 0600); err != nil {
		return "", err
	}
	return path, nil
}
