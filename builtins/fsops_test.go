package builtins

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camresh/jshell/core/shell"
)

func TestMkdir(t *testing.T) {
	t.Run("single directory", func(t *testing.T) {
		s, _, _ := newTestShell(t)
		assert.Equal(t, shell.ExitSuccess, Mkdir(s, []string{"mkdir", "/made"}))
		exists, _ := afero.DirExists(s.FS, "/made")
		assert.True(t, exists)
	})

	t.Run("missing parent fails without -p", func(t *testing.T) {
		s, _, stderr := newTestShell(t)
		assert.Equal(t, shell.ExitFailure, Mkdir(s, []string{"mkdir", "/a/b/c"}))
		assert.Contains(t, stderr.String(), "mkdir:")
	})

	t.Run("-p creates parents", func(t *testing.T) {
		s, _, _ := newTestShell(t)
		assert.Equal(t, shell.ExitSuccess, Mkdir(s, []string{"mkdir", "-p", "/a/b/c"}))
		exists, _ := afero.DirExists(s.FS, "/a/b/c")
		assert.True(t, exists)
	})
}

func TestRm(t *testing.T) {
	t.Run("removes file", func(t *testing.T) {
		s, _, _ := newTestShell(t)
		require.NoError(t, afero.WriteFile(s.FS, "/doomed.txt", []byte("x"), 0644))

		assert.Equal(t, shell.ExitSuccess, Rm(s, []string{"rm", "/doomed.txt"}))
		exists, _ := afero.Exists(s.FS, "/doomed.txt")
		assert.False(t, exists)
	})

	t.Run("directory needs -r", func(t *testing.T) {
		s, _, stderr := newTestShell(t)
		require.NoError(t, s.FS.MkdirAll("/tree/leaf", 0755))

		assert.Equal(t, shell.ExitFailure, Rm(s, []string{"rm", "/tree"}))
		assert.Contains(t, stderr.String(), "is a directory")

		assert.Equal(t, shell.ExitSuccess, Rm(s, []string{"rm", "-r", "/tree"}))
		exists, _ := afero.Exists(s.FS, "/tree")
		assert.False(t, exists)
	})

	t.Run("missing target", func(t *testing.T) {
		s, _, _ := newTestShell(t)
		assert.Equal(t, shell.ExitFailure, Rm(s, []string{"rm", "/ghost"}))
		assert.Equal(t, shell.ExitSuccess, Rm(s, []string{"rm", "-f", "/ghost"}))
	})
}

func TestTouch(t *testing.T) {
	s, _, _ := newTestShell(t)

	assert.Equal(t, shell.ExitSuccess, Touch(s, []string{"touch", "/new.txt"}))
	exists, _ := afero.Exists(s.FS, "/new.txt")
	assert.True(t, exists)

	// Touching again refreshes rather than truncating.
	require.NoError(t, afero.WriteFile(s.FS, "/new.txt", []byte("kept"), 0644))
	assert.Equal(t, shell.ExitSuccess, Touch(s, []string{"touch", "/new.txt"}))
	data, _ := afero.ReadFile(s.FS, "/new.txt")
	assert.Equal(t, "kept", string(data))

	assert.Equal(t, shell.ExitFailure, Touch(s, []string{"touch"}))
}

func TestCp(t *testing.T) {
	t.Run("file copy", func(t *testing.T) {
		s, _, _ := newTestShell(t)
		require.NoError(t, afero.WriteFile(s.FS, "/src.txt", []byte("payload"), 0644))

		assert.Equal(t, shell.ExitSuccess, Cp(s, []string{"cp", "/src.txt", "/dst.txt"}))
		data, err := afero.ReadFile(s.FS, "/dst.txt")
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("directory needs -r", func(t *testing.T) {
		s, _, stderr := newTestShell(t)
		require.NoError(t, s.FS.MkdirAll("/tree", 0755))
		require.NoError(t, afero.WriteFile(s.FS, "/tree/f.txt", []byte("x"), 0644))

		assert.Equal(t, shell.ExitFailure, Cp(s, []string{"cp", "/tree", "/copy"}))
		assert.Contains(t, stderr.String(), "use -r")

		assert.Equal(t, shell.ExitSuccess, Cp(s, []string{"cp", "-r", "/tree", "/copy"}))
		data, err := afero.ReadFile(s.FS, "/copy/f.txt")
		require.NoError(t, err)
		assert.Equal(t, "x", string(data))
	})

	t.Run("missing source", func(t *testing.T) {
		s, _, stderr := newTestShell(t)
		assert.Equal(t, shell.ExitFailure, Cp(s, []string{"cp", "/nope", "/dst"}))
		assert.Contains(t, stderr.String(), "does not exist")
	})
}

func TestMv(t *testing.T) {
	s, _, _ := newTestShell(t)
	require.NoError(t, afero.WriteFile(s.FS, "/old.txt", []byte("data"), 0644))

	assert.Equal(t, shell.ExitSuccess, Mv(s, []string{"mv", "/old.txt", "/new.txt"}))

	gone, _ := afero.Exists(s.FS, "/old.txt")
	assert.False(t, gone)
	data, err := afero.ReadFile(s.FS, "/new.txt")
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))

	assert.Equal(t, shell.ExitFailure, Mv(s, []string{"mv", "/only-one"}))
}
