package builtins

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camresh/jshell/core/shell"
)

func TestLs(t *testing.T) {
	seed := func(t *testing.T, s *shell.Shell) {
		t.Helper()
		require.NoError(t, s.FS.MkdirAll("/work/sub", 0755))
		require.NoError(t, afero.WriteFile(s.FS, "/work/b.txt", []byte("bb"), 0644))
		require.NoError(t, afero.WriteFile(s.FS, "/work/a.txt", []byte("a"), 0644))
		require.NoError(t, afero.WriteFile(s.FS, "/work/.hidden", []byte("h"), 0644))
	}

	t.Run("sorted, dotfiles hidden", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		seed(t, s)

		code := Ls(s, []string{"ls", "/work"})
		assert.Equal(t, shell.ExitSuccess, code)
		assert.Equal(t, "a.txt\nb.txt\nsub/\n", stdout.String())
	})

	t.Run("-a shows dotfiles", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		seed(t, s)

		code := Ls(s, []string{"ls", "-a", "/work"})
		assert.Equal(t, shell.ExitSuccess, code)
		assert.Equal(t, ".hidden\na.txt\nb.txt\nsub/\n", stdout.String())
	})

	t.Run("-l long format", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		seed(t, s)

		code := Ls(s, []string{"ls", "-l", "/work"})
		assert.Equal(t, shell.ExitSuccess, code)
		lines := stdout.String()
		assert.Contains(t, lines, "a.txt\n")
		assert.Contains(t, lines, "sub/\n")
	})

	t.Run("single file target", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		seed(t, s)

		code := Ls(s, []string{"ls", "/work/a.txt"})
		assert.Equal(t, shell.ExitSuccess, code)
		assert.Equal(t, "a.txt\n", stdout.String())
	})

	t.Run("missing path", func(t *testing.T) {
		s, _, stderr := newTestShell(t)
		code := Ls(s, []string{"ls", "/nope"})
		assert.Equal(t, shell.ExitFailure, code)
		assert.Contains(t, stderr.String(), "ls:")
	})
}
