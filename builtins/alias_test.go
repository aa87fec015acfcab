package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camresh/jshell/core/shell"
)

func TestAlias(t *testing.T) {
	t.Run("empty listing", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		assert.Equal(t, shell.ExitSuccess, Alias(s, []string{"alias"}))
		assert.Equal(t, "No aliases defined.\n", stdout.String())
	})

	t.Run("define and list sorted", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		assert.Equal(t, shell.ExitSuccess, Alias(s, []string{"alias", "zz=tail"}))
		assert.Equal(t, shell.ExitSuccess, Alias(s, []string{"alias", "ll=ls", "-l"}))

		stdout.Reset()
		Alias(s, []string{"alias"})
		assert.Equal(t, "ll='ls -l'\nzz='tail'\n", stdout.String())
	})

	t.Run("surrounding quotes stripped", func(t *testing.T) {
		s, _, _ := newTestShell(t)
		Alias(s, []string{"alias", "ll='ls", "-la'"})
		assert.Equal(t, "ls -la", s.Aliases["ll"])

		Alias(s, []string{"alias", `g="grep"`})
		assert.Equal(t, "grep", s.Aliases["g"])
	})

	t.Run("last definition wins", func(t *testing.T) {
		s, _, _ := newTestShell(t)
		Alias(s, []string{"alias", "x=first"})
		Alias(s, []string{"alias", "x=second"})
		assert.Equal(t, "second", s.Aliases["x"])
	})

	t.Run("show one", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		s.Aliases["ll"] = "ls -l"
		assert.Equal(t, shell.ExitSuccess, Alias(s, []string{"alias", "ll"}))
		assert.Equal(t, "ll='ls -l'\n", stdout.String())
	})

	t.Run("show unknown", func(t *testing.T) {
		s, _, stderr := newTestShell(t)
		assert.Equal(t, shell.ExitFailure, Alias(s, []string{"alias", "nope"}))
		assert.Contains(t, stderr.String(), "alias 'nope' not found")
	})
}

func TestUnalias(t *testing.T) {
	s, _, stderr := newTestShell(t)
	s.Aliases["ll"] = "ls -l"

	assert.Equal(t, shell.ExitSuccess, Unalias(s, []string{"unalias", "ll"}))
	assert.NotContains(t, s.Aliases, "ll")

	assert.Equal(t, shell.ExitFailure, Unalias(s, []string{"unalias", "ll"}))
	assert.Contains(t, stderr.String(), "not found")

	assert.Equal(t, shell.ExitFailure, Unalias(s, []string{"unalias"}))
}
