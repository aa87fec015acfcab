package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camresh/jshell/core/shell"
)

func TestHistory(t *testing.T) {
	seed := func(t *testing.T, s *shell.Shell) {
		t.Helper()
		s.History = []string{"ls", "cd /tmp", "pwd"}
	}

	t.Run("all entries numbered", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		seed(t, s)

		assert.Equal(t, shell.ExitSuccess, History(s, []string{"history"}))
		assert.Equal(t, "    1: ls\n    2: cd /tmp\n    3: pwd\n", stdout.String())
	})

	t.Run("count limits to most recent", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		seed(t, s)

		assert.Equal(t, shell.ExitSuccess, History(s, []string{"history", "2"}))
		assert.Equal(t, "    2: cd /tmp\n    3: pwd\n", stdout.String())
	})

	t.Run("count larger than history", func(t *testing.T) {
		s, stdout, _ := newTestShell(t)
		seed(t, s)

		History(s, []string{"history", "10"})
		assert.Equal(t, "    1: ls\n    2: cd /tmp\n    3: pwd\n", stdout.String())
	})

	t.Run("invalid count", func(t *testing.T) {
		s, _, stderr := newTestShell(t)
		assert.Equal(t, shell.ExitFailure, History(s, []string{"history", "many"}))
		assert.Contains(t, stderr.String(), "invalid count")
	})
}

func TestExit(t *testing.T) {
	s, _, _ := newTestShell(t)

	assert.Equal(t, shell.ExitSuccess, Exit(s, []string{"exit"}))
	assert.False(t, s.Running)

	s.Running = true
	assert.Equal(t, 7, Exit(s, []string{"exit", "7"}))
	assert.Equal(t, 7, s.LastExit)

	s.Running = true
	assert.Equal(t, shell.ExitFailure, Exit(s, []string{"exit", "nope"}))
	assert.False(t, s.Running)
}
