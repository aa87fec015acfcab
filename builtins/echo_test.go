package builtins

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camresh/jshell/core/shell"
)

func TestEcho(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"no arguments", []string{"echo"}, "\n"},
		{"words joined", []string{"echo", "hello", "world"}, "hello world\n"},
		{"suppressed newline", []string{"echo", "-n", "hello"}, "hello"},
		{"-n alone", []string{"echo", "-n"}, ""},
		{"-n only counts first", []string{"echo", "a", "-n"}, "a -n\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, stdout, _ := newTestShell(t)
			code := Echo(s, tc.args)
			assert.Equal(t, shell.ExitSuccess, code)
			assert.Equal(t, tc.expected, stdout.String())
		})
	}
}
