package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		expected []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t  ", nil},
		{"simple words", "echo hello world", []string{"echo", "hello", "world"}},
		{"collapsed spaces", "a   b\t\tc", []string{"a", "b", "c"}},
		{"double quotes", `echo "hello world"`, []string{"echo", "hello world"}},
		{"single quotes", `echo 'hello world'`, []string{"echo", "hello world"}},
		{"single inside double", `echo "it's here"`, []string{"echo", "it's here"}},
		{"double inside single", `echo 'say "hi"'`, []string{"echo", `say "hi"`}},
		{"adjacent quoted parts", `a"b c"d`, []string{"ab cd"}},
		{"empty quotes dropped", `"" a`, []string{"a"}},
		{"unterminated runs to end", `echo "unterminated rest`, []string{"echo", "unterminated rest"}},
		{"leading and trailing space", "  ls -l  ", []string{"ls", "-l"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.text))
		})
	}
}
