package shell

import (
	"os"
	"regexp"
	"strings"
)

var varPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\$[A-Za-z_][A-Za-z0-9_]*`)

// ExpandVars substitutes $NAME and ${NAME} references in text. Session
// variables take precedence over the process environment; names found in
// neither expand to the empty string.
//
// Expansion runs over the raw segment before quote or redirection parsing,
// so a value containing shell-meaningful characters changes downstream
// parsing. That matches the historical behavior and is covered by tests.
func ExpandVars(text string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[1:]
		if strings.HasPrefix(name, "{") {
			name = name[1 : len(name)-1]
		}
		if value, ok := vars[name]; ok {
			return value
		}
		return os.Getenv(name)
	})
}

// ExpandPath rewrites a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return home + path[1:]
}
