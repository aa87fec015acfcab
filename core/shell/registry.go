package shell

import "sort"

// Builtin is a command implemented in-process. It receives the shell state
// and the full argument words (args[0] is the name it was invoked under)
// and returns an exit code. Builtins never spawn through the process
// launcher.
type Builtin interface {
	Main(s *Shell, args []string) int
}

// BuiltinFunc adapts a plain function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) int

func (f BuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// BuiltinEntry carries a builtin together with its static help metadata.
type BuiltinEntry struct {
	// Name is the primary name; alternate names share the same entry.
	Name  string
	Short string
	Use   string
	Cmd   Builtin
}

// AllBuiltins maps every registered name, including alternates, to its
// entry. Multiple names may map to the same entry.
var AllBuiltins = make(map[string]*BuiltinEntry)

// RegisterBuiltin registers an entry under one or more names.
func RegisterBuiltin(entry *BuiltinEntry, names ...string) {
	for _, name := range names {
		AllBuiltins[name] = entry
	}
}

// LookupBuiltin returns the builtin registered under name, or nil.
func LookupBuiltin(name string) Builtin {
	if entry, ok := AllBuiltins[name]; ok {
		return entry.Cmd
	}
	return nil
}

// BuiltinEntries returns the distinct registered entries sorted by primary
// name, for help listings.
func BuiltinEntries() []*BuiltinEntry {
	seen := make(map[*BuiltinEntry]bool)
	var entries []*BuiltinEntry
	for _, entry := range AllBuiltins {
		if !seen[entry] {
			seen[entry] = true
			entries = append(entries, entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
