package builtins

import (
	"fmt"

	"github.com/camresh/jshell/core/shell"
)

// Help lists the builtin table, or shows usage for one command.
func Help(s *shell.Shell, args []string) int {
	if len(args) > 1 {
		entry, ok := shell.AllBuiltins[args[1]]
		if !ok {
			s.Errorf("no help available for '%s'", args[1])
			return shell.ExitFailure
		}
		s.Theme.Prompt.Fprintf(s.Stdout, "%s - %s\n", entry.Name, entry.Short)
		fmt.Fprintf(s.Stdout, "Usage: %s\n", entry.Use)
		return shell.ExitSuccess
	}

	s.Theme.Prompt.Fprintln(s.Stdout, "jshell - interactive command interpreter")
	fmt.Fprintln(s.Stdout)
	fmt.Fprintln(s.Stdout, "Built-in commands:")
	for _, entry := range shell.BuiltinEntries() {
		s.Theme.Help.Fprintf(s.Stdout, "  %-12s", entry.Name)
		fmt.Fprintf(s.Stdout, " - %s\n", entry.Short)
	}
	fmt.Fprintln(s.Stdout)
	fmt.Fprintln(s.Stdout, "Use 'help <command>' for detailed usage information.")
	return shell.ExitSuccess
}

func init() {
	shell.RegisterBuiltin(&shell.BuiltinEntry{
		Name:  "help",
		Short: "Display help message",
		Use:   "help [command]",
		Cmd:   shell.BuiltinFunc(Help),
	}, "help")
}
