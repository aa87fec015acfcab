package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/camresh/jshell/core/shell"
)

// versionCmd prints the release without starting a session.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the interpreter version.",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jshell %s (%s/%s)\n", shell.Version, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
