package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	_ "github.com/camresh/jshell/builtins"
	"github.com/camresh/jshell/core/config"
	"github.com/camresh/jshell/core/logger"
	"github.com/camresh/jshell/core/shell"
)

var (
	cfgDir string
	debug  bool
)

func loadConfig() (*config.Configuration, error) {
	return config.Load(afero.NewOsFs(), cfgDir)
}

// rootCmd starts an interactive session, or runs a script when one is
// given as an argument.
var rootCmd = &cobra.Command{
	Use:   "jshell [script]",
	Short: "An interactive command interpreter",
	Long:  `A small interactive shell with pipelines, redirection, and job control.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		sh := shell.New(configuration)
		sh.Log = logger.Init(cmd.ErrOrStderr(), debug)
		sh.ShellDir = cfgDir

		// The rc file seeds aliases and variables before any input runs.
		rcPath := filepath.Join(cfgDir, config.RCName)
		if _, err := sh.FS.Stat(rcPath); err == nil {
			sh.RunScript(rcPath)
		}

		if len(args) == 1 {
			// Script mode: the process exit code is the last command's.
			os.Exit(sh.RunScript(args[0]))
		}

		return sh.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", config.ShellDir(), "config directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
