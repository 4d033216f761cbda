package app

import (
	"context"

	"github.com/spf13/cobra"
)

// Execute runs the costsync CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "costsync",
		Short:   "Reconcile cost-center membership with organization rosters",
		Version: a.version,
		Long: `Costsync reconciles the membership of a GitHub Enterprise billing cost
center against the live membership of one or more organizations or
organization/team pairs.

Each run fetches the desired and current member sets, computes the minimal
add/remove changes, applies them one member at a time, and reports a
summary. Runs are stateless and meant to be invoked from a scheduler.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.costsync.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("costsync {{.Version}}\n")

	rootCmd.AddCommand(a.createSyncCommand())
	rootCmd.AddCommand(a.createVersionCommand())

	return rootCmd
}

// setupCommand is called before any command runs. Flags have been parsed
// by now, so the logger is rebuilt to honor them.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}
