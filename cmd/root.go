package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts wireOptions
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "fiddle",
		Short:         "Run and package Electron snippets from the terminal",
		Long:          "fiddle saves a snippet to a scratch directory, installs the modules it requires and runs it against a downloaded Electron version, or packages it with Electron Forge.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			opts.out = cmd.OutOrStdout()
			opts.errOut = cmd.ErrOrStderr()

			wired, err := wireApp(opts)
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is $HOME/.config/fiddle/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print diagnostic logs to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newForgeCmd(app, "package", "Package the snippet with Electron Forge"),
		newForgeCmd(app, "make", "Build distributables for the snippet with Electron Forge"),
		newInstallCmd(app),
		newHistoryCmd(app),
		newCleanCmd(app),
		newVersionsCmd(app),
	)

	return rootCmd
}
