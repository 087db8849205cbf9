package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bnema/fiddle-runner/internal/application"
	"github.com/spf13/cobra"
)

var errInstallFailed = errors.New("install failed")

func newInstallCmd(app *app) *cobra.Command {
	var (
		dir       string
		noSpinner bool
	)

	cmd := &cobra.Command{
		Use:   "install <module>... [--dir path]",
		Short: "Install node modules into a directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := application.InstallOptions{Modules: args, Dir: dir}

			var ok bool
			if noSpinner {
				ok = app.runner.NpmInstall(ctx, opts)
			} else {
				var err error
				ok, err = runInstallProgress(ctx, cmd.OutOrStdout(), app.sink, app.cfg.PackageManager, moduleLabels(args),
					func(ctx context.Context) bool {
						return app.runner.NpmInstall(ctx, opts)
					})
				if err != nil {
					return err
				}
			}

			if !ok {
				return errInstallFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to install the modules into")
	cmd.Flags().BoolVar(&noSpinner, "no-spinner", false, "Print the install log without the progress view")

	return cmd
}

func moduleLabels(args []string) []string {
	labels := make([]string, 0, len(args))
	for _, arg := range args {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			labels = append(labels, trimmed)
		}
	}
	return labels
}
