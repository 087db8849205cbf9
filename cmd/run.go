package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/spf13/cobra"
)

var errRunFailed = errors.New("run failed")

func newRunCmd(app *app) *cobra.Command {
	var (
		dir     string
		version string
		flags   []string
		env     []string
	)

	cmd := &cobra.Command{
		Use:   "run [--dir snippet] --version <version> [-- flags...]",
		Short: "Run a snippet against an Electron version",
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, err := app.loadSnippet(dir)
			if err != nil {
				return err
			}

			extraEnv, err := parseEnv(env)
			if err != nil {
				return err
			}

			req := domain.RunRequest{
				Snippet:        snippet,
				Version:        version,
				ExecutionFlags: append(append(append([]string(nil), app.cfg.RunFlags...), flags...), args...),
				Env:            mergeEnv(app.cfg.RunEnv, extraEnv),
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			done := make(chan struct{})
			defer close(done)
			go func() {
				select {
				case <-ctx.Done():
					app.runner.Stop()
				case <-done:
				}
			}()

			if !app.runner.Run(ctx, req) {
				return errRunFailed
			}

			exit, err := app.runner.Wait(context.Background())
			if err != nil {
				return err
			}
			if !exit.Stopped && exit.Code != 0 {
				return fmt.Errorf("electron exited with code %d", exit.Code)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Snippet directory")
	cmd.Flags().StringVar(&version, "version", "", "Electron version to run")
	cmd.Flags().StringArrayVar(&flags, "flag", nil, "Extra execution flag passed to Electron (repeatable)")
	cmd.Flags().StringArrayVar(&env, "env", nil, "Extra environment variable KEY=VALUE (repeatable)")
	_ = cmd.MarkFlagRequired("version")

	return cmd
}

func newForgeCmd(app *app, command domain.ForgeCommand, short string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   string(command) + " [--dir snippet]",
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snippet, err := app.loadSnippet(dir)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !app.runner.PerformForgeOperation(ctx, snippet, command) {
				return fmt.Errorf("%s failed", command)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Snippet directory")

	return cmd
}

func parseEnv(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --env %q: expected KEY=VALUE", pair)
		}
		env[key] = value
	}

	return env, nil
}

func mergeEnv(base map[string]string, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}

	merged := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range override {
		merged[key] = value
	}
	return merged
}
