package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCleanCmd(app *app) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove scratch directories left behind by earlier runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			age := app.cfg.ForeignSessionTTL
			if cmd.Flags().Changed("older-than") {
				age = olderThan
			}
			if age < 0 {
				return fmt.Errorf("--older-than must not be negative")
			}

			removed, err := app.runner.SweepStale(cmd.Context(), age)
			if err != nil {
				return fmt.Errorf("clean scratch directories: %w", err)
			}

			noun := "directories"
			if removed == 1 {
				noun = "directory"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d scratch %s.\n", removed, noun)
			return err
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Only remove directories older than this (default scratch.foreign_ttl, 0 removes all)")

	return cmd
}
