package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List downloaded Electron versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			versions, err := app.binaries.Versions()
			if err != nil {
				return fmt.Errorf("list versions in %s: %w", app.binaries.Dir(), err)
			}

			out := cmd.OutOrStdout()
			if len(versions) == 0 {
				_, err = fmt.Fprintf(out, "No Electron versions found in %s.\n", app.binaries.Dir())
				return err
			}

			for _, version := range versions {
				if _, err := fmt.Fprintln(out, version); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
