package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	historyrender "github.com/bnema/fiddle-runner/internal/adapters/render/history"
	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/spf13/cobra"
)

type historyEntry struct {
	ID          string     `json:"id"`
	Version     string     `json:"version"`
	ScratchPath string     `json:"scratch_path"`
	StartedAt   time.Time  `json:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	ExitCode    *int       `json:"exit_code,omitempty"`
	Outcome     string     `json:"outcome"`
	Error       string     `json:"error,omitempty"`
}

func newHistoryCmd(app *app) *cobra.Command {
	var (
		asJSON bool
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			records, err := app.history.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list run history: %w", err)
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(historyEntries(records, limit))
			}

			view, err := app.historyRenderer(records, historyrender.RenderOptions{Now: app.now(), Limit: limit})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), view)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print history as JSON")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (0 shows all)")

	return cmd
}

// historyEntries returns the newest runs first.
func historyEntries(records []domain.RunRecord, limit int) []historyEntry {
	entries := make([]historyEntry, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		if limit > 0 && len(entries) == limit {
			break
		}
		record := records[i]
		entry := historyEntry{
			ID:          string(record.ID),
			Version:     record.Version,
			ScratchPath: record.ScratchPath,
			StartedAt:   record.StartedAt,
			ExitCode:    record.ExitCode,
			Outcome:     string(record.Outcome),
			Error:       record.Error,
		}
		if !record.EndedAt.IsZero() {
			ended := record.EndedAt
			entry.EndedAt = &ended
		}
		entries = append(entries, entry)
	}
	return entries
}
