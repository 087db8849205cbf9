package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
	// Limit keeps only the newest runs. Zero shows all.
	Limit int
}

// Render lays out the run history newest first.
func Render(records []domain.RunRecord, opts RenderOptions) (string, error) {
	return renderView(records, opts, newStyles()), nil
}

func renderView(records []domain.RunRecord, opts RenderOptions, s styles) string {
	shown := newestFirst(records, opts.Limit)

	lines := []string{
		s.title.Render("Run History"),
		s.header.Render(fmt.Sprintf("runs: %d", len(records))),
	}

	if len(shown) == 0 {
		lines = append(lines, s.empty.Render("No runs recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, record := range shown {
		lines = append(lines, renderRecord(record, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRecord(record domain.RunRecord, opts RenderOptions, s styles) string {
	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.meta.Render(formatStarted(record.StartedAt, opts.Now)),
		"  ",
		s.version.Render("v"+strings.TrimPrefix(record.Version, "v")),
		"  ",
		outcomeStyle(record.Outcome, s).Render(outcomeLabel(record)),
		"  ",
		s.detail.Render(formatDuration(record, opts.Now)),
	)

	if record.Error != "" {
		line += "  " + s.errorMsg.Render(record.Error)
	}

	return line
}

func newestFirst(records []domain.RunRecord, limit int) []domain.RunRecord {
	ordered := make([]domain.RunRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		ordered = append(ordered, records[i])
	}

	if limit > 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}

func outcomeLabel(record domain.RunRecord) string {
	switch record.Outcome {
	case domain.RunOutcomeExited:
		if record.ExitCode != nil {
			return fmt.Sprintf("exited (%d)", *record.ExitCode)
		}
		return "exited"
	case domain.RunOutcomeStopped:
		return "stopped"
	case domain.RunOutcomeFailed:
		return "failed"
	case domain.RunOutcomeRunning:
		return "running"
	default:
		return "unknown"
	}
}

func outcomeStyle(outcome domain.RunOutcome, s styles) lipgloss.Style {
	switch outcome {
	case domain.RunOutcomeExited:
		return s.exited
	case domain.RunOutcomeStopped:
		return s.stopped
	case domain.RunOutcomeFailed:
		return s.failed
	case domain.RunOutcomeRunning:
		return s.running
	default:
		return s.meta
	}
}

func formatStarted(startedAt, now time.Time) string {
	if startedAt.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return startedAt.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := startedAt.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return startedAt.Format("15:04:05")
	}

	return startedAt.Format("15:04 on 02 Jan")
}

func formatDuration(record domain.RunRecord, now time.Time) string {
	duration := record.Duration()
	if record.Outcome == domain.RunOutcomeRunning && !now.IsZero() && !record.StartedAt.IsZero() {
		duration = now.Sub(record.StartedAt)
	}
	if duration <= 0 {
		return "-"
	}

	return duration.Round(100 * time.Millisecond).String()
}
