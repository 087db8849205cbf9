package history

import (
	"strings"
	"testing"
	"time"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderRunHistory(t *testing.T) {
	now := time.Date(2026, 10, 18, 11, 0, 0, 0, time.UTC)
	zero := 0
	one := 1

	output, err := Render([]domain.RunRecord{
		{
			ID:        "run-1",
			Version:   "2.0.2",
			StartedAt: now.Add(-time.Hour),
			EndedAt:   now.Add(-time.Hour + 90*time.Second),
			ExitCode:  &zero,
			Outcome:   domain.RunOutcomeExited,
		},
		{
			ID:        "run-2",
			Version:   "v30.0.0",
			StartedAt: now.Add(-10 * time.Minute),
			EndedAt:   now.Add(-9 * time.Minute),
			ExitCode:  &one,
			Outcome:   domain.RunOutcomeStopped,
		},
		{
			ID:        "run-3",
			Version:   "9.9.9",
			StartedAt: now.Add(-time.Minute),
			EndedAt:   now.Add(-time.Minute),
			Outcome:   domain.RunOutcomeFailed,
			Error:     "runtime binary not downloaded",
		},
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Run History")
	assert.Contains(t, output, "runs: 3")
	assert.Contains(t, output, "v2.0.2")
	assert.Contains(t, output, "v30.0.0")
	assert.NotContains(t, output, "vv30")
	assert.Contains(t, output, "exited (0)")
	assert.Contains(t, output, "1m30s")
	assert.Contains(t, output, "stopped")
	assert.Contains(t, output, "failed")
	assert.Contains(t, output, "runtime binary not downloaded")
	assert.Contains(t, output, "10:00:00")

	assert.Less(t, strings.Index(output, "9.9.9"), strings.Index(output, "2.0.2"), "newest run is listed first")
}

func TestRenderEmptyHistory(t *testing.T) {
	output, err := Render(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "runs: 0")
	assert.Contains(t, output, "No runs recorded.")
}

func TestRenderHonorsLimit(t *testing.T) {
	records := []domain.RunRecord{
		{ID: "run-1", Version: "1.0.0", Outcome: domain.RunOutcomeFailed},
		{ID: "run-2", Version: "2.0.0", Outcome: domain.RunOutcomeFailed},
		{ID: "run-3", Version: "3.0.0", Outcome: domain.RunOutcomeRunning},
	}

	output, err := Render(records, RenderOptions{Limit: 2})

	require.NoError(t, err)
	assert.Contains(t, output, "runs: 3")
	assert.Contains(t, output, "v3.0.0")
	assert.Contains(t, output, "v2.0.0")
	assert.NotContains(t, output, "v1.0.0")
	assert.Contains(t, output, "running")
}

func TestFormatDurationForRunningRecord(t *testing.T) {
	now := time.Date(2026, 10, 18, 11, 0, 0, 0, time.UTC)

	got := formatDuration(domain.RunRecord{StartedAt: now.Add(-5 * time.Second), Outcome: domain.RunOutcomeRunning}, now)
	assert.Equal(t, "5s", got)

	assert.Equal(t, "-", formatDuration(domain.RunRecord{}, now))
}

func TestFormatStarted(t *testing.T) {
	now := time.Date(2026, 10, 18, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, "unknown", formatStarted(time.Time{}, now))
	assert.Equal(t, "09:30:00", formatStarted(now.Add(-90*time.Minute), now))
	assert.Equal(t, "11:00 on 17 Oct", formatStarted(now.Add(-24*time.Hour), now))
}
