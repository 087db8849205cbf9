package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryRepo(t *testing.T, path string, limit int) *HistoryRepository {
	t.Helper()

	config := viper.New()
	config.Set(HistoryPathKey, path)
	if limit > 0 {
		config.Set(HistoryLimitKey, limit)
	}

	repo, err := NewHistoryRepository(config)
	require.NoError(t, err)
	return repo
}

func TestHistoryRepositoryAppendAndUpdate(t *testing.T) {
	t.Parallel()

	repo := newHistoryRepo(t, filepath.Join(t.TempDir(), "history.toml"), 0)
	started := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	record := domain.RunRecord{
		ID:          "run-1",
		Version:     "2.0.2",
		ScratchPath: "/tmp/fiddle/fiddle-1",
		StartedAt:   started,
		Outcome:     domain.RunOutcomeRunning,
	}
	require.NoError(t, repo.Append(context.Background(), record))

	code := 3
	record.EndedAt = started.Add(2 * time.Second)
	record.ExitCode = &code
	record.Outcome = domain.RunOutcomeExited
	require.NoError(t, repo.Update(context.Background(), record))

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record, records[0])
	assert.Equal(t, 2*time.Second, records[0].Duration())
}

func TestHistoryRepositoryUpdateMissingRun(t *testing.T) {
	t.Parallel()

	repo := newHistoryRepo(t, filepath.Join(t.TempDir(), "history.toml"), 0)

	err := repo.Update(context.Background(), domain.RunRecord{ID: "nope"})
	require.ErrorIs(t, err, domain.ErrRunNotFound)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(repo.path), "history.toml"))
	assert.True(t, os.IsNotExist(statErr), "a failed update must not create the file")
}

func TestHistoryRepositoryKeepsMostRecentRuns(t *testing.T) {
	t.Parallel()

	repo := newHistoryRepo(t, filepath.Join(t.TempDir(), "history.toml"), 3)

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Append(context.Background(), domain.RunRecord{
			ID:      domain.RunID("run-" + strconv.Itoa(i)),
			Outcome: domain.RunOutcomeFailed,
			Error:   "boom",
		}))
	}

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, domain.RunID("run-3"), records[0].ID)
	assert.Equal(t, domain.RunID("run-5"), records[2].ID)
	assert.Nil(t, records[0].ExitCode)
	assert.Equal(t, "boom", records[0].Error)
}

func TestHistoryRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "history.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 7\n"), 0o600))

	_, err := newHistoryRepo(t, path, 0).List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported history schema version")
}
