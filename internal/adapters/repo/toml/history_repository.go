package toml

import (
	"context"
	"sync"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports"
	"github.com/spf13/viper"
)

const (
	HistoryPathKey  = "history.path"
	HistoryLimitKey = "history.limit"
	historyFile     = "history.toml"

	defaultHistoryLimit = 200
)

// HistoryRepository keeps the most recent run records, oldest first.
type HistoryRepository struct {
	path  string
	limit int
	mu    *sync.RWMutex
}

var _ ports.RunHistoryRepository = (*HistoryRepository)(nil)

func NewHistoryRepository(cfg *viper.Viper) (*HistoryRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path, err := resolvePath(cfg, HistoryPathKey, historyFile)
	if err != nil {
		return nil, err
	}

	limit := cfg.GetInt(HistoryLimitKey)
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	return &HistoryRepository{path: path, limit: limit, mu: lockForPath(path)}, nil
}

func (r *HistoryRepository) Append(ctx context.Context, record domain.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	file.Runs = append(file.Runs, toRunSchema(record))
	if overflow := len(file.Runs) - r.limit; overflow > 0 {
		file.Runs = append([]runSchema(nil), file.Runs[overflow:]...)
	}

	return writeTOMLFile(r.path, file)
}

func (r *HistoryRepository) Update(ctx context.Context, record domain.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toRunSchema(record)
	for i := range file.Runs {
		if file.Runs[i].ID == encoded.ID {
			file.Runs[i] = encoded
			return writeTOMLFile(r.path, file)
		}
	}

	return domain.ErrRunNotFound
}

func (r *HistoryRepository) List(ctx context.Context) ([]domain.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.RunRecord, 0, len(file.Runs))
	for _, entry := range file.Runs {
		records = append(records, fromRunSchema(entry))
	}

	return records, nil
}

func (r *HistoryRepository) readSchema() (historyFileSchema, error) {
	var file historyFileSchema
	if err := readTOMLFile(r.path, "history", &file); err != nil {
		return historyFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return historyFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toRunSchema(record domain.RunRecord) runSchema {
	var code *int
	if record.ExitCode != nil {
		value := *record.ExitCode
		code = &value
	}

	return runSchema{
		ID:          string(record.ID),
		Version:     record.Version,
		ScratchPath: record.ScratchPath,
		StartedAt:   formatTime(record.StartedAt),
		EndedAt:     formatTime(record.EndedAt),
		ExitCode:    code,
		Outcome:     string(record.Outcome),
		Error:       record.Error,
	}
}

func fromRunSchema(entry runSchema) domain.RunRecord {
	return domain.RunRecord{
		ID:          domain.RunID(entry.ID),
		Version:     entry.Version,
		ScratchPath: entry.ScratchPath,
		StartedAt:   parseTime(entry.StartedAt),
		EndedAt:     parseTime(entry.EndedAt),
		ExitCode:    entry.ExitCode,
		Outcome:     domain.RunOutcome(entry.Outcome),
		Error:       entry.Error,
	}
}
