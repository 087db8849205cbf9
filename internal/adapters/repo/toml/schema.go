package toml

import "fmt"

const (
	currentSessionsSchemaVersion = 1
	currentHistorySchemaVersion  = 1
)

type sessionsFileSchema struct {
	Version  int             `toml:"version"`
	Sessions []sessionSchema `toml:"sessions"`
}

func (s *sessionsFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSessionsSchemaVersion
	}
}

func (s sessionsFileSchema) validateVersion() error {
	if s.Version > currentSessionsSchemaVersion {
		return fmt.Errorf("unsupported sessions schema version %d (current %d)", s.Version, currentSessionsSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	Path      string `toml:"path"`
	CreatedAt string `toml:"created_at"`
	Operation string `toml:"operation"`
	Owner     string `toml:"owner,omitempty"`
}

type historyFileSchema struct {
	Version int         `toml:"version"`
	Runs    []runSchema `toml:"runs"`
}

func (s *historyFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentHistorySchemaVersion
	}
}

func (s historyFileSchema) validateVersion() error {
	if s.Version > currentHistorySchemaVersion {
		return fmt.Errorf("unsupported history schema version %d (current %d)", s.Version, currentHistorySchemaVersion)
	}

	return nil
}

type runSchema struct {
	ID          string `toml:"id"`
	Version     string `toml:"version"`
	ScratchPath string `toml:"scratch_path"`
	StartedAt   string `toml:"started_at"`
	EndedAt     string `toml:"ended_at,omitempty"`
	ExitCode    *int   `toml:"exit_code,omitempty"`
	Outcome     string `toml:"outcome"`
	Error       string `toml:"error,omitempty"`
}
