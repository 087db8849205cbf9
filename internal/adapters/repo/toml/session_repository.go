package toml

import (
	"context"
	"sync"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports"
	"github.com/spf13/viper"
)

const (
	SessionsPathKey = "sessions.path"
	sessionsFile    = "sessions.toml"
)

// SessionRepository persists live scratch sessions so directories left
// behind by a crashed invocation can be swept later.
type SessionRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(cfg *viper.Viper) (*SessionRepository, error) {
	path, err := resolvePath(cfg, SessionsPathKey, sessionsFile)
	if err != nil {
		return nil, err
	}

	return &SessionRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *SessionRepository) Path() string {
	return r.path
}

func (r *SessionRepository) List(ctx context.Context) ([]domain.ScratchSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	sessions := make([]domain.ScratchSession, 0, len(file.Sessions))
	for _, entry := range file.Sessions {
		sessions = append(sessions, fromSessionSchema(entry))
	}

	return sessions, nil
}

func (r *SessionRepository) Save(ctx context.Context, session domain.ScratchSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSessionSchema(session)
	updated := false
	for i := range file.Sessions {
		if file.Sessions[i].Path == encoded.Path {
			file.Sessions[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Sessions = append(file.Sessions, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return writeTOMLFile(r.path, file)
}

func (r *SessionRepository) Delete(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Sessions[:0]
	found := false
	for _, entry := range file.Sessions {
		if entry.Path == path {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrSessionNotFound
	}
	file.Sessions = kept

	return writeTOMLFile(r.path, file)
}

func (r *SessionRepository) readSchema() (sessionsFileSchema, error) {
	var file sessionsFileSchema
	if err := readTOMLFile(r.path, "sessions", &file); err != nil {
		return sessionsFileSchema{}, err
	}
	if err := file.validateVersion(); err != nil {
		return sessionsFileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func toSessionSchema(session domain.ScratchSession) sessionSchema {
	return sessionSchema{
		Path:      session.Path,
		CreatedAt: formatTime(session.CreatedAt),
		Operation: string(session.Operation),
		Owner:     session.Owner,
	}
}

func fromSessionSchema(entry sessionSchema) domain.ScratchSession {
	return domain.ScratchSession{
		Path:      entry.Path,
		CreatedAt: parseTime(entry.CreatedAt),
		Operation: domain.OperationKind(entry.Operation),
		Owner:     entry.Owner,
	}
}
