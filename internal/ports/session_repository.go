package ports

import (
	"context"

	"github.com/bnema/fiddle-runner/internal/domain"
)

type SessionRepository interface {
	List(ctx context.Context) ([]domain.ScratchSession, error)
	Save(ctx context.Context, session domain.ScratchSession) error
	Delete(ctx context.Context, path string) error
}

type RunHistoryRepository interface {
	Append(ctx context.Context, record domain.RunRecord) error
	Update(ctx context.Context, record domain.RunRecord) error
	List(ctx context.Context) ([]domain.RunRecord, error)
}
