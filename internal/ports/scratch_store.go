package ports

import (
	"context"

	"github.com/bnema/fiddle-runner/internal/domain"
)

type ScratchStore interface {
	SaveToTemp(ctx context.Context, snippet domain.Snippet) (string, error)
	Cleanup(ctx context.Context, dir string) error
}
