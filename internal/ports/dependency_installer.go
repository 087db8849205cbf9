package ports

import (
	"context"

	"github.com/bnema/fiddle-runner/internal/domain"
)

type DependencyInstaller interface {
	IsPackageManagerInstalled(ctx context.Context) bool
	FindModules(snippet domain.Snippet) ([]string, error)
	InstallModules(ctx context.Context, modules []string, dir string) error
	RunScript(ctx context.Context, script string, dir string) error
}
