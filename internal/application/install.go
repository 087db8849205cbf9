package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/fiddle-runner/internal/domain"
	"go.uber.org/zap"
)

type InstallOptions struct {
	Modules []string
	Dir     string
}

// NpmInstall installs modules into an arbitrary directory outside of any
// run or forge pipeline. It reports false only when the installer fails.
func (r *Runner) NpmInstall(ctx context.Context, opts InstallOptions) bool {
	modules := normalizeModules(opts.Modules)
	if len(modules) > 0 {
		r.sink.PushOutput(fmt.Sprintf("Installing modules: %s", strings.Join(modules, ", ")))
	}
	if err := r.installer.InstallModules(ctx, modules, opts.Dir); err != nil {
		r.report(fmt.Errorf("%w: %w", domain.ErrDependencyInstall, err))
		return false
	}

	return true
}

// InstallModulesForEditor installs the modules referenced by the snippet's
// editor sources into dir. It does nothing when no module is referenced or
// no package manager is installed.
func (r *Runner) InstallModulesForEditor(ctx context.Context, snippet domain.Snippet, dir string) error {
	return r.installForSnippet(ctx, snippet, dir, false)
}

func (r *Runner) installForSnippet(ctx context.Context, snippet domain.Snippet, dir string, warnUnavailable bool) error {
	modules, err := r.installer.FindModules(snippet)
	if err != nil {
		return fmt.Errorf("find modules: %w", err)
	}
	modules = normalizeModules(modules)
	if len(modules) == 0 {
		return nil
	}

	if !r.installer.IsPackageManagerInstalled(ctx) {
		r.logger.Debug("package manager unavailable, skipping module install", zap.Strings("modules", modules))
		if warnUnavailable {
			r.sink.PushError(fmt.Sprintf("Modules %s are required but no package manager is installed; continuing without them.", strings.Join(modules, ", ")))
		}
		return nil
	}

	r.sink.PushOutput(fmt.Sprintf("Installing modules: %s", strings.Join(modules, ", ")))
	if err := r.installer.InstallModules(ctx, modules, dir); err != nil {
		return fmt.Errorf("install %s: %w", strings.Join(modules, ", "), err)
	}

	return nil
}

func normalizeModules(modules []string) []string {
	result := make([]string, 0, len(modules))
	seen := make(map[string]struct{}, len(modules))
	for _, module := range modules {
		trimmed := strings.TrimSpace(module)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
