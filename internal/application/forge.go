package application

import (
	"context"
	"fmt"

	"github.com/bnema/fiddle-runner/internal/domain"
	"go.uber.org/zap"
)

// PerformForgeOperation packages or makes the snippet in a fresh scratch
// directory. It never touches the run state.
func (r *Runner) PerformForgeOperation(ctx context.Context, snippet domain.Snippet, command domain.ForgeCommand) bool {
	script, err := command.Script()
	if err != nil {
		r.report(err)
		return false
	}

	if !r.installer.IsPackageManagerInstalled(ctx) {
		r.report(fmt.Errorf("%w: %s requires npm or yarn", domain.ErrPackageManagerUnavailable, script))
		return false
	}

	if err := r.begin(domain.PhaseForging); err != nil {
		r.report(err)
		return false
	}
	defer r.settle()

	if err := r.forge(ctx, snippet, script); err != nil {
		r.report(err)
		return false
	}

	r.sink.PushOutput(fmt.Sprintf("Forge %s completed.", script))
	return true
}

func (r *Runner) forge(ctx context.Context, snippet domain.Snippet, script string) error {
	session, err := r.save(ctx, snippet, domain.OperationForge)
	if err != nil {
		return err
	}
	defer func() {
		r.release(session.Path)
		r.sweepAndLog(context.Background())
	}()

	r.logger.Debug("forge started", zap.String("script", script), zap.String("dir", session.Path))

	if err := r.InstallModulesForEditor(ctx, snippet, session.Path); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDependencyInstall, err)
	}

	r.sink.PushOutput(fmt.Sprintf("Running %s...", script))
	if err := r.installer.RunScript(ctx, script, session.Path); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrBuildScript, script, err)
	}

	return nil
}
