package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bnema/fiddle-runner/internal/domain"
	"go.uber.org/zap"
)

func (r *Runner) track(ctx context.Context, session domain.ScratchSession) {
	r.mu.Lock()
	r.tracked[session.Path] = session
	r.live[session.Path] = struct{}{}
	r.mu.Unlock()

	if r.sessions == nil {
		return
	}
	if err := r.sessions.Save(ctx, session); err != nil {
		r.logger.Warn("record scratch session", zap.String("dir", session.Path), zap.Error(err))
	}
}

// release marks a session as no longer owned by a live operation so the
// next sweep may remove it.
func (r *Runner) release(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.live, path)
}

// Sweep removes every tracked scratch directory that no live operation owns,
// plus sessions recorded by other runner instances once they are stale.
// Each directory is handed to the scratch store at most once.
func (r *Runner) Sweep(ctx context.Context) (int, error) {
	return r.SweepStale(ctx, r.foreignTTL)
}

// SweepStale is Sweep with an explicit age after which sessions recorded by
// other runner instances are removed. Zero removes all of them.
func (r *Runner) SweepStale(ctx context.Context, olderThan time.Duration) (int, error) {
	r.sweepMu.Lock()
	defer r.sweepMu.Unlock()

	victims := r.claimTracked()

	var errs []error
	persisted, err := r.persistedVictims(ctx, victims, olderThan)
	if err != nil {
		errs = append(errs, err)
	}
	victims = append(victims, persisted...)

	sort.Slice(victims, func(i, j int) bool {
		return victims[i].CreatedAt.Before(victims[j].CreatedAt)
	})

	removed := 0
	for _, session := range victims {
		if r.sessions != nil {
			if err := r.sessions.Delete(ctx, session.Path); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
				// The ledger still names the directory; a later sweep retries
				// both steps, so it must not be cleaned here.
				errs = append(errs, fmt.Errorf("forget scratch session %s: %w", session.Path, err))
				continue
			}
		}
		if err := r.scratch.Cleanup(ctx, session.Path); err != nil {
			errs = append(errs, fmt.Errorf("cleanup %s: %w", session.Path, err))
			continue
		}
		removed++
		r.logger.Debug("scratch directory removed", zap.String("dir", session.Path))
	}

	return removed, errors.Join(errs...)
}

func (r *Runner) sweepAndLog(ctx context.Context) {
	removed, err := r.Sweep(ctx)
	if err != nil {
		r.logger.Warn("sweep scratch directories", zap.Int("count", removed), zap.Error(err))
	}
}

func (r *Runner) claimTracked() []domain.ScratchSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	victims := make([]domain.ScratchSession, 0, len(r.tracked))
	for path, session := range r.tracked {
		if _, live := r.live[path]; live {
			continue
		}
		delete(r.tracked, path)
		victims = append(victims, session)
	}
	return victims
}

func (r *Runner) persistedVictims(ctx context.Context, claimed []domain.ScratchSession, olderThan time.Duration) ([]domain.ScratchSession, error) {
	if r.sessions == nil {
		return nil, nil
	}

	recorded, err := r.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scratch sessions: %w", err)
	}

	seen := make(map[string]struct{}, len(claimed))
	for _, session := range claimed {
		seen[session.Path] = struct{}{}
	}

	now := r.clock.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	var victims []domain.ScratchSession
	for _, session := range recorded {
		if !session.Valid() {
			continue
		}
		if _, ok := seen[session.Path]; ok {
			continue
		}
		if _, live := r.live[session.Path]; live {
			continue
		}
		if _, mine := r.tracked[session.Path]; mine {
			continue
		}
		if session.Owner != r.owner && !session.Stale(now, olderThan) {
			continue
		}
		seen[session.Path] = struct{}{}
		victims = append(victims, session)
	}
	return victims, nil
}
