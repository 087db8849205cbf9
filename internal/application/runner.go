package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports"
	"github.com/bnema/fiddle-runner/internal/state"
	"github.com/bnema/fiddle-runner/internal/supervisor"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultForeignSessionTTL = 24 * time.Hour

var errStoppedWhileStarting = fmt.Errorf("%w: stopped while starting", domain.ErrRunCancelled)

type ProcessSupervisor interface {
	Spawn(ctx context.Context, cmd supervisor.Command) (*supervisor.Handle, error)
	Stop()
	Active() bool
}

type Dependencies struct {
	Scratch    ports.ScratchStore
	Installer  ports.DependencyInstaller
	Binaries   ports.BinaryProvider
	Sink       ports.LogSink
	Supervisor ProcessSupervisor
	RunState   *state.RunState

	// Optional.
	Sessions ports.SessionRepository
	History  ports.RunHistoryRepository
	Clock    ports.Clock
	Logger   *zap.Logger
	// ForeignSessionTTL is how old a session recorded by another runner
	// instance must be before a sweep removes it.
	ForeignSessionTTL time.Duration
}

// Runner coordinates run and forge pipelines. At most one pipeline is in
// flight at a time; a running process may be replaced by a new run.
type Runner struct {
	scratch    ports.ScratchStore
	installer  ports.DependencyInstaller
	binaries   ports.BinaryProvider
	sink       ports.LogSink
	processes  ProcessSupervisor
	runState   *state.RunState
	sessions   ports.SessionRepository
	history    ports.RunHistoryRepository
	clock      ports.Clock
	logger     *zap.Logger
	owner      string
	foreignTTL time.Duration

	mu        sync.Mutex
	phase     domain.Phase
	cancelled bool
	current   *activeRun
	last      *activeRun
	tracked   map[string]domain.ScratchSession
	live      map[string]struct{}

	sweepMu sync.Mutex
}

type activeRun struct {
	handle  *supervisor.Handle
	session domain.ScratchSession
	record  domain.RunRecord
	once    sync.Once
	done    chan struct{}
	exit    supervisor.Exit
}

func NewRunner(deps Dependencies) *Runner {
	if deps.RunState == nil {
		deps.RunState = state.NewRunState()
	}
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.ForeignSessionTTL <= 0 {
		deps.ForeignSessionTTL = defaultForeignSessionTTL
	}
	if deps.Sink == nil {
		deps.Sink = discardSink{}
	}

	return &Runner{
		scratch:    deps.Scratch,
		installer:  deps.Installer,
		binaries:   deps.Binaries,
		sink:       deps.Sink,
		processes:  deps.Supervisor,
		runState:   deps.RunState,
		sessions:   deps.Sessions,
		history:    deps.History,
		clock:      deps.Clock,
		logger:     deps.Logger,
		owner:      uuid.NewString(),
		foreignTTL: deps.ForeignSessionTTL,
		tracked:    map[string]domain.ScratchSession{},
		live:       map[string]struct{}{},
	}
}

func (r *Runner) RunState() *state.RunState {
	return r.runState
}

func (r *Runner) Phase() domain.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.phase
}

// Run saves the snippet, installs its modules and launches the runtime
// binary. It reports true only when a process was started.
func (r *Runner) Run(ctx context.Context, req domain.RunRequest) bool {
	if err := r.begin(domain.PhaseSaving); err != nil {
		r.report(err)
		return false
	}

	session, err := r.launch(ctx, req)
	if errors.Is(err, errStoppedWhileStarting) {
		// The completion hook owns cleanup of a process that did start.
		r.report(err)
		return false
	}
	if err != nil {
		r.abort(req, session, err)
		return false
	}

	return true
}

func (r *Runner) launch(ctx context.Context, req domain.RunRequest) (domain.ScratchSession, error) {
	version := strings.TrimPrefix(strings.TrimSpace(req.Version), "v")
	if !r.binaries.IsDownloaded(version) {
		return domain.ScratchSession{}, fmt.Errorf("%w: version %q", domain.ErrBinaryNotReady, version)
	}

	session, err := r.save(ctx, req.Snippet, domain.OperationRun)
	if err != nil {
		return domain.ScratchSession{}, err
	}

	if err := r.advance(ctx, domain.PhaseInstalling); err != nil {
		return session, err
	}
	if err := r.installForSnippet(ctx, req.Snippet, session.Path, true); err != nil {
		return session, fmt.Errorf("%w: %w", domain.ErrDependencyInstall, err)
	}

	if err := r.advance(ctx, domain.PhaseSpawning); err != nil {
		return session, err
	}
	path, err := r.binaries.ExecutablePath(version)
	if err != nil {
		return session, fmt.Errorf("%w: resolve executable for %q: %w", domain.ErrSpawn, version, err)
	}

	handle, err := r.processes.Spawn(ctx, supervisor.Command{
		Path: path,
		Args: append([]string{session.Path}, req.ExecutionFlags...),
		Dir:  session.Path,
		Env:  envList(req.Env),
	})
	if err != nil {
		return session, err
	}

	run := &activeRun{
		handle:  handle,
		session: session,
		record: domain.RunRecord{
			ID:          domain.RunID(uuid.NewString()),
			Version:     version,
			ScratchPath: session.Path,
			StartedAt:   r.clock.Now(),
			Outcome:     domain.RunOutcomeRunning,
		},
		done: make(chan struct{}),
	}

	r.mu.Lock()
	cancelled := r.cancelled
	r.current = run
	r.last = run
	r.phase, _ = r.phase.Transition(domain.PhaseRunning)
	r.mu.Unlock()

	r.appendHistory(run.record)
	go r.watch(run)

	if cancelled {
		r.processes.Stop()
		return session, errStoppedWhileStarting
	}

	r.sink.PushOutput(fmt.Sprintf("Electron v%s started.", version))
	r.logger.Info("run started", zap.String("version", version), zap.String("dir", session.Path), zap.Int("pid", handle.PID()))

	return session, nil
}

// abort settles state after a pipeline failed before a usable process existed.
func (r *Runner) abort(req domain.RunRequest, session domain.ScratchSession, err error) {
	r.settle()
	if !r.processes.Active() {
		r.runState.SetRunning(false)
	}

	r.report(err)
	r.appendHistory(domain.RunRecord{
		ID:          domain.RunID(uuid.NewString()),
		Version:     strings.TrimPrefix(strings.TrimSpace(req.Version), "v"),
		ScratchPath: session.Path,
		StartedAt:   r.clock.Now(),
		EndedAt:     r.clock.Now(),
		Outcome:     domain.RunOutcomeFailed,
		Error:       err.Error(),
	})

	if session.Valid() {
		r.release(session.Path)
		r.sweepAndLog(context.Background())
	}
}

// watch is the one-shot completion hook of a spawned run.
func (r *Runner) watch(run *activeRun) {
	<-run.handle.Done()

	run.once.Do(func() {
		exit := run.handle.Exit()

		r.mu.Lock()
		if r.current == run {
			r.current = nil
			if r.phase == domain.PhaseRunning {
				r.phase = domain.PhaseIdle
			}
		}
		r.mu.Unlock()

		// The supervisor already cleared the flag if this run was still the
		// active one; nothing below may observe it as running.
		if exit.Stopped {
			r.sink.PushOutput("Electron stopped.")
		} else {
			r.sink.PushOutput(fmt.Sprintf("Electron exited with code %d.", exit.Code))
		}

		record := run.record
		record.EndedAt = r.clock.Now()
		code := exit.Code
		record.ExitCode = &code
		record.Outcome = domain.RunOutcomeExited
		if exit.Stopped {
			record.Outcome = domain.RunOutcomeStopped
		}
		if exit.Err != nil {
			record.Error = exit.Err.Error()
		}
		r.updateHistory(record)

		r.release(run.session.Path)
		r.sweepAndLog(context.Background())

		run.exit = exit
		close(run.done)
	})
}

// Stop terminates the running process. During a pre-spawn phase it also
// prevents the pending run from launching.
func (r *Runner) Stop() {
	r.mu.Lock()
	switch r.phase {
	case domain.PhaseSaving, domain.PhaseInstalling, domain.PhaseSpawning:
		r.cancelled = true
	}
	r.mu.Unlock()

	r.processes.Stop()
}

// Wait blocks until the most recently spawned run has finished its
// completion hook. It returns immediately when nothing was spawned.
func (r *Runner) Wait(ctx context.Context) (supervisor.Exit, error) {
	r.mu.Lock()
	run := r.last
	r.mu.Unlock()

	if run == nil {
		return supervisor.Exit{}, nil
	}

	select {
	case <-run.done:
		return run.exit, nil
	case <-ctx.Done():
		return supervisor.Exit{}, ctx.Err()
	}
}

func (r *Runner) begin(to domain.Phase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase.Busy() {
		return fmt.Errorf("%w: currently %s", domain.ErrOperationInProgress, r.phase)
	}

	next, err := r.phase.Transition(to)
	if err != nil {
		return err
	}
	r.phase = next
	r.cancelled = false
	return nil
}

func (r *Runner) advance(ctx context.Context, to domain.Phase) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRunCancelled, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancelled {
		return domain.ErrRunCancelled
	}

	next, err := r.phase.Transition(to)
	if err != nil {
		return err
	}
	r.phase = next
	return nil
}

// settle returns to Running when a previous run has not finished yet, Idle
// otherwise. watch clears r.current under the same lock, so a run that exits
// concurrently either leaves Idle here or moves Running back to Idle itself.
func (r *Runner) settle() {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := domain.PhaseIdle
	if r.current != nil {
		target = domain.PhaseRunning
	}

	if next, err := r.phase.Transition(target); err == nil {
		r.phase = next
		return
	}
	r.logger.Warn("unexpected phase on settle", zap.Stringer("phase", r.phase), zap.Stringer("target", target))
	r.phase = target
}

func (r *Runner) save(ctx context.Context, snippet domain.Snippet, op domain.OperationKind) (domain.ScratchSession, error) {
	dir, err := r.scratch.SaveToTemp(ctx, snippet)
	if err != nil {
		return domain.ScratchSession{}, fmt.Errorf("%w: %w", domain.ErrScratchWrite, err)
	}

	session := domain.ScratchSession{
		Path:      dir,
		CreatedAt: r.clock.Now(),
		Operation: op,
		Owner:     r.owner,
	}
	r.track(ctx, session)

	return session, nil
}

func (r *Runner) report(err error) {
	if err == nil {
		return
	}
	r.logger.Debug("operation failed", zap.Error(err))
	r.sink.PushError(Describe(err))
}

func (r *Runner) appendHistory(record domain.RunRecord) {
	if r.history == nil {
		return
	}
	if err := r.history.Append(context.Background(), record); err != nil {
		r.logger.Warn("append run history", zap.String("run", string(record.ID)), zap.Error(err))
	}
}

func (r *Runner) updateHistory(record domain.RunRecord) {
	if r.history == nil {
		return
	}
	if err := r.history.Update(context.Background(), record); err != nil && !errors.Is(err, domain.ErrRunNotFound) {
		r.logger.Warn("update run history", zap.String("run", string(record.ID)), zap.Error(err))
	}
}

func envList(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	list := make([]string, 0, len(keys))
	for _, key := range keys {
		list = append(list, key+"="+env[key])
	}
	return list
}

type discardSink struct{}

func (discardSink) PushOutput(string) {}
func (discardSink) PushError(string)  {}
