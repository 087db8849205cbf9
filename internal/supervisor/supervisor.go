// Package supervisor runs at most one child process at a time and forwards its
// output to a log sink.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports"
	"github.com/bnema/fiddle-runner/internal/state"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultBufferSize = 64
	readChunkSize     = 32 * 1024
)

// Exit describes how a supervised process ended.
type Exit struct {
	Code    int
	Err     error
	Stopped bool
}

// Handle is the live reference to a spawned process.
type Handle struct {
	proc    Process
	done    chan struct{}
	stopped atomic.Bool
	exit    Exit
}

func newHandle(proc Process) *Handle {
	return &Handle{proc: proc, done: make(chan struct{})}
}

func (h *Handle) PID() int {
	return h.proc.PID()
}

// Done is closed once the process has exited and its output has been forwarded.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Exit is only meaningful after Done is closed.
func (h *Handle) Exit() Exit {
	<-h.done
	return h.exit
}

func (h *Handle) Wait(ctx context.Context) (Exit, error) {
	select {
	case <-h.done:
		return h.exit, nil
	case <-ctx.Done():
		return Exit{}, ctx.Err()
	}
}

func (h *Handle) finish(exit Exit) {
	h.exit = exit
	close(h.done)
}

type Supervisor struct {
	launch     Launcher
	sink       ports.LogSink
	runState   *state.RunState
	logger     *zap.Logger
	bufferSize int

	mu      sync.Mutex
	current *Handle
}

func New(sink ports.LogSink, runState *state.RunState, logger *zap.Logger) *Supervisor {
	return NewWithLauncher(sink, runState, logger, launchExec)
}

func NewWithLauncher(sink ports.LogSink, runState *state.RunState, logger *zap.Logger, launch Launcher) *Supervisor {
	if launch == nil {
		launch = launchExec
	}
	if runState == nil {
		runState = state.NewRunState()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Supervisor{
		launch:     launch,
		sink:       sink,
		runState:   runState,
		logger:     logger,
		bufferSize: defaultBufferSize,
	}
}

// Spawn starts cmd. An already active process is stopped first.
func (s *Supervisor) Spawn(ctx context.Context, cmd Command) (*Handle, error) {
	if strings.TrimSpace(cmd.Path) == "" {
		return nil, fmt.Errorf("%w: executable path is empty", domain.ErrSpawn)
	}

	s.Stop()

	proc, err := s.launch(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrSpawn, cmd.Path, err)
	}

	h := newHandle(proc)

	s.mu.Lock()
	s.current = h
	s.mu.Unlock()

	s.runState.SetRunning(true)
	s.logger.Debug("process spawned",
		zap.String("path", cmd.Path),
		zap.Strings("args", cmd.Args),
		zap.String("dir", cmd.Dir),
		zap.Int("pid", proc.PID()),
	)

	go s.supervise(h)

	return h, nil
}

// Stop terminates the active process, if any, and clears the run state
// without waiting for the process to exit.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	h := s.current
	s.current = nil
	s.mu.Unlock()

	if h == nil {
		return
	}

	h.stopped.Store(true)
	if err := h.proc.Terminate(); err != nil {
		s.logger.Warn("terminate process", zap.Int("pid", h.PID()), zap.Error(err))
	}
	s.runState.SetRunning(false)
}

func (s *Supervisor) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current != nil
}

func (s *Supervisor) supervise(h *Handle) {
	records := make(chan domain.OutputRecord, s.bufferSize)
	forwarded := make(chan struct{})
	go func() {
		defer close(forwarded)
		for record := range records {
			s.forward(record)
		}
	}()

	var g errgroup.Group
	g.Go(func() error {
		return pump(h.proc.Stdout(), domain.StreamStdout, records)
	})
	g.Go(func() error {
		return pump(h.proc.Stderr(), domain.StreamStderr, records)
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("read process output", zap.Int("pid", h.PID()), zap.Error(err))
	}
	close(records)
	<-forwarded

	code, err := h.proc.Wait()
	s.release(h)

	s.logger.Debug("process exited",
		zap.Int("pid", h.PID()),
		zap.Int("code", code),
		zap.Bool("stopped", h.stopped.Load()),
		zap.Error(err),
	)

	h.finish(Exit{Code: code, Err: err, Stopped: h.stopped.Load()})
}

// release drops h if it is still the active handle. A handle replaced by a
// newer spawn must not clear the newer run's state.
func (s *Supervisor) release(h *Handle) {
	s.mu.Lock()
	current := s.current == h
	if current {
		s.current = nil
	}
	s.mu.Unlock()

	if current {
		s.runState.SetRunning(false)
	}
}

func (s *Supervisor) forward(record domain.OutputRecord) {
	if s.sink == nil {
		return
	}

	if record.IsError() {
		s.sink.PushError(record.Text)
		return
	}
	s.sink.PushOutput(record.Text)
}

func pump(r io.Reader, stream domain.Stream, out chan<- domain.OutputRecord) error {
	if r == nil {
		return nil
	}

	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			out <- domain.OutputRecord{Stream: stream, Text: string(buf[:n])}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return fmt.Errorf("read %s: %w", stream, err)
		}
	}
}
