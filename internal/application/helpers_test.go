package application

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports/mocks"
	"github.com/bnema/fiddle-runner/internal/state"
	"github.com/bnema/fiddle-runner/internal/supervisor"
	"github.com/stretchr/testify/require"
)

type harness struct {
	runner    *Runner
	scratch   *mocks.MockScratchStore
	installer *mocks.MockDependencyInstaller
	binaries  *mocks.MockBinaryProvider
	sink      *recordingSink
	procs     *fakeLauncher
	runState  *state.RunState
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		scratch:   mocks.NewMockScratchStore(t),
		installer: mocks.NewMockDependencyInstaller(t),
		binaries:  mocks.NewMockBinaryProvider(t),
		sink:      &recordingSink{},
		procs:     &fakeLauncher{},
		runState:  state.NewRunState(),
	}
	h.runner = NewRunner(Dependencies{
		Scratch:    h.scratch,
		Installer:  h.installer,
		Binaries:   h.binaries,
		Sink:       h.sink,
		Supervisor: supervisor.NewWithLauncher(h.sink, h.runState, nil, h.procs.launch),
		RunState:   h.runState,
		Clock:      fixedClock{now: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)},
	})
	return h
}

func (h *harness) wait(t *testing.T) supervisor.Exit {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exit, err := h.runner.Wait(ctx)
	require.NoError(t, err)
	return exit
}

func demoSnippet() domain.Snippet {
	return domain.NewSnippet("demo", map[string]string{
		domain.FileMain:     "const { app } = require('electron')",
		domain.FileRenderer: "console.log('hi')",
		domain.FileHTML:     "<html></html>",
	})
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}

type fakeLauncher struct {
	mu       sync.Mutex
	commands []supervisor.Command
	procs    []*fakeProcess
	err      error
}

func (f *fakeLauncher) launch(ctx context.Context, cmd supervisor.Command) (supervisor.Process, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	proc := newFakeProcess(4000 + len(f.procs))
	f.commands = append(f.commands, cmd)
	f.procs = append(f.procs, proc)
	return proc, nil
}

func (f *fakeLauncher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.procs)
}

func (f *fakeLauncher) proc(i int) *fakeProcess {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.procs[i]
}

func (f *fakeLauncher) command(i int) supervisor.Command {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.commands[i]
}

type fakeProcess struct {
	pid     int
	stdout  *io.PipeReader
	stdoutW *io.PipeWriter
	stderr  *io.PipeReader
	stderrW *io.PipeWriter
	codes   chan int
	once    sync.Once

	mu         sync.Mutex
	terminated bool
}

func newFakeProcess(pid int) *fakeProcess {
	stdout, stdoutW := io.Pipe()
	stderr, stderrW := io.Pipe()
	return &fakeProcess{
		pid:     pid,
		stdout:  stdout,
		stdoutW: stdoutW,
		stderr:  stderr,
		stderrW: stderrW,
		codes:   make(chan int, 1),
	}
}

func (p *fakeProcess) PID() int          { return p.pid }
func (p *fakeProcess) Stdout() io.Reader { return p.stdout }
func (p *fakeProcess) Stderr() io.Reader { return p.stderr }

func (p *fakeProcess) Wait() (int, error) {
	return <-p.codes, nil
}

func (p *fakeProcess) Terminate() error {
	p.mu.Lock()
	p.terminated = true
	p.mu.Unlock()

	p.close(-1)
	return nil
}

func (p *fakeProcess) wasTerminated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.terminated
}

// close simulates the child's close event.
func (p *fakeProcess) close(code int) {
	p.once.Do(func() {
		_ = p.stdoutW.Close()
		_ = p.stderrW.Close()
		p.codes <- code
	})
}

type recordingSink struct {
	mu     sync.Mutex
	out    []string
	errOut []string
}

func (s *recordingSink) PushOutput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = append(s.out, text)
}

func (s *recordingSink) PushError(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errOut = append(s.errOut, text)
}

func (s *recordingSink) outputText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.out, "\n")
}

func (s *recordingSink) errorText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return strings.Join(s.errOut, "\n")
}
