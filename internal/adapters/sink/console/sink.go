package console

import (
	"io"
	"strings"
	"sync"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/bnema/fiddle-runner/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

// Sink writes user-facing output to a pair of writers. Error lines are
// styled when the error writer is a color terminal.
type Sink struct {
	mu       sync.Mutex
	out      io.Writer
	errOut   io.Writer
	errStyle lipgloss.Style
	redirect func(domain.OutputRecord)
}

var _ ports.LogSink = (*Sink)(nil)

func NewSink(out io.Writer, errOut io.Writer) *Sink {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	renderer := lipgloss.NewRenderer(errOut)
	return &Sink{
		out:      out,
		errOut:   errOut,
		errStyle: renderer.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// Redirect hands every record to fn instead of the writers until the
// returned restore func is called. Redirects do not nest.
func (s *Sink) Redirect(fn func(domain.OutputRecord)) (restore func()) {
	s.mu.Lock()
	s.redirect = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		s.redirect = nil
		s.mu.Unlock()
	}
}

func (s *Sink) PushOutput(text string) {
	s.write(s.out, domain.OutputRecord{Stream: domain.StreamStdout, Text: text}, nil)
}

func (s *Sink) PushError(text string) {
	s.write(s.errOut, domain.OutputRecord{Stream: domain.StreamStderr, Text: text}, &s.errStyle)
}

func (s *Sink) write(w io.Writer, record domain.OutputRecord, style *lipgloss.Style) {
	if record.Text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	body := strings.TrimSuffix(record.Text, "\n")
	if s.redirect != nil {
		s.redirect(domain.OutputRecord{Stream: record.Stream, Text: body})
		return
	}
	if style != nil && body != "" {
		body = style.Render(body)
	}

	// Write errors are dropped.
	_, _ = io.WriteString(w, body+"\n")
}
