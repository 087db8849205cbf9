package console

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSinkWritesLinesToMatchingWriter(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	sink := NewSink(&out, &errOut)

	sink.PushOutput("Electron v2.0.2 started.")
	sink.PushOutput("chunk from the app\n")
	sink.PushError("Spawn error: ENOENT")
	sink.PushOutput("")

	assert.Equal(t, "Electron v2.0.2 started.\nchunk from the app\n", out.String())
	assert.Equal(t, "Spawn error: ENOENT\n", errOut.String())
}

func TestSinkIsSafeForConcurrentUse(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	sink := NewSink(&out, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sink.PushOutput("line")
			sink.PushError("ignored")
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, strings.Count(out.String(), "line\n"))
}

func TestSinkRedirectCapturesRecordsUntilRestored(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	sink := NewSink(&out, &errOut)

	var captured []domain.OutputRecord
	restore := sink.Redirect(func(record domain.OutputRecord) {
		captured = append(captured, record)
	})
	sink.PushOutput("Installing modules: say\n")
	sink.PushError("Dependency error: npm install -S say: exit status 1")
	restore()
	sink.PushOutput("after")

	assert.Equal(t, []domain.OutputRecord{
		{Stream: domain.StreamStdout, Text: "Installing modules: say"},
		{Stream: domain.StreamStderr, Text: "Dependency error: npm install -S say: exit status 1"},
	}, captured)
	assert.Equal(t, "after\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestSinkSwallowsWriterFailures(t *testing.T) {
	t.Parallel()

	sink := NewSink(failingWriter{}, failingWriter{})

	assert.NotPanics(t, func() {
		sink.PushOutput("hello")
		sink.PushError("boom")
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}
