package application

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/fiddle-runner/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: version \"9.9.9\"", domain.ErrBinaryNotReady), want: "Run aborted: "},
		{err: fmt.Errorf("%w: disk full", domain.ErrScratchWrite), want: "Scratch error: "},
		{err: fmt.Errorf("%w: 404", domain.ErrDependencyInstall), want: "Dependency error: "},
		{err: fmt.Errorf("%w: make", domain.ErrBuildScript), want: "Build error: "},
		{err: fmt.Errorf("%w: ENOENT", domain.ErrSpawn), want: "Spawn error: "},
		{err: domain.ErrPackageManagerUnavailable, want: "Package manager unavailable: "},
		{err: domain.ErrOperationInProgress, want: "Busy: "},
		{err: domain.ErrRunCancelled, want: "Cancelled: "},
		{err: errors.New("boom"), want: "Error: boom"},
	}

	for _, tt := range tests {
		assert.Contains(t, Describe(tt.err), tt.want)
	}

	assert.Empty(t, Describe(nil))
}
