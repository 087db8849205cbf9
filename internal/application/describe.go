package application

import (
	"errors"

	"github.com/bnema/fiddle-runner/internal/domain"
)

// Describe renders a pipeline failure as a single log line whose prefix
// names the failure class.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	return label(err) + ": " + err.Error()
}

func label(err error) string {
	switch {
	case errors.Is(err, domain.ErrBinaryNotReady):
		return "Run aborted"
	case errors.Is(err, domain.ErrScratchWrite):
		return "Scratch error"
	case errors.Is(err, domain.ErrDependencyInstall):
		return "Dependency error"
	case errors.Is(err, domain.ErrBuildScript):
		return "Build error"
	case errors.Is(err, domain.ErrSpawn):
		return "Spawn error"
	case errors.Is(err, domain.ErrPackageManagerUnavailable):
		return "Package manager unavailable"
	case errors.Is(err, domain.ErrOperationInProgress):
		return "Busy"
	case errors.Is(err, domain.ErrRunCancelled):
		return "Cancelled"
	default:
		return "Error"
	}
}
