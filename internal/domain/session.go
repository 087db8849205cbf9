package domain

import (
	"strings"
	"time"
)

type OperationKind string

const (
	OperationRun   OperationKind = "run"
	OperationForge OperationKind = "forge"
)

type ScratchSession struct {
	Path      string
	CreatedAt time.Time
	Operation OperationKind
	Owner     string
}

// Stale reports whether a session left behind by another runner instance
// is old enough to be swept.
func (s ScratchSession) Stale(now time.Time, after time.Duration) bool {
	if s.CreatedAt.IsZero() {
		return true
	}
	return now.Sub(s.CreatedAt) >= after
}

func (s ScratchSession) Valid() bool {
	return strings.TrimSpace(s.Path) != ""
}
