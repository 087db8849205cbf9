package domain

import "time"

type RunID string

type RunOutcome string

const (
	RunOutcomeRunning RunOutcome = "running"
	RunOutcomeExited  RunOutcome = "exited"
	RunOutcomeStopped RunOutcome = "stopped"
	RunOutcomeFailed  RunOutcome = "failed"
)

type RunRecord struct {
	ID          RunID
	Version     string
	ScratchPath string
	StartedAt   time.Time
	EndedAt     time.Time
	ExitCode    *int
	Outcome     RunOutcome
	Error       string
}

func (r RunRecord) Duration() time.Duration {
	if r.EndedAt.IsZero() || r.StartedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

func (r RunRecord) Finished() bool {
	return r.Outcome != RunOutcomeRunning && r.Outcome != ""
}
