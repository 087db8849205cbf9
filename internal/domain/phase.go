package domain

import "fmt"

// Phase is the coordinator's position in a run or forge pipeline.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSaving
	PhaseInstalling
	PhaseSpawning
	PhaseRunning
	PhaseForging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSaving:
		return "saving"
	case PhaseInstalling:
		return "installing"
	case PhaseSpawning:
		return "spawning"
	case PhaseRunning:
		return "running"
	case PhaseForging:
		return "forging"
	default:
		return "unknown"
	}
}

var phaseTransitions = map[Phase][]Phase{
	PhaseIdle:       {PhaseSaving, PhaseForging},
	PhaseSaving:     {PhaseInstalling, PhaseIdle, PhaseRunning},
	PhaseInstalling: {PhaseSpawning, PhaseIdle, PhaseRunning},
	PhaseSpawning:   {PhaseRunning, PhaseIdle},
	PhaseRunning:    {PhaseIdle, PhaseSaving, PhaseForging},
	PhaseForging:    {PhaseIdle, PhaseRunning},
}

// Busy reports whether a pipeline is mid-flight and owns the coordinator.
// A running process does not count: a new run replaces it.
func (p Phase) Busy() bool {
	switch p {
	case PhaseSaving, PhaseInstalling, PhaseSpawning, PhaseForging:
		return true
	default:
		return false
	}
}

func (p Phase) CanTransition(to Phase) bool {
	for _, allowed := range phaseTransitions[p] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (p Phase) Transition(to Phase) (Phase, error) {
	if !p.CanTransition(to) {
		return p, fmt.Errorf("%w: %s -> %s", ErrInvalidPhaseTransition, p, to)
	}
	return to, nil
}
