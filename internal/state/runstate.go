// Package state holds process-wide flags shared between the runner and its observers.
package state

import "sync"

// RunState is the observable "a playground is running" flag. Observers are
// notified synchronously, in registration order, on every change.
type RunState struct {
	mu        sync.RWMutex
	running   bool
	observers []func(running bool)
}

func NewRunState() *RunState {
	return &RunState{}
}

func (s *RunState) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

// SetRunning updates the flag and reports whether it changed.
func (s *RunState) SetRunning(running bool) bool {
	s.mu.Lock()
	if s.running == running {
		s.mu.Unlock()
		return false
	}
	s.running = running
	observers := append([]func(bool){}, s.observers...)
	s.mu.Unlock()

	for _, observe := range observers {
		observe(running)
	}

	return true
}

func (s *RunState) Observe(fn func(running bool)) {
	if fn == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}
