package model

import "github.com/pkg/errors"

// Session is the caller side of the engine contract: it refuses board edits
// while the simulation runs and counts the generations that changed the board.
type Session struct {
	engine     *Engine
	generation int
}

// NewSession wraps an engine
func NewSession(e *Engine) *Session {
	return &Session{engine: e}
}

// Engine returns the wrapped engine
func (s *Session) Engine() *Engine {
	return s.engine
}

// Generation returns the number of ticks that changed the board since the last restart
func (s *Session) Generation() int {
	return s.generation
}

// Running reports whether the simulation is running
func (s *Session) Running() bool {
	return s.engine.IsRunning()
}

// Start marks the simulation as running
func (s *Session) Start() {
	s.engine.SetRunning(true)
}

// Stop pauses the simulation, keeping the board and the generation count
func (s *Session) Stop() {
	s.engine.SetRunning(false)
}

// Restart stops the simulation, clears the board and zeroes the generation count
func (s *Session) Restart() {
	s.engine.SetRunning(false)
	s.engine.Reset()
	s.generation = 0
}

// Tick advances the board one step and reports whether it changed
func (s *Session) Tick() bool {
	changed := s.engine.Step()
	if changed {
		s.generation++
	}
	return changed
}

func (s *Session) checkIdle(op string) error {
	if s.engine.IsRunning() {
		return errors.Wrapf(ErrRunning, "[%s]", op)
	}
	return nil
}

// Toggle flips a cell while the simulation is idle
func (s *Session) Toggle(row, col int) error {
	if err := s.checkIdle("Toggle"); err != nil {
		return err
	}
	return s.engine.Toggle(row, col)
}

// Paint forces a cell alive while the simulation is idle
func (s *Session) Paint(row, col int) error {
	if err := s.checkIdle("Paint"); err != nil {
		return err
	}
	return s.engine.Paint(row, col)
}

// Randomize fills the board randomly while the simulation is idle
func (s *Session) Randomize() error {
	if err := s.checkIdle("Randomize"); err != nil {
		return err
	}
	s.engine.Randomize()
	return nil
}

// ApplyPattern replaces the board with a named pattern while the simulation is idle
func (s *Session) ApplyPattern(name string) error {
	if err := s.checkIdle("ApplyPattern"); err != nil {
		return err
	}
	return s.engine.ApplyPatternByName(name)
}
