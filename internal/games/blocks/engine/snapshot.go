package engine

import "time"

// Snapshot is a read-only copy of the engine state for renderers and
// score keepers. Mutating it has no effect on the engine.
type Snapshot struct {
	Board Board

	Active    Piece
	HasActive bool
	Next      Piece
	HasNext   bool
	// Held is shown in spawn orientation.
	Held    Piece
	HasHeld bool
	CanHold bool

	Score int
	Best  int
	Level int
	Lines int

	DropInterval time.Duration
	State        State
}

// Snapshot returns the current state. It has no side effects.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Board:        e.board,
		Active:       e.active,
		HasActive:    e.hasActive,
		Next:         e.next,
		HasNext:      e.state != StateNotStarted,
		CanHold:      e.canHold,
		Score:        e.score,
		Best:         e.best,
		Level:        e.level,
		Lines:        e.lines,
		DropInterval: e.dropInterval,
		State:        e.state,
	}
	if e.held != None {
		s.Held = Spawn(e.held)
		s.HasHeld = true
	}
	return s
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}
