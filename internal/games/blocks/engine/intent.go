package engine

// Intent is a discrete player command.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentSoftDrop
	IntentHardDrop
	IntentRotateCW
	IntentRotateCCW
	IntentHold
	IntentTogglePause
)

// String returns the wire name of the intent.
func (i Intent) String() string {
	switch i {
	case IntentMoveLeft:
		return "move_left"
	case IntentMoveRight:
		return "move_right"
	case IntentSoftDrop:
		return "soft_drop"
	case IntentHardDrop:
		return "hard_drop"
	case IntentRotateCW:
		return "rotate_cw"
	case IntentRotateCCW:
		return "rotate_ccw"
	case IntentHold:
		return "hold"
	case IntentTogglePause:
		return "toggle_pause"
	default:
		return "none"
	}
}

// State is the lifecycle of a run.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
