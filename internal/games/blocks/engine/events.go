package engine

// EventKind classifies an emitted event.
type EventKind int

const (
	EventStarted EventKind = iota
	EventReset
	EventMoved
	EventRotated
	EventSoftDropped
	EventHardDropped
	EventHeld
	EventPaused
	EventResumed
	EventPieceLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
	EventNewBest
)

var eventNames = map[EventKind]string{
	EventStarted:      "started",
	EventReset:        "reset",
	EventMoved:        "moved",
	EventRotated:      "rotated",
	EventSoftDropped:  "soft_dropped",
	EventHardDropped:  "hard_dropped",
	EventHeld:         "held",
	EventPaused:       "paused",
	EventResumed:      "resumed",
	EventPieceLocked:  "piece_locked",
	EventLinesCleared: "lines_cleared",
	EventLevelUp:      "level_up",
	EventGameOver:     "game_over",
	EventNewBest:      "new_best",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a semantic notification returned by the engine.
// Only the fields relevant to Kind are set:
//   - LinesCleared: Count rows, Points awarded
//   - LevelUp: Level reached
//   - HardDropped: Count rows fallen
//   - GameOver, NewBest: Points holds the final or new best score
type Event struct {
	Kind   EventKind
	Count  int
	Level  int
	Points int
}

// CountKind returns how many events in evs have the given kind.
func CountKind(evs []Event, kind EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
