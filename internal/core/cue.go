package core

// Cue names a cosmetic moment the presentation layer may react to,
// typically by playing a sound. Games never depend on cues being handled.
type Cue string

const (
	CueMove     Cue = "move"
	CueRotate   Cue = "rotate"
	CueDrop     Cue = "drop"
	CueLine     Cue = "line"
	CueHold     Cue = "hold"
	CueLevelUp  Cue = "level_up"
	CueGameOver Cue = "game_over"
)

// Cues lists every cue in a stable order.
var Cues = []Cue{CueMove, CueRotate, CueDrop, CueLine, CueHold, CueLevelUp, CueGameOver}
