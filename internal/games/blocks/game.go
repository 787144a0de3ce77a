// Package blocks adapts the falling-block engine to the platform's Game
// interface: it maps input actions to engine intents, steps the engine with
// a fixed tick, turns engine events into cues and draws the playfield.
package blocks

import (
	"time"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/theme"
)

// ID is the storage key for blocks scores.
const ID = "blocks"

var actionIntents = map[core.Action]engine.Intent{
	core.ActionLeft:      engine.IntentMoveLeft,
	core.ActionRight:     engine.IntentMoveRight,
	core.ActionSoftDrop:  engine.IntentSoftDrop,
	core.ActionHardDrop:  engine.IntentHardDrop,
	core.ActionRotateCW:  engine.IntentRotateCW,
	core.ActionRotateCCW: engine.IntentRotateCCW,
	core.ActionHold:      engine.IntentHold,
	core.ActionPause:     engine.IntentTogglePause,
}

// Game implements core.Game on top of engine.Engine.
type Game struct {
	eng    *engine.Engine
	theme  theme.Theme
	ghost  bool
	config core.RuntimeConfig
	dt     time.Duration
	// newBest is set when the run has beaten the injected best score.
	newBest bool
}

// Option configures a Game.
type Option func(*Game)

// WithTheme sets the cosmetic theme.
func WithTheme(t theme.Theme) Option {
	return func(g *Game) {
		g.theme = t
	}
}

// WithGhost toggles the landing preview.
func WithGhost(enabled bool) Option {
	return func(g *Game) {
		g.ghost = enabled
	}
}

// New creates a blocks game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		theme: theme.Default(),
		ghost: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blocks"
}

// Reset starts a fresh run. The seed and best score come from cfg.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.config = cfg
	g.dt = time.Second / time.Duration(cfg.TickRate)
	g.newBest = false

	opts := []engine.Option{engine.WithBest(cfg.Best)}
	if cfg.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Seed))
	}
	g.eng = engine.New(opts...)
	g.eng.Start()
}

// Step applies the frame's actions in order and advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	intents := make([]engine.Intent, 0, in.Len())
	for _, a := range in.Actions {
		if intent, ok := actionIntents[a]; ok {
			intents = append(intents, intent)
		}
	}

	events := g.eng.Step(g.dt, intents...)
	if engine.CountKind(events, engine.EventNewBest) > 0 {
		g.newBest = true
	}
	return core.StepResult{
		State: g.State(),
		Cues:  CuesFor(events),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.eng.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		Best:     snap.Best,
		Lines:    snap.Lines,
		Level:    snap.Level,
		Started:  snap.State != engine.StateNotStarted,
		GameOver: snap.State == engine.StateGameOver,
		Paused:   snap.State == engine.StatePaused,
	}
}

// SetBest raises the best score shown during the run.
// Lower values are ignored.
func (g *Game) SetBest(best int) {
	if best > g.eng.Snapshot().Best {
		g.eng.SetBest(best)
	}
}

// Snapshot exposes the engine state for tests and tools.
func (g *Game) Snapshot() engine.Snapshot {
	return g.eng.Snapshot()
}

// CuesFor converts engine events into presentation cues, keeping order.
func CuesFor(events []engine.Event) []core.Cue {
	var cues []core.Cue
	for _, ev := range events {
		switch ev.Kind {
		case engine.EventMoved:
			cues = append(cues, core.CueMove)
		case engine.EventRotated:
			cues = append(cues, core.CueRotate)
		case engine.EventPieceLocked:
			cues = append(cues, core.CueDrop)
		case engine.EventLinesCleared:
			cues = append(cues, core.CueLine)
		case engine.EventHeld:
			cues = append(cues, core.CueHold)
		case engine.EventLevelUp:
			cues = append(cues, core.CueLevelUp)
		case engine.EventGameOver:
			cues = append(cues, core.CueGameOver)
		}
	}
	return cues
}
