// Package engine implements the falling-block simulation: board, pieces,
// bag randomizer, rotation with kicks, gravity, line clears, scoring and
// the run lifecycle. It is pure logic with no rendering, input or I/O;
// a driver feeds it intents and elapsed time and relays the returned events.
package engine

import (
	"math/rand"
	"time"
)

// kicks are the horizontal offsets tried, in order, after a rotation.
// There is no per-piece kick data and no vertical kick.
var kicks = [...]int{0, -1, 1, -2, 2}

// Engine owns one run: the board, the active, next and held pieces,
// the bag and the timing counters. It is not safe for concurrent use.
type Engine struct {
	rng *rand.Rand
	bag *Bag

	board     Board
	active    Piece
	next      Piece
	hasActive bool
	held      PieceType
	canHold   bool

	score int
	lines int
	level int
	best  int
	// beaten is set once per run when the score first passes best.
	beaten bool

	dropInterval time.Duration
	dropTimer    time.Duration

	state  State
	events []Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed seeds the bag shuffler for reproducible runs.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source used by the bag.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithBest injects the best score known before the run.
func WithBest(best int) Option {
	return func(e *Engine) {
		e.best = max(0, best)
	}
}

// New creates an engine in the not-started state.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.clear()
	return e
}

// clear returns every run field to its initial value.
func (e *Engine) clear() {
	e.bag = NewBag(e.rng)
	e.board = Board{}
	e.active = Piece{}
	e.next = Piece{}
	e.hasActive = false
	e.held = None
	e.canHold = true
	e.score = 0
	e.lines = 0
	e.level = 1
	e.beaten = false
	e.dropInterval = DropInterval(1)
	e.dropTimer = 0
}

// Start begins a fresh run from any state.
func (e *Engine) Start() []Event {
	e.clear()
	e.active = Spawn(e.bag.Next())
	e.next = Spawn(e.bag.Next())
	e.hasActive = true
	e.state = StateRunning
	e.emit(Event{Kind: EventStarted})
	return e.flush()
}

// Reset abandons the current run and returns to not-started.
// The best score is kept.
func (e *Engine) Reset() []Event {
	e.clear()
	e.state = StateNotStarted
	e.emit(Event{Kind: EventReset})
	return e.flush()
}

// SetBest replaces the known best score. Lower values than the current
// run's score are raised to it.
func (e *Engine) SetBest(best int) {
	e.best = max(0, best, e.score)
}

// Advance accumulates dt toward the drop interval and applies at most one
// gravity tick. It does nothing unless the run is running.
func (e *Engine) Advance(dt time.Duration) []Event {
	e.advance(dt)
	return e.flush()
}

// Apply executes one intent. It reports whether the intent changed the state;
// rejected intents are silent no-ops.
func (e *Engine) Apply(in Intent) ([]Event, bool) {
	ok := e.apply(in)
	return e.flush(), ok
}

// Step applies intents in order, then advances time by dt.
// Each intent, including a hard drop with its lock, completes before the next.
func (e *Engine) Step(dt time.Duration, intents ...Intent) []Event {
	for _, in := range intents {
		e.apply(in)
	}
	e.advance(dt)
	return e.flush()
}

func (e *Engine) advance(dt time.Duration) {
	if e.state != StateRunning {
		return
	}
	if dt > 0 {
		e.dropTimer += dt
	}
	if e.dropTimer < e.dropInterval {
		return
	}
	e.dropTimer = 0
	e.gravity()
}

func (e *Engine) apply(in Intent) bool {
	if in == IntentTogglePause {
		return e.togglePause()
	}
	if e.state != StateRunning || !e.hasActive {
		return false
	}

	switch in {
	case IntentMoveLeft:
		return e.shift(-1)
	case IntentMoveRight:
		return e.shift(1)
	case IntentSoftDrop:
		return e.softDrop()
	case IntentHardDrop:
		e.hardDrop()
		return true
	case IntentRotateCW:
		return e.rotate(Clockwise)
	case IntentRotateCCW:
		return e.rotate(CounterClockwise)
	case IntentHold:
		return e.hold()
	default:
		return false
	}
}

func (e *Engine) togglePause() bool {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
		e.emit(Event{Kind: EventPaused})
		return true
	case StatePaused:
		e.state = StateRunning
		e.emit(Event{Kind: EventResumed})
		return true
	default:
		return false
	}
}

// try replaces the active piece with candidate if it fits.
func (e *Engine) try(candidate Piece) bool {
	if Collides(&e.board, candidate) {
		return false
	}
	e.active = candidate
	return true
}

func (e *Engine) shift(dx int) bool {
	if !e.try(e.active.Moved(dx, 0)) {
		return false
	}
	e.emit(Event{Kind: EventMoved})
	return true
}

// softDrop moves the piece down one row for one point. At the floor it is a
// no-op; only gravity and hard drops lock.
func (e *Engine) softDrop() bool {
	if !e.try(e.active.Moved(0, 1)) {
		return false
	}
	e.emit(Event{Kind: EventSoftDropped})
	e.addScore(1)
	return true
}

func (e *Engine) hardDrop() {
	dist := 0
	for !Collides(&e.board, e.active.Moved(0, dist+1)) {
		dist++
	}
	e.active = e.active.Moved(0, dist)
	e.emit(Event{Kind: EventHardDropped, Count: dist})
	e.gravity()
}

func (e *Engine) rotate(dir Rotation) bool {
	rotated := e.active.Rotated(dir)
	for _, dx := range kicks {
		if e.try(rotated.Moved(dx, 0)) {
			e.emit(Event{Kind: EventRotated})
			return true
		}
	}
	return false
}

// hold parks the active type. Pieces coming out of hold, or the next piece
// promoted by a first hold, must fit at spawn or the hold is refused.
func (e *Engine) hold() bool {
	if !e.canHold {
		return false
	}
	if e.held == None {
		if Collides(&e.board, e.next) {
			return false
		}
		e.held = e.active.Type
		e.active = e.next
		e.next = Spawn(e.bag.Next())
	} else {
		swapped := Spawn(e.held)
		if Collides(&e.board, swapped) {
			return false
		}
		e.held = e.active.Type
		e.active = swapped
	}
	e.canHold = false
	e.emit(Event{Kind: EventHeld})
	return true
}

// gravity moves the active piece down one row or locks it.
func (e *Engine) gravity() {
	if e.try(e.active.Moved(0, 1)) {
		return
	}
	e.lock()
}

// lock settles the active piece. A piece resting partly above row 0
// ends the run and leaves the board as it was.
func (e *Engine) lock() {
	e.hasActive = false
	e.emit(Event{Kind: EventPieceLocked})
	if e.active.Top() < 0 {
		e.gameOver()
		return
	}
	e.board.merge(e.active)

	if n := e.board.clearFullRows(); n > 0 {
		points := ScoreFor(n, e.level)
		e.lines += n
		e.emit(Event{Kind: EventLinesCleared, Count: n, Points: points})
		e.addScore(points)
		if level := LevelFor(e.lines); level != e.level {
			e.level = level
			e.dropInterval = DropInterval(level)
			e.emit(Event{Kind: EventLevelUp, Level: level})
		}
	}

	e.canHold = true
	e.active = e.next
	e.hasActive = true
	e.next = Spawn(e.bag.Next())
	if Collides(&e.board, e.active) {
		e.gameOver()
	}
}

func (e *Engine) gameOver() {
	e.state = StateGameOver
	e.emit(Event{Kind: EventGameOver, Points: e.score})
}

func (e *Engine) addScore(points int) {
	e.score += points
	if e.score <= e.best {
		return
	}
	e.best = e.score
	if !e.beaten {
		e.beaten = true
		e.emit(Event{Kind: EventNewBest, Points: e.score})
	}
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// flush hands the pending events to the caller.
func (e *Engine) flush() []Event {
	evs := e.events
	e.events = nil
	return evs
}
