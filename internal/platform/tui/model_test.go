package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// fakeGame records frames and ends the run when told to.
type fakeGame struct {
	resets  []core.RuntimeConfig
	frames  [][]core.Action
	state   core.GameState
	cues    []core.Cue
	endNext bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
	g.state = core.GameState{Best: cfg.Best, Level: 1, Started: true}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone().Actions)
	if g.endNext {
		g.state.GameOver = true
	}
	return core.StepResult{State: g.state, Cues: g.cues}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawTextColored(0, 0, "FAKE", core.ColorDefault)
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) SetBest(best int) { g.state.Best = max(g.state.Best, best) }

type fakeSound struct {
	played []core.Cue
	muted  bool
}

func (s *fakeSound) Play(c core.Cue) { s.played = append(s.played, c) }
func (s *fakeSound) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store, opts ...ModelOption) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 7}
	opts = append([]ModelOption{WithScreenshotDir(filepath.Join(t.TempDir(), "shots"))}, opts...)
	return NewModel(g, store, cfg, opts...)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T", next)
		}
	}
	return m
}

func tick() tea.Msg { return TickMsg{} }

func TestModelStartsRun(t *testing.T) {
	g := &fakeGame{}
	newTestModel(t, g, nil)

	if len(g.resets) != 1 {
		t.Fatalf("expected 1 reset, got %d", len(g.resets))
	}
	if g.resets[0].Seed != 7 {
		t.Errorf("expected seed 7, got %d", g.resets[0].Seed)
	}
}

func TestModelKeysReachGameInOrder(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = send(t, m, runeKey('a'), tea.KeyMsg{Type: tea.KeySpace}, runeKey('z'), tick(), tick())

	if len(g.frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(g.frames))
	}
	want := []core.Action{core.ActionLeft, core.ActionHardDrop, core.ActionRotateCCW}
	if len(g.frames[0]) != len(want) {
		t.Fatalf("frame 0 = %v, want %v", g.frames[0], want)
	}
	for i := range want {
		if g.frames[0][i] != want[i] {
			t.Errorf("frame 0 action %d = %v, want %v", i, g.frames[0][i], want[i])
		}
	}
	if len(g.frames[1]) != 0 {
		t.Errorf("frame 1 should be empty, got %v", g.frames[1])
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestModelPlaysCues(t *testing.T) {
	g := &fakeGame{cues: []core.Cue{core.CueDrop, core.CueLine}}
	sound := &fakeSound{}
	m := newTestModel(t, g, nil, WithCuePlayer(sound))

	send(t, m, tick())

	if len(sound.played) != 2 || sound.played[0] != core.CueDrop || sound.played[1] != core.CueLine {
		t.Errorf("expected [drop line], got %v", sound.played)
	}
}

func TestModelMute(t *testing.T) {
	sound := &fakeSound{}
	m := newTestModel(t, &fakeGame{}, nil, WithCuePlayer(sound))

	m = send(t, m, runeKey('m'))
	if !sound.muted {
		t.Error("expected muted")
	}
	if !strings.Contains(m.View(), "sound off") {
		t.Error("expected mute status in view")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(t, g, store, WithUser("alice"))

	g.state.Score = 300
	g.state.Lines = 3
	g.state.Level = 1
	g.endNext = true
	m = send(t, m, tick(), tick(), tick())

	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 saved run, got %d", len(runs))
	}
	if runs[0].Score != 300 || runs[0].Lines != 3 || runs[0].Player != "alice" {
		t.Errorf("unexpected run %+v", runs[0])
	}
}

func TestModelLoadsBestFromStore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.Run{GameID: "fake", Score: 999}); err != nil {
		t.Fatal(err)
	}

	g := &fakeGame{}
	newTestModel(t, g, store)

	if g.resets[0].Best != 999 {
		t.Errorf("expected best 999, got %d", g.resets[0].Best)
	}
}

func TestModelPicksUpBestFromOtherSessions(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &fakeGame{}
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 1, Seed: 7}
	m := NewModel(g, store, cfg)

	// Another session finishes a run while this one is playing.
	if _, err := store.SaveRun(storage.Run{GameID: "fake", Player: "bob", Score: 1500}); err != nil {
		t.Fatal(err)
	}

	for range refreshTicks(cfg.TickRate) - 1 {
		m = send(t, m, tick())
	}
	if g.state.Best != 0 {
		t.Fatalf("best refreshed early: %d", g.state.Best)
	}

	m = send(t, m, tick())
	if g.state.Best != 1500 {
		t.Errorf("expected best 1500, got %d", g.state.Best)
	}
	if m.State().Best != 1500 {
		t.Errorf("model state best = %d, want 1500", m.State().Best)
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = send(t, m, runeKey('r'), tick())
	if len(g.resets) != 1 {
		t.Fatalf("restart during play should be ignored, got %d resets", len(g.resets))
	}

	g.endNext = true
	g.state.Score = 50
	m = send(t, m, tick())
	g.endNext = false

	send(t, m, runeKey('r'), tick())
	if len(g.resets) != 2 {
		t.Fatalf("expected restart after game over, got %d resets", len(g.resets))
	}
	if g.resets[1].Best != 50 {
		t.Errorf("expected best 50 carried over, got %d", g.resets[1].Best)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if len(g.resets) != 1 {
		t.Errorf("resize should not reset the run, got %d resets", len(g.resets))
	}
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("expected 100x39 play area, got %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Fatalf("expected 24 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "FAKE") {
		t.Errorf("expected game output first, got %q", lines[0])
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	m := newTestModel(t, &fakeGame{}, nil, WithScreenshotDir(dir))

	send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "fake_") {
		t.Fatalf("expected one fake_*.txt screenshot, got %v", entries)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "FAKE") {
		t.Errorf("unexpected screenshot content %q", string(data)[:10])
	}
}
