// Package tui provides the Bubble Tea integration for the blocks game.
// It handles the terminal UI loop, key bindings, cue playback and score keeping.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

// TickMsg drives one fixed simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg at the given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// CuePlayer plays game cues. *audio.Player satisfies it.
type CuePlayer interface {
	Play(core.Cue)
	ToggleMute() bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithCuePlayer routes game cues to p.
func WithCuePlayer(p CuePlayer) ModelOption {
	return func(m *Model) {
		m.sound = p
	}
}

// WithUser sets the player name recorded with saved runs.
func WithUser(name string) ModelOption {
	return func(m *Model) {
		m.user = name
	}
}

// WithScreenshotDir sets where ctrl+s writes screen dumps.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// WithRenderer styles output for a specific terminal, such as an SSH session.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(m *Model) {
		if r != nil {
			m.renderer = r
		}
	}
}

// bestSetter is implemented by games that show a best score that can be
// raised while a run is in progress.
type bestSetter interface {
	SetBest(best int)
}

// bestRefresh is how often the best score is re-read from the store,
// so runs recorded by other sessions show up.
const bestRefresh = 5 * time.Second

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          core.Game
	screen        *core.Screen
	store         *storage.Store
	sound         CuePlayer
	renderer      *lipgloss.Renderer
	user          string
	screenshotDir string
	config        core.RuntimeConfig
	keys          GameKeyMap
	help          help.Model
	inputFrame    core.InputFrame
	gameState     core.GameState
	status        string
	quitting      bool
	ticks         int
	scoreSaved    bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// The best score is read from store when one is available.
func NewModel(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			cfg.Best = max(cfg.Best, best)
		}
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:          game,
		store:         store,
		config:        cfg,
		keys:          DefaultGameKeyMap(),
		help:          h,
		inputFrame:    core.NewInputFrame(),
		screenshotDir: defaultScreenshotDir(),
		renderer:      lipgloss.DefaultRenderer(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.screen = core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH))
	m.help.Width = cfg.ScreenW

	// Start the run now so the first frame and Init see the same state.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".blocks", "screenshots")
	}
	return filepath.Join(home, ".blocks", "screenshots")
}

// playHeight leaves the last terminal row for the help line.
func playHeight(h int) int {
	return max(0, h-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		if m.sound != nil {
			if m.sound.ToggleMute() {
				m.status = "sound off"
			} else {
				m.status = "sound on"
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The run continues;
// the game redraws into the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.sound != nil {
		for _, c := range result.Cues {
			m.sound.Play(c)
		}
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	m.ticks++
	if m.ticks%refreshTicks(m.config.TickRate) == 0 {
		m.refreshBest()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func refreshTicks(tickRate int) int {
	return max(1, max(1, tickRate)*int(bestRefresh/time.Second))
}

// refreshBest raises the game's best score to the store's high score.
func (m *Model) refreshBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil || best <= m.config.Best {
		return
	}
	m.config.Best = best
	if g, ok := m.game.(bestSetter); ok {
		g.SetBest(best)
		m.gameState = m.game.State()
	}
}

// restart begins a new run with a fresh seed, carrying the best score over.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.config.Best = max(m.config.Best, m.gameState.Best, m.gameState.Score)
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.status = ""
	m.inputFrame.Clear()
}

// saveRun records the finished run. Empty runs are not stored.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Player: m.user,
		Score:  m.gameState.Score,
		Lines:  m.gameState.Lines,
		Level:  m.gameState.Level,
	})
}

// saveScreenshot writes the current screen to a text file and returns a status line.
func (m *Model) saveScreenshot() string {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "screenshot failed"
	}
	return "saved " + filepath.Base(path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status + "  " + footer
	}
	footer = helpStyle.Renderer(m.renderer).Render(footer)

	body := RenderScreenWith(m.renderer, m.screen)
	// The full help spans several rows and covers the bottom of the screen.
	if n := strings.Count(footer, "\n"); n > 0 {
		lines := strings.Split(body, "\n")
		body = strings.Join(lines[:max(0, len(lines)-n)], "\n")
	}
	return body + "\n" + footer
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
