package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/audio"
	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
	"github.com/vovakirdan/tui-blocks/internal/storage"
)

var (
	flagTheme     string
	flagThemeFile string
	flagNoGhost   bool
	flagMute      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of blocks.

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Space            - Hard drop
  Up, X / Z        - Rotate clockwise / counter-clockwise
  C                - Hold
  P/Esc            - Pause
  R                - Restart (after game over)
  M                - Mute
  Ctrl+S           - Screenshot
  ?                - Help
  Q/Ctrl+C         - Quit

Examples:
  blocks play
  blocks play --theme pastel --no-ghost
  blocks play --theme-file ./my-theme.yaml
  blocks play --seed 42 --fps 30`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play options on cmd. They are shared between
// the root command and "play".
func addPlayFlags(cmd *cobra.Command) {
	addThemeFlags(cmd)
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound muted")
}

func runPlay(cmd *cobra.Command, _ []string) {
	settings := loadSettings(cmd)
	th := loadTheme(settings)

	width, height := terminalSize()
	if minW, minH := blocks.MinScreen(); width < minW || height-1 < minH {
		logger.Warn("terminal is smaller than the playfield", "size", fmt.Sprintf("%dx%d", width, height), "need", fmt.Sprintf("%dx%d", minW, minH+1))
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.TickRate,
		Seed:     flagSeed,
	}

	game := blocks.New(
		blocks.WithTheme(th),
		blocks.WithGhost(settings.Display.Ghost),
	)

	// Open score storage
	store, err := storage.Open(settings.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var opts []tui.ModelOption
	if user := os.Getenv("USER"); user != "" {
		opts = append(opts, tui.WithUser(user))
	}
	if player := openAudio(settings, th); player != nil {
		defer player.Close()
		opts = append(opts, tui.WithCuePlayer(player))
	}

	runErr := tui.Run(game, store, cfg, opts...)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("error running game", "error", runErr)
		os.Exit(1)
	}
}

// openAudio starts the cue player. It returns nil when sound is disabled
// or no audio device is available.
func openAudio(settings config.BlocksConfig, src audio.SoundSource) *audio.Player {
	if !settings.Audio.Enabled {
		return nil
	}

	player := audio.NewPlayer(settings.Audio.Volume)
	for _, err := range player.Load(src) {
		logger.Warn("using synthesized sound", "error", err)
	}
	if err := player.Init(); err != nil {
		logger.Warn("audio unavailable", "error", err)
		return nil
	}
	player.SetMuted(flagMute)
	return player
}
