package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks"
	"github.com/vovakirdan/tui-blocks/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the blocks SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection plays its own game. Scores are stored per-server and
every user shares the same leaderboard. Sessions have no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key_path from the config

Examples:
  blocks serve                           # Listen on the configured address
  blocks serve --ssh :2222               # Listen on port 2222
  blocks serve --host-key ./my_host_key  # Use specific host key
  blocks serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 2222`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (generated if missing)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addThemeFlags(serveCmd)
}

// addThemeFlags registers the cosmetic options shared with play.
func addThemeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTheme, "theme", "", "Built-in theme name (see 'blocks themes')")
	cmd.Flags().StringVar(&flagThemeFile, "theme-file", "", "Path to a YAML or JSON theme file")
	cmd.Flags().BoolVar(&flagNoGhost, "no-ghost", false, "Hide the landing preview")
}

func runServe(cmd *cobra.Command, _ []string) {
	settings := loadSettings(cmd)
	th := loadTheme(settings)

	addr := settings.Server.Addr
	if flagSSHAddr != "" {
		addr = flagSSHAddr
	}
	hostKey := settings.Server.HostKeyPath
	if flagHostKey != "" {
		hostKey = flagHostKey
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = addr
	cfg.HostKeyPath = hostKey
	cfg.DBPath = settings.Storage.DBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = settings.TickRate
	cfg.NewGame = func() core.Game {
		return blocks.New(
			blocks.WithTheme(th),
			blocks.WithGhost(settings.Display.Ghost),
		)
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		logger.Error("cannot create server", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Starting blocks SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
