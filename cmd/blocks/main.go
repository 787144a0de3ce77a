// blocks is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blocks                   - Play (same as "blocks play")
//	blocks play              - Play a game
//	blocks scores            - Show high scores
//	blocks serve             - Start SSH server for remote play
//	blocks themes            - List built-in themes
//	blocks themes validate   - Check a theme file
//
// Global flags:
//
//	--config <path> - Config file (default: ~/.blocks/configs/blocks.yaml)
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blocks/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "blocks",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blocks",
	Short: "Blocks - a falling-block puzzle in your terminal",
	Long: `Blocks is a falling-block puzzle game for the terminal.
Clear lines by filling rows, level up every ten lines, and chase your best score.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  themes   - List and validate themes

Examples:
  blocks
  blocks play --theme neon
  blocks scores --interactive
  blocks serve --ssh :2222
  blocks themes validate ./my-theme.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocks/scores.db", "Path to scores database")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themesCmd)
}
