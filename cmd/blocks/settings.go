package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/theme"
)

// loadSettings reads the config file and applies explicitly set global flags.
// A missing or broken --config file is reported and the defaults are used.
func loadSettings(cmd *cobra.Command) config.BlocksConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("theme") {
		cfg.Display.Theme = flagTheme
	}
	if flags.Changed("theme-file") {
		cfg.Display.ThemeFile = flagThemeFile
	}
	if flags.Changed("no-ghost") {
		cfg.Display.Ghost = !flagNoGhost
	}
	cfg.Normalize()
	return cfg
}

// loadTheme resolves the configured theme, logging every ignored field.
func loadTheme(cfg config.BlocksConfig) theme.Theme {
	file := cfg.Display.ThemeFile
	if file != "" {
		if expanded, err := config.ExpandHome(file); err == nil {
			file = expanded
		}
	}

	t, issues, err := theme.Resolve(cfg.Display.Theme, file)
	for _, issue := range issues {
		logger.Warn("theme field ignored", "field", issue.Field, "reason", issue.Reason)
	}
	if err != nil {
		logger.Warn("theme file unusable, using base theme", "error", err)
	}
	return t
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
