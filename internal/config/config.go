// Package config provides YAML-based application configuration for blocks.
// Gameplay constants are fixed and not configurable.
package config

import "github.com/vovakirdan/tui-blocks/internal/core"

// BlocksConfig contains all user-tunable settings.
type BlocksConfig struct {
	TickRate int           `yaml:"tick_rate"` // Simulation ticks per second
	Display  DisplayConfig `yaml:"display"`
	Audio    AudioConfig   `yaml:"audio"`
	Storage  StorageConfig `yaml:"storage"`
	Server   ServerConfig  `yaml:"server"`
}

// DisplayConfig controls cosmetic rendering options.
type DisplayConfig struct {
	Ghost     bool   `yaml:"ghost"`      // Draw the landing preview
	Theme     string `yaml:"theme"`      // Built-in theme name
	ThemeFile string `yaml:"theme_file"` // Optional YAML/JSON theme file
}

// AudioConfig controls sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 (silent) to 1.0
}

// StorageConfig locates the scores database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig holds defaults for the SSH server.
type ServerConfig struct {
	Addr        string `yaml:"addr"`
	HostKeyPath string `yaml:"host_key_path"`
}

// Tick rate bounds accepted by Normalize.
const (
	MinTickRate = 10
	MaxTickRate = 240
)

// Normalize clamps out-of-range values back into their valid ranges
// and fills empty strings with defaults.
func (c *BlocksConfig) Normalize() {
	def := Default()

	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	c.TickRate = core.Clamp(c.TickRate, MinTickRate, MaxTickRate)
	c.Audio.Volume = core.ClampF(c.Audio.Volume, 0, 1)

	if c.Display.Theme == "" {
		c.Display.Theme = def.Display.Theme
	}
	if c.Storage.DBPath == "" {
		c.Storage.DBPath = def.Storage.DBPath
	}
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Server.HostKeyPath == "" {
		c.Server.HostKeyPath = def.Server.HostKeyPath
	}
}
