package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}

// Default returns the hardcoded default configuration.
// It matches defaults/blocks.yaml.
func Default() BlocksConfig {
	return BlocksConfig{
		TickRate: 60,
		Display: DisplayConfig{
			Ghost: true,
			Theme: "classic",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Storage: StorageConfig{
			DBPath: "~/.blocks/scores.db",
		},
		Server: ServerConfig{
			Addr:        ":2222",
			HostKeyPath: ".ssh/blocks_ed25519",
		},
	}
}
