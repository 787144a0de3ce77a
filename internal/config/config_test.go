package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("display:\n  theme: neon\naudio:\n  enabled: false\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Display.Theme != "neon" || cfg.Audio.Enabled {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if !cfg.Display.Ghost {
		t.Error("ghost should keep its default")
	}
	if cfg.TickRate != 60 || cfg.Audio.Volume != 0.6 {
		t.Errorf("defaults lost: tick_rate=%d volume=%v", cfg.TickRate, cfg.Audio.Volume)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		tickRate   int
		volume     float64
		theme      string
		serverAddr string
	}{
		{"zero tick rate", "tick_rate: 0", 60, 0.6, "classic", ":2222"},
		{"slow tick rate", "tick_rate: 2", MinTickRate, 0.6, "classic", ":2222"},
		{"fast tick rate", "tick_rate: 1000", MaxTickRate, 0.6, "classic", ":2222"},
		{"loud", "audio:\n  volume: 3", 60, 1, "classic", ":2222"},
		{"negative volume", "audio:\n  volume: -1", 60, 0, "classic", ":2222"},
		{"blank strings", "display:\n  theme: \"\"\nserver:\n  addr: \"\"", 60, 0.6, "classic", ":2222"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.doc))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cfg.TickRate != tc.tickRate {
				t.Errorf("TickRate = %d, expected %d", cfg.TickRate, tc.tickRate)
			}
			if cfg.Audio.Volume != tc.volume {
				t.Errorf("Volume = %v, expected %v", cfg.Audio.Volume, tc.volume)
			}
			if cfg.Display.Theme != tc.theme {
				t.Errorf("Theme = %q, expected %q", cfg.Display.Theme, tc.theme)
			}
			if cfg.Server.Addr != tc.serverAddr {
				t.Errorf("Addr = %q, expected %q", cfg.Server.Addr, tc.serverAddr)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("tick_rate: 30\nstorage:\n  db_path: /tmp/x.db\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TickRate != 30 || cfg.Storage.DBPath != "/tmp/x.db" {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("tick_rate: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(bad)
	if err == nil {
		t.Error("malformed custom file should fail")
	}
	if cfg != Default() {
		t.Error("a failed load should still return defaults")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("display:\n  theme: mono\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Theme != "mono" {
		t.Errorf("Theme = %q, expected mono from ./configs", cfg.Display.Theme)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.blocks/scores.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, ".blocks", "scores.db") {
		t.Errorf("ExpandHome() = %q", got)
	}

	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute paths must be unchanged, got %q", got)
	}
}
