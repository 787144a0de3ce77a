package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

func TestBuiltinsAreComplete(t *testing.T) {
	want := []string{"classic", "mono", "neon", "pastel"}
	names := Names()
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("Names() = %v, want %v", names, want)
	}

	for _, name := range names {
		th, ok := Builtin(name)
		if !ok || th.Name != name {
			t.Fatalf("Builtin(%q) = %q, %v", name, th.Name, ok)
		}
		for _, p := range engine.PieceTypes {
			if th.PieceColor(p).IsDefault() {
				t.Errorf("%s: piece %s has no color", name, p)
			}
			if g := th.Glyph(p); len([]rune(g)) != 2 {
				t.Errorf("%s: piece %s glyph %q is not two cells", name, p, g)
			}
		}
		if th.Colors.Text.IsDefault() || th.Colors.Ghost.IsDefault() {
			t.Errorf("%s: text and ghost colors must be set", name)
		}
	}

	if _, ok := Builtin("nope"); ok {
		t.Error("unknown built-in reported as found")
	}
}

func TestMergeIsFieldWise(t *testing.T) {
	base := Default()
	var over Theme
	over.Colors.Grid = "#123456"
	over.Pieces[engine.PieceT] = "1"
	over.Glyphs[engine.PieceO] = "[]"
	over.Sounds.Line = "line.wav"

	got := Merge(base, over)

	if got.Name != base.Name {
		t.Errorf("Name = %q, want base name", got.Name)
	}
	if got.Colors.Grid != "#123456" || got.Colors.Board != base.Colors.Board {
		t.Errorf("colors = %+v", got.Colors)
	}
	if got.PieceColor(engine.PieceT) != "1" || got.PieceColor(engine.PieceI) != base.PieceColor(engine.PieceI) {
		t.Error("piece colors not merged field by field")
	}
	if got.Glyph(engine.PieceO) != "[]" || got.Glyph(engine.PieceI) != DefaultGlyph {
		t.Error("glyphs not merged field by field")
	}
	if got.Sound(core.CueLine) != "line.wav" || got.Sound(core.CueMove) != "" {
		t.Error("sounds not merged field by field")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want core.Color
		ok   bool
	}{
		{"#FFAA00", "#ffaa00", true},
		{"#fa0", "#fa0", true},
		{"208", "208", true},
		{" 7 ", "7", true},
		{"Orange", "208", true},
		{"256", "", false},
		{"-1", "", false},
		{"rgba(0,0,0,0.2)", "", false},
		{"#12345", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseColor(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseYAMLTheme(t *testing.T) {
	doc := `
name: sunset
base: neon
colors:
  bg: "#202020"
  grid: red
  sparkle: "#ffffff"
  text: not-a-color
pieces:
  I: "#ff0000"
  t: 45
  Q: "#00ff00"
glyphs:
  O: "#"
  S: "too long"
sounds:
  line: sounds/line.wav
  gameOver: sounds/over.wav
  whistle: x.wav
speed: 3
`
	th, issues, err := Parse([]byte(doc), "")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	neon, _ := Builtin("neon")
	if th.Name != "sunset" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Colors.Background != "#202020" || th.Colors.Grid != "1" {
		t.Errorf("colors = %+v", th.Colors)
	}
	if th.Colors.Text != neon.Colors.Text {
		t.Errorf("invalid text color should fall back to base, got %q", th.Colors.Text)
	}
	if th.PieceColor(engine.PieceI) != "#ff0000" || th.PieceColor(engine.PieceT) != "45" {
		t.Error("piece colors not applied")
	}
	if th.PieceColor(engine.PieceZ) != neon.PieceColor(engine.PieceZ) {
		t.Error("unset piece color should come from the base")
	}
	if th.Glyph(engine.PieceO) != "##" || th.Glyph(engine.PieceS) != DefaultGlyph {
		t.Errorf("glyphs = %q %q", th.Glyph(engine.PieceO), th.Glyph(engine.PieceS))
	}
	if th.Sound(core.CueLine) != "sounds/line.wav" || th.Sound(core.CueGameOver) != "sounds/over.wav" {
		t.Error("sounds not applied")
	}

	fields := map[string]bool{}
	for _, is := range issues {
		fields[is.Field] = true
	}
	for _, f := range []string{"colors.sparkle", "colors.text", "pieces.Q", "glyphs.S", "sounds.whistle", "speed"} {
		if !fields[f] {
			t.Errorf("missing issue for %s; got %v", f, issues)
		}
	}
	if len(issues) != 6 {
		t.Errorf("got %d issues, want 6: %v", len(issues), issues)
	}
}

func TestParseJSONTheme(t *testing.T) {
	doc := `{"base": "mono", "colors": {"ghost": "#333333"}, "sounds": {"move": "m.wav"}}`

	th, issues, err := Parse([]byte(doc), "classic")
	if err != nil || len(issues) != 0 {
		t.Fatalf("Parse() = %v, %v", issues, err)
	}
	if th.Name != "mono" || th.Colors.Ghost != "#333333" || th.Sound(core.CueMove) != "m.wav" {
		t.Errorf("theme = %+v", th)
	}
}

func TestParseWrongShapes(t *testing.T) {
	tests := []struct {
		name       string
		doc        string
		wantErr    bool
		wantIssues int
	}{
		{"empty document", "", false, 0},
		{"list document", "- a\n- b\n", true, 0},
		{"broken syntax", "colors: [", true, 0},
		{"section is a list", "colors:\n  - red\npieces: 3\n", false, 2},
		{"value is a mapping", "pieces:\n  I:\n    deep: true\n", false, 1},
		{"unknown base", "base: disco\n", false, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th, issues, err := Parse([]byte(tc.doc), "")
			if (err != nil) != tc.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if len(issues) != tc.wantIssues {
				t.Errorf("issues = %v, want %d", issues, tc.wantIssues)
			}
			if th.Name != DefaultName {
				t.Errorf("Name = %q, want %s", th.Name, DefaultName)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	th, issues, err := Resolve("pastel", "")
	if err != nil || len(issues) != 0 || th.Name != "pastel" {
		t.Fatalf("Resolve(pastel) = %q, %v, %v", th.Name, issues, err)
	}

	th, issues, _ = Resolve("vapor", "")
	if th.Name != DefaultName || len(issues) != 1 {
		t.Errorf("unknown name: %q, %v", th.Name, issues)
	}

	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("colors:\n  outline: \"#abcdef\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	th, _, err = Resolve("neon", path)
	if err != nil {
		t.Fatalf("Resolve(file) error = %v", err)
	}
	if th.Name != "neon" || th.Colors.Outline != "#abcdef" {
		t.Errorf("file theme = %q outline %q", th.Name, th.Colors.Outline)
	}

	th, _, err = Resolve("neon", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("missing file should return an error")
	}
	if th.Name != "neon" {
		t.Errorf("missing file should fall back to the named theme, got %q", th.Name)
	}
}
