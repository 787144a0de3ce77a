package theme

import (
	"sort"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "classic"

func pieces(i, j, l, o, s, z, t core.Color) pieceSlots[core.Color] {
	var p pieceSlots[core.Color]
	p[engine.PieceI] = i
	p[engine.PieceJ] = j
	p[engine.PieceL] = l
	p[engine.PieceO] = o
	p[engine.PieceS] = s
	p[engine.PieceZ] = z
	p[engine.PieceT] = t
	return p
}

var builtins = map[string]Theme{
	"classic": {
		Name: "classic",
		Colors: Colors{
			Board:   "#0b0e14",
			Grid:    "#1c2230",
			Text:    "#e6e6e6",
			Ghost:   "#5a6275",
			Outline: "#3a4252",
		},
		Pieces: pieces("#00f0f0", "#4169e1", "#f0a000", "#f0e000", "#00d070", "#e14b4b", "#b060f0"),
	},
	"neon": {
		Name: "neon",
		Colors: Colors{
			Background: "#05010f",
			Panel:      "#05010f",
			Board:      "#0a0520",
			Grid:       "#1a1040",
			Text:       "#f0f0ff",
			Ghost:      "#6b4fa0",
			Outline:    "#ff00ff",
		},
		Pieces: pieces("#00ffff", "#3d5afe", "#ff9100", "#ffea00", "#00ff85", "#ff1744", "#d500f9"),
	},
	"pastel": {
		Name: "pastel",
		Colors: Colors{
			Board:   "#2e2a36",
			Grid:    "#3b3645",
			Text:    "#f4e9f5",
			Ghost:   "#8d8599",
			Outline: "#c9b8d9",
		},
		Pieces: pieces("#a0e7e5", "#b4c5f5", "#ffd8a8", "#fff3b0", "#b9fbc0", "#ffadad", "#d7b9f5"),
	},
	"mono": {
		Name: "mono",
		Colors: Colors{
			Board:   "#000000",
			Grid:    "#1a1a1a",
			Text:    "#d0d0d0",
			Ghost:   "#4a4a4a",
			Outline: "#808080",
		},
		Pieces: pieces("#f0f0f0", "#b0b0b0", "#c8c8c8", "#e0e0e0", "#a0a0a0", "#909090", "#d8d8d8"),
		Glyphs: glyphs("██", "▓▓", "▒▒", "██", "░░", "▓▓", "▒▒"),
	},
}

func glyphs(i, j, l, o, s, z, t string) pieceSlots[string] {
	var g pieceSlots[string]
	g[engine.PieceI] = i
	g[engine.PieceJ] = j
	g[engine.PieceL] = l
	g[engine.PieceO] = o
	g[engine.PieceS] = s
	g[engine.PieceZ] = z
	g[engine.PieceT] = t
	return g
}

// Builtin returns the named built-in theme.
func Builtin(name string) (Theme, bool) {
	t, ok := builtins[name]
	return t, ok
}

// Default returns the classic theme.
func Default() Theme {
	return builtins[DefaultName]
}

// Names lists the built-in themes alphabetically.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
