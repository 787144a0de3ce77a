// Package theme holds the cosmetic configuration of the blocks game:
// UI colors, per-piece colors and glyphs, and per-cue sound files.
// Themes never influence gameplay.
package theme

import (
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// DefaultGlyph is drawn for a block when the theme sets none.
// Each board cell is two characters wide.
const DefaultGlyph = "██"

// Colors are the UI color slots.
type Colors struct {
	Background core.Color
	Panel      core.Color
	Board      core.Color
	Grid       core.Color
	Text       core.Color
	Ghost      core.Color
	Outline    core.Color
}

// Sounds maps each cue to a WAV file. Empty slots use a synthesized tone.
type Sounds struct {
	Move     string
	Rotate   string
	Drop     string
	Line     string
	Hold     string
	LevelUp  string
	GameOver string
}

// pieceSlots is indexed by engine.PieceType; index 0 (None) is unused.
type pieceSlots[T any] [len(engine.PieceTypes) + 1]T

// Theme is a complete set of cosmetic slots.
type Theme struct {
	Name   string
	Colors Colors
	Pieces pieceSlots[core.Color]
	Glyphs pieceSlots[string]
	Sounds Sounds
}

// PieceColor returns the color for blocks of the given type.
func (t Theme) PieceColor(p engine.PieceType) core.Color {
	if int(p) >= len(t.Pieces) {
		return core.ColorDefault
	}
	return t.Pieces[p]
}

// Glyph returns the two-character glyph for blocks of the given type.
func (t Theme) Glyph(p engine.PieceType) string {
	if int(p) < len(t.Glyphs) && t.Glyphs[p] != "" {
		return t.Glyphs[p]
	}
	return DefaultGlyph
}

// Sound returns the file configured for a cue, or "".
func (t Theme) Sound(c core.Cue) string {
	switch c {
	case core.CueMove:
		return t.Sounds.Move
	case core.CueRotate:
		return t.Sounds.Rotate
	case core.CueDrop:
		return t.Sounds.Drop
	case core.CueLine:
		return t.Sounds.Line
	case core.CueHold:
		return t.Sounds.Hold
	case core.CueLevelUp:
		return t.Sounds.LevelUp
	case core.CueGameOver:
		return t.Sounds.GameOver
	default:
		return ""
	}
}

// Merge returns base with every non-empty slot of override applied.
// The result takes the override's name when it has one.
func Merge(base, override Theme) Theme {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}

	mergeColor(&out.Colors.Background, override.Colors.Background)
	mergeColor(&out.Colors.Panel, override.Colors.Panel)
	mergeColor(&out.Colors.Board, override.Colors.Board)
	mergeColor(&out.Colors.Grid, override.Colors.Grid)
	mergeColor(&out.Colors.Text, override.Colors.Text)
	mergeColor(&out.Colors.Ghost, override.Colors.Ghost)
	mergeColor(&out.Colors.Outline, override.Colors.Outline)

	for i := range out.Pieces {
		mergeColor(&out.Pieces[i], override.Pieces[i])
		mergeString(&out.Glyphs[i], override.Glyphs[i])
	}

	mergeString(&out.Sounds.Move, override.Sounds.Move)
	mergeString(&out.Sounds.Rotate, override.Sounds.Rotate)
	mergeString(&out.Sounds.Drop, override.Sounds.Drop)
	mergeString(&out.Sounds.Line, override.Sounds.Line)
	mergeString(&out.Sounds.Hold, override.Sounds.Hold)
	mergeString(&out.Sounds.LevelUp, override.Sounds.LevelUp)
	mergeString(&out.Sounds.GameOver, override.Sounds.GameOver)
	return out
}

func mergeColor(dst *core.Color, v core.Color) {
	if !v.IsDefault() {
		*dst = v
	}
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
