package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/blocks/engine"
)

// Layout in screen characters. Board cells are two characters wide.
const (
	cellW    = 2
	boardW   = engine.Width*cellW + 2
	boardH   = engine.Height + 2
	sideW    = 14
	previewH = 6
	gap      = 1
	layoutW  = sideW + gap + boardW + gap + sideW
	layoutH  = boardH
)

const (
	ghostGlyph = "░░"
	gridGlyph  = "· "
)

// MinScreen returns the smallest screen the playfield fits in.
func MinScreen() (w, h int) {
	return layoutW, layoutH
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	colors := g.theme.Colors
	dst.FillCell(core.Cell{Rune: ' ', Bg: colors.Background})

	if dst.Width() < layoutW || dst.Height() < layoutH {
		msg := fmt.Sprintf("Terminal too small: need %dx%d", layoutW, layoutH)
		dst.DrawTextCenteredColored(dst.Height()/2, msg, colors.Text)
		return
	}

	snap := g.eng.Snapshot()
	x0 := (dst.Width() - layoutW) / 2
	y0 := (dst.Height() - layoutH) / 2

	left := core.NewRect(x0, y0, sideW, layoutH)
	board := core.NewRect(left.Right()+gap, y0, boardW, boardH)
	right := core.NewRect(board.Right()+gap, y0, sideW, layoutH)

	g.drawBoard(dst, board, snap)

	holdBox := core.NewRect(left.X, left.Y, sideW, previewH)
	g.drawPreview(dst, holdBox, "HOLD", snap.Held, snap.HasHeld, !snap.CanHold)

	nextBox := core.NewRect(right.X, right.Y, sideW, previewH)
	g.drawPreview(dst, nextBox, "NEXT", snap.Next, snap.HasNext, false)

	g.drawStats(dst, core.NewRect(left.X, holdBox.Bottom()+1, sideW, layoutH-previewH-1), snap)

	switch snap.State {
	case engine.StatePaused:
		g.drawCenteredMessage(dst, board, "PAUSED", "Press P to resume")
	case engine.StateGameOver:
		title := "GAME OVER"
		if g.newBest {
			title = "NEW BEST!"
		}
		g.drawCenteredMessage(dst, board, title, "R restart  Q quit")
	}
}

// drawBoard draws the well: settled blocks, ghost and active piece.
func (g *Game) drawBoard(dst *core.Screen, r core.Rect, snap engine.Snapshot) {
	colors := g.theme.Colors
	dst.FillRect(r, core.Cell{Rune: ' ', Bg: colors.Board})
	dst.DrawBoxColored(r, colors.Outline)

	ix, iy := r.X+1, r.Y+1
	for y := 0; y < engine.Height; y++ {
		for x := 0; x < engine.Width; x++ {
			t := snap.Board[y][x]
			if t == engine.None {
				dst.DrawTextColored(ix+x*cellW, iy+y, gridGlyph, colors.Grid)
				continue
			}
			dst.DrawTextColored(ix+x*cellW, iy+y, g.theme.Glyph(t), g.theme.PieceColor(t))
		}
	}

	if !snap.HasActive || snap.State == engine.StateNotStarted {
		return
	}

	if g.ghost && snap.State != engine.StateGameOver {
		ghost := engine.Landing(&snap.Board, snap.Active)
		ghost.Cells(func(x, y int) {
			if y >= 0 && !snap.Board.Occupied(x, y) {
				dst.DrawTextColored(ix+x*cellW, iy+y, ghostGlyph, colors.Ghost)
			}
		})
	}

	glyph, color := g.theme.Glyph(snap.Active.Type), g.theme.PieceColor(snap.Active.Type)
	snap.Active.Cells(func(x, y int) {
		if y >= 0 {
			dst.DrawTextColored(ix+x*cellW, iy+y, glyph, color)
		}
	})
}

// drawPreview draws a boxed piece centered in r.
func (g *Game) drawPreview(dst *core.Screen, r core.Rect, label string, p engine.Piece, ok, dimmed bool) {
	colors := g.theme.Colors
	dst.FillRect(r, core.Cell{Rune: ' ', Bg: colors.Panel})
	dst.DrawBoxColored(r, colors.Outline)
	dst.DrawTextColored(r.X+2, r.Y, " "+label+" ", colors.Text)
	if !ok {
		return
	}

	minX, minY, maxX, maxY := p.Shape.Cols(), p.Shape.Rows(), -1, -1
	for y := 0; y < p.Shape.Rows(); y++ {
		for x := 0; x < p.Shape.Cols(); x++ {
			if p.Shape.Filled(x, y) {
				minX, maxX = min(minX, x), max(maxX, x)
				minY, maxY = min(minY, y), max(maxY, y)
			}
		}
	}
	if maxX < 0 {
		return
	}

	w := (maxX - minX + 1) * cellW
	h := maxY - minY + 1
	px := r.X + (r.W-w)/2
	py := r.Y + (r.H-h)/2

	glyph, color := g.theme.Glyph(p.Type), g.theme.PieceColor(p.Type)
	if dimmed {
		color = colors.Ghost
	}
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if p.Shape.Filled(x, y) {
				dst.DrawTextColored(px+(x-minX)*cellW, py+(y-minY), glyph, color)
			}
		}
	}
}

func (g *Game) drawStats(dst *core.Screen, r core.Rect, snap engine.Snapshot) {
	colors := g.theme.Colors
	dst.FillRect(r, core.Cell{Rune: ' ', Bg: colors.Panel})

	stats := []struct {
		label string
		value int
	}{
		{"SCORE", snap.Score},
		{"BEST", snap.Best},
		{"LEVEL", snap.Level},
		{"LINES", snap.Lines},
	}
	for i, s := range stats {
		y := r.Y + i*3
		dst.DrawTextColored(r.X+1, y, s.label, core.ColorGray)
		dst.DrawTextColored(r.X+1, y+1, fmt.Sprintf("%d", s.value), colors.Text)
	}
}

// drawCenteredMessage draws a message box in the center of r.
func (g *Game) drawCenteredMessage(dst *core.Screen, r core.Rect, title, subtitle string) {
	colors := g.theme.Colors
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	cx, cy := r.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' ', Bg: colors.Panel})
	dst.DrawBoxColored(box, colors.Outline)
	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorYellow)
	dst.DrawTextColored(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, colors.Text)
}
