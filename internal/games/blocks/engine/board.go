package engine

// Board dimensions in cells.
const (
	Width  = 10
	Height = 20
)

// Board is the playfield. Each cell holds the type of the piece that
// settled there, or None. Row 0 is the top visible row.
type Board [Height][Width]PieceType

// Occupied reports whether the cell at x, y holds a settled block.
// Cells outside the grid are reported empty.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return b[y][x] != None
}

// Collides reports whether the piece overlaps a wall, the floor, or a settled block.
// Cells above row 0 are only checked against the floor, which lets pieces
// spawn partially above the visible grid.
func Collides(b *Board, p Piece) bool {
	for y := 0; y < p.Shape.rows; y++ {
		for x := 0; x < p.Shape.cols; x++ {
			if !p.Shape.cells[y][x] {
				continue
			}
			bx, by := p.X+x, p.Y+y
			if by < 0 {
				continue
			}
			if bx < 0 || bx >= Width || by >= Height {
				return true
			}
			if b[by][bx] != None {
				return true
			}
		}
	}
	return false
}

// Landing returns the piece dropped as far as it can fall.
// Renderers use it to draw the ghost piece.
func Landing(b *Board, p Piece) Piece {
	for !Collides(b, p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p
}

// merge writes the cells of p into the board.
func (b *Board) merge(p Piece) {
	p.Cells(func(x, y int) {
		if x >= 0 && x < Width && y >= 0 && y < Height {
			b[y][x] = p.Type
		}
	})
}

// rowFull reports whether every cell of row y is occupied.
func (b *Board) rowFull(y int) bool {
	for x := 0; x < Width; x++ {
		if b[y][x] == None {
			return false
		}
	}
	return true
}

// clearFullRows removes every full row, shifts the rows above down and
// refills the top with empty rows. It returns the number of rows removed.
func (b *Board) clearFullRows() int {
	cleared := 0
	for y := Height - 1; y >= 0; y-- {
		if !b.rowFull(y) {
			continue
		}
		for r := y; r > 0; r-- {
			b[r] = b[r-1]
		}
		b[0] = [Width]PieceType{}
		cleared++
		// The row shifted into y has not been checked yet.
		y++
	}
	return cleared
}
