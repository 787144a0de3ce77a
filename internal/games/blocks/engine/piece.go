package engine

// PieceType identifies one of the seven tetrominoes.
// The zero value None marks an empty board cell.
type PieceType uint8

const (
	None PieceType = iota
	PieceI
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceZ
	PieceT
)

// PieceTypes lists the playable types in canonical order.
var PieceTypes = [...]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceZ, PieceT}

// String returns the single-letter name of the piece type.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceT:
		return "T"
	default:
		return "."
	}
}

// ParsePieceType maps a single-letter name back to its type.
func ParsePieceType(s string) (PieceType, bool) {
	for _, t := range PieceTypes {
		if t.String() == s {
			return t, true
		}
	}
	return None, false
}

// maxShape bounds shape matrices; every tetromino fits in 4x4.
const maxShape = 4

// Shape is a boolean cell matrix of at most 4x4.
// It is a comparable value: two shapes are equal iff their dimensions and cells match.
type Shape struct {
	rows, cols int
	cells      [maxShape][maxShape]bool
}

// NewShape builds a shape from rows of cells. Rows are truncated to 4x4.
func NewShape(rows [][]bool) Shape {
	var s Shape
	s.rows = min(len(rows), maxShape)
	for y := 0; y < s.rows; y++ {
		s.cols = max(s.cols, min(len(rows[y]), maxShape))
		for x := 0; x < len(rows[y]) && x < maxShape; x++ {
			s.cells[y][x] = rows[y][x]
		}
	}
	return s
}

// Rows returns the number of rows in the matrix.
func (s Shape) Rows() int { return s.rows }

// Cols returns the number of columns in the matrix.
func (s Shape) Cols() int { return s.cols }

// Filled reports whether the matrix cell at column x, row y is set.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return false
	}
	return s.cells[y][x]
}

// topInset returns the index of the first row holding a cell.
func (s Shape) topInset() int {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			if s.cells[y][x] {
				return y
			}
		}
	}
	return 0
}

// Rotation is a quarter-turn direction.
type Rotation int

const (
	Clockwise        Rotation = 1
	CounterClockwise Rotation = -1
)

// Rotate returns the shape turned a quarter in the given direction.
// For an n-row, m-column matrix the result has m rows and n columns.
func (s Shape) Rotate(dir Rotation) Shape {
	n, m := s.rows, s.cols
	out := Shape{rows: m, cols: n}
	for y := 0; y < n; y++ {
		for x := 0; x < m; x++ {
			if dir == Clockwise {
				out.cells[x][n-1-y] = s.cells[y][x]
			} else {
				out.cells[m-1-x][y] = s.cells[y][x]
			}
		}
	}
	return out
}

var spawnShapes = map[PieceType]Shape{
	PieceI: shapeOf("....", "XXXX", "....", "...."),
	PieceJ: shapeOf("X..", "XXX", "..."),
	PieceL: shapeOf("..X", "XXX", "..."),
	PieceO: shapeOf("XX", "XX"),
	PieceS: shapeOf(".XX", "XX.", "..."),
	PieceZ: shapeOf("XX.", ".XX", "..."),
	PieceT: shapeOf(".X.", "XXX", "..."),
}

// shapeOf builds a shape from rows where 'X' marks a filled cell.
func shapeOf(rows ...string) Shape {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, r := range row {
			cells[y][x] = r == 'X'
		}
	}
	return NewShape(cells)
}

// ShapeOf returns the spawn-orientation shape of a piece type.
func ShapeOf(t PieceType) Shape {
	return spawnShapes[t]
}

// Piece is an immutable tetromino placed on the board.
// X and Y locate the top-left corner of the shape matrix in board cells.
type Piece struct {
	Type  PieceType
	Shape Shape
	X, Y  int
}

// Spawn returns a piece of the given type in spawn orientation,
// horizontally centered with its first filled row on board row 0.
func Spawn(t PieceType) Piece {
	shape := ShapeOf(t)
	return Piece{
		Type:  t,
		Shape: shape,
		X:     (Width - shape.Cols()) / 2,
		Y:     -shape.topInset(),
	}
}

// Moved returns a copy of the piece shifted by dx, dy.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece with its shape turned in place.
// The origin is unchanged; kicks are applied by the engine.
func (p Piece) Rotated(dir Rotation) Piece {
	p.Shape = p.Shape.Rotate(dir)
	return p
}

// Cells calls fn with the board coordinates of every filled cell.
func (p Piece) Cells(fn func(x, y int)) {
	for y := 0; y < p.Shape.rows; y++ {
		for x := 0; x < p.Shape.cols; x++ {
			if p.Shape.cells[y][x] {
				fn(p.X+x, p.Y+y)
			}
		}
	}
}

// Top returns the highest board row occupied by the piece.
func (p Piece) Top() int {
	top := p.Bottom()
	p.Cells(func(_, y int) {
		top = min(top, y)
	})
	return top
}

// Bottom returns the lowest board row occupied by the piece.
func (p Piece) Bottom() int {
	bottom := p.Y
	p.Cells(func(_, y int) {
		bottom = max(bottom, y)
	})
	return bottom
}
