package engine

import (
	"math/rand"
	"testing"
)

// fillRow occupies row y except the listed columns.
func fillRow(b *Board, y int, except ...int) {
	for x := 0; x < Width; x++ {
		b[y][x] = PieceZ
	}
	for _, x := range except {
		b[y][x] = None
	}
}

func TestCollides(t *testing.T) {
	var occupied Board
	occupied[10][4] = PieceT

	tests := []struct {
		name     string
		board    Board
		piece    Piece
		expected bool
	}{
		{"spawn on empty board", Board{}, Spawn(PieceT), false},
		{"left wall", Board{}, Spawn(PieceT).Moved(-4, 5), true},
		{"touching left wall", Board{}, Spawn(PieceT).Moved(-3, 5), false},
		{"right wall", Board{}, Spawn(PieceO).Moved(5, 5), true},
		{"floor", Board{}, Spawn(PieceO).Moved(0, Height-1), true},
		{"resting on floor", Board{}, Spawn(PieceO).Moved(0, Height-2), false},
		{"occupied cell", occupied, Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: 3, Y: 9}, true},
		{"next to occupied cell", occupied, Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: 5, Y: 9}, false},
		{"above top beyond wall is exempt", Board{}, Piece{Type: PieceO, Shape: ShapeOf(PieceO), X: -5, Y: -3}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(&tc.board, tc.piece); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestCollidesMatchesCellRule(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		var b Board
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				if rng.Float64() < 0.3 {
					b[y][x] = PieceJ
				}
			}
		}

		p := Spawn(PieceTypes[rng.Intn(len(PieceTypes))])
		for range rng.Intn(4) {
			p = p.Rotated(Clockwise)
		}
		p = p.Moved(rng.Intn(17)-7, rng.Intn(27)-4)

		want := false
		p.Cells(func(x, y int) {
			switch {
			case y >= Height:
				want = true
			case y < 0:
			case x < 0 || x >= Width:
				want = true
			case b[y][x] != None:
				want = true
			}
		})

		if got := Collides(&b, p); got != want {
			t.Fatalf("Collides(%+v) = %v, want %v", p, got, want)
		}
	}
}

func TestClearFullRows(t *testing.T) {
	t.Run("adjacent rows", func(t *testing.T) {
		var b Board
		fillRow(&b, 19)
		fillRow(&b, 18)
		b[17][2] = PieceL

		if n := b.clearFullRows(); n != 2 {
			t.Fatalf("clearFullRows() = %d, want 2", n)
		}
		if b[19][2] != PieceL {
			t.Error("row 17 should have shifted to row 19")
		}
		for y := 0; y < Height-1; y++ {
			for x := 0; x < Width; x++ {
				if b[y][x] != None {
					t.Fatalf("cell (%d,%d) should be empty", x, y)
				}
			}
		}
	})

	t.Run("split rows", func(t *testing.T) {
		var b Board
		fillRow(&b, 19)
		fillRow(&b, 18, 0)
		fillRow(&b, 17)
		fillRow(&b, 16, 9)

		want := b
		want[19] = b[18]
		want[18] = b[16]
		want[17] = [Width]PieceType{}
		want[16] = [Width]PieceType{}

		if n := b.clearFullRows(); n != 2 {
			t.Fatalf("clearFullRows() = %d, want 2", n)
		}
		if b != want {
			t.Error("board differs from removing both full rows at once")
		}
	})

	t.Run("no full rows", func(t *testing.T) {
		var b Board
		fillRow(&b, 19, 4)
		before := b
		if n := b.clearFullRows(); n != 0 {
			t.Fatalf("clearFullRows() = %d, want 0", n)
		}
		if b != before {
			t.Error("board should be unchanged")
		}
	})
}

func TestMergeAndOccupied(t *testing.T) {
	var b Board
	b.merge(Spawn(PieceO))

	tests := []struct {
		x, y int
		want bool
	}{
		{4, 0, true},
		{5, 1, true},
		{3, 0, false},
		{4, 2, false},
		{-1, 0, false},
		{Width, 0, false},
		{4, -1, false},
		{4, Height, false},
	}
	for _, tt := range tests {
		if got := b.Occupied(tt.x, tt.y); got != tt.want {
			t.Errorf("Occupied(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPieceTop(t *testing.T) {
	p := Spawn(PieceO)
	if p.Top() != 0 {
		t.Errorf("Top() at spawn = %d, want 0", p.Top())
	}
	if got := p.Moved(0, -1).Top(); got != -1 {
		t.Errorf("Top() one row up = %d, want -1", got)
	}
}

func TestLanding(t *testing.T) {
	var b Board
	fillRow(&b, 19, 0)

	got := Landing(&b, Spawn(PieceO))
	if got.Bottom() != 18 {
		t.Errorf("Landing().Bottom() = %d, want 18", got.Bottom())
	}
	if Collides(&b, got) {
		t.Error("landed piece must not collide")
	}
}
