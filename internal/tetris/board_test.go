package tetris

import "testing"

// fillRow occupies every cell of a row except the listed columns.
func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool)
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < Width; x++ {
		if !skip[x] {
			b.cells[y][x] = Cell(KindJ)
		}
	}
}

func TestBoardBounds(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		x, y     int
		inBounds bool
	}{
		{0, 0, true},
		{Width - 1, Height - 1, true},
		{-1, 0, false},
		{Width, 0, false},
		{0, -1, false},
		{0, Height, false},
	}

	for _, tt := range tests {
		if got := b.InBounds(tt.x, tt.y); got != tt.inBounds {
			t.Errorf("InBounds(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.inBounds)
		}
		if _, ok := b.At(tt.x, tt.y); ok != tt.inBounds {
			t.Errorf("At(%d, %d) ok = %v, want %v", tt.x, tt.y, ok, tt.inBounds)
		}
	}

	// Outside the grid counts as occupied so walls block movement.
	if !b.IsOccupied(-1, 5) || !b.IsOccupied(Width, 5) || !b.IsOccupied(0, Height) {
		t.Error("out-of-bounds coordinates should report occupied")
	}
	if b.IsOccupied(0, 0) {
		t.Error("empty in-bounds cell should not report occupied")
	}
}

func TestCanPlace(t *testing.T) {
	b := NewBoard()
	b.cells[10][4] = Cell(KindT)

	tests := []struct {
		name  string
		cells [4]Offset
		want  bool
	}{
		{"open area", [4]Offset{{0, 5}, {1, 5}, {2, 5}, {3, 5}}, true},
		{"overlaps occupied", [4]Offset{{3, 10}, {4, 10}, {5, 10}, {6, 10}}, false},
		{"outside left wall", [4]Offset{{-1, 5}, {0, 5}, {1, 5}, {2, 5}}, false},
		{"outside right wall", [4]Offset{{7, 5}, {8, 5}, {9, 5}, {10, 5}}, false},
		{"below floor", [4]Offset{{0, Height - 1}, {1, Height - 1}, {2, Height - 1}, {0, Height}}, false},
		{"hidden buffer is placeable", [4]Offset{{4, 0}, {5, 0}, {4, 1}, {5, 1}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CanPlace(tt.cells); got != tt.want {
				t.Errorf("CanPlace(%v) = %v, want %v", tt.cells, got, tt.want)
			}
		})
	}
}

func TestLock(t *testing.T) {
	b := NewBoard()
	cells := [4]Offset{{4, 20}, {5, 20}, {4, 21}, {5, 21}}

	if !b.Lock(cells, KindO) {
		t.Fatal("Lock on empty cells should succeed")
	}
	for _, c := range cells {
		got, _ := b.At(c.X, c.Y)
		if got != Cell(KindO) {
			t.Errorf("cell %v = %v, want KindO", c, got)
		}
	}

	// Locking over occupied cells must refuse, leaving the grid intact.
	if b.Lock(cells, KindT) {
		t.Error("Lock over occupied cells should refuse")
	}
	got, _ := b.At(4, 20)
	if got != Cell(KindO) {
		t.Error("refused Lock must not alter the grid")
	}
}

func TestCompletedRows(t *testing.T) {
	b := NewBoard()

	fillRow(b, Height-1)       // full
	fillRow(b, Height-2, 3)    // one gap
	fillRow(b, Height-5)       // full, non-contiguous
	fillRow(b, HiddenRows-1)   // full row inside the hidden buffer

	rows := b.CompletedRows()
	want := []int{HiddenRows - 1, Height - 5, Height - 1}
	if len(rows) != len(want) {
		t.Fatalf("CompletedRows() = %v, want %v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("CompletedRows() = %v, want %v (top to bottom)", rows, want)
		}
	}
}

func TestClearRowsSingle(t *testing.T) {
	b := NewBoard()
	fillRow(b, Height-1)
	b.cells[Height-2][0] = Cell(KindL) // marker above the cleared row

	b.ClearRows([]int{Height - 1})

	for x := 0; x < Width; x++ {
		if b.cells[Height-1][x] != CellEmpty && x != 0 {
			t.Errorf("bottom row cell %d should be empty after clear", x)
		}
	}
	// Marker shifted down by one.
	if b.cells[Height-1][0] != Cell(KindL) {
		t.Error("cell above the cleared row should shift down by one")
	}
	if b.cells[Height-2][0] != CellEmpty {
		t.Error("vacated cell should be empty")
	}
}

func TestClearRowsNonContiguous(t *testing.T) {
	b := NewBoard()

	// Markers on three surviving rows interleaved with two full rows.
	fillRow(b, Height-1)
	b.cells[Height-2][2] = Cell(KindS) // one cleared row below: shifts by 1
	fillRow(b, Height-3)
	b.cells[Height-4][7] = Cell(KindZ) // two cleared rows below: shifts by 2
	b.cells[Height-5][5] = Cell(KindT)

	b.ClearRows([]int{Height - 3, Height - 1})

	if b.cells[Height-1][2] != Cell(KindS) {
		t.Error("row above one cleared row should shift down by one")
	}
	if b.cells[Height-2][7] != Cell(KindZ) {
		t.Error("row above two cleared rows should shift down by two")
	}
	if b.cells[Height-3][5] != Cell(KindT) {
		t.Error("higher marker should shift down by two as well")
	}
}

func TestClearRowsOrderIndependent(t *testing.T) {
	build := func() *Board {
		b := NewBoard()
		fillRow(b, Height-1)
		fillRow(b, Height-4)
		b.cells[Height-2][1] = Cell(KindI)
		b.cells[Height-6][8] = Cell(KindJ)
		return b
	}

	a := build()
	a.ClearRows([]int{Height - 4, Height - 1})

	c := build()
	c.ClearRows([]int{Height - 1, Height - 4})

	if a.cells != c.cells {
		t.Error("ClearRows should produce the same board regardless of row order in one call")
	}
}

func TestBoardResetAndIsEmpty(t *testing.T) {
	b := NewBoard()
	if !b.IsEmpty() {
		t.Error("new board should be empty")
	}

	fillRow(b, 10)
	if b.IsEmpty() {
		t.Error("board with cells should not be empty")
	}

	b.Reset()
	if !b.IsEmpty() {
		t.Error("reset board should be empty")
	}
}

func TestCellsReturnsCopy(t *testing.T) {
	b := NewBoard()
	b.cells[5][5] = Cell(KindT)

	snap := b.Cells()
	snap[5][5] = CellEmpty

	if b.cells[5][5] != Cell(KindT) {
		t.Error("mutating the snapshot must not alter the board")
	}
}
