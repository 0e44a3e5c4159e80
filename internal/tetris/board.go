package tetris

// Board dimensions. The playfield is the standard 10x20 well plus hidden
// rows above the visible top so pieces can spawn (and kick) out of sight.
const (
	Width         = 10
	VisibleHeight = 20
	HiddenRows    = 4
	Height        = VisibleHeight + HiddenRows
)

// Cell is the content of one board position: CellEmpty, or the Kind of the
// locked piece that fills it (used for coloring).
type Cell int8

// CellEmpty marks an unoccupied cell.
const CellEmpty Cell = -1

// Board is the fixed-size playfield grid. Row 0 is the top of the hidden
// buffer; row Height-1 is the floor. Created once per session and mutated in
// place by locking and line-clear compaction.
type Board struct {
	cells [Height][Width]Cell
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset sets every cell to empty.
func (b *Board) Reset() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = CellEmpty
		}
	}
}

// InBounds reports whether (x, y) addresses a cell of the grid,
// hidden buffer included.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// At returns the cell at (x, y). The second return is false for
// out-of-bounds coordinates.
func (b *Board) At(x, y int) (Cell, bool) {
	if !b.InBounds(x, y) {
		return CellEmpty, false
	}
	return b.cells[y][x], true
}

// IsOccupied reports whether (x, y) holds a locked cell. Coordinates outside
// the grid count as occupied, so walls and floor block movement uniformly.
func (b *Board) IsOccupied(x, y int) bool {
	if !b.InBounds(x, y) {
		return true
	}
	return b.cells[y][x] != CellEmpty
}

// CanPlace reports whether every candidate cell is inside the grid and
// currently empty.
func (b *Board) CanPlace(cells [4]Offset) bool {
	for _, c := range cells {
		if !b.InBounds(c.X, c.Y) {
			return false
		}
		if b.cells[c.Y][c.X] != CellEmpty {
			return false
		}
	}
	return true
}

// Lock writes the kind into every given cell. Callers must validate with
// CanPlace first; Lock refuses (returning false) rather than corrupting the
// grid if the contract is violated.
func (b *Board) Lock(cells [4]Offset, kind Kind) bool {
	if !b.CanPlace(cells) {
		return false
	}
	for _, c := range cells {
		b.cells[c.Y][c.X] = Cell(kind)
	}
	return true
}

// CompletedRows returns the indices of fully occupied rows, top to bottom.
func (b *Board) CompletedRows() []int {
	var rows []int
	for y := 0; y < Height; y++ {
		full := true
		for x := 0; x < Width; x++ {
			if b.cells[y][x] == CellEmpty {
				full = false
				break
			}
		}
		if full {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearRows removes the given rows, shifting every surviving row down by the
// number of cleared rows below it and refilling the vacated top rows with
// empty cells. Handles non-contiguous rows in a single call.
func (b *Board) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}

	cleared := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < Height {
			cleared[y] = true
		}
	}

	// Compact surviving rows toward the floor.
	write := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if cleared[y] {
			continue
		}
		b.cells[write] = b.cells[y]
		write--
	}
	for ; write >= 0; write-- {
		for x := 0; x < Width; x++ {
			b.cells[write][x] = CellEmpty
		}
	}
}

// IsEmpty reports whether no cell of the board is occupied.
// Used for perfect-clear detection.
func (b *Board) IsEmpty() bool {
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x] != CellEmpty {
				return false
			}
		}
	}
	return true
}

// Cells returns a copy of the grid for snapshots. Row 0 is the top of the
// hidden buffer.
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, Height)
	for y := range b.cells {
		row := make([]Cell, Width)
		copy(row, b.cells[y][:])
		out[y] = row
	}
	return out
}
