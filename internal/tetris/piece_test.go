package tetris

import "testing"

func TestCellsForReturnsFourDistinctCells(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		for r := Rotation(0); r < 4; r++ {
			cells := CellsFor(k, r, 0, 0)

			seen := make(map[Offset]bool)
			for _, c := range cells {
				if seen[c] {
					t.Errorf("%v/%v: duplicate cell %v", k, r, c)
				}
				seen[c] = true

				n := k.boxSize()
				if c.X < 0 || c.X >= n || c.Y < 0 || c.Y >= n {
					t.Errorf("%v/%v: cell %v outside %dx%d box", k, r, c, n, n)
				}
			}
			if len(seen) != 4 {
				t.Errorf("%v/%v: expected 4 distinct cells, got %d", k, r, len(seen))
			}
		}
	}
}

func TestCellsForTranslatesByAnchor(t *testing.T) {
	base := CellsFor(KindT, RotSpawn, 0, 0)
	moved := CellsFor(KindT, RotSpawn, 3, 7)

	for i := range base {
		if moved[i].X != base[i].X+3 || moved[i].Y != base[i].Y+7 {
			t.Errorf("cell %d: %v not translated by (3, 7) from %v", i, moved[i], base[i])
		}
	}
}

func TestSpawnShapes(t *testing.T) {
	tests := []struct {
		kind  Kind
		cells [4]Offset
	}{
		{KindI, [4]Offset{{0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{KindO, [4]Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{KindT, [4]Offset{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := CellsFor(tt.kind, RotSpawn, 0, 0)
			if got != tt.cells {
				t.Errorf("CellsFor(%v, spawn) = %v, want %v", tt.kind, got, tt.cells)
			}
		})
	}
}

func TestIPieceRotationStates(t *testing.T) {
	// Spawn: horizontal in row 1 of the 4x4 box.
	for _, c := range CellsFor(KindI, RotSpawn, 0, 0) {
		if c.Y != 1 {
			t.Errorf("spawn cell %v not in row 1", c)
		}
	}
	// Right: vertical in column 2.
	for _, c := range CellsFor(KindI, RotRight, 0, 0) {
		if c.X != 2 {
			t.Errorf("right cell %v not in column 2", c)
		}
	}
	// Half: horizontal in row 2.
	for _, c := range CellsFor(KindI, RotHalf, 0, 0) {
		if c.Y != 2 {
			t.Errorf("180 cell %v not in row 2", c)
		}
	}
	// Left: vertical in column 1.
	for _, c := range CellsFor(KindI, RotLeft, 0, 0) {
		if c.X != 1 {
			t.Errorf("left cell %v not in column 1", c)
		}
	}
}

func TestRotationCycle(t *testing.T) {
	r := RotSpawn
	for i := 0; i < 4; i++ {
		r = r.CW()
	}
	if r != RotSpawn {
		t.Errorf("four CW steps should return to spawn, got %v", r)
	}

	if RotSpawn.CCW() != RotLeft {
		t.Errorf("CCW from spawn should be left, got %v", RotSpawn.CCW())
	}
	if RotLeft.CW() != RotSpawn {
		t.Errorf("CW from left should be spawn, got %v", RotLeft.CW())
	}

	for r := Rotation(0); r < 4; r++ {
		if r.CW().CCW() != r {
			t.Errorf("CW then CCW should be identity for %v", r)
		}
	}
}

func TestOPieceCellsIdenticalAcrossRotations(t *testing.T) {
	spawn := CellsFor(KindO, RotSpawn, 0, 0)
	for r := Rotation(1); r < 4; r++ {
		got := CellsFor(KindO, r, 0, 0)
		// The O box rotates onto itself; the cell set is invariant.
		set := make(map[Offset]bool)
		for _, c := range spawn {
			set[c] = true
		}
		for _, c := range got {
			if !set[c] {
				t.Errorf("O rotation %v produced cell %v outside spawn set", r, c)
			}
		}
	}
}

func TestSpawnPositionCenteredInHiddenRows(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		piece := Spawn(k)
		for _, c := range piece.Cells() {
			if c.Y >= HiddenRows {
				t.Errorf("%v spawn cell %v below the hidden buffer", k, c)
			}
			if c.X < 3 || c.X > 6 {
				t.Errorf("%v spawn cell %v not centered over middle columns", k, c)
			}
		}
	}
}

func TestKindColorAndString(t *testing.T) {
	seen := make(map[string]bool)
	for k := Kind(0); k < KindCount; k++ {
		name := k.String()
		if name == "?" || seen[name] {
			t.Errorf("kind %d has invalid or duplicate name %q", k, name)
		}
		seen[name] = true
	}
}
