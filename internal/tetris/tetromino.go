package tetris

// Tetromino is the active falling piece: its kind, rotation state and anchor
// position (top-left of its rotation box). Tetromino values are immutable;
// Moved and WithRotation produce candidates that callers validate against
// the board before adopting.
type Tetromino struct {
	Kind Kind
	Rot  Rotation
	X, Y int
}

// Spawn returns a tetromino of the given kind at its spawn position and
// orientation.
func Spawn(kind Kind) Tetromino {
	at := SpawnOffset(kind)
	return Tetromino{Kind: kind, Rot: RotSpawn, X: at.X, Y: at.Y}
}

// Cells returns the four absolute grid coordinates the piece occupies.
func (t Tetromino) Cells() [4]Offset {
	return CellsFor(t.Kind, t.Rot, t.X, t.Y)
}

// Moved returns a copy of the piece displaced by (dx, dy).
func (t Tetromino) Moved(dx, dy int) Tetromino {
	t.X += dx
	t.Y += dy
	return t
}

// WithRotation returns a copy of the piece in the given rotation state at
// the same anchor.
func (t Tetromino) WithRotation(rot Rotation) Tetromino {
	t.Rot = rot
	return t
}
