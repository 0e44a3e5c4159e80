// Package tetris implements the falling-block game engine: board model,
// piece state machine, SRS rotation with wall kicks, line clearing and
// scoring. The engine is pure logic driven by abstract input actions on a
// fixed tick, with no rendering or timing dependencies beyond core.
package tetris

import "github.com/vovakirdan/tui-blocks/internal/core"

// Kind identifies one of the seven piece shapes.
type Kind int8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct piece kinds.
const KindCount = 7

// String returns the canonical one-letter name of the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Color returns the display color for the kind (guideline palette).
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}

// Rotation is one of the four SRS rotation states.
type Rotation int8

const (
	RotSpawn Rotation = iota // as spawned
	RotRight                 // one clockwise step
	RotHalf                  // two steps
	RotLeft                  // one counter-clockwise step
)

// CW returns the next rotation state clockwise.
func (r Rotation) CW() Rotation {
	return (r + 1) & 3
}

// CCW returns the next rotation state counter-clockwise.
func (r Rotation) CCW() Rotation {
	return (r + 3) & 3
}

func (r Rotation) String() string {
	switch r {
	case RotSpawn:
		return "spawn"
	case RotRight:
		return "right"
	case RotHalf:
		return "180"
	case RotLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Offset is a grid coordinate or displacement. The y axis grows downward,
// matching board row order.
type Offset struct {
	X, Y int
}

// boxSize returns the side of the SRS bounding box the kind rotates in.
func (k Kind) boxSize() int {
	switch k {
	case KindI:
		return 4
	case KindO:
		return 2
	default:
		return 3
	}
}

// spawnShapes holds the cell offsets of each kind in its spawn orientation,
// relative to the top-left corner of its rotation box.
var spawnShapes = [KindCount][4]Offset{
	KindI: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindT: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	KindS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	KindZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	KindJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	KindL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// shapes[kind][rotation] is the static lookup table of cell offsets for
// every kind/rotation combination. Rotations are derived once at startup by
// rotating the spawn shape within its box, which reproduces the SRS pivot
// convention for all three kind classes.
var shapes [KindCount][4][4]Offset

func init() {
	for k := Kind(0); k < KindCount; k++ {
		n := k.boxSize()
		shape := spawnShapes[k]
		for r := 0; r < 4; r++ {
			shapes[k][r] = shape
			next := shape
			for i, c := range shape {
				// Clockwise quarter turn within the box.
				next[i] = Offset{X: n - 1 - c.Y, Y: c.X}
			}
			shape = next
		}
	}
}

// CellsFor returns the four absolute grid coordinates occupied by a piece of
// the given kind and rotation anchored at (x, y). Pure table lookup, no side
// effects, total for all 7x4 kind/rotation combinations.
func CellsFor(kind Kind, rot Rotation, x, y int) [4]Offset {
	var cells [4]Offset
	for i, c := range shapes[kind][rot] {
		cells[i] = Offset{X: x + c.X, Y: y + c.Y}
	}
	return cells
}

// SpawnOffset returns the spawn anchor for the kind: centered over the
// middle columns, with the piece cells inside the hidden buffer rows.
func SpawnOffset(kind Kind) Offset {
	return Offset{X: (Width - kind.boxSize()) / 2, Y: HiddenRows - 2}
}
