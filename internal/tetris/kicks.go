package tetris

// SRS wall-kick tables. For each rotation transition the resolver tries the
// listed offsets in order (zero offset first) and accepts the first legal
// placement. Offsets are stored in grid coordinates, so positive Y moves the
// piece down; the published SRS tables use the opposite Y convention.
//
// The O piece rotates in place and has no kick table. The I piece has its
// own table; J, L, S, T and Z share one.

type kickKey struct {
	from, to Rotation
}

var jlstzKicks = map[kickKey][5]Offset{
	{RotSpawn, RotRight}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{RotRight, RotSpawn}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{RotRight, RotHalf}:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{RotHalf, RotRight}:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{RotHalf, RotLeft}:   {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{RotLeft, RotHalf}:   {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{RotLeft, RotSpawn}:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{RotSpawn, RotLeft}:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
}

var iKicks = map[kickKey][5]Offset{
	{RotSpawn, RotRight}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{RotRight, RotSpawn}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{RotRight, RotHalf}:  {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{RotHalf, RotRight}:  {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{RotHalf, RotLeft}:   {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
	{RotLeft, RotHalf}:   {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{RotLeft, RotSpawn}:  {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{RotSpawn, RotLeft}:  {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
}

var zeroKick = [5]Offset{}

// kicksFor returns the ordered kick candidates for rotating the kind from
// one state to another. The order is fixed; the first legal candidate wins.
func kicksFor(kind Kind, from, to Rotation) []Offset {
	switch kind {
	case KindO:
		// No effective rotation: only the zero offset.
		return zeroKick[:1]
	case KindI:
		k := iKicks[kickKey{from, to}]
		return k[:]
	default:
		k := jlstzKicks[kickKey{from, to}]
		return k[:]
	}
}
