package tetris

// RotationDir selects the direction of a rotation attempt.
type RotationDir int

const (
	RotateCW RotationDir = iota
	RotateCCW
)

// TryRotate attempts to rotate the piece in the given direction using the
// SRS kick search: the target rotation is computed, then each kick offset is
// tried in table order until one yields a placement the board accepts. The
// first success is returned as the new piece state. ok is false when every
// candidate collides; that is a normal rejection, not an error, and the
// caller keeps the piece unchanged.
func TryRotate(b *Board, t Tetromino, dir RotationDir) (rotated Tetromino, ok bool) {
	to := t.Rot.CW()
	if dir == RotateCCW {
		to = t.Rot.CCW()
	}

	for _, kick := range kicksFor(t.Kind, t.Rot, to) {
		candidate := t.WithRotation(to).Moved(kick.X, kick.Y)
		if b.CanPlace(candidate.Cells()) {
			return candidate, true
		}
	}
	return t, false
}
