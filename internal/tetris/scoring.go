package tetris

// ClearKind classifies the last line clear.
type ClearKind int

const (
	ClearNone ClearKind = iota
	ClearSingle
	ClearDouble
	ClearTriple
	ClearTetris
)

func (c ClearKind) String() string {
	switch c {
	case ClearNone:
		return "none"
	case ClearSingle:
		return "single"
	case ClearDouble:
		return "double"
	case ClearTriple:
		return "triple"
	case ClearTetris:
		return "tetris"
	default:
		return "unknown"
	}
}

// Guideline base points per cleared-row count, scaled by level.
var clearPoints = [5]int{0, 100, 300, 500, 800}

// Bonus points when the clear empties the whole board (perfect clear).
var perfectClearPoints = [5]int{0, 800, 1200, 1800, 2000}

// linesPerLevel is the fixed threshold deriving level from cleared lines.
const linesPerLevel = 10

// Scoring accumulates score, lines and level from line-clear events. Score
// and level never decrease; level is derived from cumulative lines.
type Scoring struct {
	score      int
	lines      int
	startLevel int
	lastClear  ClearKind
	backToBack bool // consecutive tetris streak active
	b2bEnabled bool
}

// NewScoring creates a scoring engine. When backToBack is true, consecutive
// tetrises earn a 3/2 multiplier. startLevel floors the derived level so a
// game can begin above level 1.
func NewScoring(backToBack bool, startLevel int) Scoring {
	if startLevel < 1 {
		startLevel = 1
	}
	return Scoring{b2bEnabled: backToBack, startLevel: startLevel}
}

// Score returns the accumulated score.
func (s *Scoring) Score() int { return s.score }

// Lines returns cumulative cleared lines.
func (s *Scoring) Lines() int { return s.lines }

// Level returns the current level: derived from cumulative lines, never
// below the configured start level.
func (s *Scoring) Level() int {
	level := s.lines/linesPerLevel + 1
	if level < s.startLevel {
		return s.startLevel
	}
	return level
}

// LastClear returns the classification of the most recent clear.
func (s *Scoring) LastClear() ClearKind { return s.lastClear }

// BackToBack reports whether a back-to-back streak is active.
func (s *Scoring) BackToBack() bool { return s.backToBack }

// AwardClear records a clear of count rows (0-4). The award is the guideline
// base table scaled by the level at clear time, times 3/2 for a back-to-back
// tetris, plus the perfect-clear bonus when the clear emptied the board.
// Returns the awarded points and whether the level increased.
func (s *Scoring) AwardClear(count int, perfect bool) (points int, leveledUp bool) {
	if count <= 0 {
		return 0, false
	}
	if count > 4 {
		count = 4
	}

	level := s.Level()
	points = clearPoints[count] * level

	if s.b2bEnabled {
		if count == 4 {
			if s.backToBack {
				points = points * 3 / 2
			}
			s.backToBack = true
		} else {
			s.backToBack = false
		}
	}

	if perfect {
		points += perfectClearPoints[count] * level
	}

	s.score += points
	s.lines += count
	s.lastClear = ClearKind(count)

	return points, s.Level() > level
}

// AwardSoftDrop adds one point per soft-dropped cell.
func (s *Scoring) AwardSoftDrop(cells int) {
	if cells > 0 {
		s.score += cells
	}
}

// AwardHardDrop adds two points per hard-dropped cell.
func (s *Scoring) AwardHardDrop(cells int) {
	if cells > 0 {
		s.score += 2 * cells
	}
}
