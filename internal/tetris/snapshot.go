package tetris

// Snapshot captures the complete observable game state after a tick:
// board grid, active piece, previews, hold and score. It is a deep copy,
// safe to hand to renderers or other goroutines, and is what determinism
// tests compare.
type Snapshot struct {
	Tick  uint64
	Mode  Mode
	Phase Phase

	Score      int
	Level      int
	Lines      int
	BackToBack bool
	LastClear  ClearKind

	HasActive   bool
	ActiveKind  Kind
	ActiveCells [4]Offset
	GhostCells  [4]Offset

	Preview  []Kind
	HasHold  bool
	HoldKind Kind

	// ClearingRows holds the rows being resolved during PhaseLineClear.
	ClearingRows []int

	// Board is a copy of the full grid; row 0 is the top of the hidden
	// buffer, rows HiddenRows..Height-1 are visible.
	Board [][]Cell
}

// Snapshot returns the current observable state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tick,
		Mode:       g.mode,
		Phase:      g.phase,
		Score:      g.scoring.Score(),
		Level:      g.scoring.Level(),
		Lines:      g.scoring.Lines(),
		BackToBack: g.scoring.BackToBack(),
		LastClear:  g.scoring.LastClear(),
		HasActive:  g.hasActive,
		HasHold:    g.hasHold,
		HoldKind:   g.holdKind,
		Board:      g.board.Cells(),
	}

	if g.hasActive {
		snap.ActiveKind = g.active.Kind
		snap.ActiveCells = g.active.Cells()
		snap.GhostCells = g.ghost().Cells()
	}
	if g.bag != nil && g.cfg.Display.PreviewCount > 0 {
		snap.Preview = g.bag.Peek(g.cfg.Display.PreviewCount)
	}
	if len(g.clearedRows) > 0 {
		snap.ClearingRows = append([]int(nil), g.clearedRows...)
	}

	return snap
}
