package tetris

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func hasEvent(events []core.Event, typ core.EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}

func TestSpawnTransitionsToFalling(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame())

	if g.phase != PhaseFalling {
		t.Fatalf("phase after first tick = %v, want falling", g.phase)
	}
	if !g.hasActive {
		t.Fatal("active piece should exist after spawn")
	}
	for _, c := range g.active.Cells() {
		if c.Y >= HiddenRows {
			t.Errorf("spawn cell %v should be in the hidden buffer", c)
		}
	}
}

func TestSpawnOnOccupiedBoardIsGameOver(t *testing.T) {
	g := newTestGame(t)

	// Top out the spawn area before the first piece appears.
	fillRow(g.board, HiddenRows-2)
	fillRow(g.board, HiddenRows-1)

	res := g.Step(frame())

	if g.phase != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.phase)
	}
	if !res.State.GameOver {
		t.Error("State should report game over")
	}
	if !hasEvent(res.Events, core.EventGameOver) {
		t.Error("a game-over event should be emitted")
	}
}

func TestGravityMovesPieceDownOneRow(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())
	startY := g.active.Y

	interval := g.gravityInterval()
	for i := 0; i < interval; i++ {
		g.Step(frame())
	}

	if g.active.Y != startY+1 {
		t.Errorf("piece at y=%d after %d ticks, want %d", g.active.Y, interval, startY+1)
	}
}

func TestSoftDropMovesAndScores(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())
	startY := g.active.Y

	g.Step(frame(core.ActionSoftDrop))

	if g.active.Y != startY+1 {
		t.Errorf("soft drop: y = %d, want %d", g.active.Y, startY+1)
	}
	if g.scoring.Score() != 1 {
		t.Errorf("soft drop score = %d, want 1", g.scoring.Score())
	}
}

func TestHorizontalMoveStopsAtWall(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	for i := 0; i < 20; i++ {
		g.Step(frame(core.ActionLeft))
	}

	minX := Width
	for _, c := range g.active.Cells() {
		if c.X < minX {
			minX = c.X
		}
		if c.X < 0 {
			t.Fatalf("cell %v pushed through the wall", c)
		}
	}
	if minX != 0 {
		t.Errorf("leftmost cell at column %d, want 0", minX)
	}
}

func TestHardDropLocksImmediately(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	res := g.Step(frame(core.ActionHardDrop))

	if !hasEvent(res.Events, core.EventPieceLocked) {
		t.Error("hard drop should lock the piece in the same tick")
	}
	if g.phase != PhaseSpawning {
		t.Errorf("phase = %v, want spawning (no rows completed)", g.phase)
	}
	if g.board.IsEmpty() {
		t.Error("board should hold the locked piece")
	}
	if g.scoring.Score() == 0 {
		t.Error("hard drop should award points per dropped cell")
	}
}

func TestLineClearFlow(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	// Two bottom rows complete once an O piece drops into columns 4-5.
	fillRow(g.board, Height-1, 4, 5)
	fillRow(g.board, Height-2, 4, 5)
	g.board.cells[Height-5][0] = Cell(KindJ) // stray cell: not a perfect clear
	g.active = Tetromino{Kind: KindO, Rot: RotSpawn, X: 4, Y: HiddenRows - 2}
	g.phase = PhaseFalling

	res := g.Step(frame(core.ActionHardDrop))
	if g.phase != PhaseLineClear {
		t.Fatalf("phase after locking into full rows = %v, want line clear", g.phase)
	}
	if hasEvent(res.Events, core.EventLinesCleared) {
		t.Fatal("lines are resolved after the clear state, not at lock time")
	}

	var cleared core.Event
	for i := 0; i < g.cfg.Timing.LineClearTicks+1; i++ {
		res = g.Step(frame())
		for _, e := range res.Events {
			if e.Type == core.EventLinesCleared {
				cleared = e
			}
		}
	}

	if cleared.Lines != 2 {
		t.Fatalf("cleared lines = %d, want 2", cleared.Lines)
	}
	if len(cleared.Rows) != 2 || cleared.Rows[0] != Height-2 || cleared.Rows[1] != Height-1 {
		t.Errorf("cleared rows = %v, want [%d %d]", cleared.Rows, Height-2, Height-1)
	}
	if g.scoring.Lines() != 2 {
		t.Errorf("lines counter = %d, want 2", g.scoring.Lines())
	}
	if g.scoring.Score() < 300 {
		t.Errorf("score = %d, want at least the double award", g.scoring.Score())
	}

	// The stray cell shifted down by two; the bottom row is otherwise empty.
	if g.board.cells[Height-3][0] != Cell(KindJ) {
		t.Error("surviving cell should shift down by the number of cleared rows")
	}
	for x := 1; x < Width; x++ {
		if g.board.cells[Height-1][x] != CellEmpty {
			t.Errorf("bottom row cell %d should be empty after compaction", x)
		}
	}
}

func TestHoldSwapOncePerPiece(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	first := g.active.Kind
	queued := g.bag.Peek(1)[0]

	res := g.Step(frame(core.ActionHold))
	if !hasEvent(res.Events, core.EventHoldSwap) {
		t.Fatal("hold swap event expected")
	}
	if !g.hasHold || g.holdKind != first {
		t.Errorf("hold slot = %v (present=%v), want %v", g.holdKind, g.hasHold, first)
	}
	if g.active.Kind != queued {
		t.Errorf("active after first hold = %v, want queue front %v", g.active.Kind, queued)
	}

	// Second hold for the same spawned piece is rejected.
	res = g.Step(frame(core.ActionHold))
	if hasEvent(res.Events, core.EventHoldSwap) {
		t.Error("second hold before locking should be a no-op")
	}
	if g.active.Kind != queued || g.holdKind != first {
		t.Error("rejected hold must leave piece and slot unchanged")
	}

	// Locking re-arms the hold.
	g.Step(frame(core.ActionHardDrop))
	g.Step(frame()) // spawn
	res = g.Step(frame(core.ActionHold))
	if !hasEvent(res.Events, core.EventHoldSwap) {
		t.Error("hold should be available again after the previous piece locked")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())
	y := g.active.Y

	g.Step(frame(core.ActionPause))
	if !g.paused {
		t.Fatal("pause action should set the paused flag")
	}

	for i := 0; i < 200; i++ {
		g.Step(frame(core.ActionSoftDrop, core.ActionLeft))
	}
	if g.active.Y != y {
		t.Error("paused game must ignore gameplay input and gravity")
	}
	if g.phase != PhaseFalling {
		t.Errorf("pause must not alter the phase, got %v", g.phase)
	}

	g.Step(frame(core.ActionPause))
	g.Step(frame(core.ActionSoftDrop))
	if g.active.Y != y+1 {
		t.Error("simulation should resume after unpausing")
	}
}

// groundPiece parks an O piece on the floor and advances the game until the
// lock-delay countdown is running.
func groundPiece(t *testing.T, g *Game) {
	t.Helper()
	g.Step(frame())
	g.active = Tetromino{Kind: KindO, Rot: RotSpawn, X: 4, Y: Height - 2}
	g.phase = PhaseFalling
	g.gravityTick = g.gravityInterval() - 1
	g.Step(frame()) // blocked gravity step starts the countdown
	if g.phase != PhaseLocking {
		t.Fatalf("setup: phase = %v, want locking", g.phase)
	}
}

func TestLockDelayExpires(t *testing.T) {
	g := newTestGame(t)
	groundPiece(t, g)

	locked := false
	for i := 0; i < g.cfg.Timing.LockDelayTicks+1 && !locked; i++ {
		res := g.Step(frame())
		locked = hasEvent(res.Events, core.EventPieceLocked)
	}
	if !locked {
		t.Error("grounded piece should lock once the delay elapses")
	}
}

func TestLockDelayMoveResetCap(t *testing.T) {
	g := newTestGame(t)
	groundPiece(t, g)

	dirs := []core.Action{core.ActionLeft, core.ActionRight}
	locked := false
	ticksToLock := 0
	budget := g.cfg.Timing.MaxLockResets + g.cfg.Timing.LockDelayTicks + 10

	for i := 0; i < budget*2 && !locked; i++ {
		res := g.Step(frame(dirs[i%2]))
		ticksToLock++
		locked = hasEvent(res.Events, core.EventPieceLocked)
	}

	if !locked {
		t.Fatal("piece must lock despite continuous movement once resets are exhausted")
	}
	if ticksToLock <= g.cfg.Timing.LockDelayTicks {
		t.Errorf("locked after %d ticks; moves should have reset the delay at least once", ticksToLock)
	}
	if g.lockResets != g.cfg.Timing.MaxLockResets {
		t.Errorf("lock resets used = %d, want the cap %d", g.lockResets, g.cfg.Timing.MaxLockResets)
	}
}

func TestLockingReturnsToFallingWhenUnblocked(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	// O piece resting on a single-cell ledge at column 0.
	g.board.cells[Height-2][0] = Cell(KindJ)
	g.active = Tetromino{Kind: KindO, Rot: RotSpawn, X: 0, Y: Height - 4}
	g.phase = PhaseFalling
	g.gravityTick = g.gravityInterval() - 1
	g.Step(frame())
	if g.phase != PhaseLocking {
		t.Fatalf("setup: phase = %v, want locking", g.phase)
	}

	// Sliding off the ledge re-enables falling.
	g.Step(frame(core.ActionRight))
	if g.phase != PhaseFalling {
		t.Errorf("phase = %v, want falling after sliding off the ledge", g.phase)
	}
}

func TestSprintWin(t *testing.T) {
	g := NewSprint()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})
	g.Step(frame())

	// One line away from the goal; resolve a prepared clear.
	g.scoring.lines = SprintGoalLines - 1
	fillRow(g.board, Height-1)
	g.clearedRows = []int{Height - 1}
	g.clearTick = 1
	g.phase = PhaseLineClear
	g.hasActive = false

	res := g.Step(frame())

	if !g.won {
		t.Fatal("sprint should be won at the goal line count")
	}
	if !res.State.Won || !res.State.GameOver {
		t.Errorf("state = %+v, want won and terminal", res.State)
	}
}

func TestZenGravityNeverAccelerates(t *testing.T) {
	g := NewZen()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5})
	g.Step(frame())

	g.scoring.lines = 100 // level 11 in marathon terms
	if g.gravityInterval() != gravityTable[0] {
		t.Errorf("zen gravity = %d ticks, want constant %d", g.gravityInterval(), gravityTable[0])
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	fillRow(g.board, HiddenRows-2)
	fillRow(g.board, HiddenRows-1)
	g.Step(frame())
	if g.phase != PhaseGameOver {
		t.Fatal("setup: expected game over")
	}

	g.Step(frame(core.ActionRestart))

	if g.phase == PhaseGameOver {
		t.Error("restart should leave the terminal state")
	}
	if !g.board.IsEmpty() {
		t.Error("restart should reset the board")
	}
	if g.scoring.Score() != 0 || g.scoring.Lines() != 0 {
		t.Error("restart should reset the score")
	}
}

func TestSnapshotDeterminismForSeed(t *testing.T) {
	script := func(g *Game) Snapshot {
		for i := 0; i < 600; i++ {
			f := core.NewInputFrame()
			switch {
			case i%31 == 0:
				f.Set(core.ActionHardDrop)
			case i%7 == 0:
				f.Set(core.ActionSoftDrop)
			case i%5 == 0:
				f.Set(core.ActionRotateCW)
			case i%3 == 0:
				f.Set(core.ActionLeft)
			}
			g.Step(f)
		}
		return g.Snapshot()
	}

	a := New()
	a.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1234})
	b := New()
	b.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1234})

	if !reflect.DeepEqual(script(a), script(b)) {
		t.Error("identical seeds and inputs must produce identical snapshots")
	}
}

func TestSnapshotContents(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	snap := g.Snapshot()

	if !snap.HasActive {
		t.Fatal("snapshot should carry the active piece")
	}
	if snap.ActiveKind != g.active.Kind {
		t.Errorf("snapshot kind = %v, want %v", snap.ActiveKind, g.active.Kind)
	}
	if len(snap.Preview) != g.cfg.Display.PreviewCount {
		t.Errorf("preview length = %d, want %d", len(snap.Preview), g.cfg.Display.PreviewCount)
	}
	if len(snap.Board) != Height || len(snap.Board[0]) != Width {
		t.Errorf("board snapshot is %dx%d, want %dx%d", len(snap.Board), len(snap.Board[0]), Height, Width)
	}

	// Ghost cells sit at or below the active cells in the same columns.
	for i := range snap.ActiveCells {
		if snap.GhostCells[i].X != snap.ActiveCells[i].X {
			t.Error("ghost must share the active piece's columns")
		}
		if snap.GhostCells[i].Y < snap.ActiveCells[i].Y {
			t.Error("ghost must not be above the active piece")
		}
	}
}

func TestRenderProducesWellAndHUD(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if len(out) == 0 {
		t.Fatal("render should produce output")
	}
	if screen.Get(0, 1) != '─' {
		t.Error("HUD separator expected on row 1")
	}
	if row := screen.Row(0); row == "" {
		t.Error("HUD text expected on row 0")
	}
}
