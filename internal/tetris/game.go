package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeMarathon Mode = "marathon" // endless, gravity rises with level
	ModeSprint   Mode = "sprint"   // race to SprintGoalLines
	ModeZen      Mode = "zen"      // gravity never accelerates
)

// SprintGoalLines is the sprint mode target.
const SprintGoalLines = 40

// Phase is the state-machine state of the engine. Paused is an orthogonal
// flag, not a phase: it freezes ticking without altering the phase.
type Phase string

const (
	PhaseSpawning  Phase = "spawning"
	PhaseFalling   Phase = "falling"
	PhaseLocking   Phase = "locking"
	PhaseLineClear Phase = "line_clear"
	PhaseGameOver  Phase = "game_over"
)

// gravityTable maps level (1-indexed) to ticks between gravity steps.
// Levels beyond the table fall every other tick, and from level 25 every
// tick.
var gravityTable = []int{48, 43, 38, 33, 28, 23, 18, 13, 8, 6, 5, 5, 5, 4, 4, 4, 3, 3, 3, 2}

// Package-level selections applied by the CLI before game creation,
// consumed on the next Reset.
var (
	configPath         string
	selectedStartLevel int
)

// SetConfigPath sets a custom rules config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the starting level (1-19). 0 starts at level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// Game is the falling-block engine: the single owned aggregate holding
// board, active piece, queue and score. It implements registry.Game and is
// advanced exclusively through Step on a fixed tick.
type Game struct {
	mode Mode
	cfg  config.BlocksConfig
	rng  *rand.Rand
	tick uint64

	board     *Board
	active    Tetromino
	hasActive bool
	bag       *BagRandomizer
	scoring   Scoring

	holdKind Kind
	hasHold  bool
	holdUsed bool // one hold per spawned piece, reset on lock

	phase       Phase
	paused      bool
	won         bool
	gravityTick int
	lockTick    int
	lockResets  int
	clearTick   int
	clearedRows []int

	events []core.Event

	screenW  int
	screenH  int
	tickRate int
	tooSmall bool
}

// New creates a marathon mode game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewSprint creates a sprint (40 lines) mode game.
func NewSprint() *Game {
	return &Game{mode: ModeSprint}
}

// NewZen creates a zen mode game with constant low gravity.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
	registry.Register("blocks_sprint", func() registry.Game {
		return NewSprint()
	})
	registry.Register("blocks_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeSprint:
		return "blocks_sprint"
	case ModeZen:
		return "blocks_zen"
	default:
		return "blocks"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeSprint:
		return "Blocks (Sprint 40L)"
	case ModeZen:
		return "Blocks (Zen)"
	default:
		return "Blocks (Marathon)"
	}
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rules, err := config.LoadBlocks(configPath)
	if err != nil {
		rules = config.DefaultBlocksConfig()
	}
	g.cfg = rules

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate

	startLevel := 1
	if selectedStartLevel > 0 && selectedStartLevel < 20 {
		startLevel = selectedStartLevel
		selectedStartLevel = 0 // consumed
	}

	if g.board == nil {
		g.board = NewBoard()
	} else {
		g.board.Reset()
	}
	g.bag = NewBagRandomizer(g.rng)
	g.scoring = NewScoring(g.cfg.Rules.BackToBack, startLevel)

	g.hasActive = false
	g.hasHold = false
	g.holdUsed = false
	g.phase = PhaseSpawning
	g.paused = false
	g.won = false
	g.gravityTick = 0
	g.lockTick = 0
	g.lockResets = 0
	g.clearTick = 0
	g.clearedRows = nil
	g.events = nil

	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	g.events = g.events[:0]

	if input.Has(core.ActionRestart) && g.terminal() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return g.result()
	}

	// Pause is accepted in any non-terminal phase and freezes everything
	// below without touching the phase itself.
	if input.Has(core.ActionPause) && !g.terminal() {
		g.paused = !g.paused
	}

	if g.terminal() || g.paused || g.tooSmall {
		return g.result()
	}

	switch g.phase {
	case PhaseSpawning:
		g.spawnAs(g.bag.Next())
	case PhaseFalling, PhaseLocking:
		g.stepActive(input)
	case PhaseLineClear:
		g.stepLineClear()
	}

	return g.result()
}

// terminal reports whether the game has ended (topped out or won).
func (g *Game) terminal() bool {
	return g.phase == PhaseGameOver || g.won
}

func (g *Game) result() core.StepResult {
	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// spawnAs places a new active piece of the given kind at its spawn cells.
// An unplaceable spawn means the board topped out: the game is over.
func (g *Game) spawnAs(kind Kind) {
	g.active = Spawn(kind)
	g.hasActive = true
	g.gravityTick = 0
	g.lockTick = 0
	g.lockResets = 0

	if !g.board.CanPlace(g.active.Cells()) {
		g.hasActive = false
		g.phase = PhaseGameOver
		g.events = append(g.events, core.Event{Type: core.EventGameOver})
		return
	}
	g.phase = PhaseFalling
}

// stepActive processes one tick of the Falling/Locking phases: input first,
// then gravity or lock-delay progression.
func (g *Game) stepActive(input core.InputFrame) {
	if input.Has(core.ActionHold) && g.cfg.Rules.HoldEnabled {
		g.tryHold()
		if g.phase == PhaseGameOver {
			return
		}
	}

	if input.Has(core.ActionRotateCW) {
		g.tryRotate(RotateCW)
	}
	if input.Has(core.ActionRotateCCW) {
		g.tryRotate(RotateCCW)
	}

	dx := 0
	if input.Has(core.ActionLeft) {
		dx--
	}
	if input.Has(core.ActionRight) {
		dx++
	}
	if dx != 0 {
		g.tryShift(dx)
	}

	if input.Has(core.ActionHardDrop) {
		g.hardDrop()
		return
	}

	if input.Has(core.ActionSoftDrop) {
		g.softDrop()
		if g.phase != PhaseFalling && g.phase != PhaseLocking {
			return
		}
	}

	g.advanceClock()
}

// advanceClock progresses gravity while falling, or the lock-delay timer
// while grounded.
func (g *Game) advanceClock() {
	if g.phase == PhaseLocking {
		g.lockTick++
		if g.lockTick >= g.cfg.Timing.LockDelayTicks {
			g.lockPiece()
		}
		return
	}

	g.gravityTick++
	if g.gravityTick >= g.gravityInterval() {
		g.gravityTick = 0
		if !g.moveActive(0, 1) {
			g.enterLocking()
		}
	}
}

// gravityInterval returns the ticks between gravity steps for the current
// level. Zen mode pins it to the slowest setting.
func (g *Game) gravityInterval() int {
	if g.mode == ModeZen {
		return gravityTable[0]
	}
	level := g.scoring.Level()
	if level >= 25 {
		return 1
	}
	idx := level - 1
	if idx >= len(gravityTable) {
		idx = len(gravityTable) - 1
	}
	return gravityTable[idx]
}

// grounded reports whether the active piece cannot move down.
func (g *Game) grounded() bool {
	return !g.board.CanPlace(g.active.Moved(0, 1).Cells())
}

// enterLocking starts the lock-delay countdown for a freshly grounded piece.
func (g *Game) enterLocking() {
	g.phase = PhaseLocking
	g.lockTick = 0
}

// moveActive displaces the active piece if the board allows it.
func (g *Game) moveActive(dx, dy int) bool {
	candidate := g.active.Moved(dx, dy)
	if !g.board.CanPlace(candidate.Cells()) {
		return false
	}
	g.active = candidate
	return true
}

// tryShift applies a horizontal move, updating the lock state: a grounded
// piece that moves restarts the lock delay (up to the reset cap), and a
// piece that regains room below returns to free fall.
func (g *Game) tryShift(dx int) {
	if !g.moveActive(dx, 0) {
		return
	}
	g.afterAdjust()
}

// tryRotate applies an SRS rotation attempt; a rejected rotation is a no-op.
func (g *Game) tryRotate(dir RotationDir) {
	rotated, ok := TryRotate(g.board, g.active, dir)
	if !ok {
		return
	}
	g.active = rotated
	g.afterAdjust()
}

// afterAdjust reconciles the phase after a successful move or rotation.
func (g *Game) afterAdjust() {
	if !g.grounded() {
		// Downward movement is possible again.
		if g.phase == PhaseLocking {
			g.phase = PhaseFalling
			g.gravityTick = 0
		}
		return
	}

	switch g.phase {
	case PhaseFalling:
		g.enterLocking()
	case PhaseLocking:
		// Move-reset lock delay: each successful adjustment while grounded
		// restarts the countdown until the cap is exhausted.
		if g.lockResets < g.cfg.Timing.MaxLockResets {
			g.lockResets++
			g.lockTick = 0
		}
	}
}

// softDrop advances the piece one row this tick, scoring one point per cell.
func (g *Game) softDrop() {
	if g.moveActive(0, 1) {
		g.scoring.AwardSoftDrop(1)
		g.gravityTick = 0
		if g.grounded() && g.phase == PhaseFalling {
			g.enterLocking()
		}
		return
	}
	if g.phase == PhaseFalling {
		g.enterLocking()
	}
}

// hardDrop drops the piece to the floor, each step validated independently,
// then locks immediately, bypassing the lock delay.
func (g *Game) hardDrop() {
	cells := 0
	for g.moveActive(0, 1) {
		cells++
	}
	g.scoring.AwardHardDrop(cells)
	g.lockPiece()
}

// tryHold swaps the active piece with the hold slot (or the queue front when
// the slot is empty). Allowed at most once per spawned piece; a second
// request is silently rejected.
func (g *Game) tryHold() {
	if g.holdUsed {
		return
	}
	g.holdUsed = true

	swapped := g.active.Kind
	var next Kind
	if g.hasHold {
		next = g.holdKind
	} else {
		next = g.bag.Next()
	}
	g.holdKind = swapped
	g.hasHold = true

	g.events = append(g.events, core.Event{Type: core.EventHoldSwap})
	g.spawnAs(next)
	// holdUsed stays set for the piece spawned by the swap.
	g.holdUsed = true
}

// lockPiece writes the active piece into the board and resolves what
// follows: line-clear detection or the next spawn.
func (g *Game) lockPiece() {
	if !g.board.Lock(g.active.Cells(), g.active.Kind) {
		// Contract violation: the piece overlaps locked cells. Treat as a
		// top-out instead of corrupting the grid.
		g.hasActive = false
		g.phase = PhaseGameOver
		g.events = append(g.events, core.Event{Type: core.EventGameOver})
		return
	}

	g.hasActive = false
	g.holdUsed = false
	g.events = append(g.events, core.Event{Type: core.EventPieceLocked})

	rows := g.board.CompletedRows()
	if len(rows) > 0 {
		g.clearedRows = rows
		g.clearTick = g.cfg.Timing.LineClearTicks
		g.phase = PhaseLineClear
		if g.clearTick == 0 {
			g.finishClear()
		}
		return
	}
	g.phase = PhaseSpawning
}

// stepLineClear counts down the clear resolution state.
func (g *Game) stepLineClear() {
	g.clearTick--
	if g.clearTick <= 0 {
		g.finishClear()
	}
}

// finishClear compacts the board, applies scoring and moves on to the next
// spawn (or the sprint win).
func (g *Game) finishClear() {
	rows := g.clearedRows
	g.clearedRows = nil
	g.board.ClearRows(rows)

	count := len(rows)
	perfect := g.board.IsEmpty()
	_, leveledUp := g.scoring.AwardClear(count, perfect)

	g.events = append(g.events, core.Event{
		Type:  core.EventLinesCleared,
		Lines: count,
		Rows:  rows,
	})
	if leveledUp {
		g.events = append(g.events, core.Event{
			Type:  core.EventLevelUp,
			Level: g.scoring.Level(),
		})
	}

	if g.mode == ModeSprint && g.scoring.Lines() >= SprintGoalLines {
		g.won = true
		g.events = append(g.events, core.Event{Type: core.EventGameOver})
		return
	}

	g.phase = PhaseSpawning
}

// ghost returns the active piece dropped to its resting position.
func (g *Game) ghost() Tetromino {
	t := g.active
	for {
		down := t.Moved(0, 1)
		if !g.board.CanPlace(down.Cells()) {
			return t
		}
		t = down
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scoring.Score(),
		Level:    g.scoring.Level(),
		Lines:    g.scoring.Lines(),
		GameOver: g.terminal(),
		Won:      g.won,
		Paused:   g.paused,
	}
}
