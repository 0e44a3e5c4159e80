package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Minimum screen size for the well plus the side panel.
const (
	minScreenW = 36
	minScreenH = 24
)

const hudHeight = 2

// Render draws the game to the screen: HUD, the bordered well, ghost and
// active piece, the next/hold panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	wellX := (dst.Width() - (Width + 2) - sidePanelW) / 2
	wellY := hudHeight

	g.renderWell(dst, wellX, wellY)
	g.renderSidePanel(dst, wellX+Width+2+2, wellY)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.scoring.Score()))
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeSprint {
		remaining := SprintGoalLines - g.scoring.Lines()
		if remaining < 0 {
			remaining = 0
		}
		hud = fmt.Sprintf(" %s  Score: %d  Lines left: %d", g.Title(), g.scoring.Score(), remaining)
	} else {
		hud = fmt.Sprintf(" %s  Score: %d  Level: %d  Lines: %d", g.Title(), g.scoring.Score(), g.scoring.Level(), g.scoring.Lines())
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderWell draws the bordered playfield with locked cells, the clearing
// flash, the ghost and the active piece. Only the visible rows are shown.
func (g *Game) renderWell(dst *core.Screen, wellX, wellY int) {
	dst.DrawBox(wellX, wellY, Width+2, VisibleHeight+2)

	toScreen := func(c Offset) (int, int, bool) {
		if c.Y < HiddenRows {
			return 0, 0, false
		}
		return wellX + 1 + c.X, wellY + 1 + (c.Y - HiddenRows), true
	}

	// Locked cells
	for y := HiddenRows; y < Height; y++ {
		for x := 0; x < Width; x++ {
			cell, _ := g.board.At(x, y)
			if cell == CellEmpty {
				continue
			}
			sx, sy, ok := toScreen(Offset{X: x, Y: y})
			if ok {
				dst.SetCell(sx, sy, '█', Kind(cell).Color())
			}
		}
	}

	// Clearing rows flash on alternate ticks
	if g.phase == PhaseLineClear {
		flash := (g.tick/3)%2 == 0
		for _, y := range g.clearedRows {
			if y < HiddenRows {
				continue
			}
			for x := 0; x < Width; x++ {
				sx, sy, ok := toScreen(Offset{X: x, Y: y})
				if !ok {
					continue
				}
				if flash {
					dst.SetCell(sx, sy, '▓', core.ColorBrightWhite)
				} else {
					dst.Set(sx, sy, ' ')
				}
			}
		}
	}

	if !g.hasActive {
		return
	}

	// Ghost first so the active piece draws over it when they overlap
	if g.cfg.Display.GhostPiece {
		for _, c := range g.ghost().Cells() {
			if sx, sy, ok := toScreen(c); ok {
				dst.SetCell(sx, sy, '░', core.ColorGray)
			}
		}
	}
	for _, c := range g.active.Cells() {
		if sx, sy, ok := toScreen(c); ok {
			dst.SetCell(sx, sy, '█', g.active.Kind.Color())
		}
	}
}

const sidePanelW = 12

// renderSidePanel draws the next-piece previews and the hold slot.
func (g *Game) renderSidePanel(dst *core.Screen, panelX, panelY int) {
	dst.DrawText(panelX, panelY, "NEXT")
	y := panelY + 1
	if g.bag != nil {
		for _, kind := range g.bag.Peek(g.cfg.Display.PreviewCount) {
			g.renderMini(dst, panelX+1, y, kind)
			y += 3
		}
	}

	dst.DrawText(panelX, y+1, "HOLD")
	if g.hasHold {
		g.renderMini(dst, panelX+1, y+2, g.holdKind)
	} else {
		dst.DrawText(panelX+1, y+2, "-")
	}
}

// renderMini draws a piece in its spawn orientation inside a small box.
func (g *Game) renderMini(dst *core.Screen, x, y int, kind Kind) {
	for _, c := range CellsFor(kind, RotSpawn, 0, 0) {
		dst.SetCell(x+c.X, y+c.Y, '█', kind.Color())
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
