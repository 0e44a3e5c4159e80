package tui

import (
	"testing"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

func TestBannerForEvents(t *testing.T) {
	tests := []struct {
		name   string
		events []core.Event
		want   string
	}{
		{"no events", nil, ""},
		{"lock only", []core.Event{{Type: core.EventPieceLocked}}, ""},
		{"single", []core.Event{{Type: core.EventLinesCleared, Lines: 1}}, "SINGLE"},
		{"double", []core.Event{{Type: core.EventLinesCleared, Lines: 2}}, "DOUBLE"},
		{"triple", []core.Event{{Type: core.EventLinesCleared, Lines: 3}}, "TRIPLE"},
		{"tetris", []core.Event{{Type: core.EventLinesCleared, Lines: 4}}, "TETRIS!"},
		{
			"level up wins over clear",
			[]core.Event{
				{Type: core.EventLinesCleared, Lines: 2},
				{Type: core.EventLevelUp, Level: 5},
			},
			"LEVEL 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bannerForEvents(tt.events); got != tt.want {
				t.Errorf("bannerForEvents() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDrawBannerBottomRow(t *testing.T) {
	screen := core.NewScreen(20, 10)
	drawBanner(screen, "DOUBLE")

	// Centered on the bottom row: (20-6)/2 = 7.
	for i, r := range "DOUBLE" {
		cell := screen.GetCell(7+i, 9)
		if cell.Rune != r {
			t.Errorf("cell %d: got %q, want %q", i, cell.Rune, r)
		}
		if cell.Color != core.ColorBrightYellow {
			t.Errorf("cell %d: got color %v, want bright yellow", i, cell.Color)
		}
	}
}
