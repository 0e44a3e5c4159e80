package tetris

import "testing"

func TestAwardClearBaseTable(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		points int
	}{
		{"single", 1, 100},
		{"double", 2, 300},
		{"triple", 3, 500},
		{"tetris", 4, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScoring(false, 1)
			got, _ := s.AwardClear(tt.count, false)
			if got != tt.points {
				t.Errorf("AwardClear(%d) at level 1 = %d, want %d", tt.count, got, tt.points)
			}
			if s.Score() != tt.points {
				t.Errorf("Score() = %d, want %d", s.Score(), tt.points)
			}
			if s.LastClear() != ClearKind(tt.count) {
				t.Errorf("LastClear() = %v, want %v", s.LastClear(), ClearKind(tt.count))
			}
		})
	}
}

func TestAwardClearScalesWithLevel(t *testing.T) {
	s := NewScoring(false, 5)
	got, _ := s.AwardClear(2, false)
	if got != 300*5 {
		t.Errorf("double at level 5 = %d, want %d", got, 300*5)
	}
}

func TestAwardClearZeroRows(t *testing.T) {
	s := NewScoring(true, 1)
	got, leveled := s.AwardClear(0, false)
	if got != 0 || leveled {
		t.Errorf("AwardClear(0) = (%d, %v), want (0, false)", got, leveled)
	}
	if s.Lines() != 0 {
		t.Error("zero clear must not change lines")
	}
}

func TestBackToBackTetris(t *testing.T) {
	s := NewScoring(true, 1)

	first, _ := s.AwardClear(4, false)
	if first != 800 {
		t.Errorf("first tetris = %d, want 800", first)
	}
	if !s.BackToBack() {
		t.Error("streak should be armed after a tetris")
	}

	second, _ := s.AwardClear(4, false)
	if second != 800*3/2 {
		t.Errorf("back-to-back tetris = %d, want %d", second, 800*3/2)
	}

	// A lesser clear breaks the streak.
	s.AwardClear(1, false)
	if s.BackToBack() {
		t.Error("single should break the back-to-back streak")
	}
	// 9 lines so far: still level 1, and the streak restarts unmultiplied.
	third, _ := s.AwardClear(4, false)
	if third != 800 {
		t.Errorf("tetris after broken streak = %d, want unmultiplied 800", third)
	}
}

func TestBackToBackDisabled(t *testing.T) {
	s := NewScoring(false, 1)
	s.AwardClear(4, false)
	second, _ := s.AwardClear(4, false)
	if second != 800 {
		t.Errorf("tetris with back-to-back disabled = %d, want 800", second)
	}
}

func TestPerfectClearBonus(t *testing.T) {
	s := NewScoring(false, 1)
	got, _ := s.AwardClear(2, true)
	if got != 300+1200 {
		t.Errorf("perfect double = %d, want %d", got, 300+1200)
	}
}

func TestLevelProgression(t *testing.T) {
	s := NewScoring(false, 1)

	if s.Level() != 1 {
		t.Errorf("initial level = %d, want 1", s.Level())
	}

	// 9 lines: still level 1.
	s.AwardClear(4, false)
	s.AwardClear(4, false)
	s.AwardClear(1, false)
	if s.Level() != 1 {
		t.Errorf("level after 9 lines = %d, want 1", s.Level())
	}

	_, leveled := s.AwardClear(1, false)
	if !leveled {
		t.Error("tenth line should report a level up")
	}
	if s.Level() != 2 {
		t.Errorf("level after 10 lines = %d, want 2", s.Level())
	}
}

func TestStartLevelFloorsLevel(t *testing.T) {
	s := NewScoring(false, 8)
	if s.Level() != 8 {
		t.Errorf("start level = %d, want 8", s.Level())
	}

	// Clearing lines below the floor threshold must not lower the level.
	s.AwardClear(4, false)
	if s.Level() != 8 {
		t.Errorf("level = %d, want 8 (never decreases)", s.Level())
	}
}

func TestDropAwards(t *testing.T) {
	s := NewScoring(false, 1)

	s.AwardSoftDrop(3)
	if s.Score() != 3 {
		t.Errorf("soft drop 3 cells = %d points, want 3", s.Score())
	}

	s.AwardHardDrop(10)
	if s.Score() != 3+20 {
		t.Errorf("hard drop 10 cells: score = %d, want 23", s.Score())
	}

	s.AwardSoftDrop(-1)
	s.AwardHardDrop(0)
	if s.Score() != 23 {
		t.Error("non-positive cell counts must not change the score")
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := NewScoring(true, 1)
	prev := 0
	for i := 0; i < 20; i++ {
		s.AwardClear(1+i%4, i%5 == 0)
		if s.Score() < prev {
			t.Fatal("score must never decrease")
		}
		prev = s.Score()
	}
}
