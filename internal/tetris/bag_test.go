package tetris

import (
	"math/rand"
	"testing"
)

func TestBagEveryBagIsAPermutation(t *testing.T) {
	g := NewBagRandomizer(rand.New(rand.NewSource(7)))

	// Four consecutive bags: each 7-piece chunk contains every kind once.
	for bag := 0; bag < 4; bag++ {
		seen := make(map[Kind]bool)
		for i := 0; i < KindCount; i++ {
			k := g.Next()
			if seen[k] {
				t.Fatalf("bag %d: kind %v repeated within a single bag", bag, k)
			}
			seen[k] = true
		}
		if len(seen) != KindCount {
			t.Fatalf("bag %d: got %d kinds, want %d", bag, len(seen), KindCount)
		}
	}
}

func TestBagRepeatDistanceBounded(t *testing.T) {
	g := NewBagRandomizer(rand.New(rand.NewSource(99)))

	// With the bag policy consecutive occurrences of a kind are at most
	// 12 draws apart: worst case is position 0 of one bag followed by
	// position 6 of the next.
	lastSeen := make(map[Kind]int)
	for i := 0; i < 140; i++ {
		k := g.Next()
		if prev, ok := lastSeen[k]; ok {
			if gap := i - prev; gap > 12 {
				t.Fatalf("kind %v: %d draws between occurrences at %d and %d", k, gap, prev, i)
			}
		}
		lastSeen[k] = i
	}
}

func TestBagPeekDoesNotConsume(t *testing.T) {
	g := NewBagRandomizer(rand.New(rand.NewSource(3)))

	preview := g.Peek(5)
	if len(preview) != 5 {
		t.Fatalf("Peek(5) returned %d kinds", len(preview))
	}

	for i, want := range preview {
		if got := g.Next(); got != want {
			t.Errorf("piece %d: Next() = %v, Peek promised %v", i, got, want)
		}
	}
}

func TestBagQueueNeverStarves(t *testing.T) {
	g := NewBagRandomizer(rand.New(rand.NewSource(1)))

	for i := 0; i < 100; i++ {
		if len(g.queue) < KindCount {
			t.Fatalf("queue dropped below one bag (%d) after %d draws", len(g.queue), i)
		}
		g.Next()
	}
}

func TestBagDeterministicForSeed(t *testing.T) {
	a := NewBagRandomizer(rand.New(rand.NewSource(42)))
	b := NewBagRandomizer(rand.New(rand.NewSource(42)))

	for i := 0; i < 50; i++ {
		if x, y := a.Next(), b.Next(); x != y {
			t.Fatalf("draw %d differs for identical seeds: %v vs %v", i, x, y)
		}
	}
}
