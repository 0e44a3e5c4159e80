package tetris

import "math/rand"

// BagRandomizer produces the upcoming piece sequence using the 7-bag policy:
// one copy of each kind is shuffled, dealt out, then a fresh bag is
// shuffled. No kind can repeat more than once within any 12-piece span, and
// every 7-piece bag is a permutation of the seven kinds.
type BagRandomizer struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBagRandomizer creates a generator drawing from the given RNG.
// The queue is primed with two bags so previews never starve.
func NewBagRandomizer(rng *rand.Rand) *BagRandomizer {
	g := &BagRandomizer{
		rng:   rng,
		queue: make([]Kind, 0, 2*KindCount),
	}
	g.refill()
	g.refill()
	return g
}

// refill appends a freshly shuffled bag of all seven kinds.
func (g *BagRandomizer) refill() {
	for _, i := range g.rng.Perm(KindCount) {
		g.queue = append(g.queue, Kind(i))
	}
}

// Next pops the front of the queue, topping it up with a new bag whenever it
// drops below one bag's length.
func (g *BagRandomizer) Next() Kind {
	kind := g.queue[0]
	g.queue = g.queue[1:]
	if len(g.queue) < KindCount {
		g.refill()
	}
	return kind
}

// Peek returns the next n kinds without consuming them. Powers the preview
// display. n is capped at the queued length (always at least one full bag).
func (g *BagRandomizer) Peek(n int) []Kind {
	if n > len(g.queue) {
		n = len(g.queue)
	}
	out := make([]Kind, n)
	copy(out, g.queue[:n])
	return out
}
