package engine

import "math/rand"

// bagCopies is how many copies of each type go into one bag.
const bagCopies = 2

// BagSize is the number of draws between refills.
const BagSize = bagCopies * len(PieceTypes)

// Bag deals piece types from a shuffled multiset holding two copies of
// every type. An exhausted bag is refilled and reshuffled.
type Bag struct {
	rng   *rand.Rand
	queue []PieceType
}

// NewBag creates an empty bag; the first draw fills it.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{rng: rng}
}

// Next draws the next piece type.
func (b *Bag) Next() PieceType {
	if len(b.queue) == 0 {
		b.refill()
	}
	t := b.queue[len(b.queue)-1]
	b.queue = b.queue[:len(b.queue)-1]
	return t
}

// Remaining returns how many draws are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.queue)
}

func (b *Bag) refill() {
	b.queue = b.queue[:0]
	for range bagCopies {
		b.queue = append(b.queue, PieceTypes[:]...)
	}
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}
