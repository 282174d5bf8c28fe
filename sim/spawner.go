package sim

import "math/rand/v2"

// Spawner supplies the next piece kind and its spawn origin. The engine never
// chooses kinds itself.
type Spawner interface {
	Next() (Kind, Cell)
}

// SpawnOrigin returns the conventional spawn origin for a grid of the given
// size: horizontally centered, in the spawn buffer just above the visible
// field.
func SpawnOrigin(width, height int) Cell {
	return Cell{width / 2, height}
}

// BagSpawner deals kinds from a shuffled seven-bag, refilling when empty, and
// spawns every piece at the same origin.
type BagSpawner struct {
	origin Cell
	rng    *rand.Rand
	bag    []Kind
}

// NewBagSpawner creates a bag spawner with a deterministic seed.
func NewBagSpawner(origin Cell, seed uint64) *BagSpawner {
	return &BagSpawner{
		origin: origin,
		rng:    rand.New(rand.NewPCG(seed, seed<<32|0x9e3779b9)),
	}
}

// Next deals the next kind from the bag.
func (s *BagSpawner) Next() (Kind, Cell) {
	if len(s.bag) == 0 {
		s.bag = Kinds()
		s.rng.Shuffle(len(s.bag), func(i, j int) {
			s.bag[i], s.bag[j] = s.bag[j], s.bag[i]
		})
	}
	k := s.bag[0]
	s.bag = s.bag[1:]
	return k, s.origin
}
