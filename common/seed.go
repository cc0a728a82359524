package common

import "math"

// Source is the random source consumed by the simulation.
// SeededRNG is the only production implementation; tests may script values.
type Source interface {
	Random() float64
}

// SeededRNG implements a Mulberry32 seeded pseudo-random number generator.
// Produces deterministic sequences for reproducible gameplay.
type SeededRNG struct {
	state       uint32
	initialSeed uint32
}

// NewSeededRNG creates a new seeded random number generator.
func NewSeededRNG(seed uint32) *SeededRNG {
	return &SeededRNG{
		state:       seed,
		initialSeed: seed,
	}
}

// SetSeed sets a new seed and resets the generator state.
func (r *SeededRNG) SetSeed(seed uint32) {
	r.state = seed
	r.initialSeed = seed
}

// Seed returns the seed the generator was last reset to.
func (r *SeededRNG) Seed() uint32 {
	return r.initialSeed
}

// Reset resets the generator to its initial seed.
func (r *SeededRNG) Reset() {
	r.state = r.initialSeed
}

// Random generates the next random number using Mulberry32 algorithm.
// Returns a float64 between 0 (inclusive) and 1 (exclusive).
func (r *SeededRNG) Random() float64 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0
}

// RandomInt returns a random integer in [min, max) drawn from src.
func RandomInt(src Source, min, max int) int {
	return int(src.Random()*float64(max-min)) + min
}

// RandomFloat returns a random float in [min, max) drawn from src.
func RandomFloat(src Source, min, max float64) float64 {
	return src.Random()*(max-min) + min
}

// RandomAngle returns a random angle in [0, 2π).
func RandomAngle(src Source) float64 {
	return src.Random() * 2 * math.Pi
}

// Chance reports whether an event with probability p happens on this draw.
func Chance(src Source, p float64) bool {
	return src.Random() < p
}

// Jitter returns a value in [-spread/2, spread/2).
func Jitter(src Source, spread float64) float64 {
	return (src.Random() - 0.5) * spread
}

// WeightedIndex picks an index with probability proportional to weights[i].
// Non-positive weights are never picked. Returns -1 when nothing is eligible.
func WeightedIndex(src Source, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := src.Random() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if roll < w {
			return i
		}
		roll -= w
	}
	// Floating point leftovers land on the last eligible entry.
	return last
}

// LevelSeed generates a deterministic seed for a specific level.
func LevelSeed(baseSeed uint32, levelNumber int) uint32 {
	seed := baseSeed ^ (uint32(levelNumber) * 2654435761)
	seed = (seed ^ (seed >> 16)) * 0x85ebca6b
	seed = (seed ^ (seed >> 13)) * 0xc2b2ae35
	return seed ^ (seed >> 16)
}
