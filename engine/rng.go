package engine

import "math/rand"

// Roller produces uniform integers in the inclusive range [min, max].
// The engine's RNG implements it; tests substitute scripted rollers.
type Roller interface {
	Between(min, max int) int
}

// MaxPosition bounds the number of source draws a restored RNG replays.
const MaxPosition = 1 << 24

// countingSource counts every value drawn from the underlying source, so
// rejection sampling inside rand.Rand is replayed exactly.
type countingSource struct {
	src rand.Source
	n   int64
}

func (c *countingSource) Int63() int64 {
	c.n++
	return c.src.Int63()
}

func (c *countingSource) Seed(seed int64) {
	c.src.Seed(seed)
	c.n = 0
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position counts source draws, enabling save/restore.
type RNG struct {
	seed int64
	cnt  *countingSource
	src  *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	cnt := &countingSource{src: rand.NewSource(seed)}
	return &RNG{
		seed: seed,
		cnt:  cnt,
		src:  rand.New(cnt),
	}
}

// Between returns a uniform integer in [min, max]. When max ≤ min it
// returns min without consuming a draw.
func (r *RNG) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + int(r.src.Int63n(int64(max-min+1)))
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.cnt.n
}

// RestoreRNG creates an RNG and advances it to the given position.
// This reproduces the exact RNG state for save/load. Callers bound
// position to [0, MaxPosition].
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		rng.cnt.Int63()
	}
	return rng
}
