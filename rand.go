package treap

import (
	"math/rand/v2"
	"time"
)

const defaultSeed = uint64(0xdeadbeefcafebabe)

func newRandomSeed() uint64 {
	seed := uint64(time.Now().UnixNano())
	if seed == 0 {
		seed = defaultSeed
	}
	return seed
}

// RNG is the default priority source: a xorshift64* generator. Its output
// is a bijection of the state, so a single RNG never repeats a priority
// within 2^64-1 draws. The zero value is ready to use and seeds itself from
// the clock on first use.
type RNG struct {
	seed uint64
}

var _ rand.Source = (*RNG)(nil)

func newRNG() *RNG {
	return newRNGWithSeed(newRandomSeed())
}

func newRNGWithSeed(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{seed: seed}
}

func (r *RNG) nextRandom64() uint64 {
	x := r.seed
	if x == 0 {
		// A zero state is a fixed point of xorshift.
		x = newRandomSeed()
	}
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.seed = x
	return x * 2685821657736338717
}

// Uint64 implements rand.Source.
func (r *RNG) Uint64() uint64 {
	return r.nextRandom64()
}
