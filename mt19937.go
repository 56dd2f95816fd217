// Copyright 2024 The go-mersenne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mt19937 implements the 32-bit Mersenne Twister
// pseudo-random number generator as defined in
//
//	Mersenne Twister: A 623-Dimensionally Equidistributed
//	Uniform Pseudo-Random Number Generator
//	Makoto Matsumoto and Takuji Nishimura
//	ACM Transactions on Modeling and Computer Simulation, 1998
//
// The generator here is bit-compatible with the widely used mt19937ar
// reference code: for any seed, the output sequence matches the
// reference word for word. It has a period of 2^19937-1 and is suitable
// for simulation and statistical sampling, not for cryptography: an
// observer who sees 624 consecutive outputs can reconstruct the entire
// state.
//
// A generator is a mutable stream owned by a single caller. It is not
// safe for concurrent use; callers that share one stream across
// goroutines must serialize access themselves, or give each goroutine
// its own seeded generator.
package mt19937

const (
	n = 624 // state words
	m = 397 // recurrence offset

	matrixA   = 0x9908b0df
	upperMask = 0x80000000 // most significant bit
	lowerMask = 0x7fffffff // least significant 31 bits

	seedMultiplier = 1812433253

	// init_by_array constants from the mt19937ar reference.
	arraySeedBase = 19650218
	arrayStepA    = 1664525
	arrayStepB    = 1566083941

	temperMaskB = 0x9d2c5680
	temperMaskC = 0xefc60000
)

// MT19937 holds the generator state: the 624-word state vector and a
// cursor counting how many words have been consumed since the last
// regeneration. The zero value is not a valid generator; use New.
type MT19937 struct {
	state [n]uint32
	index int
}

// New returns a generator initialized from seed. Every 32-bit seed is
// valid, including 0.
func New(seed uint32) *MT19937 {
	g := new(MT19937)
	g.Seed(seed)
	return g
}

// Seed resets the generator to the deterministic state derived from
// seed, discarding all prior state. Two generators seeded with the
// same value produce identical output sequences.
func (g *MT19937) Seed(seed uint32) {
	g.state[0] = seed
	for i := 1; i < n; i++ {
		prev := g.state[i-1]
		g.state[i] = seedMultiplier*(prev^(prev>>30)) + uint32(i)
	}
	g.index = n
}

// SeedFromSlice resets the generator from an array of seed words,
// following the init_by_array scheme of the mt19937ar reference. It
// accepts keys of any length and folds every word into the state, so
// it admits more than 32 bits of seed entropy. An empty key is
// equivalent to Seed(19650218), the scheme's base seed.
func (g *MT19937) SeedFromSlice(key []uint32) {
	g.Seed(arraySeedBase)
	if len(key) == 0 {
		return
	}

	i, j := 1, 0
	k := len(key)
	if k < n {
		k = n
	}
	for ; k > 0; k-- {
		prev := g.state[i-1]
		g.state[i] = (g.state[i] ^ ((prev ^ (prev >> 30)) * arrayStepA)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			g.state[0] = g.state[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		prev := g.state[i-1]
		g.state[i] = (g.state[i] ^ ((prev ^ (prev >> 30)) * arrayStepB)) - uint32(i)
		i++
		if i >= n {
			g.state[0] = g.state[n-1]
			i = 1
		}
	}

	// Guarantees a nonzero state vector.
	g.state[0] = upperMask
	g.index = n
}

// twist regenerates all 624 state words in place and rewinds the
// cursor. Words are processed in increasing order, so the reads at
// offsets i+1 and i+m see already-regenerated words once those offsets
// wrap; the mt19937ar reference updates in place the same way, and the
// output tables depend on it.
func (g *MT19937) twist() {
	for i := 0; i < n; i++ {
		y := (g.state[i] & upperMask) | (g.state[(i+1)%n] & lowerMask)
		next := g.state[(i+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		g.state[i] = next
	}
	g.index = 0
}

// Uint32 returns the next tempered 32-bit value in the stream.
func (g *MT19937) Uint32() uint32 {
	if g.index >= n {
		g.twist()
	}
	y := g.state[g.index]
	g.index++

	y ^= y >> 11
	y ^= (y << 7) & temperMaskB
	y ^= (y << 15) & temperMaskC
	y ^= y >> 18
	return y
}

// Uint64 returns a 64-bit value composed from the next two 32-bit
// draws, first draw in the high word. It advances the stream by two
// positions, so a Uint64 draw and two Uint32 draws consume the same
// underlying sequence.
func (g *MT19937) Uint64() uint64 {
	hi := uint64(g.Uint32())
	lo := uint64(g.Uint32())
	return hi<<32 | lo
}

// Float32CC returns a float32 in the closed interval [0, 1]: the next
// 32-bit draw divided by 2^32-1. Both endpoints are reachable. This is
// deliberately not the half-open [0, 1) convention of math/rand.
func (g *MT19937) Float32CC() float32 {
	return float32(g.Uint32()) / float32(^uint32(0))
}

// Float64CC returns a float64 in the closed interval [0, 1]: a full
// 64-bit draw divided by 2^64-1. Both endpoints are reachable. It
// consumes two 32-bit draws.
func (g *MT19937) Float64CC() float64 {
	return float64(g.Uint64()) / float64(^uint64(0))
}

// Float64CO returns a float64 in the half-open interval [0, 1): the
// next 32-bit draw divided by 2^32. The result is always strictly
// below 1.
func (g *MT19937) Float64CO() float64 {
	return float64(g.Uint32()) / (1 << 32)
}

// Float64OO returns a float64 in the open interval (0, 1):
// (draw + 0.5) / 2^32. The result is never exactly 0 or 1.
func (g *MT19937) Float64OO() float64 {
	return (float64(g.Uint32()) + 0.5) / (1 << 32)
}
