// Copyright 2024 The go-mersenne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt19937

import (
	"golang.org/x/exp/rand"
)

// source adapts an MT19937 stream to the rand.Source interface.
type source struct {
	g *MT19937
}

func (s *source) Uint64() uint64 { return s.g.Uint64() }

// Seed reseeds the underlying generator from the low 32 bits of seed.
// MT19937's seeding entry point is 32-bit; the high bits are ignored.
func (s *source) Seed(seed uint64) { s.g.Seed(uint32(seed)) }

// NewSource returns a rand.Source backed by an MT19937 stream seeded
// with seed. Each 64-bit value consumes two 32-bit draws, high word
// first.
func NewSource(seed uint32) rand.Source {
	return &source{g: New(seed)}
}

// NewRand returns a *rand.Rand drawing from an MT19937 stream seeded
// with seed, for callers that want the derived distributions (Intn,
// Perm, Shuffle, NormFloat64, ...) on top of the raw generator. The
// returned Rand owns its stream; it is not safe for concurrent use.
func NewRand(seed uint32) *rand.Rand {
	return rand.New(NewSource(seed))
}
