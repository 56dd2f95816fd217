// Copyright 2024 The go-mersenne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt19937_test

import (
	"testing"

	"github.com/go-mersenne/mt19937"
)

func TestSourceMatchesGenerator(t *testing.T) {
	src := mt19937.NewSource(1)
	g := mt19937.New(1)
	for i := 0; i < 1000; i++ {
		if got, want := src.Uint64(), g.Uint64(); got != want {
			t.Fatalf("draw %d: Source.Uint64() = %d, generator = %d", i, got, want)
		}
	}
}

func TestSourceSeedTruncates(t *testing.T) {
	src := mt19937.NewSource(0)
	src.Seed(0xdeadbeef00000001)
	g := mt19937.New(1)
	if got, want := src.Uint64(), g.Uint64(); got != want {
		t.Errorf("after Seed with high bits set: Source.Uint64() = %d, want %d", got, want)
	}
}

func TestNewRand(t *testing.T) {
	r := mt19937.NewRand(99)
	for i := 0; i < 1000; i++ {
		if v := r.Intn(10); v < 0 || v >= 10 {
			t.Fatalf("Intn(10) = %d", v)
		}
	}

	a, b := mt19937.NewRand(5), mt19937.NewRand(5)
	for i := 0; i < 1000; i++ {
		va, vb := a.Uint64(), b.Uint64()
		if va != vb {
			t.Fatalf("identically seeded Rands diverge at draw %d: %d != %d", i, va, vb)
		}
	}
}
