// Copyright 2024 The go-mersenne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/go-mersenne/mt19937"
	"github.com/go-mersenne/mt19937/internal/mtref"
)

// checkFirst200 draws the first 200 values, prints them five per row
// with mismatches against the reference table marked '*', and returns
// the mismatch count. The generator must be freshly seeded with the
// reference seed.
func checkFirst200(w io.Writer, g *mt19937.MT19937) int {
	mismatches := 0
	for i := range mtref.Seed1First200 {
		v := g.Uint32()
		mark := byte(' ')
		if v != mtref.Seed1First200[i] {
			mark = '*'
			mismatches++
		}
		sep := byte(' ')
		if i%5 == 4 {
			sep = '\n'
		}
		fmt.Fprintf(w, "%10d%c%c", v, mark, sep)
	}
	return mismatches
}

func printUint64s(w io.Writer, g *mt19937.MT19937) {
	for i := 0; i < 27; i++ {
		sep := byte(' ')
		if i%3 == 2 {
			sep = '\n'
		}
		fmt.Fprintf(w, "%20d%c", g.Uint64(), sep)
	}
}

func printFloats(w io.Writer, g *mt19937.MT19937) {
	for i := 0; i < 40; i++ {
		sep := byte(' ')
		if i%5 == 4 {
			sep = '\n'
		}
		fmt.Fprintf(w, "%f%c", g.Float32CC(), sep)
	}
}

func printDoubles(w io.Writer, g *mt19937.MT19937) {
	for i := 0; i < 40; i++ {
		sep := byte(' ')
		if i%5 == 4 {
			sep = '\n'
		}
		fmt.Fprintf(w, "%f%c", g.Float64CC(), sep)
	}
}

// progressEvery is how many draws pass between progress log lines
// during the long-run check.
const progressEvery = 1 << 28

// checkDistantIndices draws sequentially through index limit and
// compares the output at each reference checkpoint up to that index.
// It prints each checkpoint as it is reached, marking mismatches '*',
// and returns the number of checkpoints checked and the number that
// mismatched. The generator must be freshly seeded with the reference
// seed.
func checkDistantIndices(w io.Writer, logger *zap.Logger, g *mt19937.MT19937, limit uint64) (checked, mismatches int) {
	start := time.Now()
	for i := uint64(0); i <= limit; i++ {
		v := g.Uint32()

		if (i+1)%progressEvery == 0 {
			logger.Info("long-run progress",
				zap.Uint64("drawn", i+1),
				zap.Duration("elapsed", time.Since(start)))
		}

		if checked == len(mtref.Seed1DistantIndices) || i != mtref.Seed1DistantIndices[checked].Index {
			continue
		}
		mark := byte(' ')
		if v != mtref.Seed1DistantIndices[checked].Value {
			mark = '*'
			mismatches++
		}
		sep := byte(' ')
		if checked%4 == 3 {
			sep = '\n'
		}
		fmt.Fprintf(w, "%11d %11d%c%c", i, v, mark, sep)
		checked++
	}
	logger.Info("distant-index check finished",
		zap.Int("checked", checked),
		zap.Int("mismatches", mismatches),
		zap.Duration("elapsed", time.Since(start)))
	return checked, mismatches
}
