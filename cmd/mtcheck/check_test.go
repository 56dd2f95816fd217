// Copyright 2024 The go-mersenne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/go-mersenne/mt19937"
)

func TestCheckFirst200Matches(t *testing.T) {
	var buf bytes.Buffer
	g := mt19937.New(refSeed)
	if got := checkFirst200(&buf, g); got != 0 {
		t.Errorf("checkFirst200 reported %d mismatches, want 0", got)
	}
	if strings.Contains(buf.String(), "*") {
		t.Error("output contains a mismatch marker")
	}
	if got, want := strings.Count(buf.String(), "\n"), 40; got != want {
		t.Errorf("output has %d rows, want %d", got, want)
	}
}

func TestCheckFirst200FlagsWrongSeed(t *testing.T) {
	var buf bytes.Buffer
	g := mt19937.New(refSeed + 1)
	if got := checkFirst200(&buf, g); got == 0 {
		t.Error("checkFirst200 reported no mismatches for the wrong seed")
	}
}

func TestCheckDistantIndicesCapped(t *testing.T) {
	var buf bytes.Buffer
	g := mt19937.New(refSeed)
	checked, mismatches := checkDistantIndices(&buf, zap.NewNop(), g, 1<<20-1)
	if checked != 21 {
		t.Errorf("checked %d checkpoints, want 21", checked)
	}
	if mismatches != 0 {
		t.Errorf("%d mismatches, want 0", mismatches)
	}
}
