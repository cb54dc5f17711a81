// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dmc

import (
	"testing"

	"github.com/ziplab/ziplab/internal/testutil"
)

func TestNewModelStartsAtRootWithNeutralProbability(t *testing.T) {
	m := NewModel()
	if got := m.StateCount(); got != 1 {
		t.Fatalf("StateCount() = %d, want 1", got)
	}
	if got := m.ProbabilityOfZero(); got != 0.5 {
		t.Fatalf("ProbabilityOfZero() = %v, want 0.5", got)
	}
}

func TestProcessBitCreatesAStateOnlyForAnAbsentEdge(t *testing.T) {
	m := NewModel()
	m.ProcessBit(0) // root's bit-0 edge loops back to itself, no growth
	if got := m.StateCount(); got != 1 {
		t.Fatalf("StateCount() after a self-loop bit = %d, want 1", got)
	}
	m.ProcessBit(1) // root's bit-1 edge starts absent
	if got := m.StateCount(); got != 2 {
		t.Fatalf("StateCount() after the first bit-1 = %d, want 2", got)
	}
}

func TestProbabilityOfZeroTracksObservedBits(t *testing.T) {
	m := NewModel()
	for i := 0; i < 20; i++ {
		m.ProcessBit(0)
	}
	if p := m.ProbabilityOfZero(); p < 0.99 {
		t.Fatalf("ProbabilityOfZero() = %v after all-zero traffic, want close to 1", p)
	}
}

func TestProbabilityOfZeroLeansTowardOnesAfterOneTraffic(t *testing.T) {
	m := NewModel()
	for i := 0; i < 20; i++ {
		m.Reset()
		m.ProcessBit(1)
	}
	m.Reset()
	if p := m.ProbabilityOfZero(); p > 0.01 {
		t.Fatalf("ProbabilityOfZero() = %v after all-one traffic at the root, want close to 0", p)
	}
}

// TestCloningSplitsASharedSuccessorUnderMixedTraffic drives the root's
// bit-1 edge to accumulate traffic via its existing child, then sends just
// enough bit-0 self-loop traffic for both the edge count and the
// remaining (bit-1) traffic to cross the clone threshold.
func TestCloningSplitsASharedSuccessorUnderMixedTraffic(t *testing.T) {
	m := NewModel()
	for i := 0; i < 3; i++ {
		m.Reset()
		m.ProcessBit(1)
	}
	if got := m.StateCount(); got != 2 {
		t.Fatalf("StateCount() after priming bit-1 traffic = %d, want 2", got)
	}

	m.Reset()
	m.ProcessBit(0) // edge count 1, below threshold: no clone yet
	if got := m.StateCount(); got != 2 {
		t.Fatalf("StateCount() after one self-loop bit = %d, want 2 (no clone yet)", got)
	}

	m.Reset()
	m.ProcessBit(0) // edge count 2 and remaining traffic 3: clone fires
	if got := m.StateCount(); got != 3 {
		t.Fatalf("StateCount() = %d after crossing the clone threshold, want 3", got)
	}
}

func TestProcessBitFromRandomBitsNeverPanics(t *testing.T) {
	m := NewModel()
	r := testutil.NewRand(9)
	buf := testutil.RepeatyBytes(r.Int(), 512)
	for _, b := range buf {
		for bit := 7; bit >= 0; bit-- {
			m.ProcessBit(int((b >> uint(bit)) & 1))
			if p := m.ProbabilityOfZero(); p < 0 || p > 1 {
				t.Fatalf("ProbabilityOfZero() = %v, want value in [0,1]", p)
			}
		}
	}
	if m.StateCount() < 2 {
		t.Fatalf("StateCount() = %d after 4096 bits, want growth beyond the root", m.StateCount())
	}
}

func TestResetReturnsToRootWithoutDiscardingStates(t *testing.T) {
	m := NewModel()
	m.ProcessBit(0)
	m.Reset()
	m.ProcessBit(1)
	before := m.StateCount()
	m.Reset()
	if m.cur != 0 {
		t.Fatalf("Reset() left cur = %d, want 0", m.cur)
	}
	if got := m.StateCount(); got != before {
		t.Fatalf("StateCount() changed across Reset(): got %d, want %d", got, before)
	}
}
