// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package dmc

// state is one node of the binary Markov chain: transition counts for each
// input bit, and the successor state reached under that bit (noState if the
// edge has never been taken).
type state struct {
	count0, count1 uint32
	next0, next1   int32
}

// Model is an append-only vector of states, grown on demand as process_bit
// discovers edges that have never been taken, mirroring the slice-growth
// idiom used elsewhere in this codebase for incrementally built tables.
type Model struct {
	states []state
	cur    int32
}

// NewModel constructs a Model with a single root state and positions the
// walk there. The root's bit-0 edge loops back to itself rather than
// starting absent: a pure tree grown only from noState edges never gives
// two paths into the same state, so the cloning heuristic in ProcessBit
// would never have traffic to compare against. The self-loop gives the
// root a convergent edge to clone from while the bit-1 edge still starts
// absent, so fresh-state creation is exercised too.
func NewModel() *Model {
	m := &Model{}
	m.states = append(m.states, state{next0: 0, next1: noState})
	return m
}

// newState appends a fresh default state and returns its index.
func (m *Model) newState() int32 {
	m.states = append(m.states, state{next0: noState, next1: noState})
	return int32(len(m.states) - 1)
}

// ProcessBit records an observation of bit b (0 or 1) at the current state,
// walking to (and, if warranted, cloning) its successor under that bit.
//
// Every mutation below re-reads m.states[cur] by index rather than holding
// a pointer or a copy across a call that may append to m.states (newState,
// cloneState): append can reallocate the backing array, which would strand
// a previously taken pointer against a now-stale copy.
func (m *Model) ProcessBit(b int) {
	cur := m.cur
	if b == 0 {
		m.states[cur].count0++
	} else {
		m.states[cur].count1++
	}

	next := m.states[cur].next0
	if b != 0 {
		next = m.states[cur].next1
	}

	if next == noState {
		next = m.newState()
		if b == 0 {
			m.states[cur].next0 = next
		} else {
			m.states[cur].next1 = next
		}
		m.cur = next
		return
	}

	total := m.states[next].count0 + m.states[next].count1
	var edgeCount uint32
	if b == 0 {
		edgeCount = m.states[cur].count0
	} else {
		edgeCount = m.states[cur].count1
	}
	// total (next's own outgoing traffic) need not yet exceed edgeCount: a
	// freshly discovered edge is walked immediately, before next accrues any
	// traffic of its own, so clamp rather than let the uint32 subtraction
	// wrap.
	var other uint32
	if total > edgeCount {
		other = total - edgeCount
	}
	if edgeCount >= cloneThreshold && other >= cloneThreshold {
		clone := m.cloneState(next, edgeCount, total)
		if b == 0 {
			m.states[cur].next0 = clone
		} else {
			m.states[cur].next1 = clone
		}
		m.cur = clone
		return
	}
	m.cur = next
}

// cloneState duplicates the state at idx, apportioning its transition
// counts between the original and the clone in proportion to the edge that
// triggered the split (edgeCount) versus the traffic arriving from
// elsewhere (total-edgeCount), then halves both with rounding so neither
// copy inherits the full historical weight. It returns the clone's index.
func (m *Model) cloneState(idx int32, edgeCount, total uint32) int32 {
	src := m.states[idx]
	frac := func(count uint32) (uint32, uint32) {
		if total == 0 {
			return 0, 0
		}
		c0 := uint64(src.count0) * uint64(count) / uint64(total)
		c1 := uint64(src.count1) * uint64(count) / uint64(total)
		return halveRound(uint32(c0)), halveRound(uint32(c1))
	}
	cloneC0, cloneC1 := frac(edgeCount)

	clone := state{count0: cloneC0, count1: cloneC1, next0: src.next0, next1: src.next1}
	m.states = append(m.states, clone)
	cloneIdx := int32(len(m.states) - 1)

	origC0 := halveRound(src.count0 - uint32(uint64(src.count0)*uint64(edgeCount)/uint64(total)))
	origC1 := halveRound(src.count1 - uint32(uint64(src.count1)*uint64(edgeCount)/uint64(total)))
	m.states[idx].count0 = origC0
	m.states[idx].count1 = origC1

	return cloneIdx
}

// halveRound halves n, rounding to the nearest integer (ties round up),
// and never returns less than 1 for a nonzero input so a cloned state never
// starts out with a dead edge.
func halveRound(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	h := (n + 1) / 2
	if h == 0 {
		h = 1
	}
	return h
}

// ProbabilityOfZero returns count0/(count0+count1) for the current state,
// defaulting to 0.5 before any bit has been observed there.
func (m *Model) ProbabilityOfZero() float64 {
	s := m.states[m.cur]
	total := s.count0 + s.count1
	if total == 0 {
		return 0.5
	}
	return float64(s.count0) / float64(total)
}

// Reset returns the walk to the root state without discarding any states
// learned so far.
func (m *Model) Reset() { m.cur = 0 }

// StateCount reports the number of states the model has grown to.
func (m *Model) StateCount() int { return len(m.states) }
