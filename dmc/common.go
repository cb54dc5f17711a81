// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package dmc implements a small Dynamic Markov Compression state machine:
// a binary predictor whose states are grown on demand as bits are fed in,
// with a cloning heuristic that splits a state when one incoming edge
// dominates its traffic. It is a modeling testbed, not a codec — it
// produces no compressed bytes.
package dmc

// noState marks an edge with no successor yet.
const noState = -1

// cloneThreshold is the minimum edge count, on both sides of the split,
// required before process_bit clones a shared successor. DMC's own
// literature leaves this a tunable; this prototype fixes it rather than
// exposing it, since the model here is illustrative rather than
// load-bearing.
const cloneThreshold = 2
