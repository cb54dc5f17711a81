// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rans implements a 64-bit range Asymmetric Numeral System entropy
// coder: a frequency pass and scaling step build a 256-entry cumulative
// distribution table, the encoder runs the input in reverse emitting 32-bit
// renormalization words, and the decoder replays the table to recover
// symbols in forward order.
package rans

import "github.com/ziplab/ziplab/bitio"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "rans: " + string(e) }

var (
	// ErrCorrupt reports a structural violation in a compressed stream: a
	// truncated header, a word stream with fewer than two words or shorter
	// than its word_count, or a slot that falls outside every symbol's
	// cumulative interval.
	ErrCorrupt error = Error("stream is corrupted")
)

// errRecover is bound to bitio.ErrRecover rather than wrapping it, so that
// a deferred errRecover calls recover directly.
var errRecover = bitio.ErrRecover

const (
	totalFreqBits = 16
	totalFreq     = 1 << totalFreqBits // 65536
	initState     = uint64(1) << 31
	renormThresh  = uint64(1) << 63
)
