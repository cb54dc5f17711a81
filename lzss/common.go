// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package lzss implements a sliding-window literal/match codec: for each
// input position it finds the longest earlier occurrence of the upcoming
// bytes within a bounded window and, when one is long enough, substitutes a
// compact length/offset token for the literal bytes it stands in for. Output
// is framed in fixed-size blocks, each carrying a flag bitmap that records
// which positions were coded as a literal pair and which as a match token.
package lzss

import "github.com/ziplab/ziplab/bitio"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "lzss: " + string(e) }

var (
	// ErrCorrupt reports a structural violation in a compressed stream: a
	// truncated block, a match offset reaching outside the bytes emitted so
	// far, or a unit count that runs past the end of the input.
	ErrCorrupt error = Error("stream is corrupted")

	// ErrParams reports an invalid (windowBits, lookaheadBits) pair passed
	// to New.
	ErrParams error = Error("invalid window/look-ahead parameters")
)

// errRecover is bound to bitio.ErrRecover rather than wrapping it, so that
// a deferred errRecover calls recover directly.
var errRecover = bitio.ErrRecover
