// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a from-scratch Huffman prefix codec: a
// frequency pass, priority-queue tree construction, depth-first codebook
// generation, and an on-wire pre-order tree serialization, framed as
// tree_size/data_size/tree/payload.
package huffman

import "github.com/ziplab/ziplab/bitio"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrCorrupt reports a structural violation in a compressed stream: a
	// truncated header, a tree that does not terminate, or a bit walk that
	// falls off a nonexistent child.
	ErrCorrupt error = Error("stream is corrupted")
)

// errRecover is bound to bitio.ErrRecover rather than wrapping it, so that
// a deferred errRecover calls recover directly.
var errRecover = bitio.ErrRecover
