// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitio implements the byte-buffer and cursor substrate shared by
// the codecs in this module: an owning ByteBuffer, a non-owning ByteView, a
// pair of forward-only cursors over them, and a fixed-length Bitset.
//
// None of the codec packages hold a reference to each other; apart from
// internal/fileio for their file wrappers, this package is all they share;
// see the top-level DESIGN.md for the rationale.
package bitio

import "runtime"

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bitio: " + string(e) }

var (
	// ErrOverflow reports that a checked read or write would exceed the
	// bound of the underlying storage.
	ErrOverflow error = Error("buffer overflow")

	// ErrAlloc reports that a growth operation could not obtain storage.
	ErrAlloc error = Error("allocation failure")

	// ErrRange reports an out-of-range Bitset index.
	ErrRange error = Error("index out of range")
)

// errRecover is meant to be used in a deferred call to recover from a panic
// triggered by an unchecked primitive and report it through err. It follows
// the same convention as the codec packages built atop bitio.
func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}

// ErrRecover exports errRecover for use by codec packages built on bitio.
// recover only stops a panic when the deferred function calls it directly,
// so ErrRecover is bound to errRecover itself rather than wrapping it, and
// a codec package must defer it (or a variable bound to it) directly.
var ErrRecover = errRecover

// nextPow2 rounds n up to the next power of two that is at least 2.
func nextPow2(n int) int {
	if n < 2 {
		return 2
	}
	p := 2
	for p < n {
		p <<= 1
	}
	return p
}
