// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rans

import "github.com/ziplab/ziplab/bitio"

// Compress entropy-codes src with a 64-bit range ANS coder. The header
// carries min_sym, max_sym, the scaled frequency table, and the
// uncompressed size; the body is a word_count (4-byte LE u32) followed by
// that many 32-bit renormalization words emitted while processing src in
// reverse, ending with the two words that reconstruct the encoder's final
// state.
//
// word_count replaces scanning for a zero terminator word: the final
// state's low and high halves are always both written unconditionally,
// since a genuine renormalization word can legitimately be zero and a
// decoder that stops at the first zero word would mistake it for the
// terminator. Framing the word count explicitly, the same way lzss frames
// its per-block unit count, makes the word stream self delimiting
// regardless of what values it contains.
//
// An empty input produces an empty output with no header.
func Compress(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	t := buildTable(src)

	out := bitio.NewByteBufferSize(16 + 2*(t.maxSym-t.minSym+1) + len(src))
	oc := bitio.NewOutputCursor(out)
	oc.TryWriteU8(uint8(t.minSym))
	oc.TryWriteU8(uint8(t.maxSym))

	if t.minSym == t.maxSym {
		// A single distinct symbol would need a scaled frequency of exactly
		// totalFreq to keep the cumulative-interval invariant, which does
		// not fit the 16-bit wire field. Write a frequency of 0 as a
		// sentinel (otherwise impossible, since every present symbol must
		// carry a nonzero scaled frequency) and skip the ANS state machine
		// entirely: the decoder just repeats the byte data_size times.
		oc.TryWriteU16(0)
		oc.TryWriteU32(uint32(len(src)))
		oc.TryWriteU32(0) // compressed_size placeholder
		return append([]byte(nil), out.Data()...)
	}

	for s := t.minSym; s <= t.maxSym; s++ {
		oc.TryWriteU16(uint16(t.scaled[s]))
	}
	oc.TryWriteU32(uint32(len(src)))
	oc.TryWriteU32(0) // compressed_size placeholder

	state := initState
	var words []uint32
	for i := len(src) - 1; i >= 0; i-- {
		s := src[i]
		f := uint64(t.scaled[s])
		c := uint64(t.cum[s])
		thresh := (renormThresh / totalFreq) * f
		for state >= thresh {
			words = append(words, uint32(state))
			state >>= 32
		}
		state = (state/f)*totalFreq + c + state%f
	}
	// The final state's low and high halves are always both emitted, even
	// when the high half is zero: a decoder relying on a zero word to mean
	// "terminator" cannot tell that apart from a legitimate zero word here.
	words = append(words, uint32(state), uint32(state>>32))

	oc.TryWriteU32(uint32(len(words)))
	for _, w := range words {
		oc.TryWriteU32(w)
	}

	return append([]byte(nil), out.Data()...)
}

// Decompress reverses Compress: it parses the header, rebuilds the
// cumulative table, reads word_count renormalization words, bootstraps the
// 64-bit state from the last two words written, then replays the standard
// rANS decoding loop data_size times.
func Decompress(src []byte) (out []byte, err error) {
	if len(src) == 0 {
		return nil, nil
	}
	defer errRecover(&err)

	ic := bitio.NewInputCursor(src)
	var minSymB, maxSymB uint8
	if !ic.TryReadU8(&minSymB) || !ic.TryReadU8(&maxSymB) {
		panic(ErrCorrupt)
	}
	minSym, maxSym := int(minSymB), int(maxSymB)
	if maxSym < minSym {
		panic(ErrCorrupt)
	}

	var scaled [256]uint32
	for s := minSym; s <= maxSym; s++ {
		var f uint16
		if !ic.TryReadU16(&f) {
			panic(ErrCorrupt)
		}
		scaled[s] = uint32(f)
	}
	var dataSize, compressedSize uint32
	if !ic.TryReadU32(&dataSize) || !ic.TryReadU32(&compressedSize) {
		panic(ErrCorrupt)
	}
	_ = compressedSize // placeholder field, unused on decode

	if minSym == maxSym && scaled[minSym] == 0 {
		result := make([]byte, dataSize)
		for i := range result {
			result[i] = byte(minSym)
		}
		return result, nil
	}

	t := tableFromHeader(minSym, maxSym, scaled)

	var wordCount uint32
	if !ic.TryReadU32(&wordCount) {
		panic(ErrCorrupt)
	}
	if wordCount < 2 {
		panic(ErrCorrupt)
	}
	words := make([]uint32, wordCount)
	for i := range words {
		if !ic.TryReadU32(&words[i]) {
			panic(ErrCorrupt)
		}
	}
	// Reverse emission order; the last two emitted words (low, high) become
	// the first two of the reversed list and reconstruct the final state.
	rev := make([]uint32, len(words))
	for i, w := range words {
		rev[len(words)-1-i] = w
	}
	state := uint64(rev[0])<<32 | uint64(rev[1])
	cursor := 2

	result := make([]byte, 0, dataSize)
	for uint32(len(result)) < dataSize {
		slot := uint32(state % totalFreq)
		s, ok := t.findSymbol(slot)
		if !ok {
			panic(ErrCorrupt)
		}
		result = append(result, byte(s))
		state = (state/totalFreq)*uint64(t.scaled[s]) + uint64(slot) - uint64(t.cum[s])
		for state < initState {
			if cursor >= len(rev) {
				panic(ErrCorrupt)
			}
			state = (state << 32) | uint64(rev[cursor])
			cursor++
		}
	}
	return result, nil
}
