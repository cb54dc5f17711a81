// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzss

import "github.com/ziplab/ziplab/bitio"

// blockDataSize is the number of source positions a single framed block
// spans; it is a power of two sized to fit comfortably in cache.
const blockDataSize = 16 * 1024

// Codec is a sliding-window literal/match coder parameterized by window and
// look-ahead size, fixed once at construction time via New.
type Codec struct {
	windowBits, lookaheadBits int
	windowSize, lookaheadSize int
	minMatch, maxMatch        int
	maxLookahead              int
}

// New constructs a Codec for the given window-bits W and look-ahead-bits L.
// W must be in [4, 16], L must be >= 2 and < W, and W+L must not exceed 16 so
// that a match descriptor's (length, offset) pair packs into one 16-bit
// value (see the wire packing formula in compressBlock).
func New(windowBits, lookaheadBits int) (*Codec, error) {
	if windowBits < 4 || windowBits > 16 {
		return nil, ErrParams
	}
	if lookaheadBits < 2 || lookaheadBits >= windowBits {
		return nil, ErrParams
	}
	if windowBits+lookaheadBits > 16 {
		return nil, ErrParams
	}
	lookaheadSize := 1 << uint(lookaheadBits)
	c := &Codec{
		windowBits:     windowBits,
		lookaheadBits:  lookaheadBits,
		windowSize:     1 << uint(windowBits),
		lookaheadSize:  lookaheadSize,
		minMatch:       3,
		maxMatch:       lookaheadSize - 1,
	}
	c.maxLookahead = c.minMatch + c.maxMatch
	return c, nil
}

// findMatch locates the longest occurrence of src[p:] within the window
// src[max(0,p-windowSize+1):p], breaking length ties in favor of the
// earliest (most distant) starting position by only accepting strictly
// longer matches as the scan advances toward p. The window start is offset
// by one from a plain p-windowSize so the furthest candidate's offset
// (p-start) never exceeds windowSize-1: offset is wire-packed into
// windowBits bits of a 16-bit descriptor alongside length, so an
// unclamped p-windowSize start would let offset reach windowSize exactly,
// overflowing into the length field of the packed value.
func (c *Codec) findMatch(src []byte, p int) (length, offset int) {
	winStart := p - c.windowSize + 1
	if winStart < 0 {
		winStart = 0
	}
	maxLen := c.maxLookahead
	if p+maxLen > len(src) {
		maxLen = len(src) - p
	}
	if maxLen < c.minMatch {
		return 0, 0
	}

	bestLen, bestOff := 0, 0
	for start := winStart; start < p; start++ {
		l := 0
		for l < maxLen && src[start+l] == src[p+l] {
			l++
		}
		if l > bestLen {
			bestLen = l
			bestOff = p - start
			if bestLen == maxLen {
				break
			}
		}
	}
	if bestLen < c.minMatch {
		return 0, 0
	}
	return bestLen, bestOff
}

// Compress encodes src into a self-contained stream: an 8-byte little-endian
// total length, then one framed block per blockDataSize span of src. Each
// block carries a 4-byte little-endian unit count, the flag bitmap for that
// many units (one bit per unit, low-bit-first within each byte), then the
// unit count's worth of 2-byte payload units — either two literal bytes or a
// packed little-endian match descriptor, selected by the corresponding flag
// bit.
func (c *Codec) Compress(src []byte) []byte {
	out := bitio.NewByteBufferSize(16 + len(src))
	oc := bitio.NewOutputCursor(out)
	oc.TryWriteU64(uint64(len(src)))

	for p := 0; p < len(src); {
		p = c.compressBlock(oc, src, p)
	}

	return append([]byte(nil), out.Data()...)
}

// compressBlock encodes one block starting at p, continuing until it has
// advanced at least blockDataSize positions (a trailing match may overshoot
// that target slightly) or reached the end of src, and returns the position
// the next block must start at.
func (c *Codec) compressBlock(oc *bitio.OutputCursor, src []byte, start int) int {
	var units []byte // 2-byte units, concatenated
	var flags []bool

	p := start
	for p < len(src) && p-start < blockDataSize {
		length, offset := c.findMatch(src, p)
		if length >= c.minMatch {
			v := uint16((length-c.minMatch)<<uint(c.windowBits)) | uint16(offset)
			units = append(units, byte(v), byte(v>>8))
			flags = append(flags, true)
			p += length
		} else {
			n := 2
			if p+n > len(src) {
				n = len(src) - p
			}
			var b0, b1 byte
			b0 = src[p]
			if n == 2 {
				b1 = src[p+1]
			}
			units = append(units, b0, b1)
			flags = append(flags, false)
			p += n
		}
	}

	oc.TryWriteU32(uint32(len(flags)))
	bs := bitio.NewBitset(len(flags))
	for i, f := range flags {
		if f {
			bs.Set(i)
		}
	}
	oc.TryWriteBytes(bs.Bytes())
	oc.TryWriteBytes(units)
	return p
}

// Decompress reverses Compress, reconstructing each block's literal and
// match units from its flag bitmap and replaying matches by copying from
// the already-decoded output, one byte at a time so an overlapping match
// (offset < length) correctly repeats the tail being produced.
func (c *Codec) Decompress(src []byte) (out []byte, err error) {
	defer errRecover(&err)

	ic := bitio.NewInputCursor(src)
	var total uint64
	if !ic.TryReadU64(&total) {
		panic(ErrCorrupt)
	}
	result := make([]byte, 0, total)

	for uint64(len(result)) < total {
		var unitCount uint32
		if !ic.TryReadU32(&unitCount) {
			panic(ErrCorrupt)
		}
		flagBytes := (int(unitCount) + 7) / 8
		flagData, ok := ic.TryReadBytes(flagBytes)
		if !ok {
			panic(ErrCorrupt)
		}
		bs := bitio.NewBitset(int(unitCount))
		bs.SetBytes(flagData)

		for i := 0; i < int(unitCount); i++ {
			var u0, u1 uint8
			if !ic.TryReadU8(&u0) || !ic.TryReadU8(&u1) {
				panic(ErrCorrupt)
			}
			if bs.Test(i) {
				v := uint16(u0) | uint16(u1)<<8
				offset := int(v & uint16(c.windowSize-1))
				length := int(v>>uint(c.windowBits)) + c.minMatch
				if offset <= 0 || offset > len(result) {
					panic(ErrCorrupt)
				}
				srcPos := len(result) - offset
				for j := 0; j < length; j++ {
					result = append(result, result[srcPos+j])
				}
			} else {
				result = append(result, u0)
				if uint64(len(result)) < total {
					result = append(result, u1)
				}
			}
		}
	}
	return result, nil
}
