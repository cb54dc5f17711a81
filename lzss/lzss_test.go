// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzss

import (
	"bytes"
	"testing"

	"github.com/ziplab/ziplab/internal/testutil"
)

func roundTrip(t *testing.T, c *Codec, src []byte) {
	t.Helper()
	enc := c.Compress(src)
	dec, err := c.Decompress(enc)
	if err != nil {
		t.Fatalf("Decompress error: %v", err)
	}
	if !bytes.Equal(dec, src) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(dec), len(src))
	}
}

func TestNewRejectsBadParams(t *testing.T) {
	cases := []struct{ w, l int }{
		{3, 2},   // W below range
		{17, 2},  // W above range
		{12, 1},  // L below minimum
		{12, 12}, // L >= W
		{16, 4},  // W+L > 16
	}
	for _, tc := range cases {
		if _, err := New(tc.w, tc.l); err == nil {
			t.Fatalf("New(%d, %d) succeeded, want error", tc.w, tc.l)
		}
	}
}

func TestCompressDecompressMixedAlphabet(t *testing.T) {
	c, err := New(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	roundTrip(t, c, []byte("ABABABAABABABACCDABABABABA"))
}

func TestCompressDecompressEmpty(t *testing.T) {
	c, err := New(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	enc := c.Compress(nil)
	dec, err := c.Decompress(enc)
	if err != nil || len(dec) != 0 {
		t.Fatalf("Decompress(empty) = (%v, %v), want (empty, nil)", dec, err)
	}
}

func TestCompressDecompressMillionZeros(t *testing.T) {
	c, err := New(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	src := make([]byte, 1_000_000)
	roundTrip(t, c, src)

	enc := c.Compress(src)
	if len(enc) >= len(src)/4 {
		t.Fatalf("a run of zeros compressed poorly: %d bytes from %d", len(enc), len(src))
	}
}

// TestFindMatchOffsetNeverReachesWindowSize guards against the furthest
// candidate in the window landing exactly windowSize bytes back: that
// offset does not fit in windowBits bits, so the packed descriptor would
// spill its one set bit into the length field. An all-'x' input matches at
// every window position, so once p passes the window size the earliest
// allowed start wins each tie and sets the offset to windowSize-1.
func TestFindMatchOffsetNeverReachesWindowSize(t *testing.T) {
	c, err := New(4, 2) // windowSize = 16
	if err != nil {
		t.Fatal(err)
	}
	src := make([]byte, 0, c.windowSize+8)
	for i := 0; i < c.windowSize; i++ {
		src = append(src, 'x')
	}
	src = append(src, 'x', 'x', 'x', 'x')
	for p := c.minMatch; p < len(src); p++ {
		_, offset := c.findMatch(src, p)
		if offset >= c.windowSize {
			t.Fatalf("findMatch(src, %d) offset = %d, want < windowSize (%d)", p, offset, c.windowSize)
		}
	}
	roundTrip(t, c, src)
}

func TestCompressDecompressWindowBoundary(t *testing.T) {
	c, err := New(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	// window_size = 16; plant a 3-byte repeat exactly at the window edge.
	src := append([]byte("XYZ"), bytes.Repeat([]byte{'q'}, 12)...)
	src = append(src, 'X', 'Y', 'Z')
	roundTrip(t, c, src)
}

func TestCompressDecompressOverlappingMatch(t *testing.T) {
	c, err := New(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	// "ab" repeated: the first match, at position 2, has offset 2 and length
	// 18, extending past the already-emitted tail and exercising the
	// byte-at-a-time overlap copy on decode. Later matches tie-break to the
	// earliest start, position 0.
	src := bytes.Repeat([]byte("ab"), 100)
	roundTrip(t, c, src)
}

func TestCompressDecompressSpanningMultipleBlocks(t *testing.T) {
	c, err := New(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	r := testutil.NewRand(7)
	src := testutil.RepeatyBytes(r.Int(), 5*blockDataSize+37)
	roundTrip(t, c, src)
}

func TestCompressDecompressRandomSizes(t *testing.T) {
	c, err := New(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	r := testutil.NewRand(3)
	for _, n := range []int{0, 1, 2, 3, 17, 4096} {
		roundTrip(t, c, testutil.RepeatyBytes(r.Int(), n))
	}
}

func TestDecompressRejectsBadOffset(t *testing.T) {
	c, err := New(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	enc := c.Compress(bytes.Repeat([]byte("ab"), 50))
	// The stream is an 8-byte total, a 4-byte unit count (7), one flag byte
	// and seven 2-byte units: a literal "ab" then six match descriptors.
	// Overwriting the last four bytes turns the final two descriptors into
	// 0xFFFF, whose offset (4095) reaches far past the 74 bytes emitted
	// when the first of them is decoded.
	corrupt := append([]byte(nil), enc...)
	for i := len(corrupt) - 1; i >= 0 && i >= len(corrupt)-4; i-- {
		corrupt[i] = 0xFF
	}
	if _, err := c.Decompress(corrupt); err == nil {
		t.Fatal("Decompress(out-of-range match offset) succeeded, want error")
	}
}

func TestDecompressRejectsTruncatedStream(t *testing.T) {
	c, err := New(12, 4)
	if err != nil {
		t.Fatal(err)
	}
	enc := c.Compress(bytes.Repeat([]byte("hello world"), 20))
	if _, err := c.Decompress(enc[:len(enc)/2]); err == nil {
		t.Fatal("Decompress(truncated stream) succeeded, want error")
	}
}
