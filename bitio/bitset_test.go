// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"math/bits"
	"testing"

	"github.com/ziplab/ziplab/internal/testutil"
)

func countBytes(b []byte) int {
	n := 0
	for _, v := range b {
		n += bits.OnesCount8(v)
	}
	return n
}

func TestBitsetSetResetFlip(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 63, 64, 65, 200} {
		s := NewBitset(n)
		for i := 0; i < n; i++ {
			s.Set(i)
			if !s.Test(i) {
				t.Fatalf("n=%d: Test(%d) = false after Set", n, i)
			}
			s.Reset(i)
			if s.Test(i) {
				t.Fatalf("n=%d: Test(%d) = true after Reset", n, i)
			}
			s.Flip(i)
			s.Flip(i)
			if s.Test(i) {
				t.Fatalf("n=%d: Flip twice is not identity at %d", n, i)
			}
		}
	}
}

func TestBitsetCount(t *testing.T) {
	r := testutil.NewRand(1)
	for _, n := range []int{1, 8, 63, 64, 65, 127, 128, 257} {
		s := NewBitset(n)
		want := 0
		for i := 0; i < n; i++ {
			if r.Intn(2) == 1 {
				s.Set(i)
				want++
			}
		}
		if got := s.Count(); got != want {
			t.Fatalf("n=%d: Count() = %d, want %d", n, got, want)
		}
		if got := countBytes(s.Bytes()); got != want {
			t.Fatalf("n=%d: byte-wise count = %d, want %d", n, got, want)
		}
	}
}

func TestBitsetTrimInvariant(t *testing.T) {
	for _, n := range []int{1, 7, 9, 63, 65, 100} {
		s := NewBitset(n)
		s.SetAll()
		checkTrim(t, s, n)
		s.FlipAll()
		checkTrim(t, s, n)
		s.SetAll()
		s.ShiftLeft(3)
		checkTrim(t, s, n)
		s.SetAll()
		s.ShiftRight(3)
		checkTrim(t, s, n)
	}
}

func checkTrim(t *testing.T, s *Bitset, n int) {
	t.Helper()
	last := len(s.words) - 1
	if last < 0 {
		return
	}
	mask := s.lastMask()
	if s.words[last]&^mask != 0 {
		t.Fatalf("n=%d: padding bits not zero in last word: %#x (mask %#x)", n, s.words[last], mask)
	}
}

func TestBitsetAll(t *testing.T) {
	s := NewBitset(10)
	if s.All() {
		t.Fatal("All() = true on empty bitset")
	}
	s.SetAll()
	if !s.All() {
		t.Fatal("All() = false after SetAll")
	}
	s.Reset(9)
	if s.All() {
		t.Fatal("All() = true with a cleared bit")
	}
}

func TestBitsetAnyNone(t *testing.T) {
	s := NewBitset(16)
	if s.Any() || !s.None() {
		t.Fatal("fresh bitset should be None")
	}
	s.Set(5)
	if !s.Any() || s.None() {
		t.Fatal("bitset with a set bit should be Any")
	}
}

func TestBitsetBitwiseOps(t *testing.T) {
	a := NewBitset(16)
	b := NewBitset(16)
	a.Set(0)
	a.Set(1)
	b.Set(1)
	b.Set(2)

	and := NewBitset(16)
	and.SetBytes(a.Bytes())
	and.And(b)
	for i := 0; i < 16; i++ {
		want := i == 1
		if and.Test(i) != want {
			t.Fatalf("AND bit %d = %v, want %v", i, and.Test(i), want)
		}
	}

	or := NewBitset(16)
	or.SetBytes(a.Bytes())
	or.Or(b)
	for _, i := range []int{0, 1, 2} {
		if !or.Test(i) {
			t.Fatalf("OR missing bit %d", i)
		}
	}

	xor := NewBitset(16)
	xor.SetBytes(a.Bytes())
	xor.Xor(b)
	if !xor.Test(0) || xor.Test(1) || !xor.Test(2) {
		t.Fatalf("XOR result incorrect")
	}
}

func TestBitsetShift(t *testing.T) {
	s := NewBitset(16)
	s.Set(0)
	s.ShiftLeft(3)
	if !s.Test(3) || s.Count() != 1 {
		t.Fatalf("ShiftLeft(3) on bit 0: Count=%d, bit3=%v", s.Count(), s.Test(3))
	}
	s.ShiftRight(3)
	if !s.Test(0) || s.Count() != 1 {
		t.Fatalf("ShiftRight(3) did not restore bit 0")
	}
}

func TestBitsetBytesRoundTrip(t *testing.T) {
	r := testutil.NewRand(2)
	for _, n := range []int{1, 7, 8, 33, 100} {
		s := NewBitset(n)
		for i := 0; i < n; i++ {
			if r.Intn(2) == 1 {
				s.Set(i)
			}
		}
		b := s.Bytes()
		if want := (n + 7) / 8; len(b) != want {
			t.Fatalf("n=%d: len(Bytes()) = %d, want %d", n, len(b), want)
		}
		s2 := NewBitset(n)
		s2.SetBytes(b)
		for i := 0; i < n; i++ {
			if s.Test(i) != s2.Test(i) {
				t.Fatalf("n=%d: round-trip mismatch at bit %d", n, i)
			}
		}
	}
}
