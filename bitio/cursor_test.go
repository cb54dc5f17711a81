// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import "testing"

func TestCursorSymmetry(t *testing.T) {
	buf := NewByteBuffer()
	wr := NewOutputCursor(buf)

	wr.WriteU8(0x12)
	wr.WriteI8(-5)
	wr.WriteBool(true)
	wr.WriteU16(0xBEEF)
	wr.WriteI16(-1234)
	wr.WriteU32(0xDEADBEEF)
	wr.WriteI32(-123456)
	wr.WriteU64(0x0123456789ABCDEF)
	wr.WriteI64(-123456789012)
	wr.WriteF32(3.5)
	wr.WriteF64(-2.25)

	rd := NewInputCursor(buf.Data())
	if v := rd.ReadU8(); v != 0x12 {
		t.Fatalf("ReadU8() = %#x, want 0x12", v)
	}
	if v := rd.ReadI8(); v != -5 {
		t.Fatalf("ReadI8() = %d, want -5", v)
	}
	if v := rd.ReadBool(); v != true {
		t.Fatalf("ReadBool() = %v, want true", v)
	}
	if v := rd.ReadU16(); v != 0xBEEF {
		t.Fatalf("ReadU16() = %#x, want 0xBEEF", v)
	}
	if v := rd.ReadI16(); v != -1234 {
		t.Fatalf("ReadI16() = %d, want -1234", v)
	}
	if v := rd.ReadU32(); v != 0xDEADBEEF {
		t.Fatalf("ReadU32() = %#x, want 0xDEADBEEF", v)
	}
	if v := rd.ReadI32(); v != -123456 {
		t.Fatalf("ReadI32() = %d, want -123456", v)
	}
	if v := rd.ReadU64(); v != 0x0123456789ABCDEF {
		t.Fatalf("ReadU64() = %#x, want 0x0123456789ABCDEF", v)
	}
	if v := rd.ReadI64(); v != -123456789012 {
		t.Fatalf("ReadI64() = %d, want -123456789012", v)
	}
	if v := rd.ReadF32(); v != 3.5 {
		t.Fatalf("ReadF32() = %v, want 3.5", v)
	}
	if v := rd.ReadF64(); v != -2.25 {
		t.Fatalf("ReadF64() = %v, want -2.25", v)
	}
	if rd.Remaining() != 0 {
		t.Fatalf("Remaining() = %d, want 0", rd.Remaining())
	}
}

func TestCursorLittleEndianWire(t *testing.T) {
	buf := NewByteBuffer()
	wr := NewOutputCursor(buf)
	wr.WriteU32(0x04030201)
	want := []byte{0x01, 0x02, 0x03, 0x04}
	for i, b := range want {
		if buf.Data()[i] != b {
			t.Fatalf("byte %d = %#x, want %#x", i, buf.Data()[i], b)
		}
	}
}

func TestCursorTryReadOverflow(t *testing.T) {
	rd := NewInputCursor([]byte{1, 2, 3})
	var v uint32
	if rd.TryReadU32(&v) {
		t.Fatal("TryReadU32 succeeded on a short buffer")
	}
	if rd.Pos() != 0 {
		t.Fatalf("Pos() = %d after failed TryRead, want 0", rd.Pos())
	}
	var u8 uint8
	if !rd.TryReadU8(&u8) || u8 != 1 {
		t.Fatalf("TryReadU8() = (%d, ok), want (1, true)", u8)
	}
}

func TestCursorUncheckedPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != ErrOverflow {
			t.Fatalf("recover() = %v, want ErrOverflow", r)
		}
	}()
	rd := NewInputCursor([]byte{1})
	rd.ReadU32()
}

func TestOutputCursorGrows(t *testing.T) {
	buf := NewByteBuffer()
	wr := NewOutputCursor(buf)
	for i := 0; i < 1000; i++ {
		if !wr.TryWriteU8(byte(i)) {
			t.Fatalf("TryWriteU8 failed at i=%d", i)
		}
	}
	if buf.Size() != 1000 {
		t.Fatalf("Size() = %d, want 1000", buf.Size())
	}
	for i := 0; i < 1000; i++ {
		if buf.Data()[i] != byte(i) {
			t.Fatalf("byte %d = %d, want %d", i, buf.Data()[i], byte(i))
		}
	}
}

func TestOutputCursorSizeTracksMax(t *testing.T) {
	buf := NewByteBuffer()
	buf.Reserve(16)
	wr := NewOutputCursor(buf)
	wr.WriteU32(1)
	if buf.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", buf.Size())
	}
	wr2 := NewOutputCursor(buf)
	wr2.WriteU8(1) // pos=1 < current size 4; size must not shrink
	if buf.Size() != 4 {
		t.Fatalf("Size() = %d after short write, want unchanged 4", buf.Size())
	}
}

func TestCursorSeekAndSkip(t *testing.T) {
	rd := NewInputCursor([]byte{1, 2, 3, 4, 5})
	rd.Skip(2)
	if v := rd.ReadU8(); v != 3 {
		t.Fatalf("ReadU8() after Skip(2) = %d, want 3", v)
	}
	rd.Rewind(1)
	if v := rd.ReadU8(); v != 3 {
		t.Fatalf("ReadU8() after Rewind(1) = %d, want 3", v)
	}
	rd.SeekToEnd()
	if rd.Pos() != 5 {
		t.Fatalf("Pos() after SeekToEnd = %d, want 5", rd.Pos())
	}
	var v uint8
	if rd.TryReadU8(&v) {
		t.Fatal("TryReadU8 at end should fail")
	}
	rd.SeekTo(100) // past end, clamps, not an error
	if rd.Pos() != 5 {
		t.Fatalf("SeekTo(100) = %d, want clamped to 5", rd.Pos())
	}
}
