// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import "math"

// InputCursor is a forward-only reader over a byte source (a ByteBuffer's
// Data or a ByteView's Data). It holds a non-owning reference and a
// position p with the invariant 0 <= p <= len(data); it must not outlive
// the storage it reads from.
//
// Every fixed-width numeric type has two families of accessor: the
// unchecked Read/Peek/Skip forms, whose precondition (p+k <= size) must
// already be established by the caller and which panic with ErrOverflow if
// it is not, and the checked TryRead/TryPeek/TrySkip forms, which report
// false without moving p on overflow and never panic.
type InputCursor struct {
	data []byte
	pos  int
}

// NewInputCursor attaches a cursor to data at position 0.
func NewInputCursor(data []byte) *InputCursor { return &InputCursor{data: data} }

// Pos reports the current position.
func (c *InputCursor) Pos() int { return c.pos }

// Size reports the size of the underlying source.
func (c *InputCursor) Size() int { return len(c.data) }

// Remaining reports the number of unread bytes.
func (c *InputCursor) Remaining() int { return len(c.data) - c.pos }

// SeekToBegin moves the position to 0.
func (c *InputCursor) SeekToBegin() { c.pos = 0 }

// SeekToEnd moves the position to the size (a seek past the end is not an
// error; subsequent reads simply overflow-fail).
func (c *InputCursor) SeekToEnd() { c.pos = len(c.data) }

// SeekTo moves the position to pos, clamped to size if pos exceeds it.
func (c *InputCursor) SeekTo(pos int) {
	if pos > len(c.data) {
		pos = len(c.data)
	}
	if pos < 0 {
		pos = 0
	}
	c.pos = pos
}

// Skip advances the position by n bytes, clamped to size.
func (c *InputCursor) Skip(n int) { c.SeekTo(c.pos + n) }

// Rewind moves the position back by n bytes, clamped to 0.
func (c *InputCursor) Rewind(n int) { c.SeekTo(c.pos - n) }

// mustTake validates and advances past an unchecked k-byte read, returning
// the starting offset. It panics with ErrOverflow if the precondition
// p+k <= size does not hold.
func (c *InputCursor) mustTake(k int) int {
	if c.pos+k > len(c.data) {
		panic(ErrOverflow)
	}
	off := c.pos
	c.pos += k
	return off
}

// tryTake is the checked counterpart of mustTake: it reports ok=false
// without moving p on overflow.
func (c *InputCursor) tryTake(k int) (off int, ok bool) {
	if c.pos+k > len(c.data) {
		return 0, false
	}
	off = c.pos
	c.pos += k
	return off, true
}

func leUint(data []byte, off, k int) uint64 {
	var v uint64
	for i := 0; i < k; i++ {
		v |= uint64(data[off+i]) << uint(8*i)
	}
	return v
}

// ReadU8 reads an unchecked uint8 and advances p.
func (c *InputCursor) ReadU8() uint8 { return uint8(leUint(c.data, c.mustTake(1), 1)) }

// PeekU8 reads an unchecked uint8 without advancing p.
func (c *InputCursor) PeekU8() uint8 {
	if c.pos+1 > len(c.data) {
		panic(ErrOverflow)
	}
	return c.data[c.pos]
}

// SkipU8 advances p by 1 byte without reading.
func (c *InputCursor) SkipU8() { c.mustTake(1) }

// TryReadU8 is the checked form of ReadU8.
func (c *InputCursor) TryReadU8(out *uint8) bool {
	off, ok := c.tryTake(1)
	if ok {
		*out = c.data[off]
	}
	return ok
}

// TryPeekU8 is the checked form of PeekU8.
func (c *InputCursor) TryPeekU8(out *uint8) bool {
	if c.pos+1 > len(c.data) {
		return false
	}
	*out = c.data[c.pos]
	return true
}

// TrySkipU8 is the checked form of SkipU8.
func (c *InputCursor) TrySkipU8() bool {
	_, ok := c.tryTake(1)
	return ok
}

// ReadI8 reads an unchecked int8 and advances p.
func (c *InputCursor) ReadI8() int8 { return int8(c.ReadU8()) }

// PeekI8 reads an unchecked int8 without advancing p.
func (c *InputCursor) PeekI8() int8 { return int8(c.PeekU8()) }

// SkipI8 advances p by 1 byte without reading.
func (c *InputCursor) SkipI8() { c.SkipU8() }

// TryReadI8 is the checked form of ReadI8.
func (c *InputCursor) TryReadI8(out *int8) bool {
	var u uint8
	ok := c.TryReadU8(&u)
	if ok {
		*out = int8(u)
	}
	return ok
}

// TryPeekI8 is the checked form of PeekI8.
func (c *InputCursor) TryPeekI8(out *int8) bool {
	var u uint8
	ok := c.TryPeekU8(&u)
	if ok {
		*out = int8(u)
	}
	return ok
}

// TrySkipI8 is the checked form of SkipI8.
func (c *InputCursor) TrySkipI8() bool { return c.TrySkipU8() }

// ReadBool reads an unchecked bool, stored as a single byte.
func (c *InputCursor) ReadBool() bool { return c.ReadU8() != 0 }

// PeekBool reads an unchecked bool without advancing p.
func (c *InputCursor) PeekBool() bool { return c.PeekU8() != 0 }

// SkipBool advances p by 1 byte without reading.
func (c *InputCursor) SkipBool() { c.SkipU8() }

// TryReadBool is the checked form of ReadBool.
func (c *InputCursor) TryReadBool(out *bool) bool {
	var u uint8
	ok := c.TryReadU8(&u)
	if ok {
		*out = u != 0
	}
	return ok
}

// TryPeekBool is the checked form of PeekBool.
func (c *InputCursor) TryPeekBool(out *bool) bool {
	var u uint8
	ok := c.TryPeekU8(&u)
	if ok {
		*out = u != 0
	}
	return ok
}

// TrySkipBool is the checked form of SkipBool.
func (c *InputCursor) TrySkipBool() bool { return c.TrySkipU8() }

// ReadU16 reads an unchecked little-endian uint16 and advances p.
func (c *InputCursor) ReadU16() uint16 { return uint16(leUint(c.data, c.mustTake(2), 2)) }

// PeekU16 reads an unchecked little-endian uint16 without advancing p.
func (c *InputCursor) PeekU16() uint16 {
	if c.pos+2 > len(c.data) {
		panic(ErrOverflow)
	}
	return uint16(leUint(c.data, c.pos, 2))
}

// SkipU16 advances p by 2 bytes without reading.
func (c *InputCursor) SkipU16() { c.mustTake(2) }

// TryReadU16 is the checked form of ReadU16.
func (c *InputCursor) TryReadU16(out *uint16) bool {
	off, ok := c.tryTake(2)
	if ok {
		*out = uint16(leUint(c.data, off, 2))
	}
	return ok
}

// TryPeekU16 is the checked form of PeekU16.
func (c *InputCursor) TryPeekU16(out *uint16) bool {
	if c.pos+2 > len(c.data) {
		return false
	}
	*out = uint16(leUint(c.data, c.pos, 2))
	return true
}

// TrySkipU16 is the checked form of SkipU16.
func (c *InputCursor) TrySkipU16() bool {
	_, ok := c.tryTake(2)
	return ok
}

// ReadI16 reads an unchecked little-endian int16 and advances p.
func (c *InputCursor) ReadI16() int16 { return int16(c.ReadU16()) }

// PeekI16 reads an unchecked little-endian int16 without advancing p.
func (c *InputCursor) PeekI16() int16 { return int16(c.PeekU16()) }

// SkipI16 advances p by 2 bytes without reading.
func (c *InputCursor) SkipI16() { c.SkipU16() }

// TryReadI16 is the checked form of ReadI16.
func (c *InputCursor) TryReadI16(out *int16) bool {
	var u uint16
	ok := c.TryReadU16(&u)
	if ok {
		*out = int16(u)
	}
	return ok
}

// TryPeekI16 is the checked form of PeekI16.
func (c *InputCursor) TryPeekI16(out *int16) bool {
	var u uint16
	ok := c.TryPeekU16(&u)
	if ok {
		*out = int16(u)
	}
	return ok
}

// TrySkipI16 is the checked form of SkipI16.
func (c *InputCursor) TrySkipI16() bool { return c.TrySkipU16() }

// ReadU32 reads an unchecked little-endian uint32 and advances p.
func (c *InputCursor) ReadU32() uint32 { return uint32(leUint(c.data, c.mustTake(4), 4)) }

// PeekU32 reads an unchecked little-endian uint32 without advancing p.
func (c *InputCursor) PeekU32() uint32 {
	if c.pos+4 > len(c.data) {
		panic(ErrOverflow)
	}
	return uint32(leUint(c.data, c.pos, 4))
}

// SkipU32 advances p by 4 bytes without reading.
func (c *InputCursor) SkipU32() { c.mustTake(4) }

// TryReadU32 is the checked form of ReadU32.
func (c *InputCursor) TryReadU32(out *uint32) bool {
	off, ok := c.tryTake(4)
	if ok {
		*out = uint32(leUint(c.data, off, 4))
	}
	return ok
}

// TryPeekU32 is the checked form of PeekU32.
func (c *InputCursor) TryPeekU32(out *uint32) bool {
	if c.pos+4 > len(c.data) {
		return false
	}
	*out = uint32(leUint(c.data, c.pos, 4))
	return true
}

// TrySkipU32 is the checked form of SkipU32.
func (c *InputCursor) TrySkipU32() bool {
	_, ok := c.tryTake(4)
	return ok
}

// ReadI32 reads an unchecked little-endian int32 and advances p.
func (c *InputCursor) ReadI32() int32 { return int32(c.ReadU32()) }

// PeekI32 reads an unchecked little-endian int32 without advancing p.
func (c *InputCursor) PeekI32() int32 { return int32(c.PeekU32()) }

// SkipI32 advances p by 4 bytes without reading.
func (c *InputCursor) SkipI32() { c.SkipU32() }

// TryReadI32 is the checked form of ReadI32.
func (c *InputCursor) TryReadI32(out *int32) bool {
	var u uint32
	ok := c.TryReadU32(&u)
	if ok {
		*out = int32(u)
	}
	return ok
}

// TryPeekI32 is the checked form of PeekI32.
func (c *InputCursor) TryPeekI32(out *int32) bool {
	var u uint32
	ok := c.TryPeekU32(&u)
	if ok {
		*out = int32(u)
	}
	return ok
}

// TrySkipI32 is the checked form of SkipI32.
func (c *InputCursor) TrySkipI32() bool { return c.TrySkipU32() }

// ReadF32 reads an unchecked little-endian IEEE-754 float32 and advances p.
func (c *InputCursor) ReadF32() float32 { return math.Float32frombits(c.ReadU32()) }

// PeekF32 reads an unchecked little-endian IEEE-754 float32 without
// advancing p.
func (c *InputCursor) PeekF32() float32 { return math.Float32frombits(c.PeekU32()) }

// SkipF32 advances p by 4 bytes without reading.
func (c *InputCursor) SkipF32() { c.SkipU32() }

// TryReadF32 is the checked form of ReadF32.
func (c *InputCursor) TryReadF32(out *float32) bool {
	var u uint32
	ok := c.TryReadU32(&u)
	if ok {
		*out = math.Float32frombits(u)
	}
	return ok
}

// TryPeekF32 is the checked form of PeekF32.
func (c *InputCursor) TryPeekF32(out *float32) bool {
	var u uint32
	ok := c.TryPeekU32(&u)
	if ok {
		*out = math.Float32frombits(u)
	}
	return ok
}

// TrySkipF32 is the checked form of SkipF32.
func (c *InputCursor) TrySkipF32() bool { return c.TrySkipU32() }

// ReadU64 reads an unchecked little-endian uint64 and advances p.
func (c *InputCursor) ReadU64() uint64 { return leUint(c.data, c.mustTake(8), 8) }

// PeekU64 reads an unchecked little-endian uint64 without advancing p.
func (c *InputCursor) PeekU64() uint64 {
	if c.pos+8 > len(c.data) {
		panic(ErrOverflow)
	}
	return leUint(c.data, c.pos, 8)
}

// SkipU64 advances p by 8 bytes without reading.
func (c *InputCursor) SkipU64() { c.mustTake(8) }

// TryReadU64 is the checked form of ReadU64.
func (c *InputCursor) TryReadU64(out *uint64) bool {
	off, ok := c.tryTake(8)
	if ok {
		*out = leUint(c.data, off, 8)
	}
	return ok
}

// TryPeekU64 is the checked form of PeekU64.
func (c *InputCursor) TryPeekU64(out *uint64) bool {
	if c.pos+8 > len(c.data) {
		return false
	}
	*out = leUint(c.data, c.pos, 8)
	return true
}

// TrySkipU64 is the checked form of SkipU64.
func (c *InputCursor) TrySkipU64() bool {
	_, ok := c.tryTake(8)
	return ok
}

// ReadI64 reads an unchecked little-endian int64 and advances p.
func (c *InputCursor) ReadI64() int64 { return int64(c.ReadU64()) }

// PeekI64 reads an unchecked little-endian int64 without advancing p.
func (c *InputCursor) PeekI64() int64 { return int64(c.PeekU64()) }

// SkipI64 advances p by 8 bytes without reading.
func (c *InputCursor) SkipI64() { c.SkipU64() }

// TryReadI64 is the checked form of ReadI64.
func (c *InputCursor) TryReadI64(out *int64) bool {
	var u uint64
	ok := c.TryReadU64(&u)
	if ok {
		*out = int64(u)
	}
	return ok
}

// TryPeekI64 is the checked form of PeekI64.
func (c *InputCursor) TryPeekI64(out *int64) bool {
	var u uint64
	ok := c.TryPeekU64(&u)
	if ok {
		*out = int64(u)
	}
	return ok
}

// TrySkipI64 is the checked form of SkipI64.
func (c *InputCursor) TrySkipI64() bool { return c.TrySkipU64() }

// ReadF64 reads an unchecked little-endian IEEE-754 float64 and advances p.
func (c *InputCursor) ReadF64() float64 { return math.Float64frombits(c.ReadU64()) }

// PeekF64 reads an unchecked little-endian IEEE-754 float64 without
// advancing p.
func (c *InputCursor) PeekF64() float64 { return math.Float64frombits(c.PeekU64()) }

// SkipF64 advances p by 8 bytes without reading.
func (c *InputCursor) SkipF64() { c.SkipU64() }

// TryReadF64 is the checked form of ReadF64.
func (c *InputCursor) TryReadF64(out *float64) bool {
	var u uint64
	ok := c.TryReadU64(&u)
	if ok {
		*out = math.Float64frombits(u)
	}
	return ok
}

// TryPeekF64 is the checked form of PeekF64.
func (c *InputCursor) TryPeekF64(out *float64) bool {
	var u uint64
	ok := c.TryPeekU64(&u)
	if ok {
		*out = math.Float64frombits(u)
	}
	return ok
}

// TrySkipF64 is the checked form of SkipF64.
func (c *InputCursor) TrySkipF64() bool { return c.TrySkipU64() }

// ReadBytes reads an unchecked run of n raw bytes and advances p. The
// returned slice aliases the cursor's source.
func (c *InputCursor) ReadBytes(n int) []byte {
	off := c.mustTake(n)
	return c.data[off : off+n]
}

// TryReadBytes is the checked form of ReadBytes.
func (c *InputCursor) TryReadBytes(n int) ([]byte, bool) {
	off, ok := c.tryTake(n)
	if !ok {
		return nil, false
	}
	return c.data[off : off+n], true
}
