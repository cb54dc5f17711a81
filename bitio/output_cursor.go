// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import "math"

// OutputCursor is a forward-only writer over a mutable ByteBuffer. Writing k
// bytes at position p requires capacity >= p+k; the checked Try* family
// grows the buffer (doubling capacity, content preserved) to make room by
// default, while the unchecked Write* family requires the caller to have
// already ensured capacity via Reserve/Grow and panics with ErrOverflow
// otherwise. After every write, the buffer's logical size is updated to
// max(size, p).
type OutputCursor struct {
	buf *ByteBuffer
	pos int
}

// NewOutputCursor attaches a cursor to buf at position 0.
func NewOutputCursor(buf *ByteBuffer) *OutputCursor { return &OutputCursor{buf: buf} }

// Pos reports the current position.
func (c *OutputCursor) Pos() int { return c.pos }

// Reserve ensures the underlying buffer has capacity >= n.
func (c *OutputCursor) Reserve(n int) { c.buf.Reserve(n) }

// Grow ensures the underlying buffer can hold delta more bytes beyond its
// current size.
func (c *OutputCursor) Grow(delta int) { c.buf.Grow(delta) }

func (c *OutputCursor) bump(k int) {
	c.pos += k
	if c.pos > c.buf.n {
		c.buf.n = c.pos
	}
}

// mustPut validates an unchecked k-byte write and returns the offset to
// write at, panicking with ErrOverflow if capacity is insufficient.
func (c *OutputCursor) mustPut(k int) int {
	if c.pos+k > len(c.buf.buf) {
		panic(ErrOverflow)
	}
	off := c.pos
	c.bump(k)
	return off
}

// tryPutGrow is the checked, growing counterpart of mustPut: it enlarges
// the buffer (doubling capacity, at least to p+k) when necessary and always
// succeeds.
func (c *OutputCursor) tryPutGrow(k int) int {
	if c.pos+k > len(c.buf.buf) {
		c.buf.Grow(c.pos + k - c.buf.n)
		if c.pos+k > len(c.buf.buf) {
			// Grow sizes relative to n; widen explicitly if still short.
			nb := make([]byte, nextPow2(c.pos+k))
			copy(nb, c.buf.buf[:c.buf.n])
			c.buf.buf = nb
		}
	}
	off := c.pos
	c.bump(k)
	return off
}

// tryPutNoGrow is the non-growing checked variant, for performance-critical
// inner loops that have already sized the buffer: it reports false without
// writing on insufficient capacity.
func (c *OutputCursor) tryPutNoGrow(k int) (off int, ok bool) {
	if c.pos+k > len(c.buf.buf) {
		return 0, false
	}
	off = c.pos
	c.bump(k)
	return off, true
}

func putLE(data []byte, off, k int, v uint64) {
	for i := 0; i < k; i++ {
		data[off+i] = byte(v >> uint(8*i))
	}
}

// WriteU8 writes an unchecked uint8 and advances p.
func (c *OutputCursor) WriteU8(v uint8) { off := c.mustPut(1); c.buf.buf[off] = v }

// TryWriteU8 is the checked, growing form of WriteU8.
func (c *OutputCursor) TryWriteU8(v uint8) bool {
	off := c.tryPutGrow(1)
	c.buf.buf[off] = v
	return true
}

// TryWriteU8NoGrow is the checked, non-growing form of WriteU8.
func (c *OutputCursor) TryWriteU8NoGrow(v uint8) bool {
	off, ok := c.tryPutNoGrow(1)
	if ok {
		c.buf.buf[off] = v
	}
	return ok
}

// WriteI8 writes an unchecked int8 and advances p.
func (c *OutputCursor) WriteI8(v int8) { c.WriteU8(uint8(v)) }

// TryWriteI8 is the checked, growing form of WriteI8.
func (c *OutputCursor) TryWriteI8(v int8) bool { return c.TryWriteU8(uint8(v)) }

// WriteBool writes an unchecked bool as a single byte and advances p.
func (c *OutputCursor) WriteBool(v bool) {
	var b uint8
	if v {
		b = 1
	}
	c.WriteU8(b)
}

// TryWriteBool is the checked, growing form of WriteBool.
func (c *OutputCursor) TryWriteBool(v bool) bool {
	var b uint8
	if v {
		b = 1
	}
	return c.TryWriteU8(b)
}

// WriteU16 writes an unchecked little-endian uint16 and advances p.
func (c *OutputCursor) WriteU16(v uint16) {
	off := c.mustPut(2)
	putLE(c.buf.buf, off, 2, uint64(v))
}

// TryWriteU16 is the checked, growing form of WriteU16.
func (c *OutputCursor) TryWriteU16(v uint16) bool {
	off := c.tryPutGrow(2)
	putLE(c.buf.buf, off, 2, uint64(v))
	return true
}

// TryWriteU16NoGrow is the checked, non-growing form of WriteU16.
func (c *OutputCursor) TryWriteU16NoGrow(v uint16) bool {
	off, ok := c.tryPutNoGrow(2)
	if ok {
		putLE(c.buf.buf, off, 2, uint64(v))
	}
	return ok
}

// WriteI16 writes an unchecked little-endian int16 and advances p.
func (c *OutputCursor) WriteI16(v int16) { c.WriteU16(uint16(v)) }

// TryWriteI16 is the checked, growing form of WriteI16.
func (c *OutputCursor) TryWriteI16(v int16) bool { return c.TryWriteU16(uint16(v)) }

// WriteU32 writes an unchecked little-endian uint32 and advances p.
func (c *OutputCursor) WriteU32(v uint32) {
	off := c.mustPut(4)
	putLE(c.buf.buf, off, 4, uint64(v))
}

// TryWriteU32 is the checked, growing form of WriteU32.
func (c *OutputCursor) TryWriteU32(v uint32) bool {
	off := c.tryPutGrow(4)
	putLE(c.buf.buf, off, 4, uint64(v))
	return true
}

// TryWriteU32NoGrow is the checked, non-growing form of WriteU32.
func (c *OutputCursor) TryWriteU32NoGrow(v uint32) bool {
	off, ok := c.tryPutNoGrow(4)
	if ok {
		putLE(c.buf.buf, off, 4, uint64(v))
	}
	return ok
}

// WriteI32 writes an unchecked little-endian int32 and advances p.
func (c *OutputCursor) WriteI32(v int32) { c.WriteU32(uint32(v)) }

// TryWriteI32 is the checked, growing form of WriteI32.
func (c *OutputCursor) TryWriteI32(v int32) bool { return c.TryWriteU32(uint32(v)) }

// WriteF32 writes an unchecked little-endian IEEE-754 float32 and advances p.
func (c *OutputCursor) WriteF32(v float32) { c.WriteU32(math.Float32bits(v)) }

// TryWriteF32 is the checked, growing form of WriteF32.
func (c *OutputCursor) TryWriteF32(v float32) bool { return c.TryWriteU32(math.Float32bits(v)) }

// WriteU64 writes an unchecked little-endian uint64 and advances p.
func (c *OutputCursor) WriteU64(v uint64) {
	off := c.mustPut(8)
	putLE(c.buf.buf, off, 8, v)
}

// TryWriteU64 is the checked, growing form of WriteU64.
func (c *OutputCursor) TryWriteU64(v uint64) bool {
	off := c.tryPutGrow(8)
	putLE(c.buf.buf, off, 8, v)
	return true
}

// TryWriteU64NoGrow is the checked, non-growing form of WriteU64.
func (c *OutputCursor) TryWriteU64NoGrow(v uint64) bool {
	off, ok := c.tryPutNoGrow(8)
	if ok {
		putLE(c.buf.buf, off, 8, v)
	}
	return ok
}

// WriteI64 writes an unchecked little-endian int64 and advances p.
func (c *OutputCursor) WriteI64(v int64) { c.WriteU64(uint64(v)) }

// TryWriteI64 is the checked, growing form of WriteI64.
func (c *OutputCursor) TryWriteI64(v int64) bool { return c.TryWriteU64(uint64(v)) }

// WriteF64 writes an unchecked little-endian IEEE-754 float64 and advances p.
func (c *OutputCursor) WriteF64(v float64) { c.WriteU64(math.Float64bits(v)) }

// TryWriteF64 is the checked, growing form of WriteF64.
func (c *OutputCursor) TryWriteF64(v float64) bool { return c.TryWriteU64(math.Float64bits(v)) }

// WriteBytes writes an unchecked raw byte run and advances p.
func (c *OutputCursor) WriteBytes(b []byte) {
	off := c.mustPut(len(b))
	copy(c.buf.buf[off:], b)
}

// TryWriteBytes is the checked, growing form of WriteBytes.
func (c *OutputCursor) TryWriteBytes(b []byte) bool {
	off := c.tryPutGrow(len(b))
	copy(c.buf.buf[off:], b)
	return true
}

// WriteBuffer writes an unchecked copy of other's valid content.
func (c *OutputCursor) WriteBuffer(other *ByteBuffer) { c.WriteBytes(other.Data()) }
