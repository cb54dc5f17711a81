// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

// ByteBuffer is an owning, resizable byte store. It tracks a logical size
// (the bytes of valid content) distinct from its capacity (the bytes of
// backing allocation), matching the ownership model in the original
// MemoryBuffer: 0 <= size <= capacity, and storage is never shared.
type ByteBuffer struct {
	buf []byte // len(buf) == capacity; buf[:size] is the valid content
	n   int    // logical size
}

// NewByteBuffer constructs an empty ByteBuffer.
func NewByteBuffer() *ByteBuffer {
	return new(ByteBuffer)
}

// NewByteBufferSize constructs an empty ByteBuffer with at least the given
// initial capacity.
func NewByteBufferSize(capacity int) *ByteBuffer {
	b := new(ByteBuffer)
	b.Reserve(capacity)
	return b
}

// NewByteBufferFrom constructs a ByteBuffer by copying an external byte run.
// The source is never aliased.
func NewByteBufferFrom(src []byte) *ByteBuffer {
	b := new(ByteBuffer)
	b.buf = make([]byte, nextPow2(len(src)))
	b.n = copy(b.buf, src)
	return b
}

// Size reports the number of valid bytes.
func (b *ByteBuffer) Size() int { return b.n }

// Capacity reports the number of allocated bytes.
func (b *ByteBuffer) Capacity() int { return len(b.buf) }

// IsEmpty reports whether Size is zero.
func (b *ByteBuffer) IsEmpty() bool { return b.n == 0 }

// Data returns the valid prefix of the buffer. The slice aliases the
// buffer's storage and is invalidated by any subsequent mutating call.
func (b *ByteBuffer) Data() []byte { return b.buf[:b.n] }

// Reserve ensures capacity >= n, preserving existing content. It allocates
// and copies at most once, copying only min(size, n) bytes.
func (b *ByteBuffer) Reserve(n int) {
	if len(b.buf) >= n {
		return
	}
	nb := make([]byte, nextPow2(n))
	copy(nb, b.buf[:b.n])
	b.buf = nb
}

// Prepare ensures capacity >= n, discarding existing content. Unlike
// Reserve, it never copies old bytes.
func (b *ByteBuffer) Prepare(n int) {
	if len(b.buf) >= n {
		b.n = 0
		return
	}
	b.buf = make([]byte, nextPow2(n))
	b.n = 0
}

// Grow doubles the current capacity when size+delta would exceed it,
// preserving content. It is the growth rule used by OutputCursor writes.
func (b *ByteBuffer) Grow(delta int) {
	need := b.n + delta
	if need <= len(b.buf) {
		return
	}
	cap2 := len(b.buf) * 2
	if cap2 < need {
		cap2 = nextPow2(need)
	}
	nb := make([]byte, cap2)
	copy(nb, b.buf[:b.n])
	b.buf = nb
}

// Resize sets the size to n. Bytes beyond the old size are initialized to
// fill. Existing content up to min(old size, n) is preserved.
func (b *ByteBuffer) Resize(n int, fill byte) {
	b.Reserve(n)
	if n > b.n {
		for i := b.n; i < n; i++ {
			b.buf[i] = fill
		}
	}
	b.n = n
}

// ResizeDiscard is Resize without a guarantee that old content survives; it
// uses Prepare so a realloc never has to copy.
func (b *ByteBuffer) ResizeDiscard(n int, fill byte) {
	b.Prepare(n)
	for i := 0; i < n; i++ {
		b.buf[i] = fill
	}
	b.n = n
}

// Clear sets size to zero without releasing storage.
func (b *ByteBuffer) Clear() { b.n = 0 }

// CopyFrom replaces the buffer's content with a copy of other's.
func (b *ByteBuffer) CopyFrom(other *ByteBuffer) {
	b.Prepare(other.n)
	b.n = copy(b.buf, other.buf[:other.n])
}

// Swap exchanges the storage of b and other in O(1); it is the only way to
// transfer ownership of a ByteBuffer's storage.
func (b *ByteBuffer) Swap(other *ByteBuffer) {
	b.buf, other.buf = other.buf, b.buf
	b.n, other.n = other.n, b.n
}

// View returns a non-owning ByteView over the buffer's valid content. The
// view must not outlive any subsequent mutation of b.
func (b *ByteBuffer) View() ByteView { return ByteView{b.buf[:b.n]} }

// ByteView is an immutable, non-owning reference to a byte range. It must
// not outlive the buffer it aliases.
type ByteView struct {
	data []byte
}

// NewByteView wraps an external byte slice without copying it.
func NewByteView(data []byte) ByteView { return ByteView{data} }

// Data returns the referenced bytes.
func (v ByteView) Data() []byte { return v.data }

// Size reports the number of referenced bytes.
func (v ByteView) Size() int { return len(v.data) }

// Slice returns the sub-view [lo:hi).
func (v ByteView) Slice(lo, hi int) ByteView { return ByteView{v.data[lo:hi]} }
