// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "github.com/ziplab/ziplab/bitio"

// Compress Huffman-encodes src and returns a self-contained compressed
// stream: an 8-byte little-endian tree_size, an 8-byte little-endian
// data_size, the pre-order serialized tree, then the bit-packed payload
// (codewords concatenated MSB-first within each output byte, the final
// byte zero-padded in its low-order bits).
//
// An empty input produces an empty output with no header.
func Compress(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}

	var freq [256]uint32
	for _, b := range src {
		freq[b]++
	}
	t := buildTree(&freq)
	codes := t.codebook()
	treeData := t.serialize()

	out := bitio.NewByteBufferSize(16 + len(treeData) + len(src)/2)
	oc := bitio.NewOutputCursor(out)
	oc.TryWriteU64(uint64(len(treeData)))
	oc.TryWriteU64(uint64(len(src)))
	oc.TryWriteBytes(treeData)

	var acc byte
	var nbits uint
	for _, b := range src {
		cw := codes[b]
		for i := int(cw.len) - 1; i >= 0; i-- {
			bit := (cw.bits >> uint(i)) & 1
			acc = acc<<1 | byte(bit)
			nbits++
			if nbits == 8 {
				oc.TryWriteU8(acc)
				acc, nbits = 0, 0
			}
		}
	}
	if nbits > 0 {
		acc <<= 8 - nbits
		oc.TryWriteU8(acc)
	}

	return append([]byte(nil), out.Data()...)
}

// Decompress reverses Compress: it reads the header, rebuilds the tree by
// pre-order recursion, then walks the packed payload bit by bit MSB-first,
// descending from the root and emitting a symbol (resetting to the root)
// each time a leaf is reached, stopping once data_size bytes have been
// produced.
//
// A zero-length src decompresses to an empty output.
func Decompress(src []byte) (out []byte, err error) {
	if len(src) == 0 {
		return nil, nil
	}
	defer errRecover(&err)

	ic := bitio.NewInputCursor(src)
	var treeSize, dataSize uint64
	if !ic.TryReadU64(&treeSize) || !ic.TryReadU64(&dataSize) {
		panic(ErrCorrupt)
	}
	if dataSize == 0 {
		return nil, nil
	}
	if treeSize > uint64(ic.Remaining()) {
		panic(ErrCorrupt)
	}
	treeData, ok := ic.TryReadBytes(int(treeSize))
	if !ok {
		panic(ErrCorrupt)
	}
	t, terr := deserializeTree(treeData)
	if terr != nil {
		panic(terr)
	}
	if t.root == noChild {
		panic(ErrCorrupt)
	}

	result := make([]byte, 0, dataSize)
	root, cur := t.root, t.root
	for uint64(len(result)) < dataSize {
		var b uint8
		if !ic.TryReadU8(&b) {
			panic(ErrCorrupt)
		}
		for bit := 7; bit >= 0 && uint64(len(result)) < dataSize; bit-- {
			n := &t.nodes[cur]
			if (b>>uint(bit))&1 == 0 {
				if n.left == noChild {
					panic(ErrCorrupt)
				}
				cur = n.left
			} else {
				if n.right == noChild {
					panic(ErrCorrupt)
				}
				cur = n.right
			}
			if next := &t.nodes[cur]; next.isLeaf() {
				result = append(result, next.sym)
				cur = root
			}
		}
	}
	return result, nil
}
