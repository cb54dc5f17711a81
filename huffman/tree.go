// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "container/heap"

// node is a Huffman tree node stored in an arena (a []node slice inside
// tree); children are indices into that slice rather than pointers, the
// arena form recommended by the port's design notes. A node is a leaf iff
// both children are noChild. Every internal node has both children, except
// the synthesized root of a single-symbol tree (see buildTree), which has
// only a left child.
type node struct {
	sym         byte
	freq        uint32
	left, right int32
}

const noChild = -1

func (n *node) isLeaf() bool { return n.left == noChild && n.right == noChild }

// tree is the arena backing a Huffman tree built for one compress or
// decompress operation. It is owned exclusively by that operation; there is
// no sharing of nodes across trees.
type tree struct {
	nodes []node
	root  int32
}

// buildHeap is the priority queue of arena indices, ordered by node
// frequency, used during construction; ties may break either way, as the
// decoder receives the tree on the wire rather than recomputing it.
type buildHeap struct {
	t     *tree
	idxs  []int32
	order []int
}

func (h *buildHeap) Len() int { return len(h.idxs) }
func (h *buildHeap) Less(i, j int) bool {
	return h.t.nodes[h.idxs[i]].freq < h.t.nodes[h.idxs[j]].freq
}
func (h *buildHeap) Swap(i, j int) { h.idxs[i], h.idxs[j] = h.idxs[j], h.idxs[i] }
func (h *buildHeap) Push(x interface{}) {
	h.idxs = append(h.idxs, x.(int32))
}
func (h *buildHeap) Pop() interface{} {
	n := len(h.idxs)
	v := h.idxs[n-1]
	h.idxs = h.idxs[:n-1]
	return v
}

// buildTree constructs a Huffman tree from a 256-entry frequency table using
// a priority queue of nodes keyed by ascending frequency, repeatedly merging
// the two minima into an internal node, mirroring the reference
// implementation's std::priority_queue-based builder.
//
// A single distinct symbol still produces a tree with one internal node
// whose sole child is the symbol's leaf, so that its code is "0" (length 1)
// rather than a degenerate zero-length code.
func buildTree(freq *[256]uint32) *tree {
	t := &tree{root: noChild}
	h := &buildHeap{t: t}

	for sym, f := range freq {
		if f == 0 {
			continue
		}
		t.nodes = append(t.nodes, node{sym: byte(sym), freq: f, left: noChild, right: noChild})
		h.idxs = append(h.idxs, int32(len(t.nodes)-1))
	}
	if len(h.idxs) == 0 {
		return t
	}
	heap.Init(h)

	if len(h.idxs) == 1 {
		// Single distinct symbol: synthesize one internal node above it.
		leaf := h.idxs[0]
		t.nodes = append(t.nodes, node{left: leaf, right: noChild})
		t.root = int32(len(t.nodes) - 1)
		// A single-child internal node appears nowhere else; its right
		// child stays noChild, and codebook, serialize and deserializeTree
		// recognize the shape by that.
		return t
	}

	for h.Len() >= 2 {
		a := heap.Pop(h).(int32)
		b := heap.Pop(h).(int32)
		parent := node{freq: t.nodes[a].freq + t.nodes[b].freq, left: a, right: b}
		t.nodes = append(t.nodes, parent)
		heap.Push(h, int32(len(t.nodes)-1))
	}
	t.root = h.idxs[0]
	return t
}

// codeword is one symbol's code: the bit sequence MSB-first in the low len
// bits of bits. A uint64 is ample: node frequencies are uint32 counts, and a
// Huffman tree whose root weight fits in 32 bits is fewer than 50 levels
// deep.
type codeword struct {
	bits uint64
	len  uint8
}

// codebook maps each symbol present in the tree to its codeword. It
// performs the depth-first traversal that assigns '0' to the left child and
// '1' to the right child at each step, recording the resulting bit string
// for every leaf.
func (t *tree) codebook() map[byte]codeword {
	codes := make(map[byte]codeword)
	if t.root == noChild {
		return codes
	}
	root := &t.nodes[t.root]
	if root.left != noChild && root.right == noChild {
		// Synthesized single-symbol tree: the lone leaf's code is "0".
		codes[t.nodes[root.left].sym] = codeword{bits: 0, len: 1}
		return codes
	}
	var visit func(idx int32, bits uint64, depth uint8)
	visit = func(idx int32, bits uint64, depth uint8) {
		n := &t.nodes[idx]
		if n.isLeaf() {
			codes[n.sym] = codeword{bits: bits, len: depth}
			return
		}
		visit(n.left, bits<<1, depth+1)
		visit(n.right, bits<<1|1, depth+1)
	}
	visit(t.root, 0, 0)
	return codes
}

// serialize emits the tree pre-order: 0x00 then left then right for an
// internal node, 0x01 then the symbol byte for a leaf.
func (t *tree) serialize() []byte {
	var out []byte
	if t.root == noChild {
		return out
	}
	var visit func(idx int32)
	visit = func(idx int32) {
		n := &t.nodes[idx]
		if n.isLeaf() {
			out = append(out, 1, n.sym)
			return
		}
		out = append(out, 0)
		visit(n.left)
		if n.right != noChild {
			visit(n.right)
		}
	}
	visit(t.root)
	return out
}

// deserializeTree rebuilds a tree from its pre-order serialization,
// mirroring serialize exactly. It reports ErrCorrupt if the encoding
// terminates early or a marker byte is neither 0x00 nor 0x01.
func deserializeTree(data []byte) (*tree, error) {
	t := &tree{root: noChild}
	if len(data) == 0 {
		return t, nil
	}
	pos := 0
	var err error
	var visit func() int32
	visit = func() int32 {
		if err != nil {
			return noChild
		}
		if pos >= len(data) {
			err = ErrCorrupt
			return noChild
		}
		marker := data[pos]
		pos++
		switch marker {
		case 1: // leaf
			if pos >= len(data) {
				err = ErrCorrupt
				return noChild
			}
			sym := data[pos]
			pos++
			t.nodes = append(t.nodes, node{sym: sym, left: noChild, right: noChild})
			return int32(len(t.nodes) - 1)
		case 0: // internal
			left := visit()
			if err != nil {
				return noChild
			}
			// A synthesized single-symbol tree serializes as an internal
			// marker followed by exactly one leaf; detect that shape by
			// running out of bytes for a right subtree.
			if pos >= len(data) {
				t.nodes = append(t.nodes, node{left: left, right: noChild})
				return int32(len(t.nodes) - 1)
			}
			right := visit()
			if err != nil {
				return noChild
			}
			t.nodes = append(t.nodes, node{left: left, right: right})
			return int32(len(t.nodes) - 1)
		default:
			err = ErrCorrupt
			return noChild
		}
	}
	t.root = visit()
	if err != nil {
		return nil, err
	}
	return t, nil
}
