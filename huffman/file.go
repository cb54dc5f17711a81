// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "github.com/ziplab/ziplab/internal/fileio"

// CompressFile reads src, Huffman-encodes it, and writes the result to dst.
func CompressFile(dst, src string) error {
	return fileio.Transform(dst, src, func(b []byte) ([]byte, error) {
		return Compress(b), nil
	})
}

// DecompressFile reads src, Huffman-decodes it, and writes the result to
// dst.
func DecompressFile(dst, src string) error {
	return fileio.Transform(dst, src, Decompress)
}
