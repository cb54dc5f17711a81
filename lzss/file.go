// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lzss

import "github.com/ziplab/ziplab/internal/fileio"

// CompressFile reads src, encodes it under c's parameters, and writes the
// result to dst.
func (c *Codec) CompressFile(dst, src string) error {
	return fileio.Transform(dst, src, func(b []byte) ([]byte, error) {
		return c.Compress(b), nil
	})
}

// DecompressFile reads src, decodes it under c's parameters, and writes the
// result to dst.
func (c *Codec) DecompressFile(dst, src string) error {
	return fileio.Transform(dst, src, c.Decompress)
}
