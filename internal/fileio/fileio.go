// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package fileio supplies the small amount of file plumbing every codec's
// CompressFile/DecompressFile pair needs: slurp a source file whole, run a
// transform over its bytes, and spill the result to a destination file.
// Codecs operate on in-memory byte slices; this package is the only place
// that touches the filesystem, mirroring the bench tool's direct use of
// ioutil.ReadFile to stage inputs before handing them to a codec.
package fileio

import "os"

// DefaultFileMode is the permission bits used when a destination file does
// not already exist.
const DefaultFileMode = 0644

// ReadFile reads the entirety of the file at path into memory.
func ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes data to path, creating it with DefaultFileMode if it does
// not exist and truncating it otherwise.
func WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, DefaultFileMode)
}

// Transform reads src, applies fn to its bytes, and writes the result to
// dst. It is the shared body behind every codec's CompressFile/DecompressFile
// pair.
func Transform(dst, src string, fn func([]byte) ([]byte, error)) error {
	in, err := ReadFile(src)
	if err != nil {
		return err
	}
	out, err := fn(in)
	if err != nil {
		return err
	}
	return WriteFile(dst, out)
}
