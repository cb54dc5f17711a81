// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"io"
	"io/ioutil"

	kflate "github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/ziplab/ziplab/huffman"
	"github.com/ziplab/ziplab/lzss"
	"github.com/ziplab/ziplab/rans"
)

// bufferedWriteCloser accumulates everything written to it and runs a
// whole-buffer transform on Close, letting this repository's one-shot
// []byte codecs (huffman, lzss, rans) satisfy the streaming Encoder shape
// that RegisterEncoder expects — the same shape klauspost/compress and
// ulikunitz/xz already speak natively.
type bufferedWriteCloser struct {
	buf   bytes.Buffer
	dst   io.Writer
	close func([]byte) ([]byte, error)
}

func (w *bufferedWriteCloser) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *bufferedWriteCloser) Close() error {
	out, err := w.close(w.buf.Bytes())
	if err != nil {
		return err
	}
	_, err = w.dst.Write(out)
	return err
}

// bufferedReadCloser adds a no-op Close to an io.Reader. oneShotDecoder
// uses it to serve a buffer it has already decoded in full, the decode-side
// mirror of bufferedWriteCloser; the xz decoder below uses it to wrap xz's
// own streaming reader.
type bufferedReadCloser struct {
	r io.Reader
}

func (r *bufferedReadCloser) Read(p []byte) (int, error) { return r.r.Read(p) }
func (r *bufferedReadCloser) Close() error               { return nil }

func oneShotEncoder(fn func([]byte) ([]byte, error)) Encoder {
	return func(dst io.Writer) io.WriteCloser {
		return &bufferedWriteCloser{dst: dst, close: fn}
	}
}

func oneShotDecoder(fn func([]byte) ([]byte, error)) Decoder {
	return func(src io.Reader) io.ReadCloser {
		in, err := ioutil.ReadAll(src)
		if err != nil {
			return &bufferedReadCloser{r: &errReader{err: err}}
		}
		out, err := fn(in)
		if err != nil {
			return &bufferedReadCloser{r: &errReader{err: err}}
		}
		return &bufferedReadCloser{r: bytes.NewReader(out)}
	}
}

type errReader struct{ err error }

func (r *errReader) Read([]byte) (int, error) { return 0, r.err }

func init() {
	RegisterEncoder(FormatHuffman, "ziplab", oneShotEncoder(func(b []byte) ([]byte, error) {
		return huffman.Compress(b), nil
	}))
	RegisterDecoder(FormatHuffman, "ziplab", oneShotDecoder(huffman.Decompress))

	lz, err := lzss.New(12, 4)
	if err != nil {
		panic(err) // fixed, valid parameters; cannot fail
	}
	RegisterEncoder(FormatLZSS, "ziplab", oneShotEncoder(func(b []byte) ([]byte, error) {
		return lz.Compress(b), nil
	}))
	RegisterDecoder(FormatLZSS, "ziplab", oneShotDecoder(lz.Decompress))

	RegisterEncoder(FormatRANS, "ziplab", oneShotEncoder(func(b []byte) ([]byte, error) {
		return rans.Compress(b), nil
	}))
	RegisterDecoder(FormatRANS, "ziplab", oneShotDecoder(rans.Decompress))

	RegisterEncoder(FormatFlate, "klauspost", func(dst io.Writer) io.WriteCloser {
		w, err := kflate.NewWriter(dst, kflate.DefaultCompression)
		if err != nil {
			panic(err)
		}
		return w
	})
	RegisterDecoder(FormatFlate, "klauspost", func(src io.Reader) io.ReadCloser {
		return kflate.NewReader(src)
	})

	RegisterEncoder(FormatXZ, "ulikunitz", func(dst io.Writer) io.WriteCloser {
		w, err := xz.NewWriter(dst)
		if err != nil {
			panic(err)
		}
		return w
	})
	RegisterDecoder(FormatXZ, "ulikunitz", func(src io.Reader) io.ReadCloser {
		// xz.Reader has no Close method of its own (it owns no resource
		// beyond the io.Reader handed to it), so wrap it the same way the
		// one-shot codecs above are wrapped.
		r, err := xz.NewReader(src)
		if err != nil {
			return &bufferedReadCloser{r: &errReader{err: err}}
		}
		return &bufferedReadCloser{r: r}
	})
}
