// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares encode/decode throughput and compression ratio
// across this repository's own codecs and a couple of third-party
// reference implementations, registered under a common name so the same
// driver logic can run any of them.
package bench

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path"
	"runtime"
	"testing"
)

// Format identifies a comparable codec family. Each format has one
// registered implementation (see codecs.go): "ziplab" for huffman, lzss and
// rans, "klauspost" for flate and "ulikunitz" for xz; the enum exists so the
// registration and reporting machinery below can be shared across formats.
const (
	FormatHuffman = iota
	FormatLZSS
	FormatRANS
	FormatFlate
	FormatXZ
)

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestCompressRatio
)

// Encoder and Decoder wrap a codec as a streaming io.Writer/io.Reader so
// that this repository's byte-slice codecs and the streaming third-party
// ones (flate, xz) can be benchmarked through one interface.
type Encoder func(io.Writer) io.WriteCloser
type Decoder func(io.Reader) io.ReadCloser

var (
	Encoders map[int]map[string]Encoder
	Decoders map[int]map[string]Decoder

	// Paths is the list of directories searched for named test files.
	Paths []string
)

func RegisterEncoder(format int, name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[int]map[string]Encoder)
	}
	if Encoders[format] == nil {
		Encoders[format] = make(map[string]Encoder)
	}
	Encoders[format][name] = enc
}

func RegisterDecoder(format int, name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[int]map[string]Decoder)
	}
	if Decoders[format] == nil {
		Decoders[format] = make(map[string]Decoder)
	}
	Decoders[format][name] = dec
}

// BenchmarkEncoder benchmarks a single encoder on the given input.
func BenchmarkEncoder(input []byte, enc Encoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			wr := enc(ioutil.Discard)
			if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err := wr.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// BenchmarkDecoder benchmarks a single decoder on pre-compressed input.
func BenchmarkDecoder(input []byte, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rd := dec(bufio.NewReader(bytes.NewReader(input)))
			cnt, err := io.Copy(ioutil.Discard, rd)
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err := rd.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(cnt)
		}
	})
}

// Result is one cell of a benchmark table: a rate (MB/s) or ratio
// (rawSize/compSize), plus its delta against the suite's first codec.
type Result struct {
	R float64
	D float64
}

// BenchmarkEncoderSuite runs BenchmarkEncoder across every named codec and
// file, returning a [len(files)][len(codecs)]Result grid alongside the
// per-row file names.
func BenchmarkEncoderSuite(format int, codecs, files []string, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(codecs, files, tick, func(input []byte, c string) Result {
		r := BenchmarkEncoder(input, Encoders[format][c])
		if r.N == 0 {
			return Result{}
		}
		us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
		return Result{R: float64(r.Bytes) / us}
	})
}

// BenchmarkDecoderSuite compresses each file once with ref, then runs
// BenchmarkDecoder across every named codec against that shared payload.
func BenchmarkDecoderSuite(format int, codecs, files []string, ref Encoder, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(codecs, files, tick, func(input []byte, c string) Result {
		buf := new(bytes.Buffer)
		wr := ref(buf)
		if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
			return Result{}
		}
		if wr.Close() != nil {
			return Result{}
		}
		r := BenchmarkDecoder(buf.Bytes(), Decoders[format][c])
		if r.N == 0 {
			return Result{}
		}
		us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
		return Result{R: float64(r.Bytes) / us}
	})
}

// BenchmarkRatioSuite compresses each file with every named codec and
// reports rawSize/compSize.
func BenchmarkRatioSuite(format int, codecs, files []string, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(codecs, files, tick, func(input []byte, c string) Result {
		buf := new(bytes.Buffer)
		wr := Encoders[format][c](buf)
		if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
			return Result{}
		}
		if wr.Close() != nil {
			return Result{}
		}
		if buf.Len() == 0 {
			return Result{}
		}
		return Result{R: float64(len(input)) / float64(buf.Len())}
	})
}

type benchFunc func(input []byte, codec string) Result

func benchmarkSuite(codecs, files []string, tick func(), run benchFunc) ([][]Result, []string) {
	results := make([][]Result, len(files))
	names := make([]string, len(files))
	for i := range results {
		results[i] = make([]Result, len(codecs))
	}

	for i, f := range files {
		b, err := ioutil.ReadFile(getPath(f))
		names[i] = path.Base(f)
		for j, c := range codecs {
			if tick != nil {
				tick()
			}
			if err == nil {
				results[i][j] = run(b, c)
			}
			results[i][j].D = results[i][j].R / results[i][0].R
		}
	}
	return results, names
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		if q := path.Join(p, file); fileExists(q) {
			return q
		}
	}
	return file
}

func fileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// FormatSize renders n bytes with a coarse binary-prefix suffix. The single
// thing it's used for here (labeling a size in a report column) is well
// within fmt's reach, so it's a small local helper rather than a pulled-in
// dependency.
func FormatSize(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
