// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command ziplabbench drives internal/bench across this repository's
// codecs and the reference klauspost/compress and ulikunitz/xz
// implementations registered alongside them (trimmed of the level/size
// axes a more general driver would iterate over, since none of this
// module's codecs expose a compression-level knob).
//
// Example usage:
//	$ go build -o ziplabbench ./cmd/ziplabbench
//	$ ./ziplabbench -formats huffman,lzss,rans -files testdata/twain.txt
package main

import (
	"flag"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/ziplab/ziplab/internal/bench"
)

var (
	fmtToEnum = map[string]int{
		"huffman": bench.FormatHuffman,
		"lzss":    bench.FormatLZSS,
		"rans":    bench.FormatRANS,
		"flate":   bench.FormatFlate,
		"xz":      bench.FormatXZ,
	}
	enumToFmt = map[int]string{
		bench.FormatHuffman: "huffman",
		bench.FormatLZSS:    "lzss",
		bench.FormatRANS:    "rans",
		bench.FormatFlate:   "flate",
		bench.FormatXZ:      "xz",
	}
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

// encRefs picks the reference encoder used to pre-compress files for the
// decode-rate benchmark; "ziplab" is preferred so a round-trip benchmark
// compares this module's own decoder against its own encoder by default.
var encRefs = []string{"ziplab", "klauspost", "ulikunitz"}

func defaultFormats() string {
	var names []string
	for name := range fmtToEnum {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultCodecs() string {
	m := make(map[string]bool)
	for _, v := range bench.Encoders {
		for k := range v {
			m[k] = true
		}
	}
	for _, v := range bench.Decoders {
		for k := range v {
			m[k] = true
		}
	}
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}

func main() {
	f0 := flag.String("formats", defaultFormats(), "list of codec families to benchmark")
	f1 := flag.String("tests", defaultTests(), "list of benchmark tests: encRate, decRate, ratio")
	f2 := flag.String("codecs", defaultCodecs(), "list of named codec implementations to benchmark")
	f3 := flag.String("paths", "", "list of directories to search for named input files")
	f4 := flag.String("files", "", "list of input files to benchmark")
	flag.Parse()

	sep := regexp.MustCompile("[,:]")
	codecs := sep.Split(*f2, -1)
	paths := nonEmpty(sep.Split(*f3, -1))
	files := nonEmpty(sep.Split(*f4, -1))

	var formats, tests []int
	for _, s := range nonEmpty(sep.Split(*f0, -1)) {
		v, ok := fmtToEnum[s]
		if !ok {
			panic("invalid format: " + s)
		}
		formats = append(formats, v)
	}
	for _, s := range nonEmpty(sep.Split(*f1, -1)) {
		v, ok := testToEnum[s]
		if !ok {
			panic("invalid test: " + s)
		}
		tests = append(tests, v)
	}

	ts := time.Now()
	bench.Paths = paths
	runBenchmarks(files, codecs, formats, tests)
	fmt.Printf("RUNTIME: %v\n", time.Since(ts))
}

func nonEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func runBenchmarks(files, codecs []string, formats, tests []int) {
	for _, f := range formats {
		var encs, decs []string
		for _, c := range codecs {
			if _, ok := bench.Encoders[f][c]; ok {
				encs = append(encs, c)
			}
		}
		for _, c := range codecs {
			if _, ok := bench.Decoders[f][c]; ok {
				decs = append(decs, c)
			}
		}

		for _, t := range tests {
			var results [][]bench.Result
			var names, rowCodecs []string
			var title, suffix string

			fmt.Printf("BENCHMARK: %s:%s\n", enumToFmt[f], enumToTest[t])
			if len(encs) == 0 {
				fmt.Println("\tSKIP: no encoders available")
				continue
			}
			if len(decs) == 0 && t == bench.TestDecodeRate {
				fmt.Println("\tSKIP: no decoders available")
				continue
			}

			var cnt int
			tick := func() {
				total := len(codecs) * len(files)
				pct := 100.0 * float64(cnt) / float64(total)
				fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
				cnt++
			}

			switch t {
			case bench.TestEncodeRate:
				rowCodecs, title, suffix = encs, "MB/s", ""
				results, names = bench.BenchmarkEncoderSuite(f, encs, files, tick)
			case bench.TestDecodeRate:
				ref := getReferenceEncoder(f)
				rowCodecs, title, suffix = decs, "MB/s", ""
				results, names = bench.BenchmarkDecoderSuite(f, decs, files, ref, tick)
			case bench.TestCompressRatio:
				rowCodecs, title, suffix = encs, "ratio", "x"
				results, names = bench.BenchmarkRatioSuite(f, encs, files, tick)
			default:
				panic("unknown test")
			}

			printResults(results, names, rowCodecs, title, suffix)
			fmt.Println()
		}
		fmt.Println()
	}
}

func getReferenceEncoder(f int) bench.Encoder {
	for _, c := range encRefs {
		if enc, ok := bench.Encoders[f][c]; ok {
			return enc
		}
	}
	for _, enc := range bench.Encoders[f] {
		return enc
	}
	return nil
}

func printResults(results [][]bench.Result, names, codecs []string, title, suffix string) {
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(codecs))
	}

	cells[0][0] = "benchmark"
	for i, c := range codecs {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	maxLens := make([]int, 1+2*len(codecs))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0:
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1:
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0:
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
