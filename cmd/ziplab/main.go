// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command ziplab is a thin CLI front end over the codec packages: it reads
// an input file name and an output file name, picks a codec by flag, and
// reports success or failure through the process exit code. It holds no
// compression logic of its own; every codec package is fully usable as a
// library without it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ziplab/ziplab/dmc"
	"github.com/ziplab/ziplab/huffman"
	"github.com/ziplab/ziplab/lzss"
	"github.com/ziplab/ziplab/rans"
)

func main() {
	mode := flag.String("mode", "", "codec and direction: huffman-c, huffman-d, lzss-c, lzss-d, rans-c, rans-d, dmc-probe")
	windowBits := flag.Int("window-bits", 12, "lzss window size, log2 (lzss-c/lzss-d only)")
	lookaheadBits := flag.Int("lookahead-bits", 4, "lzss look-ahead size, log2 (lzss-c/lzss-d only)")
	flag.Parse()

	args := flag.Args()
	if *mode == "" || len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: ziplab -mode MODE INPUT OUTPUT")
		flag.PrintDefaults()
		os.Exit(2)
	}
	in, out := args[0], args[1]

	if err := run(*mode, in, out, *windowBits, *lookaheadBits); err != nil {
		fmt.Fprintf(os.Stderr, "ziplab: %v\n", err)
		os.Exit(1)
	}
}

func run(mode, in, out string, windowBits, lookaheadBits int) error {
	switch mode {
	case "huffman-c":
		return huffman.CompressFile(out, in)
	case "huffman-d":
		return huffman.DecompressFile(out, in)
	case "lzss-c":
		c, err := lzss.New(windowBits, lookaheadBits)
		if err != nil {
			return err
		}
		return c.CompressFile(out, in)
	case "lzss-d":
		c, err := lzss.New(windowBits, lookaheadBits)
		if err != nil {
			return err
		}
		return c.DecompressFile(out, in)
	case "rans-c":
		return rans.CompressFile(out, in)
	case "rans-d":
		return rans.DecompressFile(out, in)
	case "dmc-probe":
		return dmcProbe(in, out)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// dmcProbe feeds the input file's bits through a fresh DMC model and writes
// one ASCII line per byte reporting the model's predicted probability of a
// zero bit just before that byte was observed. The DMC model in this
// repository produces no compressed bytes (see spec.md §4.8); this is its
// only CLI-visible use, a diagnostic rather than a codec mode.
func dmcProbe(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	m := dmc.NewModel()
	var report []byte
	for _, b := range data {
		p := m.ProbabilityOfZero()
		report = append(report, []byte(fmt.Sprintf("%.4f\n", p))...)
		for bit := 7; bit >= 0; bit-- {
			m.ProcessBit(int((b >> uint(bit)) & 1))
		}
	}
	return os.WriteFile(out, report, 0644)
}
