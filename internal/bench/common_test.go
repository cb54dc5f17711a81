// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"io"
	"testing"

	"github.com/ziplab/ziplab/internal/testutil"
)

func roundTrip(t *testing.T, format int, codec string, input []byte) {
	t.Helper()
	enc := Encoders[format][codec]
	dec := Decoders[format][codec]
	if enc == nil || dec == nil {
		t.Fatalf("codec %q not registered for format %d", codec, format)
	}

	var buf bytes.Buffer
	wr := enc(&buf)
	if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := wr.Close(); err != nil {
		t.Fatalf("encode close: %v", err)
	}

	rd := dec(&buf)
	out, err := io.ReadAll(rd)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := rd.Close(); err != nil {
		t.Fatalf("decode close: %v", err)
	}
	if !bytes.Equal(out, input) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d bytes", len(out), len(input))
	}
}

func TestRegisteredCodecsRoundTrip(t *testing.T) {
	r := testutil.NewRand(11)
	input := testutil.RepeatyBytes(r.Int(), 8192)

	cases := []struct {
		format int
		codec  string
	}{
		{FormatHuffman, "ziplab"},
		{FormatLZSS, "ziplab"},
		{FormatRANS, "ziplab"},
		{FormatFlate, "klauspost"},
		{FormatXZ, "ulikunitz"},
	}
	for _, c := range cases {
		t.Run(c.codec, func(t *testing.T) {
			roundTrip(t, c.format, c.codec, input)
		})
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0B"},
		{1023, "1023B"},
		{1024, "1.0KiB"},
		{5 * 1024 * 1024, "5.0MiB"},
	}
	for _, c := range cases {
		if got := FormatSize(c.n); got != c.want {
			t.Errorf("FormatSize(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
