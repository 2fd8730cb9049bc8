// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"
)

var testTexts = []string{
	"",
	"a",
	"=]ZZ",
	"The quick brown fox jumps over the lazy dog.\n",
	strings.Repeat("abcabcabc", 100),
	strings.Repeat("x", 100000),
	"To be, or not to be, that is the question: " +
		"Whether 'tis nobler in the mind to suffer " +
		"The slings and arrows of outrageous fortune, " +
		"Or to take arms against a sea of troubles " +
		"And by opposing end them.",
}

func roundTrip(t *testing.T, src []byte, level int) {
	t.Helper()
	p := testParams(t, level)
	var buf bytes.Buffer
	if err := Compress(&buf, src, p); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	dst := make([]byte, len(src))
	n, err := Decompress(&buf, dst, p)
	if err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if n != len(src) {
		t.Fatalf("Decompress returned %d bytes; want %d", n, len(src))
	}
	if !bytes.Equal(dst, src) {
		t.Fatalf("round trip mismatch for %d bytes at level %d",
			len(src), level)
	}
}

func TestRoundTripTexts(t *testing.T) {
	for _, level := range []int{0, 1, 4, 6, 9} {
		for _, s := range testTexts {
			roundTrip(t, []byte(s), level)
		}
	}
}

func TestRoundTripRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	src := make([]byte, 1<<16)
	for i := range src {
		src[i] = byte(rnd.Intn(256))
	}
	for _, level := range []int{0, 5, 9} {
		roundTrip(t, src, level)
	}
}

func TestRoundTripStructured(t *testing.T) {
	// repeated blocks with small mutations exercise long distances
	rnd := rand.New(rand.NewSource(17))
	block := make([]byte, 4096)
	for i := range block {
		block[i] = byte(rnd.Intn(16))
	}
	var src []byte
	for i := 0; i < 64; i++ {
		src = append(src, block...)
		src[len(src)-1-rnd.Intn(4096)] ^= 0xff
	}
	for _, level := range []int{0, 6, 9} {
		roundTrip(t, src, level)
	}
}

func TestCompressEmpty(t *testing.T) {
	p := testParams(t, 9)
	var buf bytes.Buffer
	if err := Compress(&buf, nil, p); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("Compress of empty input wrote %d bytes; want 0",
			buf.Len())
	}
	n, err := Decompress(&buf, nil, p)
	if err != nil {
		t.Fatalf("Decompress error %s", err)
	}
	if n != 0 {
		t.Fatalf("Decompress returned %d bytes; want 0", n)
	}
}

func TestDecompressTruncated(t *testing.T) {
	p := testParams(t, 6)
	src := []byte(strings.Repeat("truncate me, please. ", 200))
	var buf bytes.Buffer
	if err := Compress(&buf, src, p); err != nil {
		t.Fatalf("Compress error %s", err)
	}
	data := buf.Bytes()
	for _, n := range []int{0, 1, 4, len(data) / 2, len(data) - 1} {
		dst := make([]byte, len(src))
		_, err := Decompress(bytes.NewReader(data[:n]), dst, p)
		if err == nil {
			t.Fatalf("Decompress of %d/%d bytes: no error",
				n, len(data))
		}
		var derr *DataError
		if !errors.Is(err, io.ErrUnexpectedEOF) &&
			!errors.As(err, &derr) {
			t.Fatalf("Decompress of %d/%d bytes: unexpected "+
				"error %s", n, len(data), err)
		}
	}
}