// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import (
	"bytes"
	"testing"
)

var testStrings = []string{
	"S",
	"HalloBallo",
	"funny",
	"Die Nummer Eins der Welt sind wir!",
}

func TestDirectCodec(t *testing.T) {
	for _, s := range testStrings {
		t.Log(s)
		var buf bytes.Buffer
		e := newRangeEncoder(&buf)
		dc := directCodec(8)
		b := []byte(s)
		for _, x := range b {
			if err := dc.Encode(uint32(x), e); err != nil {
				t.Fatalf("dc.Encode: %s", err)
			}
		}
		if err := e.flush(); err != nil {
			t.Fatalf("e.flush: %s", err)
		}
		d, err := newRangeDecoder(&buf)
		if err != nil {
			t.Fatalf("newRangeDecoder: %s", err)
		}
		var out []byte
		for i := 0; i < len(b); i++ {
			x, err := dc.Decode(d)
			if err != nil {
				t.Fatalf("dc.Decode: %s", err)
			}
			out = append(out, byte(x))
		}
		if !bytes.Equal(out, b) {
			t.Errorf("got %q; want %q", out, b)
		}
	}
}

func TestTreeCodec(t *testing.T) {
	for _, s := range testStrings {
		t.Log(s)
		var buf bytes.Buffer
		e := newRangeEncoder(&buf)
		tc := makeTreeCodec(8)
		b := []byte(s)
		for _, x := range b {
			if err := tc.Encode(uint32(x), e); err != nil {
				t.Fatalf("tc.Encode: %s", err)
			}
		}
		if err := e.flush(); err != nil {
			t.Fatalf("e.flush: %s", err)
		}
		d, err := newRangeDecoder(&buf)
		if err != nil {
			t.Fatalf("newRangeDecoder: %s", err)
		}
		tc = makeTreeCodec(8)
		var out []byte
		for i := 0; i < len(b); i++ {
			x, err := tc.Decode(d)
			if err != nil {
				t.Fatalf("tc.Decode: %s", err)
			}
			out = append(out, byte(x))
		}
		if !bytes.Equal(out, b) {
			t.Errorf("got %q; want %q", out, b)
		}
	}
}

func TestTreeReverseCodec(t *testing.T) {
	for _, s := range testStrings {
		var buf bytes.Buffer
		e := newRangeEncoder(&buf)
		tc := makeTreeReverseCodec(8)
		b := []byte(s)
		for _, x := range b {
			if err := tc.Encode(uint32(x), e); err != nil {
				t.Fatalf("tc.Encode: %s", err)
			}
		}
		if err := e.flush(); err != nil {
			t.Fatalf("e.flush: %s", err)
		}
		d, err := newRangeDecoder(&buf)
		if err != nil {
			t.Fatalf("newRangeDecoder: %s", err)
		}
		tc = makeTreeReverseCodec(8)
		var out []byte
		for i := 0; i < len(b); i++ {
			x, err := tc.Decode(d)
			if err != nil {
				t.Fatalf("tc.Decode: %s", err)
			}
			out = append(out, byte(x))
		}
		if !bytes.Equal(out, b) {
			t.Errorf("got %q; want %q", out, b)
		}
	}
}

func TestRangeDecoderEOF(t *testing.T) {
	var buf bytes.Buffer
	if _, err := newRangeDecoder(&buf); err == nil {
		t.Fatal("newRangeDecoder on empty stream: no error")
	}
}