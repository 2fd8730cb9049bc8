// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import (
	"bytes"
	"testing"
)

func TestLengthCodec(t *testing.T) {
	var buf bytes.Buffer
	e := newRangeEncoder(&buf)
	var le lengthCodec
	le.init()
	for l := uint32(0); l <= maxLengthOffset; l++ {
		if err := le.Encode(e, l); err != nil {
			t.Fatalf("le.Encode(%d): %s", l, err)
		}
	}
	if err := e.flush(); err != nil {
		t.Fatalf("e.flush: %s", err)
	}
	d, err := newRangeDecoder(&buf)
	if err != nil {
		t.Fatalf("newRangeDecoder: %s", err)
	}
	var ld lengthCodec
	ld.init()
	for l := uint32(0); l <= maxLengthOffset; l++ {
		x, err := ld.Decode(d)
		if err != nil {
			t.Fatalf("ld.Decode: %s", err)
		}
		if x != l {
			t.Fatalf("ld.Decode: got %d; want %d", x, l)
		}
	}
}

func TestLengthCodecOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	e := newRangeEncoder(&buf)
	var le lengthCodec
	le.init()
	if err := le.Encode(e, maxLengthOffset+1); err == nil {
		t.Fatalf("le.Encode(%d): no error", maxLengthOffset+1)
	}
}