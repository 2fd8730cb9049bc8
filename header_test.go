// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cxm

import (
	"testing"

	"github.com/kr/pretty"
)

func TestHeaderMarshalling(t *testing.T) {
	tests := []header{
		{version: headerVersion, level: 0, size: 0, cksum: 0},
		{version: headerVersion, level: 6, size: 1, cksum: 0x02946058},
		{version: headerVersion, level: 9, size: 1 << 40,
			cksum: 0xffffffff},
	}
	for _, tc := range tests {
		data, err := tc.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary error %s", err)
		}
		if len(data) != headerLen {
			t.Fatalf("MarshalBinary returned %d bytes; want %d",
				len(data), headerLen)
		}
		var h header
		if err = h.UnmarshalBinary(data); err != nil {
			t.Fatalf("UnmarshalBinary error %s", err)
		}
		if h != tc {
			t.Fatalf("header mismatch: %s",
				pretty.Diff(tc, h))
		}
	}
}

func TestHeaderUnmarshalErrors(t *testing.T) {
	h := header{version: headerVersion, level: 5, size: 42, cksum: 7}
	valid, err := h.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary error %s", err)
	}

	tests := []struct {
		name   string
		change func(p []byte)
	}{
		{"magic", func(p []byte) { p[0] = 'x' }},
		{"version", func(p []byte) { p[4] = headerVersion + 1 }},
		{"level", func(p []byte) { p[5] = MaxLevel + 1 }},
	}
	for _, tc := range tests {
		p := make([]byte, len(valid))
		copy(p, valid)
		tc.change(p)
		var g header
		err := g.UnmarshalBinary(p)
		if err == nil {
			t.Fatalf("%s: UnmarshalBinary accepted corrupt header",
				tc.name)
		}
		if _, ok := err.(FormatError); !ok {
			t.Fatalf("%s: got %[2]T (%[2]s); want FormatError",
				tc.name, err)
		}
	}
}

func TestHeaderMarshalLevelError(t *testing.T) {
	h := header{version: headerVersion, level: 10, size: 1}
	if _, err := h.MarshalBinary(); err == nil {
		t.Fatal("MarshalBinary accepted level 10")
	}
}