// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import (
	"bytes"
	"testing"
)

func testParams(t *testing.T, level int) Params {
	t.Helper()
	p, err := ParamsForLevel(level)
	if err != nil {
		t.Fatalf("ParamsForLevel(%d): %s", level, err)
	}
	return p
}

func TestMatchFinderSimple(t *testing.T) {
	p := testParams(t, 9)
	src := []byte("abcdefgh abcdefgh")
	f := newMatchFinder(src, p)
	for i := 0; i < 9; i++ {
		f.insert(i)
	}
	dist, n := f.findMatch(9)
	if dist != 9 {
		t.Errorf("findMatch distance: got %d; want 9", dist)
	}
	if n != 8 {
		t.Errorf("findMatch length: got %d; want 8", n)
	}
}

func TestMatchFinderOverlap(t *testing.T) {
	p := testParams(t, 9)
	src := bytes.Repeat([]byte{'x'}, 300)
	f := newMatchFinder(src, p)
	f.insert(0)
	dist, n := f.findMatch(1)
	if dist != 1 {
		t.Errorf("findMatch distance: got %d; want 1", dist)
	}
	// the overlapping match covers the rest of the buffer up to the cap
	if n != p.MaxMatchLen() {
		t.Errorf("findMatch length: got %d; want %d", n,
			p.MaxMatchLen())
	}
}

func TestMatchFinderSmallestDistanceWins(t *testing.T) {
	p := testParams(t, 9)
	src := []byte("fooX fooY fooZ foo!")
	f := newMatchFinder(src, p)
	for i := 0; i < 15; i++ {
		f.insert(i)
	}
	dist, n := f.findMatch(15)
	if n != 3 {
		t.Fatalf("findMatch length: got %d; want 3", n)
	}
	// "foo" occurs at distances 5, 10 and 15; the smallest must win
	if dist != 5 {
		t.Errorf("findMatch distance: got %d; want 5", dist)
	}
}

func TestMatchFinderMinMatchBoundary(t *testing.T) {
	for _, level := range []int{0, 9} {
		p := testParams(t, level)

		// minMatch-1 repeated bytes followed by a different byte
		// must not produce a single match
		src := append(bytes.Repeat([]byte{'a'}, p.MinMatch-1), 'b')
		f := newMatchFinder(src, p)
		for pos := 0; pos < len(src); pos++ {
			if _, n := f.findMatch(pos); n >= p.MinMatch {
				t.Errorf("level %d: match of length %d at "+
					"position %d in %q", level, n, pos, src)
			}
			f.insert(pos)
		}

		// a repetition of exactly minMatch bytes is eligible
		pattern := []byte("uvw")[:p.MinMatch]
		src = append(append(append([]byte{}, pattern...), '|'),
			pattern...)
		f = newMatchFinder(src, p)
		pos := p.MinMatch + 1
		for i := 0; i < pos; i++ {
			f.insert(i)
		}
		dist, n := f.findMatch(pos)
		if n != p.MinMatch {
			t.Fatalf("level %d: findMatch got length %d; want %d",
				level, n, p.MinMatch)
		}
		if dist != pos {
			t.Errorf("level %d: findMatch got distance %d; want %d",
				level, dist, pos)
		}
	}
}

func TestMatchFinderNoSelfMatchOnRandomPrefix(t *testing.T) {
	p := testParams(t, 5)
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	f := newMatchFinder(src, p)
	for pos := 0; pos < len(src); pos++ {
		if _, n := f.findMatch(pos); n != 0 {
			t.Errorf("findMatch(%d): got length %d; want 0", pos, n)
		}
		f.insert(pos)
	}
}