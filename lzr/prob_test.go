// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import "testing"

func TestProbInit(t *testing.T) {
	if probInit != 1<<(probbits-1) {
		t.Fatalf("probInit %d; want %d", probInit, 1<<(probbits-1))
	}
}

func TestProbUpdates(t *testing.T) {
	p := probInit
	p.inc()
	if p <= probInit {
		t.Errorf("p.inc(): got %d; want a value above %d", p, probInit)
	}
	p = probInit
	p.dec()
	if p >= probInit {
		t.Errorf("p.dec(): got %d; want a value below %d", p, probInit)
	}
}

func TestProbConvergence(t *testing.T) {
	// a long run of zero bits must drive the probability towards one
	p := probInit
	for i := 0; i < 1000; i++ {
		p.inc()
	}
	if p < (1<<probbits)-(1<<movebits)-1 {
		t.Errorf("p after many inc: %d; too far from %d", p,
			1<<probbits)
	}
	// and the estimator must never reach zero from the other side
	for i := 0; i < 10000; i++ {
		p.dec()
		if p == 0 {
			t.Fatalf("p.dec() reached zero after %d updates", i+1)
		}
	}
}