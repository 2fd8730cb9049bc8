// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import (
	"fmt"
	"io"
)

// maxSrcLen bounds the source buffer so positions fit into the int32 tables
// of the match finder.
const maxSrcLen = 1<<31 - 1

// encoder compresses a source buffer into a range-coded token stream.
type encoder struct {
	src []byte
	re  *rangeEncoder
	st  state
	mf  *matchFinder
	p   Params
	pos int
}

// Compress encodes src into w using the given parameters. The output
// carries no framing; the caller must record the uncompressed length and
// the parameters elsewhere. An empty source writes nothing at all.
func Compress(w io.Writer, src []byte, p Params) error {
	if err := p.Verify(); err != nil {
		return err
	}
	if len(src) > maxSrcLen {
		return fmt.Errorf("lzr: source buffer of %d bytes too large",
			len(src))
	}
	if len(src) == 0 {
		return nil
	}
	e := &encoder{
		src: src,
		re:  newRangeEncoder(byteWriter(w)),
		mf:  newMatchFinder(src, p),
		p:   p,
	}
	e.st.init()
	if err := e.compress(); err != nil {
		return err
	}
	return e.re.flush()
}

// compress runs the greedy tokenization loop over the source buffer.
func (e *encoder) compress() error {
	for e.pos < len(e.src) {
		dist, n := e.mf.findMatch(e.pos)
		var op operation
		if n >= e.p.MinMatch {
			op = match{distance: dist, n: n}
		} else {
			op = lit{b: e.src[e.pos]}
		}
		if err := e.writeOp(op); err != nil {
			return err
		}
		// enter the covered positions into the hash chain
		for i := 0; i < op.Len(); i++ {
			e.mf.insert(e.pos + i)
		}
		e.pos += op.Len()
	}
	return nil
}

// writeOp encodes a single operation.
func (e *encoder) writeOp(op operation) error {
	switch x := op.(type) {
	case match:
		return e.writeMatch(x)
	case lit:
		return e.writeLiteral(x)
	}
	panic("unknown operation")
}

// writeLiteral encodes a single literal byte.
func (e *encoder) writeLiteral(l lit) error {
	if err := e.re.encodeBit(0, &e.st.isMatch[e.st.opState]); err != nil {
		return err
	}
	var prev byte
	if e.pos > 0 {
		prev = e.src[e.pos-1]
	}
	if err := e.st.litCodec.Encode(e.re, l.b, litState(prev)); err != nil {
		return err
	}
	e.st.updateLiteral()
	return nil
}

// writeMatch encodes a match operation.
func (e *encoder) writeMatch(m match) error {
	if !(e.p.MinMatch <= m.n && m.n <= e.p.MaxMatchLen()) {
		return fmt.Errorf("lzr: match length %d out of range", m.n)
	}
	if !(1 <= m.distance && m.distance <= e.p.DictCap &&
		m.distance <= e.pos) {
		return fmt.Errorf("lzr: match distance %d out of range",
			m.distance)
	}
	if err := e.re.encodeBit(1, &e.st.isMatch[e.st.opState]); err != nil {
		return err
	}
	l := uint32(m.n - e.p.MinMatch)
	if err := e.st.lenCodec.Encode(e.re, l); err != nil {
		return err
	}
	if err := e.st.distCodec.Encode(e.re, uint32(m.distance-1), l); err != nil {
		return err
	}
	e.st.updateMatch()
	return nil
}
