// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

// opStates is the number of states tracking the kinds of the last two
// coded tokens. The state selects the probability for the match flag.
const opStates = 4

// state maintains the complete codec state shared by the encoder and the
// decoder. Both sides must query and update it in exactly the same order;
// any divergence makes the remaining stream undecodable.
type state struct {
	opState   uint32
	isMatch   [opStates]prob
	litCodec  literalCodec
	lenCodec  lengthCodec
	distCodec distCodec
}

// init initializes the state to the values both sides start from.
func (s *state) init() {
	s.opState = 0
	for i := range s.isMatch {
		s.isMatch[i] = probInit
	}
	s.litCodec.init()
	s.lenCodec.init()
	s.distCodec.init()
}

// updateLiteral records that a literal has been coded.
func (s *state) updateLiteral() {
	s.opState = (s.opState << 1) & (opStates - 1)
}

// updateMatch records that a match has been coded.
func (s *state) updateMatch() {
	s.opState = ((s.opState << 1) | 1) & (opStates - 1)
}
