// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

// litContextBits defines how many high bits of the previous byte condition
// the literal probabilities.
const litContextBits = 3

// litStates is the number of literal contexts.
const litStates = 1 << litContextBits

// litState derives the literal context from the previous output byte.
func litState(prev byte) uint32 {
	return uint32(prev) >> (8 - litContextBits)
}

// literalCodec supports the encoding of literals. It provides 256
// probability values per literal state.
type literalCodec struct {
	probs []prob
}

// init initializes the literal codec.
func (c *literalCodec) init() {
	c.probs = make([]prob, 0x100<<litContextBits)
	for i := range c.probs {
		c.probs[i] = probInit
	}
}

// Encode encodes the byte s using the range encoder and the literal state.
func (c *literalCodec) Encode(e *rangeEncoder, s byte, litState uint32) error {
	k := litState * 0x100
	probs := c.probs[k : k+0x100]
	symbol := uint32(1)
	r := uint32(s)
	for symbol < 0x100 {
		bit := (r >> 7) & 1
		r <<= 1
		if err := probs[symbol].encode(e, bit); err != nil {
			return err
		}
		symbol = (symbol << 1) | bit
	}
	return nil
}

// Decode decodes a literal byte using the range decoder and the literal
// state.
func (c *literalCodec) Decode(d *rangeDecoder, litState uint32) (s byte, err error) {
	k := litState * 0x100
	probs := c.probs[k : k+0x100]
	symbol := uint32(1)
	for symbol < 0x100 {
		bit, err := probs[symbol].decode(d)
		if err != nil {
			return 0, err
		}
		symbol = (symbol << 1) | bit
	}
	return byte(symbol - 0x100), nil
}