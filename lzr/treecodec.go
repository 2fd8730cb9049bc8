// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

// probTree stores enough probability values to be used by the tree codecs.
type probTree struct {
	probs []prob
	bits  byte
}

// makeProbTree initializes a probTree structure. The function panics if bits
// is outside the range [1,32].
func makeProbTree(bits int) probTree {
	if !(1 <= bits && bits <= 32) {
		panic("bits outside of range [1,32]")
	}
	t := probTree{
		bits:  byte(bits),
		probs: make([]prob, 1<<uint(bits)),
	}
	for i := range t.probs {
		t.probs[i] = probInit
	}
	return t
}

// treeCodec encodes and decodes fixed-bit-size values using a probability
// tree. The tree starts with the most-significant bit.
type treeCodec struct {
	probTree
}

// makeTreeCodec makes a tree codec.
func makeTreeCodec(bits int) treeCodec {
	return treeCodec{makeProbTree(bits)}
}

// Encode uses the range encoder to encode a fixed-bit-size value.
func (tc *treeCodec) Encode(v uint32, e *rangeEncoder) (err error) {
	m := uint32(1)
	for i := int(tc.bits) - 1; i >= 0; i-- {
		b := (v >> uint(i)) & 1
		if err := e.encodeBit(b, &tc.probs[m]); err != nil {
			return err
		}
		m = (m << 1) | b
	}
	return nil
}

// Decode uses the range decoder to decode a fixed-bit-size value. Errors may
// be caused by the range decoder.
func (tc *treeCodec) Decode(d *rangeDecoder) (v uint32, err error) {
	m := uint32(1)
	for j := 0; j < int(tc.bits); j++ {
		b, err := d.decodeBit(&tc.probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | b
	}
	return m - (1 << uint(tc.bits)), nil
}

// treeReverseCodec encodes and decodes fixed-bit-size values using a
// probability tree starting with the least-significant bit.
type treeReverseCodec struct {
	probTree
}

// makeTreeReverseCodec creates a treeReverseCodec. The function panics if
// bits is outside [1,32].
func makeTreeReverseCodec(bits int) treeReverseCodec {
	return treeReverseCodec{makeProbTree(bits)}
}

// Encode uses the range encoder to encode a fixed-bit-size value starting
// with the least-significant bit.
func (tc *treeReverseCodec) Encode(v uint32, e *rangeEncoder) (err error) {
	m := uint32(1)
	for i := uint(0); i < uint(tc.bits); i++ {
		b := (v >> i) & 1
		if err := e.encodeBit(b, &tc.probs[m]); err != nil {
			return err
		}
		m = (m << 1) | b
	}
	return nil
}

// Decode uses the range decoder to decode a fixed-bit-size value starting
// with the least-significant bit.
func (tc *treeReverseCodec) Decode(d *rangeDecoder) (v uint32, err error) {
	m := uint32(1)
	for j := uint(0); j < uint(tc.bits); j++ {
		b, err := d.decodeBit(&tc.probs[m])
		if err != nil {
			return 0, err
		}
		m = (m << 1) | b
		v |= b << j
	}
	return v, nil
}

// directCodec encodes and decodes values with the given number of bits with
// probability 1/2 for each bit.
type directCodec byte

// Encode encodes the bits-size value v starting with the most-significant
// bit.
func (dc directCodec) Encode(v uint32, e *rangeEncoder) error {
	for i := int(dc) - 1; i >= 0; i-- {
		if err := e.directEncodeBit(v >> uint(i)); err != nil {
			return err
		}
	}
	return nil
}

// Decode decodes a bits-size value.
func (dc directCodec) Decode(d *rangeDecoder) (v uint32, err error) {
	for i := int(dc) - 1; i >= 0; i-- {
		x, err := d.directDecodeBit()
		if err != nil {
			return 0, err
		}
		v = (v << 1) | x
	}
	return v, nil
}