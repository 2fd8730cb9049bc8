// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

// maxLengthOffset is the largest length offset the length codec can
// represent. The actual match length is the offset plus the minimum match
// length of the stream.
const maxLengthOffset = 8 + 8 + 256 - 1

// lengthCodec supports the encoding of match lengths as offsets from the
// minimum match length. Offsets are binned into a low slot (0-7), a mid
// slot (8-15) and a high slot (16-271); two choice bits select the slot and
// a probability tree codes the offset within the slot.
type lengthCodec struct {
	choice [2]prob
	low    treeCodec
	mid    treeCodec
	high   treeCodec
}

// init initializes the length codec.
func (lc *lengthCodec) init() {
	for i := range lc.choice {
		lc.choice[i] = probInit
	}
	lc.low = makeTreeCodec(3)
	lc.mid = makeTreeCodec(3)
	lc.high = makeTreeCodec(8)
}

// Encode encodes the length offset l.
func (lc *lengthCodec) Encode(e *rangeEncoder, l uint32) (err error) {
	if l > maxLengthOffset {
		return dataError("length offset out of range")
	}
	if l < 8 {
		if err = lc.choice[0].encode(e, 0); err != nil {
			return err
		}
		return lc.low.Encode(l, e)
	}
	if err = lc.choice[0].encode(e, 1); err != nil {
		return err
	}
	if l < 16 {
		if err = lc.choice[1].encode(e, 0); err != nil {
			return err
		}
		return lc.mid.Encode(l-8, e)
	}
	if err = lc.choice[1].encode(e, 1); err != nil {
		return err
	}
	return lc.high.Encode(l-16, e)
}

// Decode reads a length offset.
func (lc *lengthCodec) Decode(d *rangeDecoder) (l uint32, err error) {
	var b uint32
	if b, err = lc.choice[0].decode(d); err != nil {
		return 0, err
	}
	if b == 0 {
		return lc.low.Decode(d)
	}
	if b, err = lc.choice[1].decode(d); err != nil {
		return 0, err
	}
	if b == 0 {
		l, err = lc.mid.Decode(d)
		return l + 8, err
	}
	l, err = lc.high.Decode(d)
	return l + 16, err
}