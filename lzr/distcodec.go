// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import "math/bits"

const (
	// number of length states conditioning the position slot codec
	lenStates = 4
	// slots below startPosModel encode the distance directly
	startPosModel = 4
	// slots below endPosModel use a reverse tree for the distance rest
	endPosModel = 14
	// number of bits of a position slot
	posSlotBits = 6
	// number of align bits coded by the align codec
	alignBits = 4
)

// lenState converts a length offset into the state conditioning the
// position slot codec.
func lenState(l uint32) uint32 {
	if l >= lenStates {
		return lenStates - 1
	}
	return l
}

// distCodec supports the encoding of zero-based match distances. The
// distance is binned into position slots; slots 4 to 13 carry their rest in
// adaptive reverse trees, larger slots code the middle bits directly and
// the lowest four bits with the align codec.
type distCodec struct {
	posSlotCodecs [lenStates]treeCodec
	posModel      [endPosModel - startPosModel]treeReverseCodec
	alignCodec    treeReverseCodec
}

// init initializes the distance codec.
func (dc *distCodec) init() {
	for i := range dc.posSlotCodecs {
		dc.posSlotCodecs[i] = makeTreeCodec(posSlotBits)
	}
	for i := range dc.posModel {
		posSlot := startPosModel + i
		nbits := (posSlot >> 1) - 1
		dc.posModel[i] = makeTreeReverseCodec(nbits)
	}
	dc.alignCodec = makeTreeReverseCodec(alignBits)
}

// Encode encodes the zero-based distance dist for the length offset l.
func (dc *distCodec) Encode(e *rangeEncoder, dist uint32, l uint32) (err error) {
	var posSlot uint32
	var nbits uint32
	if dist < startPosModel {
		posSlot = dist
	} else {
		nbits = uint32(30 - bits.LeadingZeros32(dist))
		posSlot = startPosModel - 2 + (nbits << 1)
		posSlot += (dist >> uint(nbits)) & 1
	}

	if err = dc.posSlotCodecs[lenState(l)].Encode(posSlot, e); err != nil {
		return err
	}

	switch {
	case posSlot < startPosModel:
		return nil
	case posSlot < endPosModel:
		tc := &dc.posModel[posSlot-startPosModel]
		return tc.Encode(dist, e)
	}
	dic := directCodec(nbits - alignBits)
	if err = dic.Encode(dist>>alignBits, e); err != nil {
		return err
	}
	return dc.alignCodec.Encode(dist, e)
}

// Decode decodes a zero-based distance for the length offset l.
func (dc *distCodec) Decode(d *rangeDecoder, l uint32) (dist uint32, err error) {
	posSlot, err := dc.posSlotCodecs[lenState(l)].Decode(d)
	if err != nil {
		return 0, err
	}
	if posSlot < startPosModel {
		return posSlot, nil
	}

	nbits := (posSlot >> 1) - 1
	dist = (2 | (posSlot & 1)) << nbits
	var u uint32
	if posSlot < endPosModel {
		tc := &dc.posModel[posSlot-startPosModel]
		if u, err = tc.Decode(d); err != nil {
			return 0, err
		}
		return dist + u, nil
	}

	dic := directCodec(nbits - alignBits)
	if u, err = dic.Decode(d); err != nil {
		return 0, err
	}
	dist += u << alignBits
	if u, err = dc.alignCodec.Decode(d); err != nil {
		return 0, err
	}
	return dist + u, nil
}