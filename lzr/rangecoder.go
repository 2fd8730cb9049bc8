// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import "io"

// rangeEncoder implements the range encoding of single bits. The low value
// can overflow therefore we need uint64. The cache value is used to handle
// overflows.
type rangeEncoder struct {
	w        io.ByteWriter
	nrange   uint32
	low      uint64
	cacheLen int
	cache    byte
}

// newRangeEncoder creates a new range encoder.
func newRangeEncoder(w io.ByteWriter) *rangeEncoder {
	return &rangeEncoder{w: w, nrange: 0xffffffff, cacheLen: 1}
}

// encodeBit encodes the least significant bit of b. The probability value
// will be updated depending on the bit encoded.
func (e *rangeEncoder) encodeBit(b uint32, p *prob) error {
	bound := p.bound(e.nrange)
	if b&1 == 0 {
		e.nrange = bound
		p.inc()
	} else {
		e.low += uint64(bound)
		e.nrange -= bound
		p.dec()
	}
	return e.normalize()
}

// directEncodeBit encodes the least-significant bit of b with probability
// 1/2.
func (e *rangeEncoder) directEncodeBit(b uint32) error {
	e.nrange >>= 1
	e.low += uint64(e.nrange) & (0 - (uint64(b) & 1))
	return e.normalize()
}

// flush writes the complete low value out. It must be called after the last
// bit has been encoded.
func (e *rangeEncoder) flush() error {
	for i := 0; i < 5; i++ {
		if err := e.shiftLow(); err != nil {
			return err
		}
	}
	return nil
}

// shiftLow shifts the low value for 8 bit. The shifted byte is written into
// the byte writer. The cache value is used to handle overflows.
func (e *rangeEncoder) shiftLow() error {
	if uint32(e.low) < 0xff000000 || (e.low>>32) != 0 {
		tmp := e.cache
		for {
			if err := e.w.WriteByte(tmp + byte(e.low>>32)); err != nil {
				return err
			}
			tmp = 0xff
			e.cacheLen--
			if e.cacheLen <= 0 {
				if e.cacheLen < 0 {
					panic("negative cacheLen")
				}
				break
			}
		}
		e.cache = byte(uint32(e.low) >> 24)
	}
	e.cacheLen++
	e.low = uint64(uint32(e.low) << 8)
	return nil
}

// normalize handles shifts of nrange and low.
func (e *rangeEncoder) normalize() error {
	const top = 1 << 24
	if e.nrange >= top {
		return nil
	}
	e.nrange <<= 8
	return e.shiftLow()
}

// rangeDecoder decodes single bits of the range encoding stream.
type rangeDecoder struct {
	r      io.ByteReader
	nrange uint32
	code   uint32
}

// newRangeDecoder creates a range decoder and initializes it by reading the
// first five bytes of the stream.
func newRangeDecoder(r io.ByteReader) (d *rangeDecoder, err error) {
	d = &rangeDecoder{r: r, nrange: 0xffffffff}
	b, err := d.readByte()
	if err != nil {
		return nil, err
	}
	if b != 0 {
		return nil, dataError("first byte of range-coded stream not zero")
	}
	for i := 0; i < 4; i++ {
		if err = d.updateCode(); err != nil {
			return nil, err
		}
	}
	if d.code >= d.nrange {
		return nil, dataError("range decoder code out of range")
	}
	return d, nil
}

// readByte reads a byte converting io.EOF into io.ErrUnexpectedEOF. The
// range decoder is only asked for bytes while output is still owed, so a
// clean EOF always means the compressed stream has been cut short.
func (d *rangeDecoder) readByte() (byte, error) {
	b, err := d.r.ReadByte()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return b, err
}

// decodeBit decodes a single bit. The bit will be returned at the
// least-significant position. All other bits will be zero. The probability
// value will be updated.
func (d *rangeDecoder) decodeBit(p *prob) (b uint32, err error) {
	bound := p.bound(d.nrange)
	if d.code < bound {
		d.nrange = bound
		p.inc()
		b = 0
	} else {
		d.code -= bound
		d.nrange -= bound
		p.dec()
		b = 1
	}

	// d.code will stay less than d.nrange

	if err = d.normalize(); err != nil {
		return 0, err
	}
	return b, nil
}

// directDecodeBit decodes a bit with probability 1/2.
func (d *rangeDecoder) directDecodeBit() (b uint32, err error) {
	d.nrange >>= 1
	d.code -= d.nrange
	t := 0 - (d.code >> 31)
	d.code += d.nrange & t

	if err = d.normalize(); err != nil {
		return 0, err
	}
	return (t + 1) & 1, nil
}

// updateCode reads a new byte into the code.
func (d *rangeDecoder) updateCode() error {
	b, err := d.readByte()
	if err != nil {
		return err
	}
	d.code = (d.code << 8) | uint32(b)
	return nil
}

// normalize the top value and update the code value.
func (d *rangeDecoder) normalize() error {
	// assume d.code < d.nrange
	const top = 1 << 24
	if d.nrange < top {
		d.nrange <<= 8
		// d.code < d.nrange will be maintained
		if err := d.updateCode(); err != nil {
			return err
		}
	}
	return nil
}
