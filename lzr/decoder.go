// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import "io"

// Decompress reads a range-coded token stream from r and fills dst
// completely. It returns the number of bytes reconstructed. The stream must
// have been produced with the same parameters.
//
// If r is exhausted before dst has been filled, the error is
// io.ErrUnexpectedEOF. A *DataError reports a corrupt token stream.
func Decompress(r io.Reader, dst []byte, p Params) (n int, err error) {
	if err = p.Verify(); err != nil {
		return 0, err
	}
	if len(dst) == 0 {
		return 0, nil
	}
	d, err := newRangeDecoder(byteReader(r))
	if err != nil {
		return 0, err
	}
	var st state
	st.init()

	for n < len(dst) {
		b, err := d.decodeBit(&st.isMatch[st.opState])
		if err != nil {
			return n, err
		}
		if b == 0 {
			var prev byte
			if n > 0 {
				prev = dst[n-1]
			}
			c, err := st.litCodec.Decode(d, litState(prev))
			if err != nil {
				return n, err
			}
			dst[n] = c
			n++
			st.updateLiteral()
			continue
		}
		l, err := st.lenCodec.Decode(d)
		if err != nil {
			return n, err
		}
		u, err := st.distCodec.Decode(d, l)
		if err != nil {
			return n, err
		}
		dist := int(u) + 1
		k := int(l) + p.MinMatch
		switch {
		case dist > n || dist > p.DictCap:
			return n, &DataError{Pos: int64(n),
				Msg: "match distance exceeds window"}
		case k > len(dst)-n:
			return n, &DataError{Pos: int64(n),
				Msg: "match length exceeds declared size"}
		}
		// The copy must run byte by byte; matches may overlap their
		// own output.
		for i := 0; i < k; i++ {
			dst[n] = dst[n-dist]
			n++
		}
		st.updateMatch()
	}
	return n, nil
}
