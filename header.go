// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cxm

import "fmt"

// headerMagic marks the start of every cxm stream.
var headerMagic = []byte{0xcf, 'C', 'X', 'M'}

// headerVersion is the container format version this package reads and
// writes. The version pins down the codec parameter tables in package lzr.
const headerVersion = 1

// headerLen is the size of the marshalled container header:
// magic[4] version[1] level[1] uncompressed size[8] checksum[4].
const headerLen = 18

// header describes the container header preceding the range-coded payload.
// All multi-byte fields are little-endian.
type header struct {
	version byte
	level   int
	size    int64
	cksum   uint32
}

// uint32LE reads an uint32 integer from a byte slice.
func uint32LE(b []byte) uint32 {
	x := uint32(b[3]) << 24
	x |= uint32(b[2]) << 16
	x |= uint32(b[1]) << 8
	x |= uint32(b[0])
	return x
}

// uint64LE converts the uint64 value stored as little endian to an uint64
// value.
func uint64LE(b []byte) uint64 {
	x := uint64(b[7]) << 56
	x |= uint64(b[6]) << 48
	x |= uint64(b[5]) << 40
	x |= uint64(b[4]) << 32
	x |= uint64(b[3]) << 24
	x |= uint64(b[2]) << 16
	x |= uint64(b[1]) << 8
	x |= uint64(b[0])
	return x
}

// putUint32LE puts an uint32 integer into a byte slice that must have at
// least a length of 4 bytes.
func putUint32LE(b []byte, x uint32) {
	b[0] = byte(x)
	b[1] = byte(x >> 8)
	b[2] = byte(x >> 16)
	b[3] = byte(x >> 24)
}

// putUint64LE puts the uint64 value into the byte slice as little endian
// value. The byte slice b must have at least place for 8 bytes.
func putUint64LE(b []byte, x uint64) {
	b[0] = byte(x)
	b[1] = byte(x >> 8)
	b[2] = byte(x >> 16)
	b[3] = byte(x >> 24)
	b[4] = byte(x >> 32)
	b[5] = byte(x >> 40)
	b[6] = byte(x >> 48)
	b[7] = byte(x >> 56)
}

// MarshalBinary encodes the header into its fixed 18-byte representation.
func (h *header) MarshalBinary() (data []byte, err error) {
	if h.size < 0 {
		return nil, fmt.Errorf("cxm: header size %d is negative", h.size)
	}
	if !(MinLevel <= h.level && h.level <= MaxLevel) {
		return nil, LevelError{Level: h.level}
	}
	data = make([]byte, headerLen)
	copy(data, headerMagic)
	data[4] = h.version
	data[5] = byte(h.level)
	putUint64LE(data[6:], uint64(h.size))
	putUint32LE(data[14:], h.cksum)
	return data, nil
}

// UnmarshalBinary decodes and validates a header. Unknown magic bytes,
// versions or level values yield a FormatError.
func (h *header) UnmarshalBinary(data []byte) error {
	if len(data) != headerLen {
		return fmt.Errorf("cxm: header buffer has wrong length %d",
			len(data))
	}
	for i, c := range headerMagic {
		if data[i] != c {
			return FormatError{Msg: "no cxm header magic"}
		}
	}
	if data[4] != headerVersion {
		return FormatError{Msg: fmt.Sprintf(
			"unsupported format version %d", data[4])}
	}
	if data[5] > MaxLevel {
		return FormatError{Msg: fmt.Sprintf(
			"level byte %d out of range", data[5])}
	}
	size := uint64LE(data[6:])
	if size > 1<<63-1 {
		return FormatError{Msg: "declared size out of range"}
	}
	h.version = data[4]
	h.level = int(data[5])
	h.size = int64(size)
	h.cksum = uint32LE(data[14:])
	return nil
}
