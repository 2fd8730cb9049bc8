// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cxm

import "fmt"

// LevelError indicates that a compression level outside the supported range
// has been requested. The configuration is rejected before any work starts.
type LevelError struct {
	Level int
}

func (e LevelError) Error() string {
	return fmt.Sprintf("cxm: compression level %d out of range [%d,%d]",
		e.Level, MinLevel, MaxLevel)
}

// FormatError indicates that the container header cannot be recognized. The
// input is either no cxm stream at all or uses an unsupported format
// version.
type FormatError struct {
	Msg string
}

func (e FormatError) Error() string {
	return "cxm: " + e.Msg
}

// IntegrityError indicates corrupt compressed data. Either the checksum of
// the reconstructed bytes doesn't match the header or the token stream
// itself is inconsistent. Pos gives the position in the uncompressed output
// at which the corruption surfaced; it is negative for a checksum mismatch
// detected after full reconstruction.
type IntegrityError struct {
	Pos  int64
	Want uint32
	Got  uint32
	Msg  string
}

func (e IntegrityError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("cxm: corrupt data: %s", e.Msg)
	}
	return fmt.Sprintf("cxm: checksum mismatch: want %#08x, got %#08x",
		e.Want, e.Got)
}

// TruncationError indicates that the compressed input ended before the
// declared uncompressed length was reached.
type TruncationError struct {
	// Pos is the number of compressed input bytes available.
	Pos int64
	// Declared is the uncompressed size announced in the header; it is
	// negative if the input broke off inside the header.
	Declared int64
	// Decoded is the number of bytes reconstructed before the input
	// ended.
	Decoded int64
}

func (e TruncationError) Error() string {
	if e.Declared < 0 {
		return fmt.Sprintf(
			"cxm: input truncated inside header after %d bytes",
			e.Pos)
	}
	return fmt.Sprintf(
		"cxm: input truncated: %d of %d declared bytes decoded",
		e.Decoded, e.Declared)
}

// AllocError indicates that decoding would require a buffer larger than the
// configured size limit.
type AllocError struct {
	Size  int64
	Limit int64
}

func (e AllocError) Error() string {
	return fmt.Sprintf(
		"cxm: declared size %d exceeds the size limit %d",
		e.Size, e.Limit)
}