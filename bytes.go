// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cxm

import (
	"bytes"
	"io"

	"github.com/cxminify/cxm/lzr"
	"github.com/pierrec/xxHash/xxHash32"
	"github.com/pkg/errors"
)

// MinLevel and MaxLevel bound the supported compression levels. Higher
// levels use a larger window and a more exhaustive match search.
const (
	MinLevel = lzr.MinLevel
	MaxLevel = lzr.MaxLevel
)

// DefaultLevel is the level used when the caller doesn't request one. It
// mirrors the original tool, which favored ratio over speed.
const DefaultLevel = 9

// cksumSeed is the xxHash32 seed for the header checksum.
const cksumSeed = 0

// Compress compresses data at the given level and returns the complete cxm
// stream, header included. It fails with a LevelError if level is outside
// [MinLevel,MaxLevel].
func Compress(data []byte, level int) ([]byte, error) {
	if !(MinLevel <= level && level <= MaxLevel) {
		return nil, LevelError{Level: level}
	}
	p, err := lzr.ParamsForLevel(level)
	if err != nil {
		return nil, err
	}
	h := header{
		version: headerVersion,
		level:   level,
		size:    int64(len(data)),
		cksum:   xxHash32.Checksum(data, cksumSeed),
	}
	hdata, err := h.MarshalBinary()
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(make([]byte, 0, headerLen+len(data)/2+16))
	buf.Write(hdata)
	if err = lzr.Compress(buf, data, p); err != nil {
		return nil, errors.Wrap(err, "cxm: compress")
	}
	return buf.Bytes(), nil
}

// Decompress reconstructs the original bytes from a cxm stream using the
// default size limit. See DecompressConfig for the error conditions.
func Decompress(data []byte) ([]byte, error) {
	return DecompressConfig(data, ReaderConfig{})
}

// DecompressConfig reconstructs the original bytes from a cxm stream. It
// fails with a FormatError if the header cannot be recognized, a
// TruncationError if data ends before the declared uncompressed size has
// been reached, an IntegrityError if the payload is corrupt or the checksum
// of the reconstructed bytes doesn't match and an AllocError if the
// declared size exceeds the configured limit.
func DecompressConfig(data []byte, cfg ReaderConfig) ([]byte, error) {
	cfg.applyDefaults()
	if len(data) < headerLen {
		return nil, TruncationError{
			Pos:      int64(len(data)),
			Declared: -1,
		}
	}
	var h header
	if err := h.UnmarshalBinary(data[:headerLen]); err != nil {
		return nil, err
	}
	return h.decodePayload(data[headerLen:], cfg)
}

// decodePayload decompresses the payload following the header and verifies
// the checksum.
func (h *header) decodePayload(payload []byte, cfg ReaderConfig) ([]byte, error) {
	if h.size > cfg.SizeLimit {
		return nil, AllocError{Size: h.size, Limit: cfg.SizeLimit}
	}
	p, err := lzr.ParamsForLevel(h.level)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, h.size)
	n, err := lzr.Decompress(bytes.NewReader(payload), dst, p)
	if err != nil {
		var derr *lzr.DataError
		switch {
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, TruncationError{
				Pos:      int64(len(payload)),
				Declared: h.size,
				Decoded:  int64(n),
			}
		case errors.As(err, &derr):
			return nil, IntegrityError{
				Pos: derr.Pos,
				Msg: derr.Msg,
			}
		}
		return nil, errors.Wrap(err, "cxm: decompress")
	}
	if got := xxHash32.Checksum(dst, cksumSeed); got != h.cksum {
		return nil, IntegrityError{Pos: -1, Want: h.cksum, Got: got}
	}
	return dst, nil
}
