// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cxm

import (
	"io"

	"github.com/pkg/errors"
)

// DefaultSizeLimit bounds the uncompressed size a Reader accepts unless the
// caller configures its own limit. It protects against streams declaring an
// absurd size before a single payload byte has been decoded.
const DefaultSizeLimit = 1 << 30

// ReaderConfig holds the parameters for a Reader.
type ReaderConfig struct {
	// SizeLimit is the largest declared uncompressed size that will be
	// decoded. Zero selects DefaultSizeLimit.
	SizeLimit int64
}

// applyDefaults replaces zero values by defaults.
func (cfg *ReaderConfig) applyDefaults() {
	if cfg.SizeLimit == 0 {
		cfg.SizeLimit = DefaultSizeLimit
	}
}

// Verify checks the configuration for errors.
func (cfg *ReaderConfig) Verify() error {
	if cfg.SizeLimit < 0 {
		return errors.New("cxm: SizeLimit must not be negative")
	}
	return nil
}

// Reader decompresses a cxm stream. The header is validated when the
// Reader is created; the payload is decoded and its checksum verified on
// the first Read call, before any byte is handed out.
type Reader struct {
	cfg ReaderConfig
	h   header
	r   io.Reader
	buf []byte
	pos int
	err error
}

// NewReader creates a Reader with the default configuration. It reads and
// validates the container header immediately.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{})
}

// NewReaderConfig creates a Reader with the given configuration.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	cfg.applyDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	p := make([]byte, headerLen)
	n, err := io.ReadFull(r, p)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, TruncationError{
				Pos:      int64(n),
				Declared: -1,
			}
		}
		return nil, errors.Wrap(err, "cxm: read header")
	}
	cr := &Reader{cfg: cfg, r: r}
	if err = cr.h.UnmarshalBinary(p); err != nil {
		return nil, err
	}
	if cr.h.size > cfg.SizeLimit {
		return nil, AllocError{Size: cr.h.size, Limit: cfg.SizeLimit}
	}
	return cr, nil
}

// Size returns the uncompressed size declared in the header.
func (r *Reader) Size() int64 { return r.h.size }

// Level returns the compression level recorded in the header.
func (r *Reader) Level() int { return r.h.level }

// Read reads uncompressed data into p. The first call decodes the whole
// payload; a stream failing checksum verification never returns any data.
func (r *Reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}
	if r.buf == nil {
		payload, err := io.ReadAll(r.r)
		if err != nil {
			r.err = errors.Wrap(err, "cxm: read payload")
			return 0, r.err
		}
		r.buf, err = r.h.decodePayload(payload, r.cfg)
		if err != nil {
			r.err = err
			return 0, r.err
		}
	}
	if r.pos >= len(r.buf) {
		r.err = io.EOF
		return 0, io.EOF
	}
	n = copy(p, r.buf[r.pos:])
	r.pos += n
	return n, nil
}
