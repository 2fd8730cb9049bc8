// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cxm

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// errClosed indicates that the Writer has already been closed.
var errClosed = errors.New("cxm: writer already closed")

// Writer compresses data into a cxm stream. Since the header carries the
// uncompressed size and the checksum, and a range coder cannot flush
// mid-stream, all input is buffered and the stream is produced by Close. A
// Writer must be closed.
type Writer struct {
	w      io.Writer
	level  int
	buf    bytes.Buffer
	closed bool
}

// NewWriter creates a Writer compressing at DefaultLevel.
func NewWriter(w io.Writer) *Writer {
	cw, err := NewWriterLevel(w, DefaultLevel)
	if err != nil {
		panic(err)
	}
	return cw
}

// NewWriterLevel creates a Writer for the given compression level. It fails
// with a LevelError if level is outside [MinLevel,MaxLevel].
func NewWriterLevel(w io.Writer, level int) (*Writer, error) {
	if !(MinLevel <= level && level <= MaxLevel) {
		return nil, LevelError{Level: level}
	}
	return &Writer{w: w, level: level}, nil
}

// Level returns the compression level of the Writer.
func (w *Writer) Level() int { return w.level }

// Write buffers p for compression at Close.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.closed {
		return 0, errClosed
	}
	return w.buf.Write(p)
}

// Close compresses the buffered data and writes the complete stream into
// the underlying writer.
func (w *Writer) Close() error {
	if w.closed {
		return errClosed
	}
	w.closed = true
	data, err := Compress(w.buf.Bytes(), w.level)
	if err != nil {
		return err
	}
	if _, err = w.w.Write(data); err != nil {
		return errors.Wrap(err, "cxm: write stream")
	}
	return nil
}
