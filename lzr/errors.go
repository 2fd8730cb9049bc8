// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import "fmt"

// DataError indicates that the token stream is corrupt. It is distinct from
// io.ErrUnexpectedEOF, which reports that the compressed stream ended while
// output was still owed.
type DataError struct {
	// Pos is the position in the uncompressed output at which the
	// corruption has been detected. A negative value means the position
	// is unknown.
	Pos int64
	Msg string
}

func (e *DataError) Error() string {
	if e.Pos < 0 {
		return "lzr: " + e.Msg
	}
	return fmt.Sprintf("lzr: %s at position %d", e.Msg, e.Pos)
}

// dataError creates a DataError without position information.
func dataError(msg string) error {
	return &DataError{Pos: -1, Msg: msg}
}