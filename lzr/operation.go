// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import "fmt"

// operation represents a token of the codec: a single literal byte or a
// reference into the window.
type operation interface {
	Len() int
}

// match represents a repetition at the given distance and the given length.
type match struct {
	distance int
	n        int
}

// Len returns the length of the match.
func (m match) Len() int {
	return m.n
}

// String returns a string representation for the match.
func (m match) String() string {
	return fmt.Sprintf("match(%d,%d)", m.distance, m.n)
}

// lit represents a single byte literal.
type lit struct {
	b byte
}

// Len returns 1 for the single byte literal.
func (l lit) Len() int {
	return 1
}

// String returns a string representation for the literal.
func (l lit) String() string {
	return fmt.Sprintf("lit(%02x %c)", l.b, l.b)
}
