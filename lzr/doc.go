// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lzr implements the raw cxm codec: LZ77 dictionary matching
// combined with an adaptive binary range coder.
//
// The package converts a byte slice into a range-coded token stream and
// back. It has no knowledge of the container format; the caller provides
// the codec parameters and, for decoding, a destination buffer of the
// uncompressed size. Both directions share the context-selection logic in
// state.go, which keeps the adaptive probability updates of encoder and
// decoder in lockstep.
package lzr
