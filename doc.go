// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cxm implements the cxm container format for lossless byte-stream
// compression. The payload is produced by the LZ77/range-coder codec in
// package lzr; a fixed 18-byte header records the format version, the
// compression level, the uncompressed size and an xxHash32 checksum of the
// original bytes.
//
// Compress and Decompress work on byte slices. Writer and Reader provide
// the usual io surface; note that the Writer buffers its input until Close,
// because the header fields and the arithmetic-coded payload can only be
// produced once the input is complete.
package cxm
