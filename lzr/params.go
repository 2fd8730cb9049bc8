// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import "fmt"

// MinLevel and MaxLevel bound the supported compression levels.
const (
	MinLevel = 0
	MaxLevel = 9
)

// Params describes the codec configuration derived from a compression
// level. The parameters are part of the container format: the decoder
// derives them from the level byte in the header, so changing the tables
// requires a new format version.
type Params struct {
	// DictCap is the capacity of the sliding window in bytes. Match
	// distances never exceed it.
	DictCap int
	// MinMatch is the smallest match length the encoder may emit.
	MinMatch int
	// Depth limits the number of hash-chain candidates inspected per
	// position.
	Depth int
	// NiceLen stops the candidate search as soon as a match of this
	// length has been found.
	NiceLen int
}

// maxMatchLen caps the match length for every parameter set; all levels
// share the same token geometry.
const maxMatchLen = 273

// MaxMatchLen returns the largest match length representable with the
// parameters.
func (p Params) MaxMatchLen() int {
	n := p.MinMatch + maxLengthOffset
	if n > maxMatchLen {
		n = maxMatchLen
	}
	return n
}

// Verify checks the parameters for consistency.
func (p Params) Verify() error {
	if !(1 <= p.DictCap && p.DictCap <= 1<<30) {
		return fmt.Errorf("lzr: DictCap %d out of range", p.DictCap)
	}
	if p.DictCap&(p.DictCap-1) != 0 {
		return fmt.Errorf("lzr: DictCap %d is no power of two", p.DictCap)
	}
	if !(2 <= p.MinMatch && p.MinMatch <= 3) {
		return fmt.Errorf("lzr: MinMatch %d out of range", p.MinMatch)
	}
	if p.Depth < 1 {
		return fmt.Errorf("lzr: Depth %d out of range", p.Depth)
	}
	if !(p.MinMatch <= p.NiceLen && p.NiceLen <= p.MaxMatchLen()) {
		return fmt.Errorf("lzr: NiceLen %d out of range", p.NiceLen)
	}
	return nil
}

// levelParams maps levels to codec parameters. Lower levels use shallow
// chains for speed, higher levels search deeper and accept two-byte
// matches.
var levelParams = []Params{
	{1 << 18, 3, 4, 8},
	{1 << 20, 3, 8, 16},
	{1 << 21, 3, 8, 24},
	{1 << 22, 3, 16, 32},
	{1 << 22, 2, 16, 32},
	{1 << 23, 2, 32, 64},
	{1 << 23, 2, 32, 128},
	{1 << 24, 2, 64, 160},
	{1 << 25, 2, 128, 273},
	{1 << 26, 2, 256, 273},
}

// ParamsForLevel returns the codec parameters for the given compression
// level.
func ParamsForLevel(level int) (p Params, err error) {
	if !(MinLevel <= level && level <= MaxLevel) {
		return Params{}, fmt.Errorf(
			"lzr: level %d out of range [%d,%d]",
			level, MinLevel, MaxLevel)
	}
	return levelParams[level], nil
}