// Copyright 2026 The cxm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzr

import (
	"math/bits"
)

/* For compression we need to find byte sequences that match the byte
 * sequence at the current position. We implement chained hashing: a head
 * table maps the hash of the next four bytes to the most recent position
 * with the same hash, and a chain table links each position to the previous
 * one sharing its hash slot. */

// hashWordLen is the number of bytes folded into the hash.
const hashWordLen = 4

// prime32 is the multiplier of the multiplicative hash.
const prime32 = 2654435761

// The minimum is somehow arbitrary but the maximum is limited by the memory
// requirements of the head table.
const (
	minTableExponent = 9
	maxTableExponent = 18
)

// smallDists is the number of small distances probed on every search
// regardless of the hash chain. Short matches are only reachable this way
// because the hash covers four bytes.
const smallDists = 8

// tableExponent derives the head table exponent from the window capacity.
func tableExponent(n uint32) int {
	e := 30 - bits.LeadingZeros32(n)
	switch {
	case e < minTableExponent:
		e = minTableExponent
	case e > maxTableExponent:
		e = maxTableExponent
	}
	return e
}

// matchFinder searches the window for the longest match of the bytes at the
// current position. Positions are stored incremented by one so the zero
// value of the tables means empty.
type matchFinder struct {
	src []byte
	// head maps a hash to the latest position with that hash
	head []int32
	// chain links a position to the previous position with the same hash
	chain []int32
	// mask for indexing the chain table
	chainMask int
	// shift of the multiplicative hash
	shift uint
	// window capacity; upper bound for distances
	dictCap  int
	minMatch int
	niceLen  int
	depth    int
	maxMatch int
}

// newMatchFinder creates a match finder for the given source buffer and
// parameters. The chain table covers the window or the whole source,
// whichever is smaller.
func newMatchFinder(src []byte, p Params) *matchFinder {
	chainLen := p.DictCap
	for chainLen > 1<<12 && chainLen>>1 >= len(src) {
		chainLen >>= 1
	}
	e := tableExponent(uint32(p.DictCap))
	return &matchFinder{
		src:       src,
		head:      make([]int32, 1<<uint(e)),
		chain:     make([]int32, chainLen),
		chainMask: chainLen - 1,
		shift:     32 - uint(e),
		dictCap:   p.DictCap,
		minMatch:  p.MinMatch,
		niceLen:   p.NiceLen,
		depth:     p.Depth,
		maxMatch:  p.MaxMatchLen(),
	}
}

// hash computes the hash of the four bytes starting at pos. The caller must
// guarantee that pos+4 doesn't exceed the source buffer.
func (f *matchFinder) hash(pos int) uint32 {
	src := f.src[pos : pos+hashWordLen : pos+hashWordLen]
	x := uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 |
		uint32(src[3])<<24
	return (x * prime32) >> f.shift
}

// insert puts the position into the hash chain. Positions too close to the
// end of the buffer cannot be hashed and are ignored.
func (f *matchFinder) insert(pos int) {
	if pos+hashWordLen > len(f.src) {
		return
	}
	h := f.hash(pos)
	f.chain[pos&f.chainMask] = f.head[h]
	f.head[h] = int32(pos + 1)
}

// matchLen computes the length of the common prefix of the byte sequences
// starting at a and pos. The match may extend past pos into bytes that a
// self-overlapping copy would produce.
func (f *matchFinder) matchLen(a, pos, max int) int {
	src := f.src
	n := 0
	for n < max && src[a+n] == src[pos+n] {
		n++
	}
	return n
}

// findMatch returns the best match for the current position or a zero
// length if no qualifying match exists. Among matches of equal length the
// smallest distance wins, because smaller distances cost fewer bits.
func (f *matchFinder) findMatch(pos int) (dist, n int) {
	src := f.src
	max := len(src) - pos
	if max > f.maxMatch {
		max = f.maxMatch
	}
	if max < f.minMatch {
		return 0, 0
	}

	// Small distances first. Iterating upwards keeps the smallest
	// distance for equal lengths.
	for d := 1; d <= smallDists && d <= pos; d++ {
		if src[pos-d] != src[pos] {
			continue
		}
		k := f.matchLen(pos-d, pos, max)
		if k > n {
			dist, n = d, k
			if n >= f.niceLen {
				return dist, f.accept(dist, n)
			}
		}
	}

	if pos+hashWordLen <= len(src) {
		limit := pos - f.dictCap
		if winLimit := pos - len(f.chain); winLimit > limit {
			limit = winLimit
		}
		if limit < 0 {
			limit = 0
		}
		cand := int(f.head[f.hash(pos)]) - 1
		for depth := f.depth; depth > 0 && cand >= limit; depth-- {
			d := pos - cand
			if d > smallDists {
				k := f.matchLen(cand, pos, max)
				if k > n {
					dist, n = d, k
					if n >= f.niceLen {
						break
					}
				}
			}
			next := int(f.chain[cand&f.chainMask]) - 1
			if next >= cand {
				// stale chain entry from an overwritten slot
				break
			}
			cand = next
		}
	}

	return dist, f.accept(dist, n)
}

// accept applies the cost heuristic: very short matches are only worthwhile
// at small distances, otherwise coding the distance eats the gain.
func (f *matchFinder) accept(dist, n int) int {
	switch {
	case n < f.minMatch:
		return 0
	case n == 2 && dist > 1<<9:
		return 0
	case n == 3 && dist > 1<<15:
		return 0
	case n == 4 && dist > 1<<21:
		return 0
	}
	return n
}
