// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ssa

import (
	"github.com/sparsessa/ssa/alphabet"
	"github.com/sparsessa/ssa/sais"
)

// Build constructs the sparse suffix array of data under cfg. It compacts
// data into non-overlapping k-grams (alphabet.Pack), runs the SA-IS engine
// over that reduced string, and maps the resulting order back onto original
// byte offsets by multiplying each reduced-string index by Sparseness.
//
// This works because comparing two reduced symbols is equivalent to
// comparing the k raw bytes they were packed from (alphabet.Pack is order
// preserving), and comparing a sequence of reduced symbols in turn is
// equivalent to comparing the underlying byte runs in turn -- so the sorted
// order of suffixes of the reduced string, restricted to full k-byte
// windows, is exactly the sorted order of the original suffixes that start
// on a k-boundary.
func Build(data []byte, cfg Config) (*SSA, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	pt, err := alphabet.Pack(data, cfg.Sparseness, cfg.Mode)
	if err != nil {
		return nil, err
	}

	var reduced []int64
	switch pt.Width {
	case 8:
		reduced, err = sais.Build8(pt.U8, int(pt.AlphabetSize()))
	case 16:
		reduced, err = sais.Build16(pt.U16, int(pt.AlphabetSize()))
	case 32:
		reduced, err = sais.Build32(pt.U32)
	}
	if err != nil {
		return nil, err
	}

	sa := make([]int64, 0, pt.NumWindows)
	for _, pos := range reduced {
		if pos == int64(pt.NumWindows) {
			continue // the trailing sentinel window has no real counterpart
		}
		sa = append(sa, pos*int64(cfg.Sparseness))
	}
	return &SSA{Data: data, Sparseness: cfg.Sparseness, SA: sa}, nil
}

// BuildUnoptimized is the reference construction path: it builds the full,
// unreduced suffix array of data (one entry per byte position, with no
// k-gram compaction) and then discards every entry that does not land on a
// Sparseness boundary. It does strictly more work than Build for the same
// result, but it exercises a different code path through the sais engine,
// which is useful for validating Build's output and as a baseline in
// benchmarks.
func BuildUnoptimized(data []byte, cfg Config) (*SSA, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	rt := alphabet.BuildRankTable(data, cfg.Mode)
	n0 := len(data)
	text := make([]uint16, n0+1)
	for i, b := range data {
		r, _ := rt.Rank(b, cfg.Mode)
		text[i] = uint16(r)
	}
	text[n0] = 0 // sentinel: rank 0 is always reserved and strictly smallest

	full, err := sais.Build16(text, rt.K+1)
	if err != nil {
		return nil, err
	}

	sa := make([]int64, 0, n0/cfg.Sparseness+1)
	for _, pos := range full {
		if pos == int64(n0) {
			continue // the virtual sentinel suffix has no real counterpart
		}
		if pos%int64(cfg.Sparseness) == 0 {
			sa = append(sa, pos)
		}
	}
	return &SSA{Data: data, Sparseness: cfg.Sparseness, SA: sa}, nil
}
