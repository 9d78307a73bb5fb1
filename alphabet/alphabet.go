// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package alphabet implements the order-preserving byte-to-rank compactor
// and k-gram packer (spec component C1): it maps the occurring bytes of a
// sequence to a dense, ascending rank space and packs runs of k ranks into
// one 8/16/32-bit machine word without disturbing lexicographic order.
//
// Rank 0 is always reserved for the sentinel: occurring bytes are assigned
// ranks starting at 1, in ascending byte order, never at 0. This is a
// deliberate departure from assigning the lexicographically smallest
// occurring byte rank 0 directly -- doing that lets an in-band byte collide
// with the sentinel whenever that byte also happens to be the smallest one
// present (a protein sequence using '$' as a padding character is the
// textbook case). Reserving rank 0 exclusively for the sentinel, and for the
// zero-padding used past the end of the input when packing the final
// k-gram, keeps the sentinel strictly smaller than every real symbol no
// matter what bytes occur.
package alphabet


// Mode selects how bytes are folded before ranking.
type Mode int

const (
	// Generic ranks occurring bytes as-is, in ascending byte order.
	Generic Mode = iota

	// DNA expects a four-symbol nucleotide alphabet (A, C, G, T) and
	// always ranks all four bases, whichever of them actually occur, so
	// that alphabets built from different reads of similar DNA remain
	// comparable: an input made only of A, C, G and T always gets ranks 1
	// to 4. Bytes outside {A, C, G, T} are ranked together with the bases
	// in ascending byte order, so such a byte that sorts below T (e.g. '$'
	// or 'N') shifts the ranks of the bases above it.
	DNA

	// Protein folds L (Leucine) to I (Isoleucine) before ranking, the
	// conventional isobaric collapse used when comparing mass-spectrometry
	// derived sequences where the two residues cannot be distinguished.
	Protein
)

var dnaBases = [4]byte{'A', 'C', 'G', 'T'}

// fold maps b to its ranking representative under mode.
func fold(b byte, mode Mode) byte {
	if mode == Protein && b == 'L' {
		return 'I'
	}
	return b
}

// RankTable is an order-preserving map from occurring bytes to a dense rank
// space with rank 0 reserved for the sentinel.
type RankTable struct {
	ranks   [256]int32 // rank of byte b; 0 if b does not occur
	present [256]bool
	// K is the number of distinct occurring byte classes, not counting the
	// sentinel. Real symbols occupy ranks [1, K]; the sentinel occupies 0.
	K int
	// BitsPerChar is ceil(log2(K+1)), the number of bits needed to hold any
	// rank in [0, K] inclusive.
	BitsPerChar int
}

// BuildRankTable scans data and assigns ranks to its occurring byte classes
// under mode. Two bytes that fold to the same representative (e.g. L and I
// under Protein) share a rank.
func BuildRankTable(data []byte, mode Mode) *RankTable {
	var seen [256]bool
	for _, b := range data {
		seen[fold(b, mode)] = true
	}
	if mode == DNA {
		for _, b := range dnaBases {
			seen[b] = true
		}
	}

	// Iterating b in ascending order already yields classes in ascending
	// order, so no separate sort step is needed.
	var classes []byte
	for b := 0; b < 256; b++ {
		if seen[b] {
			classes = append(classes, byte(b))
		}
	}

	rt := &RankTable{K: len(classes)}
	for i, b := range classes {
		rt.ranks[b] = int32(i + 1)
		rt.present[b] = true
	}
	rt.BitsPerChar = bitsFor(rt.K + 1)
	return rt
}

// Rank reports the rank of b, after folding under mode, and whether b (or
// its fold) occurs in the table.
func (rt *RankTable) Rank(b byte, mode Mode) (int32, bool) {
	b = fold(b, mode)
	return rt.ranks[b], rt.present[b]
}

func bitsFor(n int) int {
	bits := 0
	for v := n - 1; v > 0; v >>= 1 {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	return bits
}
