// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package alphabet

// PackedText is the reduced-alphabet string produced by compacting an input
// sequence into non-overlapping k-grams. Symbol i (for i < NumWindows) holds
// the packed ranks of the original bytes at positions [i*k, i*k+k), with any
// position at or past len(data) contributing a rank-0 placeholder. A true
// sentinel symbol -- value 0, guaranteed strictly smaller than every window
// symbol since a window's first rank is never 0 -- is appended as one extra
// entry past the windows, because the sais engine requires its input to end
// with such a marker to keep every suffix comparison well-defined.
type PackedText struct {
	Ranks *RankTable
	K     int // sparseness factor: bytes per packed symbol
	// Width is the chosen machine word size in bits: 8, 16, or 32.
	Width int
	// NumWindows is the number of non-overlapping k-byte windows,
	// ceil(len(data)/K). The packed arrays below hold NumWindows+1 entries:
	// one per window, plus the trailing sentinel.
	NumWindows int

	U8  []uint8
	U16 []uint16
	U32 []uint32
}

// Pack compacts data into non-overlapping k-gram symbols under mode,
// choosing the narrowest of the 8/16/32-bit packed widths that can hold
// bits_per_char*k bits. It returns ErrAlphabetTooLarge if even the 32-bit
// width cannot, and ErrInvalidSparseness if k is out of range.
func Pack(data []byte, k int, mode Mode) (*PackedText, error) {
	if k < 1 || k > 32 {
		return nil, ErrInvalidSparseness
	}
	rt := BuildRankTable(data, mode)
	required := rt.BitsPerChar * k
	width, err := chooseWidth(required)
	if err != nil {
		return nil, err
	}

	n0 := len(data)
	numWindows := (n0 + k - 1) / k // 0 for empty data: no real windows at all
	total := numWindows + 1        // + trailing sentinel

	pt := &PackedText{Ranks: rt, K: k, Width: width, NumWindows: numWindows}
	switch width {
	case 8:
		pt.U8 = make([]uint8, total)
	case 16:
		pt.U16 = make([]uint16, total)
	case 32:
		pt.U32 = make([]uint32, total)
	}

	for i := 0; i < numWindows; i++ {
		var sym uint32
		base := i * k
		for j := 0; j < k; j++ {
			var rank int32
			if pos := base + j; pos < n0 {
				rank, _ = rt.Rank(data[pos], mode)
			}
			sym |= uint32(rank) << uint(rt.BitsPerChar*(k-1-j))
		}
		switch width {
		case 8:
			pt.U8[i] = uint8(sym)
		case 16:
			pt.U16[i] = uint16(sym)
		case 32:
			pt.U32[i] = sym
		}
	}
	// Trailing entries are already zero-valued from make; that zero is the
	// sentinel.
	return pt, nil
}

func chooseWidth(requiredBits int) (int, error) {
	switch {
	case requiredBits <= 8:
		return 8, nil
	case requiredBits <= 16:
		return 16, nil
	case requiredBits <= 32:
		return 32, nil
	default:
		return 0, ErrAlphabetTooLarge
	}
}

// AlphabetSize returns the theoretical packed alphabet size k (the sais
// package's parameter name, distinct from PackedText.K the sparseness
// factor): the number of distinct symbol values a packed stream of this
// width and BitsPerChar *could* take on, one more than the largest value
// any position can encode. For Width 8 and 16 this is small enough to size
// a dense bucket array directly from, which is exactly what sais.Build8/
// Build16 do. It is deliberately not used for Width 32: there the
// theoretical range can be billions wide even when only a handful of
// distinct k-grams actually occur, so sais.Build32 instead derives its own
// alphabet size from the symbols observed in the packed stream.
func (pt *PackedText) AlphabetSize() int64 {
	return int64(1) << uint(pt.Ranks.BitsPerChar*pt.K)
}
