// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackWidthSelection(t *testing.T) {
	tests := map[string]struct {
		input     []byte
		k         int
		mode      Mode
		wantWidth int
	}{
		"DNA k=2 fits in 8 bits": {
			input:     []byte("ACGTACGTAC"),
			k:         2,
			mode:      DNA,
			wantWidth: 8,
		},
		"DNA k=4 still fits in 16 bits": {
			input:     []byte("ACGTACGTACGTACGT"),
			k:         4,
			mode:      DNA,
			wantWidth: 16,
		},
		"small alphabet k=1 fits in 8 bits": {
			input:     []byte("banana"),
			k:         1,
			mode:      Generic,
			wantWidth: 8,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			pt, err := Pack(tc.input, tc.k, tc.mode)
			assert.NoError(t, err)
			assert.Equal(t, tc.wantWidth, pt.Width)
		})
	}
}

func TestPackAlphabetTooLarge(t *testing.T) {
	// 256 distinct byte values need 9 bits per char (ceil(log2(257))); with
	// k=4 that is 36 bits, past the 32-bit ceiling.
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}
	_, err := Pack(input, 4, Generic)
	assert.ErrorIs(t, err, ErrAlphabetTooLarge)
}

func TestPackInvalidSparseness(t *testing.T) {
	_, err := Pack([]byte("abc"), 0, Generic)
	assert.ErrorIs(t, err, ErrInvalidSparseness)

	_, err = Pack([]byte("abc"), 33, Generic)
	assert.ErrorIs(t, err, ErrInvalidSparseness)
}

func TestPackTrailingWindowPadsWithSentinel(t *testing.T) {
	// "banana" with k=4 leaves a 2-byte trailing window ("na") padded with
	// two rank-0 sentinel slots; the packed symbol must therefore be smaller
	// than it would be if those slots held any real rank.
	pt, err := Pack([]byte("banana"), 4, Generic)
	assert.NoError(t, err)
	assert.Equal(t, 2, pt.NumWindows)

	rt := pt.Ranks
	rn, _ := rt.Rank('n', Generic)
	ra, _ := rt.Rank('a', Generic)
	bits := rt.BitsPerChar
	want := uint32(rn)<<uint(bits*3) | uint32(ra)<<uint(bits*2)
	assert.Equal(t, want, uint32(pt.U8[1]))
}

func TestPackEmptyInput(t *testing.T) {
	pt, err := Pack(nil, 1, Generic)
	assert.NoError(t, err)
	assert.Equal(t, 0, pt.NumWindows)
	assert.Len(t, pt.U8, 1) // just the trailing sentinel
	assert.Equal(t, uint8(0), pt.U8[0])
}

func TestPackOrderPreservation(t *testing.T) {
	// Packing must not change relative order among non-overlapping k-gram
	// windows: "ab" before "ac" before "ba" under any fixed k and alphabet.
	pt, err := Pack([]byte("abacba"), 2, Generic)
	assert.NoError(t, err)
	assert.Equal(t, 3, pt.NumWindows)
	assert.True(t, pt.U8[0] < pt.U8[1], "\"ab\" should pack smaller than \"ac\"")
	assert.True(t, pt.U8[1] < pt.U8[2], "\"ac\" should pack smaller than \"ba\"")
}

func TestPackTrailingSentinelStrictlySmallest(t *testing.T) {
	pt, err := Pack([]byte("banana"), 1, Generic)
	assert.NoError(t, err)
	for i := 0; i < pt.NumWindows; i++ {
		assert.True(t, pt.U8[pt.NumWindows] < pt.U8[i], "sentinel must be strictly smaller than every window symbol")
	}
}
