// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRankTable(t *testing.T) {
	tests := map[string]struct {
		input []byte
		mode  Mode
		wantK int
	}{
		"empty": {
			input: []byte{},
			mode:  Generic,
			wantK: 0,
		},
		"single byte": {
			input: []byte("aaaa"),
			mode:  Generic,
			wantK: 1,
		},
		"banana": {
			input: []byte("banana"),
			mode:  Generic,
			wantK: 3,
		},
		"protein folds L to I": {
			input: []byte("LIVE"),
			mode:  Protein,
			wantK: 3, // {L,I}->I, V, E
		},
		"DNA forces four bases even if unseen": {
			input: []byte("AAAA"),
			mode:  DNA,
			wantK: 4,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rt := BuildRankTable(tc.input, tc.mode)
			assert.Equal(t, tc.wantK, rt.K)
		})
	}
}

func TestRankTableOrderPreserving(t *testing.T) {
	rt := BuildRankTable([]byte("banana"), Generic)
	ra, _ := rt.Rank('a', Generic)
	rb, _ := rt.Rank('b', Generic)
	rn, _ := rt.Rank('n', Generic)
	assert.Less(t, int32(0), ra, "rank 0 is reserved for the sentinel")
	assert.Less(t, ra, rb)
	assert.Less(t, rb, rn)
}

func TestRankTableProteinFold(t *testing.T) {
	rt := BuildRankTable([]byte("LIVE"), Protein)
	rl, okL := rt.Rank('L', Protein)
	ri, okI := rt.Rank('I', Protein)
	assert.True(t, okL)
	assert.True(t, okI)
	assert.Equal(t, ri, rl, "L and I must fold to the same rank")
}

func TestRankTableAbsentByte(t *testing.T) {
	rt := BuildRankTable([]byte("aaa"), Generic)
	_, ok := rt.Rank('z', Generic)
	assert.False(t, ok)
}

func TestBitsFor(t *testing.T) {
	tests := map[string]struct {
		n    int
		want int
	}{
		"one value needs one bit":     {n: 1, want: 1},
		"two values need one bit":     {n: 2, want: 1},
		"three values need two bits":  {n: 3, want: 2},
		"four values need two bits":   {n: 4, want: 2},
		"five values need three bits": {n: 5, want: 3},
		"256 values need eight bits":  {n: 256, want: 8},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, bitsFor(tc.n))
		})
	}
}
