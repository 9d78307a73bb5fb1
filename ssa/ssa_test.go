// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ssa

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/sparsessa/ssa/alphabet"
	"github.com/sparsessa/ssa/internal/testutil"
)

// referenceSA sorts every suffix of data the naive way, for use as an oracle
// against Build's output when Sparseness is 1.
func referenceSA(data []byte) []int64 {
	sa := make([]int64, len(data))
	for i := range sa {
		sa[i] = int64(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		a, b := data[sa[i]:], data[sa[j]:]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return sa
}

// referenceSparseSA filters a full reference suffix array down to positions
// divisible by k, which remain in sorted order because the filter does not
// reorder anything.
func referenceSparseSA(data []byte, k int) []int64 {
	full := referenceSA(data)
	var sparse []int64
	for _, pos := range full {
		if pos%int64(k) == 0 {
			sparse = append(sparse, pos)
		}
	}
	if sparse == nil {
		sparse = []int64{}
	}
	return sparse
}

func TestBuildAgainstReference(t *testing.T) {
	tests := map[string]struct {
		input []byte
		k     int
	}{
		"empty":                {input: []byte{}, k: 1},
		"single byte":          {input: []byte("a"), k: 1},
		"banana k1":            {input: []byte("banana"), k: 1},
		"banana k2":            {input: []byte("banana"), k: 2},
		"banana k3":            {input: []byte("banana"), k: 3},
		"repeats k4":           {input: []byte("aaaaaaaaaaaaaaaa"), k: 4},
		"mississippi k2":       {input: []byte("mississippi"), k: 2},
		"abracadabra k5":       {input: []byte("abracadabra"), k: 5},
		"binary alternating":   {input: []byte{0, 1, 0, 1, 0, 1, 0, 1, 0}, k: 2},
		"all distinct bytes":   {input: []byte{10, 20, 30, 40, 50, 60, 70}, k: 3},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Build(tc.input, Config{Sparseness: tc.k, Mode: alphabet.Generic})
			assert.NoError(t, err)
			want := referenceSparseSA(tc.input, tc.k)
			if diff := cmp.Diff(want, got.SA); diff != "" {
				t.Errorf("SA mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildMatchesBuildUnoptimized(t *testing.T) {
	rng := testutil.NewRand(1)
	for trial := 0; trial < 20; trial++ {
		n := rng.Intn(200)
		data := make([]byte, n)
		for i := range data {
			data[i] = byte('a' + rng.Intn(4)) // small alphabet maximizes tie-breaking
		}
		k := 1 + rng.Intn(5)

		fast, err := Build(data, Config{Sparseness: k, Mode: alphabet.Generic})
		assert.NoError(t, err)
		slow, err := BuildUnoptimized(data, Config{Sparseness: k, Mode: alphabet.Generic})
		assert.NoError(t, err)

		assert.Equal(t, slow.SA, fast.SA)
	}
}

func TestBuildRejectsInvalidSparseness(t *testing.T) {
	_, err := Build([]byte("abc"), Config{Sparseness: 0})
	assert.ErrorIs(t, err, ErrInvalidSparseness)

	_, err = Build([]byte("abc"), Config{Sparseness: 33})
	assert.ErrorIs(t, err, ErrInvalidSparseness)
}

func TestLookup(t *testing.T) {
	data := []byte("banana")
	s, err := Build(data, Config{Sparseness: 1, Mode: alphabet.Generic})
	assert.NoError(t, err)

	hits := s.LookupTextOrder([]byte("ana"))
	assert.Equal(t, []int64{1, 3}, hits)

	assert.Empty(t, s.Lookup([]byte("xyz")))
	assert.Equal(t, s.SA, s.Lookup(nil))
}

func TestLookupSparseSkipsUnalignedOccurrences(t *testing.T) {
	// With k=2, only even positions are retained, so a match starting at an
	// odd position is invisible to Lookup even though it occurs in the text.
	data := []byte("xabxab")
	s, err := Build(data, Config{Sparseness: 2, Mode: alphabet.Generic})
	assert.NoError(t, err)

	hits := s.LookupTextOrder([]byte("ab"))
	for _, h := range hits {
		assert.Equal(t, int64(0), h%2)
	}
}

// TestBuildLargeSparsenessUsesWidth32Path exercises the packed-symbol width
// that alphabet.Pack chooses once bits_per_char*k climbs past 16: DNA's
// four bases need bitsFor(5) = 3 bits each, so a sparseness factor of 10
// (required_bits = 30) forces the 32-bit entry point, the one whose
// alphabet size sais.Build32 must derive from the symbols actually
// occurring rather than the theoretical 2^30-wide range.
func TestBuildLargeSparsenessUsesWidth32Path(t *testing.T) {
	rng := testutil.NewRand(3)
	data := make([]byte, 2000)
	bases := []byte{'A', 'C', 'G', 'T'}
	for i := range data {
		data[i] = bases[rng.Intn(4)]
	}

	cfg := Config{Sparseness: 10, Mode: alphabet.DNA}
	pt, err := alphabet.Pack(data, cfg.Sparseness, cfg.Mode)
	assert.NoError(t, err)
	assert.Equal(t, 32, pt.Width)

	fast, err := Build(data, cfg)
	assert.NoError(t, err)
	slow, err := BuildUnoptimized(data, cfg)
	assert.NoError(t, err)
	assert.Equal(t, slow.SA, fast.SA)
}

func TestBuildDNAMode(t *testing.T) {
	data := []byte("ACGTACGTAC")
	s, err := Build(data, Config{Sparseness: 2, Mode: alphabet.DNA})
	assert.NoError(t, err)
	want := referenceSparseSA(data, 2)
	assert.Equal(t, want, s.SA)
}
