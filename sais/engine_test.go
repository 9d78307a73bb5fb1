// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCountsAndBuckets(t *testing.T) {
	text := []int64{2, 0, 1, 2, 0, 1, 2}
	k := int64(3)
	C := make([]int64, k)
	getCounts(text, C, int64(len(text)), k)
	assert.Equal(t, []int64{2, 2, 3}, C)

	starts := make([]int64, k)
	getBuckets(C, starts, k, false)
	assert.Equal(t, []int64{0, 2, 4}, starts)

	ends := make([]int64, k)
	getBuckets(C, ends, k, true)
	assert.Equal(t, []int64{2, 4, 7}, ends)
}

// TestComputeSARecursesOnRepeatedAlphabet exercises the recursive dispatcher
// (C7): a long enough run of a small repeating pattern forces LMS-substring
// name collisions, which in turn forces computeSA to recurse on the reduced
// problem rather than resolve it directly.
func TestComputeSARecursesOnRepeatedAlphabet(t *testing.T) {
	text, k := encodeString("abcabcabcabcabcabcabcabcabc")
	got, err := Build8(text, k)
	assert.NoError(t, err)
	assert.Equal(t, referenceSA(widenUint(text)), got)
}
