// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ssa

import "sort"

// comparePrefix compares a suffix against a prefix: negative if suf sorts
// before prefix, 0 if suf starts with prefix (or equals it exactly when
// len(suf) <= len(prefix)), positive if suf sorts after.
func comparePrefix(suf, prefix []byte) int {
	n := len(suf)
	if n > len(prefix) {
		n = len(prefix)
	}
	for i := 0; i < n; i++ {
		if suf[i] < prefix[i] {
			return -1
		}
		if suf[i] > prefix[i] {
			return 1
		}
	}
	if len(suf) < len(prefix) {
		return -1
	}
	return 0
}

// Lookup returns the set of retained (Sparseness-aligned) suffix start
// positions whose suffix begins with prefix, in ascending suffix order
// (i.e. SA order, not text order). An empty prefix matches every retained
// suffix.
//
// Because only suffixes starting on a Sparseness boundary were ever
// indexed, Lookup cannot find an occurrence of prefix that starts midway
// between two retained positions -- that is the fundamental trade made by
// sparsifying the array in exchange for a smaller index.
func (s *SSA) Lookup(prefix []byte) []int64 {
	if len(prefix) == 0 {
		return s.SA
	}
	sa := s.SA
	lo := sort.Search(len(sa), func(i int) bool {
		return comparePrefix(s.Data[sa[i]:], prefix) >= 0
	})
	hi := lo + sort.Search(len(sa)-lo, func(i int) bool {
		return comparePrefix(s.Data[sa[lo+i]:], prefix) > 0
	})
	return sa[lo:hi]
}

// LookupTextOrder is Lookup's result re-sorted into ascending text-position
// order, convenient for reporting occurrences in the order they appear in
// the original sequence rather than lexicographic order.
func (s *SSA) LookupTextOrder(prefix []byte) []int64 {
	hits := s.Lookup(prefix)
	out := make([]int64, len(hits))
	copy(out, hits)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
