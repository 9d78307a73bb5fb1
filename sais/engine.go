// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// ====================================================
// Copyright (c) 2008-2010 Yuta Mori All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person
// obtaining a copy of this software and associated documentation
// files (the "Software"), to deal in the Software without
// restriction, including without limitation the rights to use,
// copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following
// conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
// HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
// WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
// ====================================================

package sais

// This file is the generic recursive core: an integer-alphabet SA-IS
// implementation indexed entirely in int64 so that it can address texts
// longer than 2^31 symbols and so that the reduced-alphabet recursion (whose
// "characters" are LMS-substring names, not original symbols) never needs a
// separate narrower type. Build8/Build16/Build32 in width.go widen their
// packed input into this representation and choose k and fs to steer which
// bucket-storage layout gets used; the layout choice itself lives entirely
// in computeSA's flags bitmask below and is unchanged from the algorithm
// this package is based on.
//
// The high bit of a suffix's position is never used as a literal sign bit
// (Go array indices cannot be negative); instead, "marked" entries are
// stored as the bitwise complement (^pos) of the position, which is
// negative for any non-negative pos and trivially reversible. Every read of
// a slot that might carry the marker must branch on sign before using the
// value as an index -- that is the single pervasive invariant of this file.

func getCounts(T []int64, C []int64, n, k int64) {
	var i int64
	for i = 0; i < k; i++ {
		C[i] = 0
	}
	for i = 0; i < n; i++ {
		C[T[i]]++
	}
}

func getBuckets(C, B []int64, k int64, end bool) {
	var i, sum int64
	if end {
		for i = 0; i < k; i++ {
			sum += C[i]
			B[i] = sum
		}
	} else {
		for i = 0; i < k; i++ {
			sum += C[i]
			B[i] = sum - C[i]
		}
	}
}

// sortLMS1 places the LMS suffixes of T into sorted-by-substring order using
// a single extra marker bit per slot (the 1k/2k bucket-scratch layouts).
func sortLMS1(T []int64, SA, C, B []int64, n, k int64) {
	var b, i, j int64
	var c0, c1 int64

	// Compute SAl.
	if &C[0] == &B[0] {
		getCounts(T, C, n, k)
	}
	getBuckets(C, B, k, false) // Find starts of buckets
	j = n - 1
	c1 = T[j]
	b = B[c1]
	j--
	if T[j] < c1 {
		SA[b] = ^j
	} else {
		SA[b] = j
	}
	b++
	for i = 0; i < n; i++ {
		if j = SA[i]; j > 0 {
			if c0 = T[j]; c0 != c1 {
				B[c1] = b
				c1 = c0
				b = B[c1]
			}
			j--
			if T[j] < c1 {
				SA[b] = ^j
			} else {
				SA[b] = j
			}
			b++
			SA[i] = 0
		} else if j < 0 {
			SA[i] = ^j
		}
	}

	// Compute SAs.
	if &C[0] == &B[0] {
		getCounts(T, C, n, k)
	}
	getBuckets(C, B, k, true) // Find ends of buckets
	c1 = 0
	b = B[c1]
	for i = n - 1; i >= 0; i-- {
		if j = SA[i]; j > 0 {
			if c0 = T[j]; c0 != c1 {
				B[c1] = b
				c1 = c0
				b = B[c1]
			}
			j--
			b--
			if T[j] > c1 {
				SA[b] = ^(j + 1)
			} else {
				SA[b] = j
			}
			SA[i] = 0
		}
	}
}

func namesLMS1(T []int64, SA []int64, n, m int64) int64 {
	var i, j, p, q, plen, qlen, name int64
	var c0, c1 int64
	var diff bool

	// Compact all the sorted substrings into the first m items of SA.
	// 2*m must be not larger than n (provable).
	for i = 0; SA[i] < 0; i++ {
		SA[i] = ^SA[i]
	}
	if i < m {
		for j, i = i, i+1; ; i++ {
			if p = SA[i]; p < 0 {
				SA[j] = ^p
				j++
				SA[i] = 0
				if j == m {
					break
				}
			}
		}
	}

	// Store the length of all substrings.
	i = n - 1
	j = n - 1
	c0 = T[n-1]
	for {
		c1 = c0
		if i--; i < 0 {
			break
		}
		if c0 = T[i]; c0 < c1 {
			break
		}
	}
	for i >= 0 {
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = T[i]; c0 > c1 {
				break
			}
		}
		if i >= 0 {
			SA[m+((i+1)>>1)] = j - i
			j = i + 1
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = T[i]; c0 < c1 {
					break
				}
			}
		}
	}

	// Find the lexicographic names of all substrings.
	name = 0
	qlen = 0
	for i, q = 0, n; i < m; i++ {
		p = SA[i]
		plen = SA[m+(p>>1)]
		diff = true
		if (plen == qlen) && ((q + plen) < n) {
			for j = 0; (j < plen) && (T[p+j] == T[q+j]); j++ {
			}
			if j == plen {
				diff = false
			}
		}
		if diff {
			name++
			q = p
			qlen = plen
		}
		SA[m+(p>>1)] = name
	}
	return name
}

// sortLMS2 is the faster 4k/6k variant: it carries a discriminator array D
// that lets it tell apart LMS substrings without the compaction pass
// sortLMS1/namesLMS1 need, at the cost of needing 2*k extra scratch slots.
func sortLMS2(T []int64, SA, C, B, D []int64, n, k int64) {
	var b, i, j, t, d int64
	var c0, c1 int64

	// Compute SAl.
	getBuckets(C, B, k, false) // Find starts of buckets
	j = n - 1
	c1 = T[j]
	b = B[c1]
	j--
	if T[j] < c1 {
		t = 1
	} else {
		t = 0
	}
	j += n
	if t&1 > 0 {
		SA[b] = ^j
	} else {
		SA[b] = j
	}
	b++
	for i, d = 0, 0; i < n; i++ {
		if j = SA[i]; j > 0 {
			if n <= j {
				d += 1
				j -= n
			}
			if c0 = T[j]; c0 != c1 {
				B[c1] = b
				c1 = c0
				b = B[c1]
			}
			j--
			t = c0 << 1
			if T[j] < c1 {
				t |= 1
			}
			if D[t] != d {
				j += n
				D[t] = d
			}
			if t&1 > 0 {
				SA[b] = ^j
			} else {
				SA[b] = j
			}
			b++
			SA[i] = 0
		} else if j < 0 {
			SA[i] = ^j
		}
	}
	for i = n - 1; 0 <= i; i-- {
		if SA[i] > 0 {
			if SA[i] < n {
				SA[i] += n
				for j = i - 1; SA[j] < n; j-- {
				}
				SA[j] -= n
				i = j
			}
		}
	}

	// Compute SAs.
	getBuckets(C, B, k, true) // Find ends of buckets
	c1 = 0
	b = B[c1]
	for i, d = n-1, d+1; i >= 0; i-- {
		if j = SA[i]; j > 0 {
			if n <= j {
				d += 1
				j -= n
			}
			if c0 = T[j]; c0 != c1 {
				B[c1] = b
				c1 = c0
				b = B[c1]
			}
			j--
			t = c0 << 1
			if T[j] > c1 {
				t |= 1
			}
			if D[t] != d {
				j += n
				D[t] = d
			}
			b--
			if t&1 > 0 {
				SA[b] = ^(j + 1)
			} else {
				SA[b] = j
			}
			SA[i] = 0
		}
	}
}

func namesLMS2(SA []int64, n, m int64) int64 {
	var i, j, d, name int64

	// Compact all the sorted LMS substrings into the first m items of SA.
	name = 0
	for i = 0; SA[i] < 0; i++ {
		j = ^SA[i]
		if n <= j {
			name += 1
		}
		SA[i] = j
	}
	if i < m {
		for d, i = i, i+1; ; i++ {
			if j = SA[i]; j < 0 {
				j = ^j
				if n <= j {
					name += 1
				}
				SA[d] = j
				d++
				SA[i] = 0
				if d == m {
					break
				}
			}
		}
	}
	if name < m {
		// Store the lexicographic names.
		for i, d = m-1, name+1; 0 <= i; i-- {
			if j = SA[i]; n <= j {
				j -= n
				d--
			}
			SA[m+(j>>1)] = d
		}
	} else {
		// Unset flags.
		for i = 0; i < m; i++ {
			if j = SA[i]; n <= j {
				j -= n
				SA[i] = j
			}
		}
	}
	return name
}

// induceFinal realizes C5/C8: it spreads a partially or fully sorted LMS
// order across the rest of the suffix array by induction, left to right
// for L-type predecessors and right to left for S-type ones.
func induceFinal(T []int64, SA, C, B []int64, n, k int64) {
	var b, i, j int64
	var c0, c1 int64

	// Compute SAl.
	if &C[0] == &B[0] {
		getCounts(T, C, n, k)
	}
	getBuckets(C, B, k, false) // Find starts of buckets
	j = n - 1
	c1 = T[j]
	b = B[c1]
	if j > 0 && T[j-1] < c1 {
		SA[b] = ^j
	} else {
		SA[b] = j
	}
	b++
	for i = 0; i < n; i++ {
		j = SA[i]
		SA[i] = ^j
		if j > 0 {
			j--
			if c0 = T[j]; c0 != c1 {
				B[c1] = b
				c1 = c0
				b = B[c1]
			}
			if j > 0 && T[j-1] < c1 {
				SA[b] = ^j
			} else {
				SA[b] = j
			}
			b++
		}
	}

	// Compute SAs.
	if &C[0] == &B[0] {
		getCounts(T, C, n, k)
	}
	getBuckets(C, B, k, true) // Find ends of buckets
	c1 = 0
	b = B[c1]
	for i = n - 1; i >= 0; i-- {
		if j = SA[i]; j > 0 {
			j--
			if c0 = T[j]; c0 != c1 {
				B[c1] = b
				c1 = c0
				b = B[c1]
			}
			b--
			if (j == 0) || (T[j-1] > c1) {
				SA[b] = ^j
			} else {
				SA[b] = j
			}
		} else {
			SA[i] = ^j
		}
	}
}

// computeSA is the recursive dispatcher (C7) fused with the LMS
// gather/sort/name/reduce pipeline (C3, C4, C6) and final placement (C8).
// T is the text (read-only at this recursion level), SA is the n+fs slot
// output/scratch buffer the caller owns for the duration of the call, fs is
// the free-space tail available for bucket-scratch reuse, and k is the
// alphabet size.
//
// flags records which of the four bucket-storage layouts (nicknamed
// 1k/2k/4k/6k for how many multiples of k they need) this call settled on;
// the choice is a pure function of n, k and fs and does not affect the result,
// only peak memory and constant-factor speed.
func computeSA(T []int64, SA []int64, fs, n, k int64) {
	const (
		minBucketSize = 512
		sortLMS2Limit = 0x3fffffff
	)

	var C, B, D, RA []int64
	var bo int64 // Offset of B relative to SA
	var b, i, j, m, p, q, name, newfs int64
	var c0, c1 int64
	var flags uint

	if k <= minBucketSize {
		C = make([]int64, k)
		if k <= fs {
			bo = n + fs - k
			B = SA[bo:]
			flags = 1
		} else {
			B = make([]int64, k)
			flags = 3
		}
	} else if k <= fs {
		C = SA[n+fs-k:]
		if k <= fs-k {
			bo = n + fs - 2*k
			B = SA[bo:]
			flags = 0
		} else if k <= 4*minBucketSize {
			B = make([]int64, k)
			flags = 2
		} else {
			B = C
			flags = 8
		}
	} else {
		C = make([]int64, k)
		B = C
		flags = 4 | 8
	}
	if n <= sortLMS2Limit && 2 <= (n/k) {
		if flags&1 > 0 {
			if 2*k <= fs-k {
				flags |= 32
			} else {
				flags |= 16
			}
		} else if flags == 0 && 2*k <= (fs-2*k) {
			flags |= 32
		}
	}

	// Stage 1: Reduce the problem by at least 1/2.
	// Sort all the LMS-substrings.
	getCounts(T, C, n, k)
	getBuckets(C, B, k, true) // Find ends of buckets
	for i = 0; i < n; i++ {
		SA[i] = 0
	}
	b = -1
	i = n - 1
	j = n
	m = 0
	c0 = T[n-1]
	for {
		c1 = c0
		if i--; i < 0 {
			break
		}
		if c0 = T[i]; c0 < c1 {
			break
		}
	}
	for i >= 0 {
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = T[i]; c0 > c1 {
				break
			}
		}
		if i >= 0 {
			if b >= 0 {
				SA[b] = j
			}
			B[c1]--
			b = B[c1]
			j = i
			m++
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = T[i]; c0 < c1 {
					break
				}
			}
		}
	}

	if m > 1 {
		if flags&(16|32) > 0 {
			if flags&16 > 0 {
				D = make([]int64, 2*k)
			} else {
				D = SA[bo-2*k:]
			}
			B[T[j+1]]++
			for i, j = 0, 0; i < k; i++ {
				j += C[i]
				if B[i] != j {
					SA[B[i]] += n
				}
				D[i] = 0
				D[i+k] = 0
			}
			sortLMS2(T, SA, C, B, D, n, k)
			name = namesLMS2(SA, n, m)
		} else {
			sortLMS1(T, SA, C, B, n, k)
			name = namesLMS1(T, SA, n, m)
		}
	} else if m == 1 {
		SA[b] = j + 1
		name = 1
	} else {
		name = 0
	}

	// Stage 2: Solve the reduced problem.
	// Recurse if names are not yet unique.
	if name < m {
		newfs = n + fs - 2*m
		if flags&(1|4|8) == 0 {
			if k+name <= newfs {
				newfs -= k
			} else {
				flags |= 8
			}
		}
		RA = SA[m+newfs:]
		for i, j = m+(n>>1)-1, m-1; m <= i; i-- {
			if SA[i] != 0 {
				RA[j] = SA[i] - 1
				j--
			}
		}
		computeSA(RA, SA, newfs, m, name)

		i = n - 1
		j = m - 1
		c0 = T[n-1]
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = T[i]; c0 < c1 {
				break
			}
		}
		for i >= 0 {
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = T[i]; c0 > c1 {
					break
				}
			}
			if i >= 0 {
				RA[j] = i + 1
				j--
				for {
					c1 = c0
					if i--; i < 0 {
						break
					}
					if c0 = T[i]; c0 < c1 {
						break
					}
				}
			}
		}
		for i = 0; i < m; i++ {
			SA[i] = RA[SA[i]]
		}
		if flags&4 > 0 {
			B = make([]int64, k)
			C = B
		}
		if flags&2 > 0 {
			B = make([]int64, k)
		}
	}

	// Stage 3: Induce the result for the original problem.
	if flags&8 > 0 {
		getCounts(T, C, n, k)
	}
	// Put all left-most S characters into their buckets.
	if m > 1 {
		getBuckets(C, B, k, true) // Find ends of buckets
		i = m - 1
		j = n
		p = SA[m-1]
		c1 = T[p]
		for {
			c0 = c1
			q = B[c0]
			for q < j {
				j--
				SA[j] = 0
			}
			for {
				j--
				SA[j] = p
				if i--; i < 0 {
					break
				}
				p = SA[i]
				if c1 = T[p]; c1 != c0 {
					break
				}
			}
			if i < 0 {
				break
			}
		}
		for j > 0 {
			j--
			SA[j] = 0
		}
	}
	induceFinal(T, SA, C, B, n, k)
}
