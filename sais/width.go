// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

import (
	"sort"

	"github.com/klauspost/cpuid"
)

// denseAlphabetLimit is the largest alphabet size for which Build8/Build16
// skip the scratch-reuse bucket layouts entirely and let computeSA fall
// straight through to a freshly allocated, densely indexed bucket pair --
// spec's "8/16-bit variant uses a dense bucket array ... pre-allocated at
// the entry point." Passing fs=0 into computeSA for these widths is what
// forces that fast path: with no free-space tail, computeSA's own flags
// logic (see engine.go) never reuses SA-tail scratch. It chooses flags==3
// (fresh C and B) when k <= minBucketSize, and flags==4|8 (one fresh array
// serving as both C and B) for larger k.
const denseAlphabetLimit = 1 << 16

// Build8 constructs the suffix array of a packed 8-bit symbol stream. text
// must end with the sentinel symbol 0, which must be strictly smaller than
// every other value in text. k is the alphabet size: every value in text
// must be less than k. k must be in [1, 65536].
func Build8(text []uint8, k int) ([]int64, error) {
	return buildDense(widen8(text), int64(k))
}

// Build16 constructs the suffix array of a packed 16-bit symbol stream,
// under the same sentinel and alphabet-size conventions as Build8. k must
// not exceed 65536.
func Build16(text []uint16, k int) ([]int64, error) {
	return buildDense(widen16(text), int64(k))
}

// Build32 constructs the suffix array of a packed 32-bit symbol stream,
// under the same sentinel convention as Build8. Unlike Build8/Build16, the
// alphabet size is never taken on faith from the caller: a 32-bit symbol's
// raw numeric range can be billions wide even when only a few thousand
// distinct k-grams actually occur in text, so Build32 first compacts the
// stream to the dense, order-preserving rank space of its observed symbols
// (spec's "32-bit variant ... sizes buckets from the observed K") before
// handing off to the engine. The engine's bucket-storage layout is then
// chosen from the scratch budget available against that observed K, exactly
// as the small-alphabet path does, only with fs sized to make scratch reuse
// worthwhile.
func Build32(text []uint32) ([]int64, error) {
	t, err := widen32(text)
	if err != nil {
		return nil, err
	}
	t, k := compactObservedAlphabet(t)
	return buildSparse(t, k)
}

// compactObservedAlphabet remaps the raw values of t onto the dense range
// [0, m) in a way that preserves their relative order, where m is the
// number of distinct values actually occurring in t. Two raw values compare
// the same way before and after the remap, so every suffix comparison over
// t is unaffected; only the alphabet size the engine must budget buckets
// for shrinks, from a theoretical upper bound down to what the text
// actually uses.
func compactObservedAlphabet(t []int64) ([]int64, int64) {
	distinct := make([]int64, len(t))
	copy(distinct, t)
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })
	distinct = dedupeSorted(distinct)

	rankOf := make(map[int64]int64, len(distinct))
	for i, v := range distinct {
		rankOf[v] = int64(i)
	}
	out := make([]int64, len(t))
	for i, v := range t {
		out[i] = rankOf[v]
	}
	return out, int64(len(distinct))
}

func dedupeSorted(sorted []int64) []int64 {
	if len(sorted) == 0 {
		return sorted
	}
	j := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[j] {
			j++
			sorted[j] = sorted[i]
		}
	}
	return sorted[:j+1]
}

func widen8(text []uint8) []int64 {
	t := make([]int64, len(text))
	for i, v := range text {
		t[i] = int64(v)
	}
	return t
}

func widen16(text []uint16) []int64 {
	t := make([]int64, len(text))
	for i, v := range text {
		t[i] = int64(v)
	}
	return t
}

func widen32(text []uint32) ([]int64, error) {
	if err := checkAllocSize(int64(len(text))); err != nil {
		return nil, err
	}
	t := make([]int64, len(text))
	for i, v := range text {
		t[i] = int64(v)
	}
	return t, nil
}

// checkAllocSize refuses to even attempt a scratch allocation so large that
// the request is self-evidently impossible to satisfy, standing in for
// spec's AllocationFailure contract -- Go's make has no recoverable
// out-of-memory return, so this is the one place this package can reject a
// request before the runtime would otherwise panic.
func checkAllocSize(n int64) error {
	const maxReasonable = 1 << 48 // 256 TiB of int64 scratch; no real input gets here
	if n < 0 || n > maxReasonable {
		return ErrAllocationFailure
	}
	return nil
}

func buildDense(t []int64, k int64) ([]int64, error) {
	if k <= 0 || k > denseAlphabetLimit {
		return nil, ErrInvalidInput
	}
	n := int64(len(t))
	switch {
	case n == 0:
		return []int64{}, nil
	case n == 1:
		return []int64{0}, nil
	}
	if err := checkAllocSize(n); err != nil {
		return nil, err
	}
	sa := make([]int64, n)
	computeSA(t, sa, 0, n, k)
	return sa, nil
}

// scratchFreeSpace picks how much free-space tail (fs) to hand the 32-bit
// entry point so that computeSA's flags logic has a real chance at the
// faster 4k/6k layouts (spec's "fs/K >= 6 / >= 4 / >= 2" thresholds): 6k
// slots when that does not exceed n, otherwise 2k slots when that does not
// exceed n, otherwise none; a non-zero amount is then rounded up to a whole
// number of cache lines. This
// is an advisory performance choice only -- computeSA is correct for any
// fs >= 0, prefetching and alignment never change the result.
func scratchFreeSpace(n, k int64) int64 {
	if k <= 0 {
		return 0
	}
	want := 6 * k
	if want > n {
		want = 2 * k
	}
	if want > n {
		return 0
	}
	return alignToCacheline(want)
}

func alignToCacheline(fs int64) int64 {
	line := int64(cpuid.CPU.CacheLine)
	if line <= 0 {
		line = 64
	}
	slots := line / 8 // int64 entries per cache line
	if slots <= 0 {
		return fs
	}
	if r := fs % slots; r != 0 {
		fs += slots - r
	}
	return fs
}

func buildSparse(t []int64, k int64) ([]int64, error) {
	n := int64(len(t))
	switch {
	case n == 0:
		return []int64{}, nil
	case n == 1:
		return []int64{0}, nil
	}
	if k <= 0 {
		return nil, ErrInvalidInput
	}
	fs := scratchFreeSpace(n, k)
	if err := checkAllocSize(n + fs); err != nil {
		return nil, err
	}
	sa := make([]int64, n+fs)
	computeSA(t, sa, fs, n, k)
	return sa[:n], nil
}
