// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ssa builds sparse suffix arrays: the sorted order of only those
// suffixes of a text that start at positions divisible by a chosen
// sparseness factor k. It orchestrates the alphabet package's order
// preserving k-gram compaction with the sais package's induced-sorting
// engine, so that a full-sized suffix array is never actually constructed
// in the common case -- the engine instead runs over a string k times
// shorter than the original, built from packed, rank-compacted symbols.
package ssa
