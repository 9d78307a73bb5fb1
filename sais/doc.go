// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais implements the induced-sorting (SA-IS) suffix array
// construction algorithm of Nong, Zhang, and Chan, after the C
// implementation by Yuta Mori.
//
// The engine operates on an integer alphabet of arbitrary size and produces
// a 64-bit-indexed suffix array. Three entry points (Build8, Build16,
// Build32) cover packed symbol widths of 8, 16, and 32 bits; all three
// funnel into the same recursive core, which differs only in how its
// bucket-count storage is sized: a small fixed alphabet (8/16-bit symbols)
// gets a freshly allocated, dense per-symbol array, while a large alphabet
// (32-bit symbols) reuses scratch space at the tail of the suffix array
// itself, trading layouts (nicknamed 1k/2k/4k/6k after how many multiples
// of the alphabet size they need) for speed as more scratch becomes
// available.
package sais
