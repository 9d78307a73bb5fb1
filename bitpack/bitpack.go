// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitpack implements the minimum-bits-per-entry encoding used to
// store a sparse suffix array on disk (spec component C9): a small fixed
// header followed by each array entry packed into exactly as many bits as
// the largest entry requires, written MSB-first into 64-bit words. This
// mirrors the bit-accumulator shape of a compression bit reader/writer, only
// running in the opposite direction: packing toward a byte stream rather
// than peeling variable-length codes off of one.
package bitpack

import "math/bits"

// headerSize is the encoded size, in bytes, of Header.
const headerSize = 1 + 1 + 8

// Header precedes the packed entries in the encoded stream.
type Header struct {
	// BitsPerElement is the width, in bits, of every packed entry. Must be
	// in [1, 64].
	BitsPerElement uint8

	// SparsenessFactor is the k used to build the array this stream
	// encodes -- carried so a decoder can reconstruct which original
	// positions the entries refer to without being told out of band.
	SparsenessFactor uint8

	// SALength is the number of entries following the header.
	SALength uint64
}

// BitsRequired returns the minimum bit width needed to hold any value in
// [0, maxValue], the width Pack chooses for a sparse suffix array whose
// largest entry is maxValue.
func BitsRequired(maxValue int64) int {
	if maxValue <= 0 {
		return 1
	}
	return bits.Len64(uint64(maxValue))
}
