// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitpack

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "bitpack: " + string(e) }

var (
	// ErrInvalidWidth reports a BitsPerElement outside [1, 64], or an entry
	// value that does not fit in the configured width.
	ErrInvalidWidth error = Error("invalid bits-per-element width")

	// ErrShortHeader reports a stream that ended before a full header could
	// be read.
	ErrShortHeader error = Error("truncated header")

	// ErrShortBody reports a stream that ended before all entries implied
	// by the header could be read.
	ErrShortBody error = Error("truncated packed body")
)
