// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package alphabet

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "alphabet: " + string(e) }

var (
	// ErrAlphabetTooLarge reports that bits_per_char*k exceeds 32, meaning no
	// packed width can hold a single k-gram.
	ErrAlphabetTooLarge error = Error("alphabet too large for requested sparseness factor")

	// ErrInvalidSparseness reports a sparseness factor k outside [1, 32].
	ErrInvalidSparseness error = Error("invalid sparseness factor")
)
