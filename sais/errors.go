// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "sais: " + string(e) }

var (
	// ErrInvalidInput reports an alphabet size k that an entry point cannot
	// accept: not positive, or above 65536 for Build8/Build16. Symbol values
	// are not checked against k, and a nil text is treated as empty.
	ErrInvalidInput error = Error("invalid input")

	// ErrAllocationFailure reports a scratch request so large that
	// attempting it would be a self-evident resource exhaustion rather
	// than a normal allocation. Go itself has no recoverable out-of-memory
	// return path (make panics instead), so this only fires on the
	// pre-flight bounds check against a requested length that could never
	// be satisfied on this platform.
	ErrAllocationFailure error = Error("scratch allocation too large")
)
