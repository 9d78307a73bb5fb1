// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ssa

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "ssa: " + string(e) }

var (
	// ErrInvalidSparseness reports a sparseness factor outside [1, 32].
	ErrInvalidSparseness error = Error("invalid sparseness factor")
)
