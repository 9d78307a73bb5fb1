// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ssa

import "github.com/sparsessa/ssa/alphabet"

// Config selects how a sparse suffix array is built.
type Config struct {
	// Sparseness is k: only suffixes starting at a position divisible by
	// this factor are retained. A value of 1 produces an ordinary (dense)
	// suffix array.
	Sparseness int

	// Mode selects the byte-folding rules applied before ranking (see
	// alphabet.Mode).
	Mode alphabet.Mode
}

// SSA is a sparse suffix array over Data: SA[i] gives the start of the
// i'th-smallest retained suffix, in increasing lexicographic order. Every
// entry is divisible by Sparseness.
type SSA struct {
	Data       []byte
	Sparseness int
	SA         []int64
}

func (c Config) validate() error {
	if c.Sparseness < 1 || c.Sparseness > 32 {
		return ErrInvalidSparseness
	}
	return nil
}
