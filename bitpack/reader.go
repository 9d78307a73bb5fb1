// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitpack

import (
	"encoding/binary"
	"io"
)

// Reader is the inverse of Writer: it pulls fixed-width entries MSB-first
// out of a big-endian 64-bit-word stream, refilling its accumulator one word
// at a time as bits are consumed.
type Reader struct {
	r       io.Reader
	accum   uint64
	numBits uint
	buf     [8]byte
}

// NewReader reads and returns the Header at the front of r, and a Reader
// positioned to read the entries that follow it.
func NewReader(r io.Reader) (*Reader, Header, error) {
	var hb [headerSize]byte
	if _, err := io.ReadFull(r, hb[:]); err != nil {
		return nil, Header{}, ErrShortHeader
	}
	h := Header{
		BitsPerElement:   hb[0],
		SparsenessFactor: hb[1],
		SALength:         binary.LittleEndian.Uint64(hb[2:]),
	}
	if h.BitsPerElement < 1 || h.BitsPerElement > 64 {
		return nil, Header{}, ErrInvalidWidth
	}
	return &Reader{r: r}, h, nil
}

// ReadElement reads the next width-bit entry from the stream.
func (br *Reader) ReadElement(width uint8) (uint64, error) {
	if width < 1 || width > 64 {
		return 0, ErrInvalidWidth
	}

	var v uint64
	remaining := uint(width)
	for remaining > 0 {
		if br.numBits == 0 {
			if err := br.fillWord(); err != nil {
				return 0, err
			}
		}
		take := remaining
		if take > br.numBits {
			take = br.numBits
		}
		free := br.numBits
		chunk := (br.accum >> (free - take)) & (1<<take - 1)
		v = v<<take | chunk
		br.numBits -= take
		remaining -= take
	}
	return v, nil
}

func (br *Reader) fillWord() error {
	if _, err := io.ReadFull(br.r, br.buf[:]); err != nil {
		return ErrShortBody
	}
	br.accum = binary.BigEndian.Uint64(br.buf[:])
	br.numBits = 64
	return nil
}

// Unpack is the convenience entry point: it reads a complete bitpack stream
// (header plus all entries) from r and returns the reconstructed array.
func Unpack(r io.Reader) ([]int64, Header, error) {
	br, h, err := NewReader(r)
	if err != nil {
		return nil, Header{}, err
	}
	sa := make([]int64, h.SALength)
	for i := range sa {
		v, err := br.ReadElement(h.BitsPerElement)
		if err != nil {
			return nil, Header{}, err
		}
		sa[i] = int64(v)
	}
	return sa, h, nil
}
