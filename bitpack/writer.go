// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitpack

import (
	"encoding/binary"
	"io"
)

// Writer accumulates fixed-width entries MSB-first into 64-bit words and
// flushes completed words out as big-endian bytes. Unlike a streaming
// bit reader, which must cope with running out of input mid-symbol, a
// writer only ever needs to cope with running out of *room* in its
// accumulator -- so the buffer here is a single uint64 plus a bit count,
// with no bufio-style peek/discard machinery to manage.
type Writer struct {
	w       io.Writer
	accum   uint64
	numBits uint
	buf     [8]byte
}

// NewWriter writes h to w and returns a Writer that packs the entries that
// follow it. The Writer does not keep h; each WriteElement call names its
// own width.
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	if h.BitsPerElement < 1 || h.BitsPerElement > 64 {
		return nil, ErrInvalidWidth
	}
	var hb [headerSize]byte
	hb[0] = h.BitsPerElement
	hb[1] = h.SparsenessFactor
	binary.LittleEndian.PutUint64(hb[2:], h.SALength)
	if _, err := w.Write(hb[:]); err != nil {
		return nil, err
	}
	return &Writer{w: w}, nil
}

// WriteElement packs v into the stream as a width-bit entry, MSB-first
// within each 64-bit accumulator word.
func (bw *Writer) WriteElement(v uint64, width uint8) error {
	if width < 1 || width > 64 {
		return ErrInvalidWidth
	}
	if width < 64 && v>>width != 0 {
		return ErrInvalidWidth
	}

	remaining := uint(width)
	for remaining > 0 {
		free := 64 - bw.numBits
		take := remaining
		if take > free {
			take = free
		}
		// Left-align the next `take` bits of v (MSB-first) into the free
		// space at the bottom of the accumulator.
		chunk := (v >> (remaining - take)) & (1<<take - 1)
		bw.accum |= chunk << (free - take)
		bw.numBits += take
		remaining -= take

		if bw.numBits == 64 {
			if err := bw.flushWord(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (bw *Writer) flushWord() error {
	binary.BigEndian.PutUint64(bw.buf[:], bw.accum)
	if _, err := bw.w.Write(bw.buf[:]); err != nil {
		return err
	}
	bw.accum = 0
	bw.numBits = 0
	return nil
}

// Close flushes any partial final word, zero-padded in the low bits, and
// must be called exactly once after the last WriteElement.
func (bw *Writer) Close() error {
	if bw.numBits == 0 {
		return nil
	}
	return bw.flushWord()
}

// Pack is the convenience entry point: it writes sa as a complete bitpack
// stream (header plus packed entries) to w, choosing width as
// BitsRequired of the largest entry in sa -- callers that already know
// the maximum value should use NewWriter directly to avoid a second pass.
func Pack(w io.Writer, sa []int64, sparsenessFactor int) error {
	var maxVal int64
	for _, v := range sa {
		if v > maxVal {
			maxVal = v
		}
	}
	width := BitsRequired(maxVal)

	h := Header{
		BitsPerElement:   uint8(width),
		SparsenessFactor: uint8(sparsenessFactor),
		SALength:         uint64(len(sa)),
	}
	bw, err := NewWriter(w, h)
	if err != nil {
		return err
	}
	for _, v := range sa {
		if err := bw.WriteElement(uint64(v), uint8(width)); err != nil {
			return err
		}
	}
	return bw.Close()
}
