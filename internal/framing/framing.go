// seehuhn.de/go/glyphstream - a decoder for quadtree glyph streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package framing implements the byte framing of glyph streams.
//
// In the raw stream, the first bit of every byte is a continuation flag
// which tells whether the byte still belongs to the current unit.  The
// flag carries no information for the decoder: a Reader discards it
// before delivering the first bit of each byte, so that callers see the
// remaining seven bits of every byte as one contiguous bit stream.
package framing

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// Reader reads bits from a framed glyph stream.
//
// The position counter includes the discarded continuation bits, so that
// pos%8 == 0 exactly when the next raw bit is the first bit of a byte.
type Reader struct {
	r   *bitio.Reader
	pos int64
}

// NewReader returns a Reader which takes its raw bits from r,
// most significant bit of every byte first.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bitio.NewReader(r)}
}

// ReadRawBit reads the next bit without applying the framing rule.
// At the end of input, io.EOF is returned.
func (r *Reader) ReadRawBit() (bool, error) {
	bit, err := r.r.ReadBool()
	if err != nil {
		return false, err
	}
	r.pos++
	return bit, nil
}

// ReadBit reads one bit.  If the bit starts a new byte, the continuation
// flag in front of it is discarded first.
func (r *Reader) ReadBit() (bool, error) {
	if r.pos%8 == 0 {
		if _, err := r.next(); err != nil {
			return false, err
		}
	}
	return r.next()
}

// Read reads an unsigned value of the given width, most significant bit
// first.  The width must be at most 64.
func (r *Reader) Read(width uint) (uint64, error) {
	if width > 64 {
		return 0, errWidth
	}
	var v uint64
	for range width {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, nil
}

// ReadSigned reads a signed value of the given width.  The first bit is
// the sign, the remaining width-1 bits are read using [Reader.Read].  If the
// sign bit is set, the sign bit contributes -2^(width-1) to the result,
// so that a 7 bit field covers the range -64, ..., 63.
func (r *Reader) ReadSigned(width uint) (int64, error) {
	if width == 0 || width > 64 {
		return 0, errWidth
	}
	sign, err := r.ReadBit()
	if err != nil {
		return 0, err
	}
	m, err := r.Read(width - 1)
	if err != nil {
		return 0, err
	}
	v := int64(m)
	if sign {
		v -= int64(uint64(1) << (width - 1))
	}
	return v, nil
}

// Skip discards n bits.  Continuation flags are not treated specially:
// exactly n raw bits are consumed.
func (r *Reader) Skip(n uint) error {
	for range n {
		if _, err := r.next(); err != nil {
			return err
		}
	}
	return nil
}

// Aligned reports whether the next raw bit is the first bit of a byte.
func (r *Reader) Aligned() bool {
	return r.pos%8 == 0
}

// Align skips the padding bits up to the next byte boundary.
// If the reader is already aligned, no bits are skipped.
func (r *Reader) Align() error {
	return r.Skip(uint((8 - r.pos%8) % 8))
}

// next reads one raw bit.  Running out of input is always an error here,
// since the caller is in the middle of a unit.
func (r *Reader) next() (bool, error) {
	bit, err := r.r.ReadBool()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return false, err
	}
	r.pos++
	return bit, nil
}

var errWidth = errors.New("framing: invalid field width")
