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

package glyphstream

import (
	"bytes"
	"io"

	"seehuhn.de/go/glyphstream/internal/framing"
	"seehuhn.de/go/glyphstream/internal/quadtree"
)

// Decode decodes all units in data.
//
// Decoding stops at the end of data.  If the last unit is truncated, it is
// silently dropped and the units before it are returned.  Use [DecodeAll]
// to detect truncated input.
func Decode(data []byte) []Character {
	res, _ := DecodeAll(data)
	return res
}

// DecodeAll decodes all units in data.
//
// If data ends in the middle of a unit, the units before the truncated
// one are returned together with a [*TruncatedError].
func DecodeAll(data []byte) ([]Character, error) {
	r := NewReader(bytes.NewReader(data))
	var res []Character
	for {
		c, err := r.Read()
		if err == io.EOF {
			return res, nil
		} else if err != nil {
			return res, err
		}
		res = append(res, *c)
	}
}

// Reader decodes a glyph stream unit by unit.
type Reader struct {
	r   *framing.Reader
	n   int
	err error
}

// NewReader returns a new Reader which decodes the glyph stream in r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: framing.NewReader(r)}
}

// Read decodes the next unit.
//
// At the end of the stream, io.EOF is returned.  If the stream ends in the
// middle of a unit, a [*TruncatedError] is returned.  Once an error has been
// returned, all further calls return the same error.
func (r *Reader) Read() (*Character, error) {
	if r.err != nil {
		return nil, r.err
	}

	graphical, err := r.r.ReadRawBit()
	if err != nil {
		r.err = err
		return nil, err
	}

	var c *Character
	if graphical {
		c, err = r.readGraphical()
	} else {
		c, err = r.readControl()
	}
	if err != nil {
		r.err = &TruncatedError{Index: r.n, Graphical: graphical, Err: err}
		return nil, r.err
	}
	r.n++
	return c, nil
}

func (r *Reader) readControl() (*Character, error) {
	code, err := r.r.Read(7)
	if err != nil {
		return nil, err
	}
	return &Character{Control: ControlCode(code)}, nil
}

func (r *Reader) readGraphical() (*Character, error) {
	hasX, err := r.r.ReadBit()
	if err != nil {
		return nil, err
	}
	hasY, err := r.r.ReadBit()
	if err != nil {
		return nil, err
	}

	c := &Character{}
	if hasX {
		// The horizontal offset is stored without a sign.
		x, err := r.r.Read(7)
		if err != nil {
			return nil, err
		}
		c.XOffset = int8(x)
	}
	if hasY {
		y, err := r.r.ReadSigned(7)
		if err != nil {
			return nil, err
		}
		c.YOffset = int8(y)
	}

	c.Raster, err = quadtree.Decode(r.r)
	if err != nil {
		return nil, err
	}

	err = r.r.Align()
	if err != nil {
		return nil, err
	}
	return c, nil
}
