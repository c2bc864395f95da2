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

// Package quadtree decodes the quadtree run-length code used for glyph
// bitmaps.
//
// The 4096 pixels of a glyph are visited in order n = 0, ..., 4095.  Read as
// a six digit base-4 number, n addresses a leaf of a quadtree of depth six;
// a block at level i (0 = coarsest, 5 = finest) consists of the 4^(6-i)
// consecutive pixels which share the leading i digits.  At the start of
// every block, unless a surrounding block is already known to be constant,
// the stream contains a homogeneity bit.  A set homogeneity bit is followed
// by the fill value for the rest of the block.  All other pixels are stored
// as raw bits.
package quadtree

import (
	"seehuhn.de/go/glyphstream/raster"
)

// Levels is the depth of the quadtree.
const Levels = 6

// BitSource is the source of the encoded bits.
type BitSource interface {
	ReadBit() (bool, error)
}

// BlockSize returns the number of pixels in a block at the given level.
func BlockSize(level int) int {
	return 1 << (2 * (Levels - level))
}

// Decode reads one glyph bitmap from src.
//
// On error, the partially decoded bitmap is discarded and the error from
// src is returned unchanged.
func Decode(src BitSource) (*raster.Raster, error) {
	res := &raster.Raster{}

	// While cached is true, all pixels up to the end of the current
	// block at the given level have the value fill.
	var fill, cached bool
	var level int

	for n := range raster.NumPixels {
		for i := 0; i < Levels && !cached; i++ {
			if n%BlockSize(i) != 0 {
				continue
			}
			homogeneous, err := src.ReadBit()
			if err != nil {
				return nil, err
			}
			if homogeneous {
				fill, err = src.ReadBit()
				if err != nil {
					return nil, err
				}
				cached = true
				level = i
			}
		}

		bit := fill
		if !cached {
			var err error
			bit, err = src.ReadBit()
			if err != nil {
				return nil, err
			}
		}
		if bit {
			res.SetPixel(n, true)
		}

		if cached && (n+1)%BlockSize(level) == 0 {
			cached = false
		}
	}

	return res, nil
}
