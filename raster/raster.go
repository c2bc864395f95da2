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

// Package raster implements the 64x64 one-bit bitmaps of glyph streams.
//
// Pixels are numbered n = 0, ..., 4095.  Pixel n is stored in bit n%64 of
// word n/64.  When a raster is viewed as an image, word y is row y (from the
// top) and bit x is column x (from the left).
package raster

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"math/bits"
	"strings"

	xdraw "golang.org/x/image/draw"
)

const (
	// Size is the width and height of a raster, in pixels.
	Size = 64

	// NumPixels is the number of pixels in a raster.
	NumPixels = Size * Size

	// NumBytes is the length of the serialized form of a raster.
	NumBytes = NumPixels / 8
)

// Raster is a 64x64 bitmap with one bit per pixel.
type Raster [Size]uint64

// FromBytes reconstructs a raster from the output of [Raster.Bytes].
func FromBytes(data []byte) (*Raster, error) {
	if len(data) != NumBytes {
		return nil, errLength
	}
	r := &Raster{}
	for w := range r {
		r[w] = binary.LittleEndian.Uint64(data[8*w:])
	}
	return r, nil
}

// Bytes returns the 512 byte serialization of the raster: the 64 words
// in order, each in little-endian byte order.
func (r *Raster) Bytes() []byte {
	res := make([]byte, 0, NumBytes)
	for _, w := range r {
		res = binary.LittleEndian.AppendUint64(res, w)
	}
	return res
}

// Pixel returns the value of pixel n.
func (r *Raster) Pixel(n int) bool {
	return r[n/Size]>>(n%Size)&1 != 0
}

// SetPixel sets the value of pixel n.
func (r *Raster) SetPixel(n int, v bool) {
	mask := uint64(1) << (n % Size)
	if v {
		r[n/Size] |= mask
	} else {
		r[n/Size] &^= mask
	}
}

// Get returns the pixel in column x of row y.
// Coordinates outside the raster are reported as unset.
func (r *Raster) Get(x, y int) bool {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return false
	}
	return r.Pixel(y*Size + x)
}

// IsBlank reports whether no pixel is set.
func (r *Raster) IsBlank() bool {
	return *r == Raster{}
}

// Count returns the number of set pixels.
func (r *Raster) Count() int {
	total := 0
	for _, w := range r {
		total += bits.OnesCount64(w)
	}
	return total
}

// ColorModel implements the [image.Image] interface.
func (r *Raster) ColorModel() color.Model {
	return color.AlphaModel
}

// Bounds implements the [image.Image] interface.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, Size, Size)
}

// At implements the [image.Image] interface.  Set pixels are opaque,
// so that a raster can be used as a mask for [image/draw.DrawMask].
func (r *Raster) At(x, y int) color.Color {
	if r.Get(x, y) {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}

// RGBA64At implements the [image.RGBA64Image] interface.
func (r *Raster) RGBA64At(x, y int) color.RGBA64 {
	if r.Get(x, y) {
		return color.RGBA64{R: 0xFFFF, G: 0xFFFF, B: 0xFFFF, A: 0xFFFF}
	}
	return color.RGBA64{}
}

// Scaled returns the raster as an alpha mask of size x size pixels,
// using nearest-neighbour interpolation.
// For size <= 0, an empty mask is returned.
func (r *Raster) Scaled(size int) *image.Alpha {
	if size <= 0 {
		return image.NewAlpha(image.Rectangle{})
	}
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), r, r.Bounds(), xdraw.Src, nil)
	return dst
}

// String returns a text rendering of the raster, one line per row,
// with '#' for set pixels and '.' for unset pixels.
func (r *Raster) String() string {
	b := &strings.Builder{}
	b.Grow(NumPixels + Size)
	for y := range Size {
		for x := range Size {
			if r.Get(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var _ image.RGBA64Image = (*Raster)(nil)

var errLength = errors.New("raster: invalid data length")
