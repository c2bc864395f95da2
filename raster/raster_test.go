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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPixelLayout(t *testing.T) {
	r := &Raster{}
	r.SetPixel(0, true)
	r.SetPixel(65, true)
	r.SetPixel(NumPixels-1, true)

	if r[0] != 1 || r[1] != 2 || r[63] != 1<<63 {
		t.Errorf("unexpected words %x %x %x", r[0], r[1], r[63])
	}
	if !r.Get(1, 1) || !r.Get(63, 63) || r.Get(1, 0) {
		t.Error("wrong coordinates")
	}
	if r.Get(-1, 0) || r.Get(0, 64) {
		t.Error("pixel outside the raster reported as set")
	}
	if r.Count() != 3 {
		t.Errorf("Count() = %d", r.Count())
	}

	r.SetPixel(65, false)
	if r.Pixel(65) || r.Count() != 2 {
		t.Error("pixel not cleared")
	}
}

func TestBytes(t *testing.T) {
	r := &Raster{}
	r[0] = 0x0807060504030201
	r[63] = 0xFF00000000000000

	data := r.Bytes()
	if len(data) != NumBytes {
		t.Fatalf("len = %d", len(data))
	}
	if diff := cmp.Diff([]byte{1, 2, 3, 4, 5, 6, 7, 8}, data[:8]); diff != "" {
		t.Errorf("first word (-want +got):\n%s", diff)
	}
	if data[NumBytes-1] != 0xFF || data[NumBytes-2] != 0 {
		t.Error("last word has the wrong byte order")
	}

	r2, err := FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	if *r2 != *r {
		t.Error("FromBytes does not invert Bytes")
	}

	if _, err := FromBytes(data[1:]); err == nil {
		t.Error("short data accepted")
	}
}

func TestBlank(t *testing.T) {
	r := &Raster{}
	if !r.IsBlank() {
		t.Error("zero raster not blank")
	}
	if diff := cmp.Diff(make([]byte, NumBytes), r.Bytes()); diff != "" {
		t.Errorf("blank raster (-want +got):\n%s", diff)
	}
	r.SetPixel(2000, true)
	if r.IsBlank() {
		t.Error("raster with pixel reported blank")
	}
}

func TestImage(t *testing.T) {
	r := &Raster{}
	for i := range Size {
		r.SetPixel(i*Size+i, true) // diagonal
	}

	var _ image.Image = r
	dst := image.NewRGBA(r.Bounds())
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, r, image.Point{}, draw.Over)

	for y := range Size {
		for x := range Size {
			_, _, _, a := dst.At(x, y).RGBA()
			if (a != 0) != (x == y) {
				t.Fatalf("wrong pixel at (%d, %d)", x, y)
			}
		}
	}
}

func TestScaled(t *testing.T) {
	r := &Raster{}
	for y := range 32 {
		for x := range 32 {
			r.SetPixel(y*Size+x, true) // top-left quadrant
		}
	}

	for _, size := range []int{16, 64, 128} {
		t.Run(fmt.Sprintf("%d", size), func(t *testing.T) {
			m := r.Scaled(size)
			if m.Bounds() != image.Rect(0, 0, size, size) {
				t.Fatalf("bounds = %v", m.Bounds())
			}
			for y := range size {
				for x := range size {
					want := uint8(0)
					if x < size/2 && y < size/2 {
						want = 0xFF
					}
					if got := m.AlphaAt(x, y).A; got != want {
						t.Fatalf("(%d, %d): got %d, want %d", x, y, got, want)
					}
				}
			}
		})
	}

	for _, size := range []int{0, -5} {
		if b := r.Scaled(size).Bounds(); b != (image.Rectangle{}) {
			t.Errorf("size %d gave bounds %v", size, b)
		}
	}
}

func TestRGBA64At(t *testing.T) {
	r := &Raster{}
	r.SetPixel(Size+2, true)

	var img image.RGBA64Image = r
	if c := img.RGBA64At(2, 1); c.A != 0xFFFF {
		t.Errorf("set pixel: got %v", c)
	}
	if c := img.RGBA64At(1, 2); c.A != 0 {
		t.Errorf("unset pixel: got %v", c)
	}
	if c := img.RGBA64At(-1, 0); c.A != 0 {
		t.Errorf("outside pixel: got %v", c)
	}
}

func TestString(t *testing.T) {
	r := &Raster{}
	r.SetPixel(0, true)
	s := r.String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != Size {
		t.Fatalf("%d lines", len(lines))
	}
	if lines[0] != "#"+strings.Repeat(".", Size-1) {
		t.Errorf("first line %q", lines[0])
	}
}
