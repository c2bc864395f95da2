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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphstream/raster"
)

// Character is one decoded unit of a glyph stream.
//
// For control units, Raster is nil and both offsets are zero.
// For graphical units, Raster holds the bitmap and Control is unused.
type Character struct {
	// XOffset is the horizontal offset in points.  The field is stored
	// without a sign bit in the stream, so the value is in the range 0-127.
	XOffset int8

	// YOffset is the vertical offset in points, in the range -64 to 63.
	YOffset int8

	Control ControlCode
	Raster  *raster.Raster
}

// IsControl reports whether c is a control unit.
func (c *Character) IsControl() bool {
	return c.Raster == nil
}

// IsGraphical reports whether c is a graphical character.
func (c *Character) IsGraphical() bool {
	return c.Raster != nil
}

// Offset returns the offsets of the character, in points.
func (c *Character) Offset() vec.Vec2 {
	return vec.Vec2{X: float64(c.XOffset), Y: float64(c.YOffset)}
}

// BBox returns the area covered by the bitmap of a graphical character,
// in points.  For control units, the zero rectangle is returned.
func (c *Character) BBox() rect.Rect {
	if c.IsControl() {
		return rect.Rect{}
	}
	x, y := float64(c.XOffset), float64(c.YOffset)
	return rect.Rect{
		LLx: x,
		LLy: y,
		URx: x + raster.Size,
		URy: y + raster.Size,
	}
}
