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

// Package glyphstream decodes glyph streams.
//
// A glyph stream is a sequence of units.  Every unit is either a 7 bit
// control code, or a graphical character consisting of a 64x64 point
// bitmap together with optional horizontal and vertical offsets.  Bitmaps
// are compressed using a quadtree run-length code, which makes blocks of
// constant colour cheap to store.
//
// Layout of a unit, in bits:
//
//	selector          1   0 = control code, 1 = graphical character
//	code              7   control units only
//	x flag, y flag    1+1 graphical units only
//	x offset          7   if the x flag is set, unsigned
//	y offset          7   if the y flag is set, signed
//	bitmap            *   see package internal/quadtree
//	padding           0-7 graphical units only, up to the next byte boundary
//
// Every unit starts on a byte boundary, and the selector occupies the first
// bit of the first byte.  The first bit of every following byte of the unit
// is a continuation flag, which the decoder skips.
//
// The package assigns no meaning to control codes or to blank bitmaps.
// This is left to the renderer.
package glyphstream
