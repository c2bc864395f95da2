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
	"fmt"
	"slices"
)

// ControlCode is the 7 bit code of a control unit.
type ControlCode uint8

// These are the control codes with an assigned meaning.
// The list is subject to change.
const (
	DirectionRightDown ControlCode = 4
	DirectionLeftDown  ControlCode = 5
	DirectionRightUp   ControlCode = 6
	DirectionLeftUp    ControlCode = 7
)

var controlNames = map[ControlCode]string{
	DirectionRightDown: "DirectionRightDown",
	DirectionLeftDown:  "DirectionLeftDown",
	DirectionRightUp:   "DirectionRightUp",
	DirectionLeftUp:    "DirectionLeftUp",
}

func (c ControlCode) String() string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ControlCode(%d)", uint8(c))
}

// KnownControlCodes returns the control codes with an assigned meaning,
// in increasing order.
func KnownControlCodes() []ControlCode {
	res := make([]ControlCode, 0, len(controlNames))
	for c := range controlNames {
		res = append(res, c)
	}
	slices.Sort(res)
	return res
}
