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
	"errors"
	"strconv"
)

// ErrTruncated is matched by errors.Is for all errors which indicate
// that the input ended in the middle of a unit.
var ErrTruncated = errors.New("glyphstream: truncated unit")

// TruncatedError indicates that the input ended in the middle of a unit.
// All units before the truncated one have been decoded successfully.
type TruncatedError struct {
	// Index is the position of the truncated unit in the stream.
	Index int

	// Graphical is true if the truncated unit is a graphical character.
	Graphical bool

	Err error
}

func (err *TruncatedError) Error() string {
	kind := "control unit"
	if err.Graphical {
		kind = "graphical unit"
	}
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "truncated " + kind + " " + strconv.Itoa(err.Index) + middle
}

func (err *TruncatedError) Unwrap() error {
	return err.Err
}

// Is makes errors.Is(err, ErrTruncated) succeed.
func (err *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}
