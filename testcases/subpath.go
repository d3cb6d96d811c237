// seehuhn.de/go/dcpath - vector paths and region algebra
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

package testcases

import (
	"seehuhn.de/go/dcpath"
)

var subpathCases = []TestCase{
	{
		Name:   "overlapping_rect_nonzero",
		Path:   overlappingRectangles(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "overlapping_rect_evenodd",
		Path:   overlappingRectangles(),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring_evenodd",
		Path:   ring(32, 32, 25, 12, false),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "ring_reversed_nonzero",
		Path:   ring(32, 32, 25, 12, true),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "appended_shapes",
		Path:   appendedShapes(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "translated_rotated",
		Path:   translatedRotated(),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

func overlappingRectangles() *dcpath.Path {
	return build(func(p *dcpath.Path) error {
		p.Rectangle(10, 10, 30, 30)
		p.Rectangle(24, 24, 30, 30)
		return nil
	})
}

// ring builds two concentric circles.  With reverse set, the inner circle
// runs in the opposite direction so that the nonzero rule leaves a hole.
func ring(cx, cy, outer, inner float64, reverse bool) *dcpath.Path {
	p := ellipse(cx-outer, cy-outer, 2*outer, 2*outer)
	hole := ellipse(cx-inner, cy-inner, 2*inner, 2*inner)
	if reverse {
		hole.Reverse()
	}
	p.Append(hole)
	return p
}

func appendedShapes() *dcpath.Path {
	p := rectangle(6, 6, 20, 20)
	q := ellipse(0, 0, 24, 24)
	q.Translate(34, 34)
	p.Append(q)
	return p
}

func translatedRotated() *dcpath.Path {
	p := rectangle(-12, -6, 24, 12)
	p.Rotate(0.3)
	p.Translate(32, 32)
	return p
}
