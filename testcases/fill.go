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
	"math"

	"seehuhn.de/go/dcpath"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "triangle_evenodd",
		Path:   polygon(pt(10, 50), pt(32, 10), pt(54, 50)),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "star_nonzero",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 34, 34),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "open_triangle",
		Path:   openTriangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

func polygon(points ...dcpath.Point) *dcpath.Path {
	return build(func(p *dcpath.Path) error {
		p.Polygon(points, 0, 0)
		return nil
	})
}

func rectangle(x, y, w, h float64) *dcpath.Path {
	return build(func(p *dcpath.Path) error {
		p.Rectangle(x, y, w, h)
		return nil
	})
}

// openTriangle leaves its only subpath open.  Filling closes it.
func openTriangle(x1, y1, x2, y2, x3, y3 float64) *dcpath.Path {
	return build(func(p *dcpath.Path) error {
		p.MoveTo(x1, y1)
		return p.Lines([]dcpath.Point{pt(x2, y2), pt(x3, y3)}, 0, 0)
	})
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *dcpath.Path {
	pts := make([]dcpath.Point, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	var star []dcpath.Point
	for _, i := range []int{0, 2, 4, 1, 3} {
		star = append(star, pts[i])
	}
	return polygon(star...)
}
