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

// largeCases contains test cases with bounding boxes > 65536 pixels
// to exercise the active edge list in the rasterizer.
var largeCases = []TestCase{
	{
		Name:   "large_rectangle",
		Path:   rectangle(50, 50, 412, 412),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_ring_evenodd",
		Path:   ring(256, 256, 200, 100, false),
		Width:  512,
		Height: 512,
		Rule:   EvenOdd,
	},
	{
		Name:   "large_ellipse",
		Path:   ellipse(16, 96, 480, 320),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_grid",
		Path:   rectangleGrid(8, 8, 512, 512, 4),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
	{
		Name:   "large_clipped",
		Path:   rectangle(-100, 100, 712, 300),
		Width:  512,
		Height: 512,
		Rule:   NonZero,
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *dcpath.Path {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	return build(func(p *dcpath.Path) error {
		for row := range rows {
			for col := range cols {
				x := float64(col)*cellW + gap
				y := float64(row)*cellH + gap
				p.Rectangle(x, y, cellW-2*gap, cellH-2*gap)
			}
		}
		return nil
	})
}
