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

var shapeCases = []TestCase{
	{
		Name:   "circle",
		Path:   ellipse(12, 12, 40, 40),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "circle_small",
		Path:   ellipse(28, 28, 8, 8),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "ellipse_wide",
		Path:   ellipse(4, 20, 56, 24),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "ellipse_tall",
		Path:   ellipse(20, 4, 24, 56),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "rounded_rect",
		Path:   roundedRectangle(8, 14, 48, 36, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "rounded_rect_relative",
		Path:   roundedRectangle(8, 14, 48, 36, -0.5),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "pie_quarter",
		Path:   pie(8, 8, 48, 48, 0, math.Pi/2),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "pie_three_quarters",
		Path:   pie(8, 8, 48, 48, math.Pi/4, 7*math.Pi/4),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "chord",
		Path:   chord(8, 8, 48, 48, math.Pi/6, 5*math.Pi/6),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "arc_negative_size",
		Path:   chord(56, 56, -48, -48, 0, math.Pi),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

func ellipse(x, y, w, h float64) *dcpath.Path {
	return build(func(p *dcpath.Path) error {
		p.Ellipse(x, y, w, h)
		return nil
	})
}

func roundedRectangle(x, y, w, h, radius float64) *dcpath.Path {
	return build(func(p *dcpath.Path) error {
		return p.RoundedRectangle(x, y, w, h, radius)
	})
}

// pie builds a circular sector: centre, straight line to the arc start,
// the arc, and back to the centre.
func pie(x, y, w, h, start, end float64) *dcpath.Path {
	return build(func(p *dcpath.Path) error {
		cx, cy := x+w/2, y+h/2
		p.MoveTo(cx, cy)
		if err := p.LineTo(cx+w/2*math.Cos(start), cy-h/2*math.Sin(start)); err != nil {
			return err
		}
		p.Arc(x, y, w, h, start, end)
		return p.Close()
	})
}

// chord builds an arc closed by the straight line between its end points.
func chord(x, y, w, h, start, end float64) *dcpath.Path {
	return build(func(p *dcpath.Path) error {
		p.Arc(x, y, w, h, start, end)
		return p.Close()
	})
}
