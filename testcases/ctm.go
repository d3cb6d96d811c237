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
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	// uniform scaling
	{
		Name:   "scale_2x",
		Path:   rectangle(0, 0, 20, 20),
		Width:  128,
		Height: 128,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 2).Translate(24, 24),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(0, 0, 80, 80),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(0.5, 0.5).Translate(12, 12),
	},

	// rotation
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-10, -10, 20, 20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_90deg",
		Path:   rectangle(-15, -10, 30, 20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.RotateDeg(90).Translate(32, 32),
	},

	// non-uniform scaling
	{
		Name:   "circle_to_ellipse",
		Path:   ellipse(-10, -10, 20, 20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(2.5, 1).Translate(32, 32),
	},
	{
		Name:   "rounded_rect_scaled",
		Path:   roundedRectangle(0, 0, 20, 10, 4),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Scale(2, 4).Translate(12, 12),
	},

	// shear
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-10, -10, 20, 20),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		CTM:    matrix.Matrix{1, 0, 0.5, 1, 32, 32},
	},
}
