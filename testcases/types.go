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

// Package testcases holds named fill scenarios built from dcpath shapes.
// They drive the rasterizer tests and the reference generators under
// testcases/genpdf and testcases/export.
package testcases

import (
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/dcpath"
)

// TestCase defines a single fill test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *dcpath.Path  // the geometry to fill
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Rule   FillRule      // winding rule
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// All maps category names to their test cases.
var All = map[string][]TestCase{
	"fill":    fillCases,
	"shape":   shapeCases,
	"ctm":     ctmCases,
	"subpath": subpathCases,
	"large":   largeCases,
}

// build returns a new path filled in by f.  Construction errors in the
// fixtures are programming mistakes, so they panic.
func build(f func(p *dcpath.Path) error) *dcpath.Path {
	p := dcpath.NewPath()
	if err := f(p); err != nil {
		panic(err)
	}
	return p
}

// pt is a helper to create a dcpath.Point from x, y coordinates.
func pt(x, y float64) dcpath.Point {
	return dcpath.Point{X: x, Y: y}
}
