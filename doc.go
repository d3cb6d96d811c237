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

// Package dcpath implements vector paths for a drawing context.
//
// A [Path] is built from four primitive operations (MoveTo, LineTo,
// CurveTo, Close) together with derived shapes such as rectangles, rounded
// rectangles, ellipses and elliptical arcs.  Arcs are approximated by
// cubic Bézier curves to within [ArcTolerance].  Paths can be reversed,
// appended to each other, and translated, scaled or rotated.  The
// bounding box of a path is maintained as operations are added.
//
// Paths are handed to a rendering surface through [Path.ReplayTo], or
// filled into occupancy masks by the region package.
package dcpath

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
