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

package dcpath

import (
	"math"
	"slices"
)

// Reverse reverses the order of the subpaths and the direction of every
// subpath.
//
// Each closed subpath is rebuilt from its last operation to its first:
// a Close becomes a MoveTo to its start point, a CurveTo becomes a CurveTo
// back to its start point with the control points swapped, a LineTo becomes
// a LineTo back to its start point, and the initial MoveTo becomes a Close.
// The open subpath, if any, becomes a new open subpath starting at its
// old end point.
func (p *Path) Reverse() {
	oldClosed := p.closed
	oldOpen := p.open
	p.Reset()

	for i := len(oldClosed) - 1; i >= 0; i-- {
		p.appendReversed(oldClosed[i])
	}
	if oldOpen != nil {
		end := oldOpen[len(oldOpen)-1].To
		p.MoveTo(end.X, end.Y)
		p.appendReversed(oldOpen[1:])
	}
}

// appendReversed adds the operations of sub to p, last to first, each
// replaced by its reverse.
func (p *Path) appendReversed(sub []Op) {
	for i := len(sub) - 1; i >= 0; i-- {
		op := &sub[i]
		switch op.Kind {
		case KindClose:
			p.MoveTo(op.From.X, op.From.Y)
		case KindCurveTo:
			p.curveTo(op.C2.X, op.C2.Y, op.C1.X, op.C1.Y, op.From.X, op.From.Y)
		case KindLineTo:
			p.lineTo(op.From.X, op.From.Y)
		case KindMoveTo:
			p.closeOpen()
		default:
			panic("dcpath: unexpected operation " + op.Kind.String())
		}
	}
}

// Append adds the subpaths of other to p.  The closed subpaths of other are
// added after those of p.  If both paths have an open subpath, the two are
// joined by a straight line from the current point of p to the start of
// the open subpath of other.  If only other has an open subpath, p takes
// over a copy of it.  other is not modified.
func (p *Path) Append(other *Path) {
	if other == p {
		other = p.Clone()
	}
	for _, sub := range other.closed {
		p.closed = append(p.closed, slices.Clone(sub))
	}

	switch {
	case p.open != nil && other.open != nil:
		start := other.open[0].From
		p.lineTo(start.X, start.Y)
		p.open = append(p.open, other.open[1:]...)
	case other.open != nil:
		p.open = slices.Clone(other.open)
	}

	p.box.merge(other.box)
}

// Translate moves all points of the path by (dx, dy).
func (p *Path) Translate(dx, dy float64) {
	p.mapPoints(func(pt Point) Point {
		return Point{X: pt.X + dx, Y: pt.Y + dy}
	})
}

// Scale scales all points of the path by sx horizontally and sy
// vertically, relative to the origin.
func (p *Path) Scale(sx, sy float64) {
	p.mapPoints(func(pt Point) Point {
		return Point{X: pt.X * sx, Y: pt.Y * sy}
	})
}

// Rotate rotates all points of the path counter-clockwise (as seen on a
// screen where y points down) by the given angle around the origin.
// The resulting coordinates are rounded down to integers.
func (p *Path) Rotate(radians float64) {
	sin, cos := math.Sincos(radians)
	p.mapPoints(func(pt Point) Point {
		return Point{
			X: math.Floor(cos*pt.X + sin*pt.Y),
			Y: math.Floor(cos*pt.Y - sin*pt.X),
		}
	})
}

// mapPoints replaces every point stored in the path by f applied to it
// and recomputes the bounding box.
func (p *Path) mapPoints(f func(Point) Point) {
	box := bbox{}
	apply := func(pt *Point) {
		*pt = f(*pt)
		box.add(*pt)
	}
	for _, sub := range p.closed {
		for i := range sub {
			sub[i].points(apply)
		}
	}
	for i := range p.open {
		p.open[i].points(apply)
	}
	p.box = box
}
