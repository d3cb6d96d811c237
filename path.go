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

	"seehuhn.de/go/geom/rect"
)

// Path is a vector path made of at most one open subpath and any number
// of closed subpaths.  The closed subpaths are kept in drawing order.
// A Path also tracks the bounding box of all points added to it,
// including the control points of curves.
//
// The zero value is an empty path, ready to use.
// A Path is not safe for concurrent use.
type Path struct {
	open   []Op   // current open subpath, nil if there is none
	closed [][]Op // closed subpaths, each terminated by a Close

	box bbox
}

// bbox is a bounding box which is undefined until the first point is added.
type bbox struct {
	valid                  bool
	minX, minY, maxX, maxY float64
}

func (b *bbox) add(p Point) {
	if !b.valid {
		*b = bbox{valid: true, minX: p.X, minY: p.Y, maxX: p.X, maxY: p.Y}
		return
	}
	b.minX = min(b.minX, p.X)
	b.minY = min(b.minY, p.Y)
	b.maxX = max(b.maxX, p.X)
	b.maxY = max(b.maxY, p.Y)
}

func (b *bbox) merge(other bbox) {
	if !other.valid {
		return
	}
	if !b.valid {
		*b = other
		return
	}
	b.minX = min(b.minX, other.minX)
	b.minY = min(b.minY, other.minY)
	b.maxX = max(b.maxX, other.maxX)
	b.maxY = max(b.maxY, other.maxY)
}

// NewPath returns a new, empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).  If there is an open subpath,
// it is closed first.
func (p *Path) MoveTo(x, y float64) {
	if p.open != nil {
		p.closeOpen()
	}
	pt := Point{X: x, Y: y}
	p.open = append(make([]Op, 0, 8), Op{Kind: KindMoveTo, From: pt, To: pt})
	p.box.add(pt)
}

// LineTo appends a straight line from the current point to (x, y).
func (p *Path) LineTo(x, y float64) error {
	if p.open == nil {
		return ErrNoOpenPath
	}
	p.lineTo(x, y)
	return nil
}

// lineTo is LineTo without the check for an open subpath.
func (p *Path) lineTo(x, y float64) {
	pt := Point{X: x, Y: y}
	p.open = append(p.open, Op{Kind: KindLineTo, From: p.last(), To: pt})
	p.box.add(pt)
}

// CurveTo appends a cubic Bézier curve from the current point to (x3, y3),
// with control points (cx1, cy1) and (cx2, cy2).  The bounding box is
// extended to include both control points.
func (p *Path) CurveTo(cx1, cy1, cx2, cy2, x3, y3 float64) error {
	if p.open == nil {
		return ErrNoOpenPath
	}
	p.curveTo(cx1, cy1, cx2, cy2, x3, y3)
	return nil
}

func (p *Path) curveTo(cx1, cy1, cx2, cy2, x3, y3 float64) {
	op := Op{
		Kind: KindCurveTo,
		C1:   Point{X: cx1, Y: cy1},
		C2:   Point{X: cx2, Y: cy2},
		From: p.last(),
		To:   Point{X: x3, Y: y3},
	}
	p.open = append(p.open, op)
	p.box.add(op.C1)
	p.box.add(op.C2)
	p.box.add(op.To)
}

// Close closes the open subpath and moves it to the list of closed
// subpaths.  Afterwards there is no open subpath until the next MoveTo.
func (p *Path) Close() error {
	if p.open == nil {
		return ErrNoOpenPath
	}
	p.closeOpen()
	return nil
}

// closeOpen appends a Close to the open subpath and moves the subpath to
// the closed list.  The caller must ensure that p.open is not nil.
func (p *Path) closeOpen() {
	end := p.last()
	p.open = append(p.open, Op{Kind: KindClose, From: end, To: end})
	p.closed = append(p.closed, p.open)
	p.open = nil
}

// last returns the end point of the open subpath.
func (p *Path) last() Point {
	return p.open[len(p.open)-1].To
}

// CurrentPoint returns the end point of the open subpath.
// The second return value is false if there is no open subpath.
func (p *Path) CurrentPoint() (Point, bool) {
	if p.open == nil {
		return Point{}, false
	}
	return p.last(), true
}

// IsOpen reports whether the path has an open subpath.
func (p *Path) IsOpen() bool {
	return p.open != nil
}

// IsEmpty reports whether no points have been added to the path since it
// was created or last reset.
func (p *Path) IsEmpty() bool {
	return !p.box.valid
}

// Reset removes all subpaths and clears the bounding box.
func (p *Path) Reset() {
	p.open = nil
	p.closed = nil
	p.box = bbox{}
}

// BoundingBox returns the bounding box of all points in the path,
// rounded to the nearest integers.  For curves, the control points are
// included.
func (p *Path) BoundingBox() (rect.Rect, error) {
	if !p.box.valid {
		return rect.Rect{}, ErrEmptyPath
	}
	return rect.Rect{
		LLx: math.Round(p.box.minX),
		LLy: math.Round(p.box.minY),
		URx: math.Round(p.box.maxX),
		URy: math.Round(p.box.maxY),
	}, nil
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	res := &Path{
		open: slices.Clone(p.open),
		box:  p.box,
	}
	if len(p.closed) > 0 {
		res.closed = make([][]Op, len(p.closed))
		for i, sub := range p.closed {
			res.closed[i] = slices.Clone(sub)
		}
	}
	return res
}

// ClosedSubpaths returns a copy of the closed subpaths, in drawing order.
func (p *Path) ClosedSubpaths() [][]Op {
	res := make([][]Op, len(p.closed))
	for i, sub := range p.closed {
		res[i] = slices.Clone(sub)
	}
	return res
}

// OpenSubpath returns a copy of the open subpath, or nil if there is none.
func (p *Path) OpenSubpath() []Op {
	return slices.Clone(p.open)
}

// Ops returns all operations in drawing order: the closed subpaths
// first, followed by the open subpath.
func (p *Path) Ops() []Op {
	n := len(p.open)
	for _, sub := range p.closed {
		n += len(sub)
	}
	res := make([]Op, 0, n)
	for _, sub := range p.closed {
		res = append(res, sub...)
	}
	return append(res, p.open...)
}
