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

package raster

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Rasterizer computes the fraction of each device pixel which is covered
// by a filled path.  Coverage values range from 0 (outside) to 1 (inside).
//
// A Rasterizer keeps its scratch buffers between calls, so one instance
// should be reused for many paths.  It is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  It must be invertible.
	CTM matrix.Matrix

	// Clip limits the output to this device space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the line segments which replace it.  It must be positive.
	Flatness float64

	// denseLimit is the largest bounding box area, in pixels, which is
	// rasterized using a full 2D accumulation buffer.  Larger paths are
	// scanned one row at a time using an active edge list.
	denseLimit int

	edges  []edge
	box    devBox
	cover  []float32
	area   []float32
	active []int
	dirty  []bool
}

// edge is a line segment in device space, oriented so that y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // change of x per unit of y
	dir    float32 // +1 if the segment was drawn downwards, -1 otherwise
}

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// devBox is the device space bounding box of the collected edges.
type devBox struct {
	valid                  bool
	xMin, yMin, xMax, yMax float64
}

func (b *devBox) extend(e *edge) {
	xl, xr := min(e.x0, e.x1), max(e.x0, e.x1)
	if !b.valid {
		*b = devBox{valid: true, xMin: xl, yMin: e.y0, xMax: xr, yMax: e.y1}
		return
	}
	b.xMin = min(b.xMin, xl)
	b.xMax = max(b.xMax, xr)
	b.yMin = min(b.yMin, e.y0)
	b.yMax = max(b.yMax, e.y1)
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, the
// identity CTM and the default flatness.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		denseLimit: denseAreaLimit,
	}
}

// Reset restores the default CTM and flatness and sets a new clip
// rectangle.  The scratch buffers are kept.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.edges = r.edges[:0]
	r.box = devBox{}
	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.active = r.active[:0]
	r.dirty = r.dirty[:0]
}

// FillRule selects how the inside of a self-intersecting path is
// determined.
type FillRule int

const (
	// NonZero treats a point as inside if the winding number is not zero.
	NonZero FillRule = iota

	// EvenOdd treats a point as inside if a ray from the point crosses
	// the path an odd number of times.
	EvenOdd
)

func (f FillRule) String() string {
	switch f {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(f))
	}
}

// FillNonZero fills p using the nonzero winding rule.
// See [Rasterizer.Fill] for the meaning of emit.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, NonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
// See [Rasterizer.Fill] for the meaning of emit.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.Fill(p, EvenOdd, emit)
}

// Fill fills p using the given rule.  Open subpaths are closed implicitly.
//
// For every device row which contains covered pixels, emit is called with
// the row index, the x coordinate of the first covered pixel, and the
// coverage values starting at that pixel.  Rows are reported in
// increasing order.  The coverage slice is only valid during the call.
func (r *Rasterizer) Fill(p *path.Data, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	x0, x1, y0, y1, ok := r.collectEdges(p)
	if !ok {
		return
	}
	if (x1-x0)*(y1-y0) < r.denseLimit {
		r.fillDense(x0, x1, y0, y1, rule, emit)
	} else {
		r.fillSparse(x0, x1, y0, y1, rule, emit)
	}
}

// collectEdges converts p into device space edges.  The returned pixel
// range covers all edges, intersected with the clip rectangle.
// ok is false if nothing can be visible.
func (r *Rasterizer) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.box = devBox{}

	var cur, start vec.Vec2
	closeSubpath := func() {
		if cur != start {
			r.addEdge(cur, start)
		}
		cur = start
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// degree elevation
			q1, q2 := p.Coords[k], p.Coords[k+1]
			c1 := cur.Add(q1.Sub(cur).Mul(2.0 / 3))
			c2 := q2.Add(q1.Sub(q2).Mul(2.0 / 3))
			r.flattenCubic(cur, c1, c2, q2)
			cur = q2
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()

	if !r.box.valid {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.box.xMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.box.xMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.box.yMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.box.yMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms the user space segment a-b to device space and adds
// it to the edge list.  Horizontal segments do not contribute to coverage
// and are dropped.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	m := &r.CTM
	e := edge{
		x0:  m[0]*a.X + m[2]*a.Y + m[4],
		y0:  m[1]*a.X + m[3]*a.Y + m[5],
		x1:  m[0]*b.X + m[2]*b.Y + m[4],
		y1:  m[1]*b.X + m[3]*b.Y + m[5],
		dir: 1,
	}
	if math.Abs(e.y1-e.y0) < horizontalEdgeThreshold {
		return
	}
	if e.y1 < e.y0 {
		e.x0, e.y0, e.x1, e.y1 = e.x1, e.y1, e.x0, e.y0
		e.dir = -1
	}
	e.dxdy = (e.x1 - e.x0) / (e.y1 - e.y0)

	r.edges = append(r.edges, e)
	r.box.extend(&e)
}

// flattenCubic replaces the cubic Bézier curve p0, p1, p2, p3 (user space)
// by line segments.  The number of segments follows Wang's formula,
// evaluated for the device space size of the curve.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// linear applies the CTM without its translation part.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// Each pixel of a row collects two numbers from the edges crossing it.
// cover is the signed height of the edge parts inside the pixel column.
// area is cover weighted by the fraction of the pixel to the right of the
// edge.  Summing cover from the left end of the row and adding area for
// the current pixel gives the signed area of the path inside the pixel,
// which integrate turns into coverage.  Contributions left of the pixel
// range are added in full to the first pixel.

// accumulate adds the part of e inside row y to the cover and area
// buffers for the pixel range [xMin, xMax).  It reports whether e
// intersects the row.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	yTop := max(float64(y), e.y0)
	yBot := min(float64(y+1), e.y1)
	if yBot <= yTop {
		return false
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	width := xMax - xMin
	switch {
	case pixLeft >= xMax:
		return true
	case pixRight < xMin:
		c := e.dir * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return true
	}

	for pix := pixLeft; pix <= pixRight; pix++ {
		lo, hi := yTop, yBot
		if pixLeft != pixRight {
			ya := e.y0 + (float64(pix)-e.x0)/e.dxdy
			yb := e.y0 + (float64(pix+1)-e.x0)/e.dxdy
			lo = max(min(ya, yb), yTop)
			hi = min(max(ya, yb), yBot)
			if hi <= lo {
				continue
			}
		}
		c := e.dir * float32(hi-lo)
		frac := e.xAt((lo+hi)/2) - float64(pix)

		idx := pix - xMin
		switch {
		case idx < 0:
			cover[0] += c
			area[0] += c
		case idx < width:
			cover[idx] += c
			area[idx] += c * float32(1-frac)
		}
	}
	return true
}

// integrate turns the accumulated cover and area values of one row into
// coverage, in place in cover.
func integrate(rule FillRule, cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := abs32(acc + area[i])
		acc += cover[i]
		if rule == EvenOdd {
			m := raw - 2*float32(int(raw/2))
			cover[i] = 1 - abs32(1-m)
		} else {
			cover[i] = min(raw, 1)
		}
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// nonZeroSpan returns the part of coverage between the first and the last
// non-zero value, together with its offset.  The result is nil if all
// values are zero.
func nonZeroSpan(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

// fillDense accumulates all edges into a 2D buffer covering the pixel
// range, and then integrates the rows one by one.
func (r *Rasterizer) fillDense(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin
	size := width * height

	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.dirty = slices.Grow(r.dirty[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.dirty)

	for i := range r.edges {
		e := &r.edges[i]
		first := max(int(math.Floor(e.y0)), yMin)
		last := min(int(math.Floor(e.y1))+1, yMax)
		for y := first; y < last; y++ {
			row := y - yMin
			off := row * width
			if accumulate(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax) {
				r.dirty[row] = true
			}
		}
	}

	for row, dirty := range r.dirty {
		if !dirty {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrate(rule, coverage, r.area[off:off+width])
		if span, k := nonZeroSpan(coverage); span != nil {
			emit(yMin+row, xMin+k, span)
		}
	}
}

// fillSparse scans the pixel range row by row, keeping a list of the
// edges which intersect the current row.  Only one row of buffer space
// is needed.
func (r *Rasterizer) fillSparse(xMin, xMax, yMin, yMax int, rule FillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bottom := float64(y), float64(y+1)

		for next < len(r.edges) && r.edges[next].y0 < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if accumulate(e, y, r.cover, r.area, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(rule, r.cover, r.area)
		if span, k := nonZeroSpan(r.cover); span != nil {
			emit(y, xMin+k, span)
		}
	}
}

// defaultFlatness is the default curve flattening tolerance in device
// pixels.
const defaultFlatness = 0.25

const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// denseAreaLimit is the default for Rasterizer.denseLimit.
	denseAreaLimit = 65536
)
