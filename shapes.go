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

import "math"

// Kappa is the control point offset, relative to the radius, for a cubic
// Bézier approximating a quarter circle.
const Kappa = 0.5522848

// Lines appends a straight line to each of the given points, shifted by
// (xOffset, yOffset).
func (p *Path) Lines(points []Point, xOffset, yOffset float64) error {
	if p.open == nil {
		return ErrNoOpenPath
	}
	for _, pt := range points {
		p.lineTo(pt.X+xOffset, pt.Y+yOffset)
	}
	return nil
}

// Rectangle adds the rectangle with corner (x, y), width w and height h
// as a closed subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.lineTo(x+w, y)
	p.lineTo(x+w, y+h)
	p.lineTo(x, y+h)
	p.lineTo(x, y)
	p.closeOpen()
}

// RoundedRectangle adds a rectangle with rounded corners as a closed
// subpath.
//
// The radius must be at most half of the shorter side.  A negative radius
// in the range [-0.5, 0) is interpreted as a fraction of the shorter side.
// Other values give a *RadiusError.
func (p *Path) RoundedRectangle(x, y, w, h, radius float64) error {
	shortest := min(w, h)
	if math.IsNaN(radius) || radius > 0.5*shortest || radius < -0.5 {
		return &RadiusError{Radius: radius, Limit: 0.5 * shortest}
	}
	if radius < 0 {
		radius = -radius * shortest
	}
	co := Kappa * radius

	p.MoveTo(x+radius, y)
	p.lineTo(x+w-radius, y)
	p.curveTo(x+w-co, y, x+w, y+co, x+w, y+radius)
	p.lineTo(x+w, y+h-radius)
	p.curveTo(x+w, y+h-co, x+w-co, y+h, x+w-radius, y+h)
	p.lineTo(x+radius, y+h)
	p.curveTo(x+co, y+h, x, y+h-co, x, y+h-radius)
	p.lineTo(x, y+radius)
	p.curveTo(x, y+co, x+co, y, x+radius, y)
	p.closeOpen()
	return nil
}

// Ellipse adds the ellipse inscribed in the given rectangle as a closed
// subpath.  An open subpath is closed first.
func (p *Path) Ellipse(x, y, w, h float64) {
	if p.open != nil {
		p.closeOpen()
	}
	p.Arc(x, y, w, h, 0, 2*math.Pi)
	if p.open != nil {
		p.closeOpen()
	}
}

// Arc appends an arc of the ellipse inscribed in the rectangle with
// corner (x, y), width w and height h.  Angles are in radians; the arc runs
// counter-clockwise from startAngle to endAngle, where 0 points in the
// direction of the positive x axis and π/2 points up (towards smaller y).
//
// A negative width or height moves the corner by that amount and uses the
// absolute value.  If the angles are equal, Arc does nothing.  If there is
// no open subpath, one is started at the beginning of the arc.  Otherwise
// the arc continues the open subpath from its current point.
func (p *Path) Arc(x, y, w, h, startAngle, endAngle float64) {
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	if startAngle == endAngle {
		return
	}
	if !isFinite(x, y, w, h, startAngle, endAngle) {
		Logger().Warn("ignoring arc with non-finite parameters",
			"x", x, "y", y, "w", w, "h", h, "start", startAngle, "end", endAngle)
		return
	}

	span := math.Mod(endAngle-startAngle, 2*math.Pi)
	if span < 0 {
		span += 2 * math.Pi
	}
	if span == 0 {
		span = 2 * math.Pi
	}

	// With y pointing down, a counter-clockwise sweep is a decreasing
	// ellipse parameter.
	a, b := w/2, h/2
	eta1 := -startAngle
	capped := ApproximateArc(x+a, y+b, a, b, eta1, eta1-span, func(c Cubic) {
		if p.open == nil {
			p.MoveTo(c.P0.X, c.P0.Y)
		}
		p.curveTo(c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y)
	})
	if capped {
		Logger().Warn("arc subdivision capped",
			"a", a, "b", b, "maxDepth", MaxArcDepth)
	}
}

// Polygon adds a closed subpath through the given points, shifted by
// (xOffset, yOffset).  An empty point list adds nothing.
func (p *Path) Polygon(points []Point, xOffset, yOffset float64) {
	if len(points) == 0 {
		return
	}
	start := points[0]
	p.MoveTo(start.X+xOffset, start.Y+yOffset)
	for _, pt := range points {
		p.lineTo(pt.X+xOffset, pt.Y+yOffset)
	}
	p.lineTo(start.X+xOffset, start.Y+yOffset)
	p.closeOpen()
}

func isFinite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
