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

// ArcTolerance is the maximum deviation, in user space units, between a
// Bézier segment produced by ApproximateArc and the true elliptical arc.
const ArcTolerance = 0.5

// MaxArcDepth limits the recursive subdivision in ApproximateArc.  Each
// piece of at most a quarter turn is halved at most MaxArcDepth times, so
// it yields at most 2^MaxArcDepth segments.  Once this depth is reached,
// segments are emitted even if the error estimate is still above
// ArcTolerance.  This only happens for extreme radii.
const MaxArcDepth = 12

// Cubic is a cubic Bézier segment with start point P0, control points P1
// and P2, and end point P3.
type Cubic struct {
	P0, P1, P2, P3 Point
}

// ApproximateArc approximates an elliptical arc by cubic Bézier segments
// and calls emit for each segment, in order.
//
// The ellipse has center (cx, cy) and semi-axes a (along x) and b (along y).
// Points on the ellipse are (cx + a·cos η, cy + b·sin η).  The arc runs
// from η = eta1 down to η = eta2, so eta1 must be greater than eta2;
// otherwise nothing is emitted.  Spans of more than a full turn are
// shortened to one full turn.  The arc is first cut into equal pieces of
// at most π/2, which are then halved until the error estimate is below
// ArcTolerance.
//
// The return value reports whether the subdivision was cut short by
// MaxArcDepth.
func ApproximateArc(cx, cy, a, b, eta1, eta2 float64, emit func(Cubic)) (capped bool) {
	if !(eta1 > eta2) || math.IsInf(eta1, 0) || math.IsInf(eta2, 0) {
		return false
	}
	span := min(eta1-eta2, 2*math.Pi)

	// equal pieces of at most a quarter turn
	pieces := max(int(math.Ceil(span/(math.Pi/2))), 1)
	from := eta1
	for i := 1; i <= pieces; i++ {
		to := eta1 - span*float64(i)/float64(pieces)
		if approximateArc(cx, cy, a, b, from, to, 0, emit) {
			capped = true
		}
		from = to
	}
	return capped
}

func approximateArc(cx, cy, a, b, eta1, eta2 float64, depth int, emit func(Cubic)) bool {
	if bezierError(a, b, eta1, eta2) < ArcTolerance {
		emit(arcSegment(cx, cy, a, b, eta1, eta2))
		return false
	}
	if depth >= MaxArcDepth {
		emit(arcSegment(cx, cy, a, b, eta1, eta2))
		return true
	}
	mid := (eta1 + eta2) / 2
	c1 := approximateArc(cx, cy, a, b, eta1, mid, depth+1, emit)
	c2 := approximateArc(cx, cy, a, b, mid, eta2, depth+1, emit)
	return c1 || c2
}

// arcSegment returns the single cubic Bézier which approximates the
// arc from eta1 down to eta2.
// See L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
// or cubic Bézier curves", 2003.
func arcSegment(cx, cy, a, b, eta1, eta2 float64) Cubic {
	d := eta1 - eta2
	k := math.Tan(d / 2)
	alpha := math.Sin(d) * (math.Sqrt(4+3*k*k) - 1) / 3

	sin1, cos1 := math.Sincos(eta1)
	sin2, cos2 := math.Sincos(eta2)

	p0 := Point{X: cx + a*cos1, Y: cy + b*sin1}
	p3 := Point{X: cx + a*cos2, Y: cy + b*sin2}

	// The tangent at η is (-a·sin η, b·cos η).  Since η decreases along
	// the arc, the control points move against the tangent at the start
	// and along it at the end.
	return Cubic{
		P0: p0,
		P1: Point{X: p0.X + alpha*a*sin1, Y: p0.Y - alpha*b*cos1},
		P2: Point{X: p3.X - alpha*a*sin2, Y: p3.Y + alpha*b*cos2},
		P3: p3,
	}
}

// Coefficients of the error model for cubic Bézier approximations.
// The index order is [c0 or c1][cos(0η), cos(2η), cos(4η), cos(6η)][rational function].
var (
	// 0 < b/a < 1/4
	cubicErrLow = [2][4][4]float64{
		{
			{3.85268, -21.229, -0.330434, 0.0127842},
			{-1.61486, 0.706564, 0.225945, 0.263682},
			{-0.910164, 0.388383, 0.00551445, 0.00671814},
			{-0.630184, 0.192402, 0.0098871, 0.0102527},
		},
		{
			{-0.162211, 9.94329, 0.13723, 0.0124084},
			{-0.253135, 0.00187735, 0.0230286, 0.01264},
			{-0.0695069, -0.0437594, 0.0120636, 0.0163087},
			{-0.0328856, -0.00926032, -0.00173573, 0.00527385},
		},
	}

	// 1/4 <= b/a <= 1
	cubicErrHigh = [2][4][4]float64{
		{
			{0.0899116, -19.2349, -4.11711, 0.183362},
			{0.138148, -1.45804, 1.32044, 1.38474},
			{0.230903, -0.450262, 0.219963, 0.414038},
			{0.0590565, -0.101062, 0.0430592, 0.0204699},
		},
		{
			{0.0164649, 9.89394, 0.0919496, 0.00760802},
			{0.0191603, -0.0322058, 0.0134667, -0.0825018},
			{0.0156192, -0.017535, 0.00326508, -0.228157},
			{-0.0236752, 0.0405821, -0.0173086, 0.176187},
		},
	}

	cubicErrSafety = [4]float64{0.001, 4.98, 0.207, 0.0067}
)

// bezierError estimates the maximum distance between the elliptical arc
// from eta1 to eta2 and its single cubic Bézier approximation.
func bezierError(a, b, eta1, eta2 float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	if b > a {
		// The model needs b/a <= 1.  Rotating the ellipse by 90° swaps
		// the axes and shifts the parameter by π/2.
		a, b = b, a
		eta1 -= math.Pi / 2
		eta2 -= math.Pi / 2
	}

	x := b / a
	coeffs := &cubicErrHigh
	if x < 0.25 {
		coeffs = &cubicErrLow
	}

	etaSum := eta1 + eta2
	var c0, c1 float64
	for j := range 4 {
		cj := math.Cos(float64(j) * etaSum)
		c0 += cj * rational(x, &coeffs[0][j])
		c1 += cj * rational(x, &coeffs[1][j])
	}

	return rational(x, &cubicErrSafety) * a * math.Exp(c0+c1*math.Abs(eta1-eta2))
}

// rational evaluates (c0·x² + c1·x + c2) / (x + c3).
func rational(x float64, c *[4]float64) float64 {
	return (x*(x*c[0]+c[1]) + c[2]) / (x + c[3])
}
