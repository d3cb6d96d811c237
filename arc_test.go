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
	"testing"
)

func (c Cubic) at(t float64) Point {
	u := 1 - t
	return c.P0.Mul(u * u * u).
		Add(c.P1.Mul(3 * u * u * t)).
		Add(c.P2.Mul(3 * u * t * t)).
		Add(c.P3.Mul(t * t * t))
}

// ellipseDistance approximates the distance from p to the ellipse with
// center (cx, cy) and semi-axes a, b by dense sampling.
func ellipseDistance(p Point, cx, cy, a, b float64) float64 {
	const n = 20000
	best := math.Inf(1)
	for i := range n {
		eta := 2 * math.Pi * float64(i) / n
		q := Point{X: cx + a*math.Cos(eta), Y: cy + b*math.Sin(eta)}
		best = min(best, dist(p, q))
	}
	return best
}

func TestApproximateArcDeviation(t *testing.T) {
	tests := []struct {
		name       string
		a, b       float64
		eta1, eta2 float64
	}{
		{"circle", 50, 50, 0, -2 * math.Pi},
		{"wide", 100, 40, 0.3, -4},
		{"tall", 40, 100, 2, -1},
		{"flat", 50, 5, 0, -2 * math.Pi},
		{"large", 1000, 1000, 0, -math.Pi},
		{"small", 3, 2, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const cx, cy = 10, 20
			var segs []Cubic
			capped := ApproximateArc(cx, cy, tt.a, tt.b, tt.eta1, tt.eta2, func(c Cubic) {
				segs = append(segs, c)
			})
			if capped {
				t.Error("subdivision capped")
			}
			if len(segs) == 0 {
				t.Fatal("no segments")
			}

			start := Point{X: cx + tt.a*math.Cos(tt.eta1), Y: cy + tt.b*math.Sin(tt.eta1)}
			end := Point{X: cx + tt.a*math.Cos(tt.eta2), Y: cy + tt.b*math.Sin(tt.eta2)}
			if dist(segs[0].P0, start) > 1e-9 {
				t.Errorf("first segment starts at %v, want %v", segs[0].P0, start)
			}
			if dist(segs[len(segs)-1].P3, end) > 1e-9 {
				t.Errorf("last segment ends at %v, want %v", segs[len(segs)-1].P3, end)
			}

			var maxDev float64
			for i, c := range segs {
				if i > 0 && c.P0 != segs[i-1].P3 {
					t.Errorf("segment %d starts at %v, previous ends at %v", i, c.P0, segs[i-1].P3)
				}
				for j := range 17 {
					d := ellipseDistance(c.at(float64(j)/16), cx, cy, tt.a, tt.b)
					maxDev = max(maxDev, d)
				}
			}
			if maxDev >= ArcTolerance {
				t.Errorf("maximum deviation %g, want < %g", maxDev, ArcTolerance)
			}
		})
	}
}

func TestApproximateArcSplitsLargeSpans(t *testing.T) {
	// even a tiny circle needs four segments for a full turn
	n := 0
	ApproximateArc(0, 0, 0.1, 0.1, 0, -2*math.Pi, func(Cubic) { n++ })
	if n != 4 {
		t.Errorf("got %d segments, want 4", n)
	}
}

func TestApproximateArcEmpty(t *testing.T) {
	for _, eta := range [][2]float64{{0, 0}, {0, 1}, {math.NaN(), 0}} {
		n := 0
		ApproximateArc(0, 0, 10, 10, eta[0], eta[1], func(Cubic) { n++ })
		if n != 0 {
			t.Errorf("eta1=%g, eta2=%g: got %d segments, want none", eta[0], eta[1], n)
		}
	}
}

// segmentSpan returns the parameter range covered by c on the ellipse
// with center (0, 0) and semi-axes a and b.
func segmentSpan(c Cubic, a, b float64) float64 {
	eta0 := math.Atan2(c.P0.Y/b, c.P0.X/a)
	eta3 := math.Atan2(c.P3.Y/b, c.P3.X/a)
	d := math.Mod(eta0-eta3, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

func TestApproximateArcCapped(t *testing.T) {
	tests := []struct {
		name       string
		a, b       float64
		wantCapped bool
	}{
		{"circle", 50, 50, false},
		{"huge_circle", 1e9, 1e9, true},
		{"huge_ellipse", 1e9, 5e8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			capped := ApproximateArc(0, 0, tt.a, tt.b, 0, -2*math.Pi, func(c Cubic) {
				n++
				if d := segmentSpan(c, tt.a, tt.b); d > math.Pi/2+1e-9 {
					t.Errorf("segment %d spans %g > π/2", n, d)
				}
			})
			if capped != tt.wantCapped {
				t.Errorf("capped = %t, want %t", capped, tt.wantCapped)
			}
			if n < 4 || n > 4<<MaxArcDepth {
				t.Errorf("got %d segments, want between 4 and 4·2^MaxArcDepth", n)
			}
			if tt.wantCapped && n != 4<<MaxArcDepth {
				t.Errorf("capped arc: got %d segments, want %d", n, 4<<MaxArcDepth)
			}
		})
	}
}

func TestApproximateArcLongSpans(t *testing.T) {
	// more than a full turn is traced once
	n := 0
	ApproximateArc(0, 0, 10, 10, 0, -1e300, func(Cubic) { n++ })
	m := 0
	ApproximateArc(0, 0, 10, 10, 0, -2*math.Pi, func(Cubic) { m++ })
	if n != m {
		t.Errorf("got %d segments, want %d as for a full turn", n, m)
	}

	k := 0
	ApproximateArc(0, 0, 10, 10, 0, math.Inf(-1), func(Cubic) { k++ })
	if k != 0 {
		t.Errorf("infinite span: got %d segments, want none", k)
	}
}

func TestBezierErrorSymmetry(t *testing.T) {
	// a tall ellipse is a rotated wide one
	wide := bezierError(100, 40, 0.5, -0.5)
	tall := bezierError(40, 100, 0.5+math.Pi/2, -0.5+math.Pi/2)
	if math.Abs(wide-tall) > 1e-9*wide {
		t.Errorf("wide %g, tall %g", wide, tall)
	}
	if bezierError(50, 50, 0, -0.1) >= bezierError(50, 50, 0, -1) {
		t.Error("error estimate does not grow with the span")
	}
}
