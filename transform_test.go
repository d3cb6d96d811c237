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

	"seehuhn.de/go/geom/rect"
)

func endpoints(p *Path) []Point {
	var res []Point
	for _, op := range p.Ops() {
		res = append(res, op.To)
	}
	return res
}

func TestReverseInvolution(t *testing.T) {
	build := []struct {
		name string
		make func(p *Path)
	}{
		{"rectangle", func(p *Path) { p.Rectangle(1, 2, 30, 40) }},
		{"ellipse", func(p *Path) { p.Ellipse(0, 0, 70, 30) }},
		{"rounded", func(p *Path) { _ = p.RoundedRectangle(0, 0, 50, 40, 8) }},
		{"several", func(p *Path) {
			p.Rectangle(0, 0, 5, 5)
			p.MoveTo(10, 10)
			_ = p.CurveTo(11, 15, 16, 12, 20, 10)
			_ = p.LineTo(15, 5)
			_ = p.Close()
			p.Polygon([]Point{{X: 1, Y: 1}, {X: 4, Y: 9}, {X: 8, Y: 2}}, 0, 0)
		}},
	}
	for _, tt := range build {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			tt.make(p)
			orig := endpoints(p)
			box, _ := p.BoundingBox()

			p.Reverse()
			if box2, _ := p.BoundingBox(); box2 != box {
				t.Errorf("Reverse changed the bounding box: %v != %v", box2, box)
			}
			p.Reverse()

			got := endpoints(p)
			if len(got) != len(orig) {
				t.Fatalf("got %d operations, want %d", len(got), len(orig))
			}
			for i := range got {
				if got[i] != orig[i] {
					t.Errorf("op %d ends at %v, want %v", i, got[i], orig[i])
				}
			}
			for _, sub := range p.ClosedSubpaths() {
				checkChain(t, sub)
			}
		})
	}
}

func TestReverseDirection(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 10, 20)
	p.Reverse()
	want := "MoveTo(0,0)\nLineTo(0,20)\nLineTo(10,20)\nLineTo(10,0)\nLineTo(0,0)\nClosePath()\n"
	if got := p.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}

	// curves keep their shape, with swapped control points
	q := NewPath()
	q.MoveTo(0, 0)
	_ = q.CurveTo(1, 2, 3, 4, 5, 6)
	_ = q.Close()
	q.Reverse()
	ops := q.ClosedSubpaths()[0]
	c := ops[1]
	if c.Kind != KindCurveTo || c.C1 != (Point{X: 3, Y: 4}) || c.C2 != (Point{X: 1, Y: 2}) || c.To != (Point{}) {
		t.Errorf("reversed curve: %v", c)
	}
}

func TestReverseOpenSubpath(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 1, 1)
	p.MoveTo(0, 0)
	_ = p.LineTo(5, 0)
	_ = p.LineTo(5, 5)
	p.Reverse()

	if !p.IsOpen() {
		t.Fatal("open subpath lost")
	}
	var got []Point
	for _, op := range p.OpenSubpath() {
		got = append(got, op.To)
	}
	want := []Point{{X: 5, Y: 5}, {X: 5, Y: 0}, {X: 0, Y: 0}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
	checkChain(t, p.OpenSubpath())
}

func TestAppend(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		p := NewPath()
		p.Rectangle(0, 0, 10, 10)
		q := NewPath()
		q.Rectangle(20, 20, 5, 5)
		p.Append(q)

		if n := len(p.ClosedSubpaths()); n != 2 {
			t.Errorf("got %d closed subpaths, want 2", n)
		}
		box, _ := p.BoundingBox()
		if want := (rect.Rect{URx: 25, URy: 25}); box != want {
			t.Errorf("bounding box: got %v, want %v", box, want)
		}

		// q is not shared
		q.Translate(100, 0)
		if box2, _ := p.BoundingBox(); box2 != box {
			t.Error("appended subpaths share storage with the argument")
		}
	})

	t.Run("both_open", func(t *testing.T) {
		p := NewPath()
		p.MoveTo(0, 0)
		_ = p.LineTo(1, 0)
		q := NewPath()
		q.MoveTo(5, 5)
		_ = q.LineTo(6, 6)
		p.Append(q)

		want := "MoveTo(0,0)\nLineTo(1,0)\nLineTo(5,5)\nLineTo(6,6)\n"
		if got := p.String(); got != want {
			t.Errorf("got\n%s\nwant\n%s", got, want)
		}
		checkChain(t, p.OpenSubpath())
	})

	t.Run("other_open", func(t *testing.T) {
		p := NewPath()
		p.Rectangle(0, 0, 1, 1)
		q := NewPath()
		q.MoveTo(5, 5)
		_ = q.LineTo(6, 6)
		p.Append(q)

		if pt, ok := p.CurrentPoint(); !ok || pt != (Point{X: 6, Y: 6}) {
			t.Errorf("current point: %v, %t", pt, ok)
		}
		_ = p.LineTo(7, 7)
		if len(q.OpenSubpath()) != 2 {
			t.Error("extending the result modified the argument")
		}
	})

	t.Run("self", func(t *testing.T) {
		p := NewPath()
		p.Rectangle(0, 0, 1, 1)
		p.Append(p)
		if n := len(p.ClosedSubpaths()); n != 2 {
			t.Errorf("got %d closed subpaths, want 2", n)
		}
	})
}

func TestTranslateScale(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 2)
	_ = p.CurveTo(3, 4, 5, 6, 7, 8)

	p.Translate(10, -2)
	box, _ := p.BoundingBox()
	if want := (rect.Rect{LLx: 11, LLy: 0, URx: 17, URy: 6}); box != want {
		t.Errorf("after Translate: got %v, want %v", box, want)
	}
	ops := p.OpenSubpath()
	if ops[1].From != (Point{X: 11, Y: 0}) || ops[1].C1 != (Point{X: 13, Y: 2}) {
		t.Errorf("curve not translated: %v from %v", ops[1], ops[1].From)
	}

	p.Scale(2, -1)
	box, _ = p.BoundingBox()
	if want := (rect.Rect{LLx: 22, LLy: -6, URx: 34, URy: 0}); box != want {
		t.Errorf("after Scale: got %v, want %v", box, want)
	}
}

func TestRotate(t *testing.T) {
	p := NewPath()
	p.MoveTo(10, 0)
	_ = p.LineTo(10, 5)

	// a quarter turn counter-clockwise on screen maps +x to -y
	p.Rotate(math.Pi / 2)
	ops := p.OpenSubpath()
	want := []Point{{X: 0, Y: -10}, {X: 5, Y: -10}}
	for i, op := range ops {
		if math.Abs(op.To.X-want[i].X) > 1 || math.Abs(op.To.Y-want[i].Y) > 1 {
			t.Errorf("point %d: got %v, want %v", i, op.To, want[i])
		}
		if op.To.X != math.Floor(op.To.X) || op.To.Y != math.Floor(op.To.Y) {
			t.Errorf("point %d not rounded down: %v", i, op.To)
		}
	}
	box, _ := p.BoundingBox()
	if box.LLy > -9 || box.URy > -9 {
		t.Errorf("bounding box not recomputed: %v", box)
	}
}
