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
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// CommandSink receives absolute path commands.  Rendering surfaces
// implement this interface to consume a Path.
type CommandSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// ReplayTo sends the path to a rendering surface: first the closed
// subpaths in drawing order, then the open subpath.  All coordinates are
// rounded to the nearest integer.
func (p *Path) ReplayTo(sink CommandSink) {
	for _, sub := range p.closed {
		replay(sub, sink)
	}
	replay(p.open, sink)
}

func replay(sub []Op, sink CommandSink) {
	r := roundCoord
	for i := range sub {
		op := &sub[i]
		switch op.Kind {
		case KindMoveTo:
			sink.MoveTo(r(op.To.X), r(op.To.Y))
		case KindLineTo:
			sink.LineTo(r(op.To.X), r(op.To.Y))
		case KindCurveTo:
			sink.CurveTo(r(op.C1.X), r(op.C1.Y), r(op.C2.X), r(op.C2.Y), r(op.To.X), r(op.To.Y))
		case KindClose:
			sink.ClosePath()
		default:
			panic("dcpath: unexpected operation " + op.Kind.String())
		}
	}
}

// roundCoord rounds x to the nearest integer, mapping -0 to 0.
func roundCoord(x float64) float64 {
	return math.Round(x) + 0
}

// RasterData returns the rounded command stream of ReplayTo as path
// data, ready for filling by a rasterizer.
func (p *Path) RasterData() *path.Data {
	s := &dataSink{d: &path.Data{}}
	p.ReplayTo(s)
	return s.d
}

type dataSink struct {
	d *path.Data
}

func (s *dataSink) MoveTo(x, y float64) {
	s.d = s.d.MoveTo(vec.Vec2{X: x, Y: y})
}

func (s *dataSink) LineTo(x, y float64) {
	s.d = s.d.LineTo(vec.Vec2{X: x, Y: y})
}

func (s *dataSink) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	s.d = s.d.CubeTo(vec.Vec2{X: x1, Y: y1}, vec.Vec2{X: x2, Y: y2}, vec.Vec2{X: x3, Y: y3})
}

func (s *dataSink) ClosePath() {
	s.d = s.d.Close()
}

// Data returns the exact, unrounded geometry of the path.
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			d = d.MoveTo(pts[0])
		case path.CmdLineTo:
			d = d.LineTo(pts[0])
		case path.CmdCubeTo:
			d = d.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			d = d.Close()
		}
	}
	return d
}

// Iter returns an iterator over the unrounded path commands, in the same
// order as ReplayTo.  The slice passed to yield is only valid during the
// call.
func (p *Path) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [3]vec.Vec2
		emit := func(op *Op) bool {
			switch op.Kind {
			case KindMoveTo:
				buf[0] = op.To
				return yield(path.CmdMoveTo, buf[:1])
			case KindLineTo:
				buf[0] = op.To
				return yield(path.CmdLineTo, buf[:1])
			case KindCurveTo:
				buf[0], buf[1], buf[2] = op.C1, op.C2, op.To
				return yield(path.CmdCubeTo, buf[:3])
			default:
				return yield(path.CmdClose, nil)
			}
		}
		for _, sub := range p.closed {
			for i := range sub {
				if !emit(&sub[i]) {
					return
				}
			}
		}
		for i := range p.open {
			if !emit(&p.open[i]) {
				return
			}
		}
	}
}

// String lists the rounded commands of the path, one per line.
func (p *Path) String() string {
	s := &stringSink{}
	p.ReplayTo(s)
	return s.String()
}

type stringSink struct {
	strings.Builder
}

func (s *stringSink) MoveTo(x, y float64) {
	fmt.Fprintf(s, "MoveTo(%g,%g)\n", x, y)
}

func (s *stringSink) LineTo(x, y float64) {
	fmt.Fprintf(s, "LineTo(%g,%g)\n", x, y)
}

func (s *stringSink) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	fmt.Fprintf(s, "CurveTo(%g,%g,%g,%g,%g,%g)\n", x1, y1, x2, y2, x3, y3)
}

func (s *stringSink) ClosePath() {
	s.WriteString("ClosePath()\n")
}
