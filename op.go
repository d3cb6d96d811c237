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

	"seehuhn.de/go/geom/vec"
)

// Point is a position in user space.
type Point = vec.Vec2

// Kind identifies the type of a path operation.
type Kind uint8

// These are the four primitive path operations.  All other shapes are
// expressed in terms of these.
const (
	KindMoveTo Kind = iota
	KindLineTo
	KindCurveTo
	KindClose
)

func (k Kind) String() string {
	switch k {
	case KindMoveTo:
		return "MoveTo"
	case KindLineTo:
		return "LineTo"
	case KindCurveTo:
		return "CurveTo"
	case KindClose:
		return "Close"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Op is a single path operation.
//
// From is the end point of the previous operation in the same subpath
// (for MoveTo, the point itself) and To is the end point of this
// operation.  C1 and C2 are the control points of a CurveTo and are
// unused for all other kinds.  A Close has From == To, both equal to
// the end point of the operation before it.
//
// All fields are values, so copying an Op never shares state with the
// original.
type Op struct {
	Kind   Kind
	C1, C2 Point
	From   Point
	To     Point
}

// points calls fn for every point stored in op, in the order C1, C2,
// From, To.  Points which are unused for op.Kind are skipped.
func (op *Op) points(fn func(p *Point)) {
	if op.Kind == KindCurveTo {
		fn(&op.C1)
		fn(&op.C2)
	}
	fn(&op.From)
	fn(&op.To)
}

func (op Op) String() string {
	switch op.Kind {
	case KindMoveTo, KindLineTo:
		return fmt.Sprintf("%s(%g,%g)", op.Kind, op.To.X, op.To.Y)
	case KindCurveTo:
		return fmt.Sprintf("%s(%g,%g,%g,%g,%g,%g)", op.Kind,
			op.C1.X, op.C1.Y, op.C2.X, op.C2.Y, op.To.X, op.To.Y)
	default:
		return op.Kind.String() + "()"
	}
}
