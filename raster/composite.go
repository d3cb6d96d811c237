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
	"fmt"
	"image"
)

// CompositeOp selects how two masks are combined by Composite.
type CompositeOp int

const (
	// OpOr keeps pixels covered by either mask.
	OpOr CompositeOp = iota

	// OpAnd keeps pixels covered by both masks.
	OpAnd

	// OpAndNot keeps pixels covered by the first mask but not the second.
	OpAndNot

	// OpXor keeps pixels covered by exactly one of the masks.
	OpXor
)

func (op CompositeOp) String() string {
	switch op {
	case OpOr:
		return "or"
	case OpAnd:
		return "and"
	case OpAndNot:
		return "and-not"
	case OpXor:
		return "xor"
	default:
		return fmt.Sprintf("CompositeOp(%d)", int(op))
	}
}

// CompositeBounds returns the bounds of the mask Composite(dst, src, op)
// would return.  OpAnd gives the intersection of both bounds, OpAndNot the
// bounds of dst, and the other operations the union.
func CompositeBounds(dst, src *Mask, op CompositeOp) image.Rectangle {
	db, sb := dst.Bounds(), src.Bounds()
	switch op {
	case OpAnd:
		return db.Intersect(sb)
	case OpAndNot:
		return db
	default:
		return db.Union(sb)
	}
}

// Composite combines dst and src pixel by pixel and returns the result as
// a new mask with bounds [CompositeBounds].  Pixels outside a mask count
// as empty.  Neither argument is modified.
//
// Rows which neither mask covers are skipped, so the cost is dominated by
// the rows the masks actually occupy.
func Composite(dst, src *Mask, op CompositeOp) *Mask {
	if op < OpOr || op > OpXor {
		panic("raster: unknown composite operation " + op.String())
	}

	b := CompositeBounds(dst, src, op)
	res := NewMask(b)
	if b.Empty() {
		return res
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		d, dx := dst.span(y, b.Min.X, b.Max.X)
		s, sx := src.span(y, b.Min.X, b.Max.X)
		if d == nil && s == nil {
			continue
		}
		out := res.img.Pix[res.img.PixOffset(b.Min.X, y):][:b.Dx()]

		// the result bounds are chosen so that for OpAnd both spans cover
		// the whole row, and for OpAndNot the dst span does
		if d != nil {
			copy(out[dx-b.Min.X:], d)
		}
		if s == nil {
			if op == OpAnd {
				clear(out)
			}
			continue
		}
		out = out[sx-b.Min.X:][:len(s)]
		switch op {
		case OpOr:
			for i, v := range s {
				out[i] |= v
			}
		case OpAnd:
			for i, v := range s {
				out[i] &= v
			}
		case OpAndNot:
			for i, v := range s {
				out[i] &^= v
			}
		case OpXor:
			for i, v := range s {
				out[i] ^= v
			}
		}
	}
	return res
}

// span returns the pixels of row y between x0 and x1 which lie inside the
// mask, together with the x coordinate of the first one.  The result is
// nil if there are none.
func (m *Mask) span(y, x0, x1 int) ([]uint8, int) {
	b := m.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return nil, 0
	}
	x0, x1 = max(x0, b.Min.X), min(x1, b.Max.X)
	if x0 >= x1 {
		return nil, 0
	}
	off := m.img.PixOffset(x0, y)
	return m.img.Pix[off : off+x1-x0], x0
}
