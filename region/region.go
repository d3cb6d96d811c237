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

// Package region implements boolean algebra on filled areas.
//
// A [Region] holds a monochrome occupancy mask, painted from a
// [dcpath.Path], together with a bounding box.  Regions are combined with
// [Region.Union], [Region.Intersect], [Region.Subtract] and [Region.Xor].
// A region may be bound to a [Surface]; only regions with the same binding
// can be combined.
//
// The bounding box of a combined region is the union of both boxes, also
// for intersections and differences.  It is a superset of the covered
// area; [Region.TightBoundingBox] gives the exact extent of the mask.
package region

import (
	"fmt"
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dcpath"
	"seehuhn.de/go/dcpath/raster"
)

// EmptyAreaThreshold is the bounding box area, in square pixels, up to
// which a region counts as empty.
const EmptyAreaThreshold = 4

// MaxMaskArea is the largest mask, in pixels, an unbound region allocates.
// Setting a shape, or combining two regions, which would need a larger
// mask fails with [ErrMaskTooLarge].  Bound regions always use a mask the
// size of their surface.
const MaxMaskArea = 1 << 26

// maxMaskCoord bounds the pixel coordinates of an unbound mask.
const maxMaskCoord = 1 << 30

const defaultFlatness = 0.25

// Surface is a rendering target a region can be bound to.
//
// Surfaces are compared with ==, so implementations should be pointer
// types.
type Surface interface {
	// Bounds returns the pixel rectangle of the surface.
	Bounds() image.Rectangle

	// Transform returns the current map from user space to device pixels.
	Transform() matrix.Matrix
}

// Region is an area of the plane, represented by an occupancy mask.
//
// A Region is not safe for concurrent use.
type Region struct {
	surface  Surface
	rule     raster.FillRule
	flatness float64

	mask   *raster.Mask
	box    rect.Rect
	hasBox bool

	r *raster.Rasterizer
}

// New returns a new region.  An unbound region starts out empty.  A region
// bound to a surface starts out covering the whole surface.
func New(opts ...Option) *Region {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rgn := &Region{
		surface:  o.surface,
		rule:     o.rule,
		flatness: o.flatness,
		mask:     &raster.Mask{},
		r:        raster.NewRasterizer(rect.Rect{}),
	}
	if rgn.surface != nil {
		b := rgn.surface.Bounds()
		rgn.mask = raster.NewMask(b)
		rgn.mask.Fill()
		rgn.box = rectOf(b)
		rgn.hasBox = !b.Empty()
	}
	return rgn
}

// Surface returns the surface the region is bound to, or nil.
func (rgn *Region) Surface() Surface {
	return rgn.surface
}

// FillRule returns the winding rule used to paint shapes.
func (rgn *Region) FillRule() raster.FillRule {
	return rgn.rule
}

// Mask returns the occupancy mask of the region.  For a bound region the
// mask covers the surface; otherwise it covers the bounding box.  The mask
// is owned by the region and must not be modified.
func (rgn *Region) Mask() *raster.Mask {
	return rgn.mask
}

// BoundingBox returns the tracked bounding box, in user space.  The
// second return value is false if no shape has been set.
func (rgn *Region) BoundingBox() (rect.Rect, bool) {
	return rgn.box, rgn.hasBox
}

// TightBoundingBox returns the smallest pixel rectangle containing the
// covered part of the mask, in device pixels.  The second return value is
// false if no pixel is covered.
func (rgn *Region) TightBoundingBox() (rect.Rect, bool) {
	ext := rgn.mask.Extent()
	if ext.Empty() {
		return rect.Rect{}, false
	}
	return rectOf(ext), true
}

// Clone returns an independent copy of the region, bound to the same
// surface.
func (rgn *Region) Clone() *Region {
	return &Region{
		surface:  rgn.surface,
		rule:     rgn.rule,
		flatness: rgn.flatness,
		mask:     rgn.mask.Clone(),
		box:      rgn.box,
		hasBox:   rgn.hasBox,
		r:        raster.NewRasterizer(rect.Rect{}),
	}
}

// SetPath replaces the region by the area inside p, shifted by
// (xOffset, yOffset).  The path p is not modified.
//
// For an unbound region, the error is [ErrMaskTooLarge] if the bounding
// box of the shifted path exceeds [MaxMaskArea].  On error, the region is
// left unchanged.  The same holds for the other Set methods.
func (rgn *Region) SetPath(p *dcpath.Path, xOffset, yOffset float64) error {
	if xOffset != 0 || yOffset != 0 {
		p = p.Clone()
		p.Translate(xOffset, yOffset)
	}
	return rgn.set(p)
}

// SetRectangle replaces the region by a rectangle.
func (rgn *Region) SetRectangle(x, y, w, h float64) error {
	p := dcpath.NewPath()
	p.Rectangle(x, y, w, h)
	return rgn.set(p)
}

// SetRoundedRectangle replaces the region by a rectangle with rounded
// corners.  See [dcpath.Path.RoundedRectangle] for the meaning of radius.
// On error, the region is left unchanged.
func (rgn *Region) SetRoundedRectangle(x, y, w, h, radius float64) error {
	p := dcpath.NewPath()
	if err := p.RoundedRectangle(x, y, w, h, radius); err != nil {
		return err
	}
	return rgn.set(p)
}

// SetEllipse replaces the region by the ellipse inscribed in the given
// rectangle.
func (rgn *Region) SetEllipse(x, y, w, h float64) error {
	p := dcpath.NewPath()
	p.Ellipse(x, y, w, h)
	return rgn.set(p)
}

// SetArc replaces the region by the area between an elliptical arc and
// the chord joining its end points.
func (rgn *Region) SetArc(x, y, w, h, startAngle, endAngle float64) error {
	p := dcpath.NewPath()
	p.Arc(x, y, w, h, startAngle, endAngle)
	return rgn.set(p)
}

// SetPolygon replaces the region by the polygon through the given points,
// shifted by (xOffset, yOffset).
func (rgn *Region) SetPolygon(points []dcpath.Point, xOffset, yOffset float64) error {
	p := dcpath.NewPath()
	p.Polygon(points, xOffset, yOffset)
	return rgn.set(p)
}

func (rgn *Region) set(p *dcpath.Path) error {
	box, err := p.BoundingBox()
	hasBox := err == nil

	var b image.Rectangle
	if rgn.surface != nil {
		b = rgn.surface.Bounds()
	} else if hasBox {
		if err := checkMaskSize(box); err != nil {
			return err
		}
		b = image.Rect(int(box.LLx), int(box.LLy), int(box.URx), int(box.URy))
	}

	rgn.box, rgn.hasBox = box, hasBox
	if rgn.mask.Bounds() != b {
		rgn.mask = raster.NewMask(b)
	} else {
		rgn.mask.Clear()
	}
	if !hasBox || b.Empty() {
		return nil
	}

	rgn.r.Reset(rectOf(b))
	if rgn.surface != nil {
		rgn.r.CTM = rgn.surface.Transform()
	}
	rgn.r.Flatness = rgn.flatness
	rgn.r.FillMask(rgn.mask, p.RasterData(), rgn.rule)
	dcpath.Logger().Debug("region painted",
		"bounds", b, "rule", rgn.rule, "bound", rgn.surface != nil)
	return nil
}

// checkMaskSize returns ErrMaskTooLarge if an unbound mask covering r
// would be too large.
func checkMaskSize(r rect.Rect) error {
	w, h := r.URx-r.LLx, r.URy-r.LLy
	if r.LLx >= -maxMaskCoord && r.URx <= maxMaskCoord &&
		r.LLy >= -maxMaskCoord && r.URy <= maxMaskCoord &&
		w*h <= MaxMaskArea {
		return nil
	}
	return fmt.Errorf("%w: %g×%g pixels at (%g, %g)", ErrMaskTooLarge, w, h, r.LLx, r.LLy)
}

// Union sets the region to the points in rgn or in other.
//
// For the combinators, the error is [ErrIncompatibleRegion] if the
// regions have different surface bindings, and [ErrMaskTooLarge] if the
// combined mask of two unbound regions would exceed [MaxMaskArea].  On
// error, rgn is left unchanged.
func (rgn *Region) Union(other *Region) error {
	return rgn.combine(other, raster.OpOr)
}

// Intersect sets the region to the points in both rgn and other.
func (rgn *Region) Intersect(other *Region) error {
	return rgn.combine(other, raster.OpAnd)
}

// Subtract removes the points in other from the region.
func (rgn *Region) Subtract(other *Region) error {
	return rgn.combine(other, raster.OpAndNot)
}

// Xor sets the region to the points in exactly one of rgn and other.
func (rgn *Region) Xor(other *Region) error {
	return rgn.combine(other, raster.OpXor)
}

func (rgn *Region) combine(other *Region, op raster.CompositeOp) error {
	if rgn.surface != other.surface {
		return ErrIncompatibleRegion
	}
	if rgn.surface == nil {
		b := raster.CompositeBounds(rgn.mask, other.mask, op)
		if err := checkMaskSize(rectOf(b)); err != nil {
			return err
		}
	}

	rgn.mask = raster.Composite(rgn.mask, other.mask, op)

	switch {
	case !other.hasBox:
		// nothing to merge
	case !rgn.hasBox:
		rgn.box, rgn.hasBox = other.box, true
	default:
		rgn.box = rect.Rect{
			LLx: min(rgn.box.LLx, other.box.LLx),
			LLy: min(rgn.box.LLy, other.box.LLy),
			URx: max(rgn.box.URx, other.box.URx),
			URy: max(rgn.box.URy, other.box.URy),
		}
	}

	dcpath.Logger().Debug("regions combined",
		"op", op, "bounds", rgn.mask.Bounds(), "box", rgn.box)
	return nil
}

// Contains reports whether the point (x, y), in user space, lies inside
// the region.
//
// For a bound region the point is mapped through the current surface
// transform and must fall on a pixel of the surface.  For an unbound
// region the point must lie inside the bounding box.  In both cases the
// pixel containing the point must be covered.
func (rgn *Region) Contains(x, y float64) bool {
	if rgn.surface != nil {
		m := rgn.surface.Transform()
		dx := m[0]*x + m[2]*y + m[4]
		dy := m[1]*x + m[3]*y + m[5]
		b := rgn.surface.Bounds()
		if dx < float64(b.Min.X) || dx >= float64(b.Max.X) ||
			dy < float64(b.Min.Y) || dy >= float64(b.Max.Y) {
			return false
		}
		return rgn.mask.Covered(int(math.Floor(dx)), int(math.Floor(dy)))
	}

	if !rgn.hasBox ||
		x < rgn.box.LLx || x > rgn.box.URx ||
		y < rgn.box.LLy || y > rgn.box.URy {
		return false
	}
	return rgn.mask.Covered(int(math.Floor(x)), int(math.Floor(y)))
}

// IsEmpty reports whether the region is approximately empty, meaning that
// its bounding box has an area of at most [EmptyAreaThreshold] square
// pixels.  Only a region bound to a surface can be tested; for other
// regions the error is [ErrNoSurface].
func (rgn *Region) IsEmpty() (bool, error) {
	if rgn.surface == nil {
		return false, ErrNoSurface
	}
	if !rgn.hasBox {
		return true, nil
	}
	area := (rgn.box.URx - rgn.box.LLx) * (rgn.box.URy - rgn.box.LLy)
	return area <= EmptyAreaThreshold, nil
}

func rectOf(b image.Rectangle) rect.Rect {
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}
