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

// Package canvas provides an in-memory rendering surface for dcpath paths.
//
// A [Canvas] owns an RGBA image and a transformation matrix.  Paths are
// filled through golang.org/x/image/vector, optionally restricted to a clip
// [region.Region].  A Canvas implements [region.Surface], so regions can
// be bound to it.
package canvas

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/dcpath"
	"seehuhn.de/go/dcpath/region"
)

// ErrForeignClip is returned by SetClip for a region bound to a different
// surface.
var ErrForeignClip = errors.New("canvas: clip region belongs to another surface")

// Canvas is a raster image with a current transformation.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	img  *image.RGBA
	ctm  matrix.Matrix
	clip *region.Region

	z *vector.Rasterizer
}

var _ region.Surface = (*Canvas)(nil)

// New returns a transparent canvas of the given size, with the identity
// transformation and no clip region.
func New(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ctm: matrix.Identity,
		z:   vector.NewRasterizer(width, height),
	}
}

// Bounds returns the pixel rectangle of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Rect
}

// Transform returns the current map from user space to pixels.
func (c *Canvas) Transform() matrix.Matrix {
	return c.ctm
}

// SetTransform replaces the current transformation.
func (c *Canvas) SetTransform(m matrix.Matrix) {
	c.ctm = m
}

// SetClip restricts subsequent fills to the given region.  A nil region
// removes the clip.  The region must be unbound or bound to c; the mask of
// an unbound region is taken to be in device pixels.  The canvas keeps its
// own copy of the region.
func (c *Canvas) SetClip(rgn *region.Region) error {
	if rgn == nil {
		c.clip = nil
		return nil
	}
	if s := rgn.Surface(); s != nil && s != region.Surface(c) {
		return ErrForeignClip
	}
	c.clip = rgn.Clone()
	return nil
}

// Clip returns the current clip region, or nil.
func (c *Canvas) Clip() *region.Region {
	return c.clip
}

// Image returns the image the canvas draws into.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Fill paints the inside of p, using the nonzero winding rule, with the
// color col.  Coordinates are rounded before the current transformation is
// applied.
func (c *Canvas) Fill(p *dcpath.Path, col color.Color) {
	b := c.img.Rect
	c.z.Reset(b.Dx(), b.Dy())
	p.ReplayTo(&vectorSink{z: c.z, m: c.ctm})

	dcpath.Logger().Debug("canvas fill", "bounds", b, "clipped", c.clip != nil)

	src := image.NewUniform(col)
	if c.clip == nil {
		c.z.DrawOp = draw.Over
		c.z.Draw(c.img, b, src, image.Point{})
		return
	}

	cov := image.NewAlpha(b)
	c.z.DrawOp = draw.Src
	c.z.Draw(cov, b, image.Opaque, image.Point{})

	clipped := image.NewAlpha(b)
	mask := c.clip.Mask().Alpha()
	draw.DrawMask(clipped, b, cov, b.Min, mask, b.Min, draw.Src)
	draw.DrawMask(c.img, b, src, image.Point{}, clipped, b.Min, draw.Over)
}

// Clear sets every pixel of the canvas to col, ignoring the clip region.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// Thumbnail returns a copy of the canvas scaled to the given size.
func (c *Canvas) Thumbnail(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Rect, c.img, c.img.Rect, draw.Src, nil)
	return dst
}

// vectorSink maps replayed path commands through a transformation into an
// x/image/vector rasterizer.
type vectorSink struct {
	z *vector.Rasterizer
	m matrix.Matrix
}

func (s *vectorSink) apply(x, y float64) (float32, float32) {
	m := s.m
	return float32(m[0]*x + m[2]*y + m[4]), float32(m[1]*x + m[3]*y + m[5])
}

func (s *vectorSink) MoveTo(x, y float64) {
	s.z.MoveTo(s.apply(x, y))
}

func (s *vectorSink) LineTo(x, y float64) {
	s.z.LineTo(s.apply(x, y))
}

func (s *vectorSink) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	ax, ay := s.apply(x1, y1)
	bx, by := s.apply(x2, y2)
	cx, cy := s.apply(x3, y3)
	s.z.CubeTo(ax, ay, bx, by, cx, cy)
}

func (s *vectorSink) ClosePath() {
	s.z.ClosePath()
}
