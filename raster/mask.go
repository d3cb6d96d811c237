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
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// maskThreshold is the pixel coverage at or above which FillMask marks a
// pixel as inside.
const maskThreshold = 0.5

// Mask is a monochrome occupancy buffer over a rectangle of device pixels.
// Each pixel is either covered or empty; pixels outside the bounds count as
// empty.
//
// The zero value is an empty mask with empty bounds.
type Mask struct {
	img *image.Alpha
}

// NewMask returns an empty mask covering r.
func NewMask(r image.Rectangle) *Mask {
	return &Mask{img: image.NewAlpha(r.Canon())}
}

// Bounds returns the pixel rectangle the mask covers.
func (m *Mask) Bounds() image.Rectangle {
	if m == nil || m.img == nil {
		return image.Rectangle{}
	}
	return m.img.Rect
}

// Covered reports whether the pixel (x, y) is set.
func (m *Mask) Covered(x, y int) bool {
	if m == nil || m.img == nil || !(image.Point{x, y}).In(m.img.Rect) {
		return false
	}
	return m.img.Pix[m.img.PixOffset(x, y)] != 0
}

// Set marks the pixel (x, y) as covered or empty.  Pixels outside the
// bounds are ignored.
func (m *Mask) Set(x, y int, covered bool) {
	if m == nil || m.img == nil || !(image.Point{x, y}).In(m.img.Rect) {
		return
	}
	var v uint8
	if covered {
		v = 0xff
	}
	m.img.Pix[m.img.PixOffset(x, y)] = v
}

// Fill marks every pixel of the mask as covered.
func (m *Mask) Fill() {
	if m == nil || m.img == nil {
		return
	}
	for i := range m.img.Pix {
		m.img.Pix[i] = 0xff
	}
}

// Clear marks every pixel of the mask as empty.
func (m *Mask) Clear() {
	if m == nil || m.img == nil {
		return
	}
	clear(m.img.Pix)
}

// Clone returns an independent copy of m.
func (m *Mask) Clone() *Mask {
	if m == nil || m.img == nil {
		return &Mask{}
	}
	img := &image.Alpha{
		Pix:    make([]uint8, len(m.img.Pix)),
		Stride: m.img.Stride,
		Rect:   m.img.Rect,
	}
	copy(img.Pix, m.img.Pix)
	return &Mask{img: img}
}

// Alpha returns the underlying image.  Covered pixels have alpha 0xff,
// empty pixels have alpha 0.  The image is shared with the mask.
func (m *Mask) Alpha() *image.Alpha {
	if m == nil || m.img == nil {
		return image.NewAlpha(image.Rectangle{})
	}
	return m.img
}

// IsZero reports whether no pixel of the mask is covered.
func (m *Mask) IsZero() bool {
	if m == nil || m.img == nil {
		return true
	}
	for _, v := range m.img.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

// Extent returns the smallest rectangle containing all covered pixels.
// The result is empty if no pixel is covered.
func (m *Mask) Extent() image.Rectangle {
	b := m.Bounds()
	xMin, yMin := b.Max.X, b.Max.Y
	xMax, yMax := b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.img.Pix[m.img.PixOffset(b.Min.X, y):]
		for i := range b.Dx() {
			if row[i] == 0 {
				continue
			}
			x := b.Min.X + i
			xMin = min(xMin, x)
			xMax = max(xMax, x+1)
			yMin = min(yMin, y)
			yMax = max(yMax, y+1)
		}
	}
	if xMin >= xMax {
		return image.Rectangle{}
	}
	return image.Rect(xMin, yMin, xMax, yMax)
}

// FillMask paints the path p into m using the given fill rule.  Pixels
// whose coverage is at least one half are marked as covered; all other
// pixels are left unchanged.  Output is limited to the intersection of
// r.Clip and the mask bounds.
func (r *Rasterizer) FillMask(m *Mask, p *path.Data, rule FillRule) {
	b := m.Bounds()
	if b.Empty() {
		return
	}

	saved := r.Clip
	defer func() { r.Clip = saved }()
	r.Clip = rect.Rect{
		LLx: max(saved.LLx, float64(b.Min.X)),
		LLy: max(saved.LLy, float64(b.Min.Y)),
		URx: min(saved.URx, float64(b.Max.X)),
		URy: min(saved.URy, float64(b.Max.Y)),
	}
	if r.Clip.LLx >= r.Clip.URx || r.Clip.LLy >= r.Clip.URy {
		return
	}

	r.Fill(p, rule, func(y, xMin int, coverage []float32) {
		off := m.img.PixOffset(xMin, y)
		for i, c := range coverage {
			if c >= maskThreshold {
				m.img.Pix[off+i] = 0xff
			}
		}
	})
}
