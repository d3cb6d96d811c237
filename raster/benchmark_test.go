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
	"image/color"
	"testing"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/dcpath"
)

// ring returns an "O" shape: outer circle, inner circle reversed.
func ring(cx, cy, outerR, innerR float64) *dcpath.Path {
	p := dcpath.NewPath()
	p.Ellipse(cx-outerR, cy-outerR, 2*outerR, 2*outerR)
	hole := dcpath.NewPath()
	hole.Ellipse(cx-innerR, cy-innerR, 2*innerR, 2*innerR)
	hole.Reverse()
	p.Append(hole)
	return p
}

func BenchmarkRasterizerO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			oPath := ring(center, center, float64(size)*0.45, float64(size)*0.30).RasterData()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(oPath, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkFillMaskO(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			m := NewMask(image.Rect(0, 0, size, size))

			center := float64(size) / 2
			oPath := ring(center, center, float64(size)*0.45, float64(size)*0.30).RasterData()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				m.Clear()
				r.FillMask(m, oPath, NonZero)
			}
		})
	}
}

// vectorSink feeds replayed path commands to an x/image/vector rasterizer.
type vectorSink struct {
	r *vector.Rasterizer
}

func (s vectorSink) MoveTo(x, y float64) { s.r.MoveTo(float32(x), float32(y)) }
func (s vectorSink) LineTo(x, y float64) { s.r.LineTo(float32(x), float32(y)) }
func (s vectorSink) ClosePath()          { s.r.ClosePath() }
func (s vectorSink) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	s.r.CubeTo(float32(x1), float32(y1), float32(x2), float32(y2), float32(x3), float32(y3))
}

// BenchmarkVectorO draws the same "O" shape with x/image/vector.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float64(size) / 2
			oPath := ring(center, center, float64(size)*0.45, float64(size)*0.30)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				oPath.ReplayTo(vectorSink{r})
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
