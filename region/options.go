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

package region

import "seehuhn.de/go/dcpath/raster"

// Option configures a Region during creation.
//
// Example:
//
//	// unbound region, nonzero winding
//	rgn := region.New()
//
//	// region covering a canvas, even-odd rule
//	rgn := region.New(region.WithSurface(c), region.WithFillRule(raster.EvenOdd))
type Option func(*options)

type options struct {
	surface  Surface
	rule     raster.FillRule
	flatness float64
}

func defaultOptions() options {
	return options{
		rule:     raster.NonZero,
		flatness: defaultFlatness,
	}
}

// WithSurface binds the region to a surface.  The occupancy mask then has
// the size of the surface, and shapes are mapped through the surface
// transform when they are painted.
func WithSurface(s Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithFillRule sets the winding rule used to paint shapes into the region.
func WithFillRule(rule raster.FillRule) Option {
	return func(o *options) {
		o.rule = rule
	}
}

// WithFlatness sets the curve flattening tolerance, in device pixels.
// Non-positive values are ignored.
func WithFlatness(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.flatness = f
		}
	}
}
