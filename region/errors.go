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

import "errors"

var (
	// ErrIncompatibleRegion is returned when two regions with different
	// surface bindings are combined.
	ErrIncompatibleRegion = errors.New("region: regions bound to different surfaces")

	// ErrNoSurface is returned by queries which are only meaningful for a
	// region bound to a surface.
	ErrNoSurface = errors.New("region: no surface")

	// ErrMaskTooLarge is returned when an unbound region would need a
	// mask larger than MaxMaskArea.
	ErrMaskTooLarge = errors.New("region: mask too large")
)
