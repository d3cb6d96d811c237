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
	"errors"
	"fmt"
)

var (
	// ErrNoOpenPath is returned by operations which extend the current
	// subpath when there is no open subpath.
	ErrNoOpenPath = errors.New("dcpath: no open subpath")

	// ErrEmptyPath is returned when the bounding box of a path without
	// any points is requested.
	ErrEmptyPath = errors.New("dcpath: empty path")

	// ErrInvalidRadius is returned for rounded rectangle radii outside the
	// permitted range.  The concrete error is a *RadiusError.
	ErrInvalidRadius = errors.New("dcpath: invalid radius")
)

// RadiusError describes a rejected rounded rectangle radius.
type RadiusError struct {
	Radius float64

	// Limit is half the shorter side of the rectangle.
	Limit float64
}

func (e *RadiusError) Error() string {
	return fmt.Sprintf("dcpath: invalid radius %g (must be in [-0.5, %g])", e.Radius, e.Limit)
}

// Unwrap allows errors.Is(err, ErrInvalidRadius).
func (e *RadiusError) Unwrap() error {
	return ErrInvalidRadius
}
