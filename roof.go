// seehuhn.de/go/tessellate - curve discretization for solid modeling
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

package tessellate

import "math"

// RoofTolerance decides when facets of a roof construction may be merged.
type RoofTolerance struct {
	// MaxAngleDeviation is half the angular step, in radians.
	MaxAngleDeviation float64

	// MaxSegmentSqrLength is the squared maximal segment length.
	// Zero means that the length is not limited.
	MaxSegmentSqrLength float64
}

// NewRoofTolerance derives the roof tolerances from a resolution.
// The scale is the factor between roof coordinates and user space.
func NewRoofTolerance(r Resolution, scale float64) RoofTolerance {
	step := r.fa
	if r.fn > 0 {
		step = 360 / r.fn
	}
	t := RoofTolerance{
		MaxAngleDeviation: step * math.Pi / 180 / 2,
	}
	if r.fn <= 0 {
		t.MaxSegmentSqrLength = r.fs * r.fs * scale * scale
	}
	return t
}

// OverMaxAngle reports whether the angle (in radians) exceeds the
// allowed deviation.
func (t RoofTolerance) OverMaxAngle(rad float64) bool {
	return rad > t.MaxAngleDeviation
}

// OverMaxSegmentSqrLength reports whether a segment with the given
// squared length must be split.  This is never the case if the length
// is not limited.
func (t RoofTolerance) OverMaxSegmentSqrLength(sqrLength float64) bool {
	return t.MaxSegmentSqrLength > 0 && sqrLength > t.MaxSegmentSqrLength
}
