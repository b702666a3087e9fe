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

// The functions in this file return (count, true) on success.  If the
// geometry is degenerate (radius below GridFine) or an input is not
// finite, they return (0, false) and leave the decision to the caller.

// CircularSegments returns the number of segments used to approximate an
// arc of the given radius, spanning angle degrees.  For a full circle,
// use angle 360.  The result is at least 1.
func (r Resolution) CircularSegments(radius, angle float64) (int, bool) {
	if !(radius >= GridFine) || !isFinite(r.fn) || !isFinite(angle) {
		return 0, false
	}

	var full float64
	if r.fn > 0 {
		// The fragment count is rounded before taking the fraction of the circle.
		full = math.Ceil(math.Max(r.fn, 3))
	} else {
		full = math.Ceil(fmax(fmin(360/r.fa, radius*2*math.Pi/r.fs), 5))
	}
	segments := math.Ceil(full * math.Abs(angle) / 360)
	return max(1, toInt(segments)), true
}

// HelixSlices returns the number of slices for a helical sweep: a
// constant radius, with the height growing linearly with the twist.
// rSqr is the squared distance of the outermost vertex from the axis.
//
// The result is never below minSlices(twist), which guarantees at most
// 120 degrees of twist per slice.
func (r Resolution) HelixSlices(rSqr, height, twist float64) (int, bool) {
	twist = math.Abs(twist)
	minSlices := minTwistSlices(twist)
	if !(math.Sqrt(rSqr) >= GridFine) || !isFinite(r.fn) || math.IsNaN(height) || math.IsNaN(twist) {
		return 0, false
	}
	if r.fn > 0 {
		return max(toInt(math.Ceil(twist/360*r.fn)), minSlices), true
	}
	faSlices := toInt(math.Ceil(twist / r.fa))
	fsSlices := toInt(math.Ceil(helixArcLength(rSqr, height, twist) / r.fs))
	return max(min(faSlices, fsSlices), minSlices), true
}

// ConicalHelixSlices returns the number of slices for a sweep with twist
// and a uniform scale factor different from 1.  A vertex then follows a
// section of an Archimedean spiral, lifted by the extrusion height.
//
// ConicalHelixSlices panics if scale is 1; use HelixSlices in this case.
func (r Resolution) ConicalHelixSlices(rSqr, height, twist, scale float64) (int, bool) {
	if scale == 1 {
		panic("tessellate: ConicalHelixSlices called with scale 1")
	}
	twist = math.Abs(twist)
	radius := math.Sqrt(rSqr)
	minSlices := minTwistSlices(twist)
	if !(radius >= GridFine) || !isFinite(r.fn) {
		return 0, false
	}
	if r.fn > 0 {
		return max(toInt(math.Ceil(twist*r.fn/360)), minSlices), true
	}

	spiral := math.Abs(radius - radius*scale)
	if rads := twist * math.Pi / 180; rads > 0 {
		// Extend the cone down to scale 0.  By similar triangles, the
		// spiral starts at angleStart and ends at angleEnd, counting from
		// the apex.
		var angleEnd float64
		if scale > 1 {
			angleEnd = rads * scale / (scale - 1)
		} else {
			angleEnd = rads / (1 - scale)
		}
		angleStart := angleEnd - rads
		a := radius / angleEnd
		spiral = archimedesLength(a, angleEnd) - archimedesLength(a, angleStart)
	}
	total := math.Hypot(spiral, height)

	fsSlices := toInt(math.Ceil(total / r.fs))
	faSlices := toInt(math.Ceil(twist / r.fa))
	return max(min(faSlices, fsSlices), minSlices), true
}

// DiagonalSlices returns the number of slices for a straight sweep path,
// as used for non-uniform scaling without twist.  deltaSqr is the
// largest squared 2D displacement of a vertex between the bottom and
// the top of the sweep.
func (r Resolution) DiagonalSlices(deltaSqr, height float64) (int, bool) {
	if !(math.Sqrt(deltaSqr) >= GridFine) || !isFinite(r.fn) {
		return 0, false
	}
	if r.fn > 0 {
		return max(toInt(r.fn), 1), true
	}
	return max(toInt(math.Ceil(math.Sqrt(deltaSqr+height*height)/r.fs)), 1), true
}

// minTwistSlices returns the smallest number of slices allowed for the
// given (non-negative) twist.  A twist of 180 degrees per slice is
// guaranteed to be non-manifold, so at least 3 slices per turn are used.
func minTwistSlices(twist float64) int {
	return max(toInt(math.Ceil(twist/120)), 1)
}

// helixArcLength returns the length of the helix
//
//	F(t) = (r cos t, r sin t, c t),  t in [0, T)
//
// which is L = T sqrt(r² + c²).  The pitch 2πc equals the height per
// turn, so c = height/T with T the twist in radians.
func helixArcLength(rSqr, height, twist float64) float64 {
	T := twist * math.Pi / 180
	if T == 0 {
		return math.Abs(height)
	}
	c := height / T
	return T * math.Sqrt(rSqr+c*c)
}

// archimedesLength returns the arc length of the spiral r = aθ from 0 to θ.
func archimedesLength(a, theta float64) float64 {
	return 0.5 * a * (theta*math.Sqrt(1+theta*theta) + math.Asinh(theta))
}

// fmin is like math.Min, but a NaN argument is ignored.
func fmin(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Min(a, b)
}

// fmax is like math.Max, but a NaN argument is ignored.
func fmax(a, b float64) float64 {
	switch {
	case math.IsNaN(a):
		return b
	case math.IsNaN(b):
		return a
	}
	return math.Max(a, b)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// toInt converts a rounded count to int, saturating instead of
// overflowing for huge values.
func toInt(x float64) int {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= maxCount:
		return maxCount
	case x <= 0:
		return 0
	}
	return int(x)
}

const (
	// GridFine is the size below which dimensions are treated as zero.
	GridFine = 0.00000095367431640625 // 2^-20

	// maxCount bounds all segment and slice counts.
	maxCount = 1 << 30
)
