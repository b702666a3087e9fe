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

import (
	"errors"
	"fmt"
	"math"
)

// LinearExtrude holds the parameters of a linear extrusion.
type LinearExtrude struct {
	Height float64
	Twist  float64 // degrees
	ScaleX float64
	ScaleY float64

	// Slices is used as the number of slices if HasSlices is set.
	Slices    int
	HasSlices bool

	// Segments is the requested number of vertices per outline, if
	// HasSegments is set.  Set Segments to 0 to disable splitting.
	Segments    int
	HasSegments bool
}

// Sweep returns the sweep of the extrusion for the given number of slices.
func (e LinearExtrude) Sweep(slices int) Sweep {
	return Sweep{Twist: e.Twist, ScaleX: e.ScaleX, ScaleY: e.ScaleY, Slices: slices}
}

func (e LinearExtrude) nonLinear() bool {
	return e.Twist != 0 || e.ScaleX != e.ScaleY
}

// ExtrusionSlices returns the number of slices for extruding p.  The
// result is at least 1; the number of vertex rings is one more.
func (r Resolution) ExtrusionSlices(p Polygon, e LinearExtrude) int {
	switch {
	case e.HasSlices:
		return max(e.Slices, 1)

	case e.Twist != 0:
		rSqr := maxRadiusSqr(p)
		helix := func() int {
			n, ok := r.HelixSlices(rSqr, e.Height, e.Twist)
			if !ok {
				return minTwistSlices(math.Abs(e.Twist))
			}
			return n
		}
		switch {
		case e.ScaleX == 1 && e.ScaleY == 1:
			return helix()
		case e.ScaleX != e.ScaleY:
			// the scaling and the twist each impose a limit
			return max(r.diagonal(p, e), helix())
		default:
			n, ok := r.ConicalHelixSlices(rSqr, e.Height, e.Twist, e.ScaleX)
			if !ok {
				return minTwistSlices(math.Abs(e.Twist))
			}
			return n
		}

	case e.ScaleX != e.ScaleY:
		return r.diagonal(p, e)
	}
	return 1
}

// diagonal returns the slices needed for the straight paths the vertices
// follow under non-uniform scaling.
func (r Resolution) diagonal(p Polygon, e LinearExtrude) int {
	var deltaSqr float64
	for _, o := range p {
		for _, v := range o.Vertices {
			dx := v.X - v.X*e.ScaleX
			dy := v.Y - v.Y*e.ScaleY
			deltaSqr = math.Max(deltaSqr, dx*dx+dy*dy)
		}
	}
	n, ok := r.DiagonalSlices(deltaSqr, e.Height)
	if !ok {
		return 1
	}
	return n
}

func maxRadiusSqr(p Polygon) float64 {
	var rSqr float64
	for _, o := range p {
		for _, v := range o.Vertices {
			rSqr = math.Max(rSqr, v.X*v.X+v.Y*v.Y)
		}
	}
	return rSqr
}

// SegmentPolygon splits the outlines of p in preparation for an
// extrusion with the given number of slices.  The second result reports
// whether splitting applied.  If not, p is returned unchanged.
//
// Splitting applies if an explicit positive segment count is set, or if
// the extrusion is not linear (it has twist or non-uniform scaling).
func (r Resolution) SegmentPolygon(p Polygon, e LinearExtrude, slices int) (Polygon, bool) {
	var segments int
	switch {
	case e.HasSegments:
		if e.Segments <= 0 {
			return p, false
		}
		segments = e.Segments
	case !e.nonLinear():
		return p, false
	}

	s := e.Sweep(slices)
	res := make(Polygon, len(p))
	for i, o := range p {
		res[i] = r.SplitOutline(o, s, segments)
	}
	return res, true
}

// RotateSections returns the number of sections for sweeping p around
// the Y axis by angle degrees.  The polygon must not lie on both sides
// of the axis.  The radius of the sweep is measured from the axis, so a
// polygon away from the axis gets the resolution of its outermost point.
//
// An angle of 0 sweeps nothing and gives 0 sections.
func (r Resolution) RotateSections(p Polygon, angle float64) (int, error) {
	minX, maxX := 0.0, 0.0
	for _, o := range p {
		for _, v := range o.Vertices {
			minX = math.Min(minX, v.X)
			maxX = math.Max(maxX, v.X)
		}
	}
	if maxX > 0 && minX < 0 {
		return 0, fmt.Errorf("x range [%.2f : %.2f]: %w", minX, maxX, ErrAxisCrossing)
	}
	if angle == 0 {
		return 0, nil
	}

	n, ok := r.CircularSegments(maxX-minX, angle)
	if !ok {
		n = max(1, toInt(math.Abs(angle)/360*3))
	}
	return n, nil
}

// ErrAxisCrossing is returned by RotateSections if the polygon lies
// across the rotation axis.
var ErrAxisCrossing = errors.New("polygon lies across the rotation axis")
