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
	"math"

	"seehuhn.de/go/geom/vec"
)

// Circle returns the outline of a circle around the origin, or of a
// circular sector if angle is less than 360.  A sector includes the
// centre as its last vertex.
//
// An empty outline is returned if the radius is not positive, or the
// angle is outside (0, 360].
func (r Resolution) Circle(radius, angle float64) Outline {
	if !(radius > 0) || math.IsInf(radius, 0) || !(angle > 0) || angle > 360 {
		return Outline{Positive: true}
	}

	n, ok := r.CircularSegments(radius, angle)
	if !ok {
		n = 3
	}
	div := n
	if angle < 360 {
		div--
	}

	o := Outline{
		Vertices: make([]vec.Vec2, 0, n+1),
		Positive: true,
	}
	for i := range n {
		phi := angle * float64(i)
		if div > 0 {
			phi /= float64(div)
		}
		o.Vertices = append(o.Vertices, vec.Vec2{X: radius * cosDeg(phi), Y: radius * sinDeg(phi)})
	}
	if angle < 360 {
		o.Vertices = append(o.Vertices, vec.Vec2{})
	}
	return o
}

// Ring is one horizontal circle of vertices of a sphere.
type Ring struct {
	Radius    float64
	Z         float64
	Fragments int
}

// SphereRings returns the rings of vertices approximating a sphere,
// from top to bottom.  The rings are offset by half a step from the
// poles, so that no ring degenerates to a point.
func (r Resolution) SphereRings(radius float64) []Ring {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil
	}
	fragments, ok := r.CircularSegments(radius, 360)
	if !ok {
		fragments = 3
	}
	numRings := (fragments + 1) / 2

	rings := make([]Ring, numRings)
	for i := range rings {
		phi := 180 * (float64(i) + 0.5) / float64(numRings)
		rings[i] = Ring{
			Radius:    radius * sinDeg(phi),
			Z:         radius * cosDeg(phi),
			Fragments: fragments,
		}
	}
	return rings
}

// Outline returns the vertices of the ring, projected onto the XY plane.
func (g Ring) Outline() Outline {
	o := Outline{
		Vertices: make([]vec.Vec2, g.Fragments),
		Positive: true,
	}
	for i := range o.Vertices {
		phi := 360 * float64(i) / float64(g.Fragments)
		o.Vertices[i] = vec.Vec2{X: g.Radius * cosDeg(phi), Y: g.Radius * sinDeg(phi)}
	}
	return o
}

// sinDeg returns the sine of x degrees, exact at multiples of 90.
func sinDeg(x float64) float64 {
	if !isFinite(x) {
		return math.NaN()
	}
	x = math.Mod(x, 360)
	if x < 0 {
		x += 360
	}
	switch x {
	case 0, 180:
		return 0
	case 90:
		return 1
	case 270:
		return -1
	}
	return math.Sin(x * math.Pi / 180)
}

// cosDeg returns the cosine of x degrees, exact at multiples of 90.
func cosDeg(x float64) float64 {
	return sinDeg(x + 90)
}
