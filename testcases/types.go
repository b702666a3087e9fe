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

// Package testcases contains outlines and extrusion parameters used to
// exercise the outline splitting code.
package testcases

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single splitting test.
type TestCase struct {
	Name     string       // lowercase a-z, 0-9 and _ only
	Outlines [][]vec.Vec2 // closed outlines, counter-clockwise except for holes
	Extrude  Extrude      // the sweep the outlines are prepared for
	Mode     Mode         // how the target resolution is given
}

// Extrude describes the sweep applied to the outlines.
type Extrude struct {
	Twist  float64 // degrees
	ScaleX float64
	ScaleY float64
	Slices int
}

// Mode selects how the resolution of the split outline is specified.
type Mode interface {
	isMode()
}

// Segments requests a fixed number of vertices per outline.
type Segments struct {
	N int
}

func (Segments) isMode() {}

// Fragments gives the resolution as a fragment count ($fn).
type Fragments struct {
	FN float64
}

func (Fragments) isMode() {}

// Length gives the resolution as minimal fragment length and angle
// ($fs and $fa).
type Length struct {
	FS float64
	FA float64
}

func (Length) isMode() {}

// straight is an extrusion without twist or scaling.
var straight = Extrude{ScaleX: 1, ScaleY: 1, Slices: 1}

// twisted returns an extrusion with twist and no scaling.
func twisted(twist float64, slices int) Extrude {
	return Extrude{Twist: twist, ScaleX: 1, ScaleY: 1, Slices: slices}
}

// scaled returns an extrusion with scaling and no twist.
func scaled(sx, sy float64, slices int) Extrude {
	return Extrude{ScaleX: sx, ScaleY: sy, Slices: slices}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// regular returns the vertices of a regular n-gon with circumradius r,
// centred at the origin, in counter-clockwise order.
func regular(n int, r float64) []vec.Vec2 {
	pts := make([]vec.Vec2, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = pt(r*math.Cos(angle), r*math.Sin(angle))
	}
	return pts
}

// rectangle returns the corners of an axis-aligned rectangle in
// counter-clockwise order.
func rectangle(x1, y1, x2, y2 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2)}
}

// reversed returns the vertices in the opposite order, for holes.
func reversed(pts []vec.Vec2) []vec.Vec2 {
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[len(pts)-1-i] = p
	}
	return res
}
