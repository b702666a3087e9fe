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
package testcases

import "seehuhn.de/go/geom/vec"

var polygonCases = []TestCase{
	{
		Name:     "square_segments_8",
		Outlines: [][]vec.Vec2{rectangle(0, 0, 1, 1)},
		Extrude:  straight,
		Mode:     Segments{N: 8},
	},
	{
		Name:     "triangle_segments_12",
		Outlines: [][]vec.Vec2{regular(3, 10)},
		Extrude:  straight,
		Mode:     Segments{N: 12},
	},
	{
		Name:     "hexagon_segments_12",
		Outlines: [][]vec.Vec2{regular(6, 10)},
		Extrude:  straight,
		Mode:     Segments{N: 12},
	},
	{
		// no group of tied edges fits, the outline stays a pentagon
		Name:     "pentagon_segments_7",
		Outlines: [][]vec.Vec2{regular(5, 10)},
		Extrude:  straight,
		Mode:     Segments{N: 7},
	},
	{
		Name:     "rectangle_segments_10",
		Outlines: [][]vec.Vec2{rectangle(0, 0, 20, 10)},
		Extrude:  straight,
		Mode:     Segments{N: 10},
	},
	{
		Name:     "triangle_fn_3",
		Outlines: [][]vec.Vec2{regular(3, 10)},
		Extrude:  straight,
		Mode:     Fragments{FN: 3},
	},
	{
		Name:     "star_segments_40",
		Outlines: [][]vec.Vec2{star(5, 10, 4)},
		Extrude:  straight,
		Mode:     Segments{N: 40},
	},
	{
		Name: "l_shape_segments_24",
		Outlines: [][]vec.Vec2{{
			pt(0, 0), pt(20, 0), pt(20, 5), pt(5, 5), pt(5, 20), pt(0, 20),
		}},
		Extrude: straight,
		Mode:    Segments{N: 24},
	},
}

// star returns a star with n points, alternating between the outer
// radius r1 and the inner radius r2.
func star(n int, r1, r2 float64) []vec.Vec2 {
	outer := regular(2*n, r1)
	inner := regular(2*n, r2)
	pts := make([]vec.Vec2, 2*n)
	for i := range pts {
		if i%2 == 0 {
			pts[i] = outer[i]
		} else {
			pts[i] = inner[i]
		}
	}
	return pts
}
