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

var largeCases = []TestCase{
	{
		// already has enough vertices, splitting must not change it
		Name:     "polygon_100_fn_64",
		Outlines: [][]vec.Vec2{regular(100, 50)},
		Extrude:  twisted(90, 10),
		Mode:     Fragments{FN: 64},
	},
	{
		Name:     "polygon_40_segments_1000",
		Outlines: [][]vec.Vec2{regular(40, 50)},
		Extrude:  straight,
		Mode:     Segments{N: 1000},
	},
	{
		Name:     "grid_of_squares_fs",
		Outlines: squareGrid(4, 4, 5, 2),
		Extrude:  twisted(180, 20),
		Mode:     Length{FS: 1, FA: 12},
	},
}

// squareGrid returns rows*cols squares of the given size, separated by gap.
func squareGrid(rows, cols int, size, gap float64) [][]vec.Vec2 {
	var res [][]vec.Vec2
	for row := range rows {
		for col := range cols {
			x := float64(col) * (size + gap)
			y := float64(row) * (size + gap)
			res = append(res, rectangle(x, y, x+size, y+size))
		}
	}
	return res
}
