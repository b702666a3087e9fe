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

var twistCases = []TestCase{
	{
		Name:     "square_twist_90_fn_16",
		Outlines: [][]vec.Vec2{rectangle(-5, -5, 5, 5)},
		Extrude:  twisted(90, 3),
		Mode:     Fragments{FN: 16},
	},
	{
		Name:     "triangle_twist_360_fs",
		Outlines: [][]vec.Vec2{regular(3, 10)},
		Extrude:  twisted(360, 30),
		Mode:     Length{FS: 2, FA: 12},
	},
	{
		// $fa allows fewer segments than $fs here
		Name:     "square_twist_180_fa_wins",
		Outlines: [][]vec.Vec2{rectangle(-10, -10, 10, 10)},
		Extrude:  twisted(180, 15),
		Mode:     Length{FS: 0.5, FA: 30},
	},
	{
		Name:     "offset_square_twist_45",
		Outlines: [][]vec.Vec2{rectangle(10, 0, 15, 5)},
		Extrude:  twisted(45, 2),
		Mode:     Fragments{FN: 20},
	},
	{
		Name:     "negative_twist_segments_16",
		Outlines: [][]vec.Vec2{regular(4, 8)},
		Extrude:  twisted(-270, 9),
		Mode:     Segments{N: 16},
	},
}
