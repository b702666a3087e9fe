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

var scaleCases = []TestCase{
	{
		Name:     "square_scale_2_1_fn_16",
		Outlines: [][]vec.Vec2{rectangle(-5, -5, 5, 5)},
		Extrude:  scaled(2, 1, 4),
		Mode:     Fragments{FN: 16},
	},
	{
		Name:     "square_scale_1_3_fs",
		Outlines: [][]vec.Vec2{rectangle(-5, -5, 5, 5)},
		Extrude:  scaled(1, 3, 6),
		Mode:     Length{FS: 2, FA: 12},
	},
	{
		Name:     "uniform_scale_2_fs",
		Outlines: [][]vec.Vec2{rectangle(-5, -5, 5, 5)},
		Extrude:  scaled(2, 2, 1),
		Mode:     Length{FS: 4, FA: 12},
	},
	{
		Name:     "scale_to_zero_x",
		Outlines: [][]vec.Vec2{regular(3, 10)},
		Extrude:  scaled(0, 1, 5),
		Mode:     Fragments{FN: 12},
	},
	{
		Name:     "twist_and_scale",
		Outlines: [][]vec.Vec2{rectangle(-8, -2, 8, 2)},
		Extrude:  Extrude{Twist: 90, ScaleX: 0.5, ScaleY: 2, Slices: 8},
		Mode:     Fragments{FN: 32},
	},
	{
		Name:     "sheared_diamond",
		Outlines: [][]vec.Vec2{{pt(0, -10), pt(3, 0), pt(0, 10), pt(-3, 0)}},
		Extrude:  Extrude{Twist: 60, ScaleX: 3, ScaleY: 1, Slices: 6},
		Mode:     Length{FS: 1, FA: 6},
	},
}
