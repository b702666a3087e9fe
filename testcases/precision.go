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

var precisionCases = []TestCase{
	{
		Name:     "tiny_square",
		Outlines: [][]vec.Vec2{rectangle(0, 0, 1e-3, 1e-3)},
		Extrude:  twisted(90, 3),
		Mode:     Fragments{FN: 8},
	},
	{
		Name:     "large_offset_square",
		Outlines: [][]vec.Vec2{rectangle(1e4, 1e4, 1e4+1, 1e4+1)},
		Extrude:  straight,
		Mode:     Segments{N: 8},
	},
	{
		// edges differ by 0.05%, they still count as equal
		Name:     "nearly_square",
		Outlines: [][]vec.Vec2{rectangle(0, 0, 1, 1.0005)},
		Extrude:  straight,
		Mode:     Segments{N: 8},
	},
	{
		// edges differ by 1%, the long ones are split first
		Name:     "slightly_rectangular",
		Outlines: [][]vec.Vec2{rectangle(0, 0, 1, 1.01)},
		Extrude:  straight,
		Mode:     Segments{N: 6},
	},
	{
		Name:     "duplicate_vertex",
		Outlines: [][]vec.Vec2{{pt(0, 0), pt(4, 0), pt(4, 0), pt(4, 4), pt(0, 4)}},
		Extrude:  twisted(45, 2),
		Mode:     Fragments{FN: 12},
	},
}
