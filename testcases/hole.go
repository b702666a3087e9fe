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

var holeCases = []TestCase{
	{
		Name: "square_ring_segments_16",
		Outlines: [][]vec.Vec2{
			rectangle(-10, -10, 10, 10),
			reversed(rectangle(-5, -5, 5, 5)),
		},
		Extrude: twisted(90, 4),
		Mode:    Segments{N: 16},
	},
	{
		Name: "hexagon_ring_fs",
		Outlines: [][]vec.Vec2{
			regular(6, 12),
			reversed(regular(6, 6)),
		},
		Extrude: scaled(1.5, 0.5, 5),
		Mode:    Length{FS: 2, FA: 10},
	},
	{
		Name: "two_holes_fn_24",
		Outlines: [][]vec.Vec2{
			rectangle(0, 0, 30, 10),
			reversed(rectangle(3, 3, 7, 7)),
			reversed(rectangle(23, 3, 27, 7)),
		},
		Extrude: twisted(20, 2),
		Mode:    Fragments{FN: 24},
	},
}
