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

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/tessellate"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:     "octagon_twist_fn_32",
		Outlines: [][]vec.Vec2{regular(8, 10)},
		Extrude:  twisted(120, 4),
		Mode:     Fragments{FN: 32},
	},
	{
		Name:     "ellipse_scale_fn_48",
		Outlines: [][]vec.Vec2{ellipse(12, 12, 4)},
		Extrude:  scaled(1, 2, 10),
		Mode:     Fragments{FN: 48},
	},
	{
		Name:     "semicircle_fs",
		Outlines: [][]vec.Vec2{semicircle(10, 6)},
		Extrude:  twisted(30, 1),
		Mode:     Length{FS: 1, FA: 5},
	},
	{
		Name:     "bezier_circle_twist_fn_64",
		Outlines: flattened(circle(0, 0, 10), 0.5),
		Extrude:  twisted(90, 6),
		Mode:     Fragments{FN: 64},
	},
	{
		Name:     "bezier_ellipse_scale_fs",
		Outlines: flattened(bezierEllipse(0, 0, 10, 5), 0.25),
		Extrude:  scaled(0.5, 1.5, 8),
		Mode:     Length{FS: 1, FA: 6},
	},
}

// ellipse returns n points on an ellipse with half axes rx and ry.
func ellipse(n int, rx, ry float64) []vec.Vec2 {
	pts := regular(n, 1)
	for i := range pts {
		pts[i] = pt(pts[i].X*rx, pts[i].Y*ry)
	}
	return pts
}

// semicircle returns the upper half of a circle with radius r, approximated
// by n segments and closed by its diameter.
func semicircle(r float64, n int) []vec.Vec2 {
	full := regular(2*n, r)
	return full[:n+1]
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return bezierEllipse(cx, cy, r, r)
}

// bezierEllipse builds an approximate ellipse using four cubic Bezier curves.
func bezierEllipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)). // upper right quadrant
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)). // upper left quadrant
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)). // lower left quadrant
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)). // lower right quadrant
		Close()
}

// flattened returns the vertices of the outlines of a curved path.
func flattened(p *path.Data, flatness float64) [][]vec.Vec2 {
	var res [][]vec.Vec2
	for _, o := range tessellate.FlattenPath(p.Iter(), flatness) {
		res = append(res, o.Vertices)
	}
	return res
}
