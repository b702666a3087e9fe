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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// FlattenPath converts a path, which may contain Bézier curves, into a
// polygon.  Curves are replaced by line segments which deviate from the
// curve by at most flatness.  Every subpath becomes one outline, whether
// or not it is explicitly closed; subpaths with fewer than three vertices
// are dropped.  Outlines are marked positive if they are
// counter-clockwise.
//
// The result can be passed through [Resolution.SplitOutline] before
// extrusion.
func FlattenPath(p path.Path, flatness float64) Polygon {
	if !(flatness > 0) {
		flatness = defaultFlatness
	}

	var res Polygon
	var cur []vec.Vec2
	var current, start vec.Vec2

	finish := func() {
		// the closing point duplicates the start
		if len(cur) > 1 && cur[len(cur)-1] == cur[0] {
			cur = cur[:len(cur)-1]
		}
		if len(cur) >= 3 {
			o := Outline{Vertices: cur}
			o.Positive = o.Area() > 0
			res = append(res, o)
		}
		cur = nil
	}
	emit := func(pt vec.Vec2) {
		if cur == nil {
			// a segment after ClosePath starts at the previous subpath start
			cur = append(cur, current)
		}
		cur = append(cur, pt)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			finish()
			current = pts[0]
			start = current
			cur = append(cur, current)

		case path.CmdLineTo:
			emit(pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			flattenQuadratic(current, pts[0], pts[1], flatness, emit)
			current = pts[1]

		case path.CmdCubeTo:
			flattenCubic(current, pts[0], pts[1], pts[2], flatness, emit)
			current = pts[2]

		case path.CmdClose:
			finish()
			current = start
		}
	}
	finish()
	return res
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each
// vertex after the start point p0.  p1 is the control point, p2 the end.
func flattenQuadratic(p0, p1, p2 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	if err := e.Length(); err > flatness && isFinite(err) {
		n = toInt(math.Ceil(math.Sqrt(err / flatness)))
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		emit(p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t)))
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each vertex
// after the start point p0.  p1 and p2 are the control points, p3 the end.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, flatness float64, emit func(vec.Vec2)) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 && isFinite(m) {
		if nFloat := math.Sqrt(3 * m / (4 * flatness)); nFloat > 1 {
			n = toInt(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		emit(p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t)))
	}
}

// defaultFlatness is used by FlattenPath if no positive flatness is given.
const defaultFlatness = 0.25
