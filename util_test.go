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
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/vec"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// square returns the counter-clockwise square [0,side]².
func square(side float64) Outline {
	return Outline{
		Vertices: []vec.Vec2{pt(0, 0), pt(side, 0), pt(side, side), pt(0, side)},
		Positive: true,
	}
}

// regular returns a counter-clockwise regular n-gon around the origin.
func regular(n int, radius float64) Outline {
	o := Outline{Vertices: make([]vec.Vec2, n), Positive: true}
	for i := range o.Vertices {
		phi := 2 * math.Pi * float64(i) / float64(n)
		o.Vertices[i] = pt(radius*math.Cos(phi), radius*math.Sin(phi))
	}
	return o
}

// isSubsequence reports whether all vertices of orig occur in res,
// unmodified and in the same order.
func isSubsequence(orig, res []vec.Vec2) bool {
	j := 0
	for _, v := range res {
		if j < len(orig) && v == orig[j] {
			j++
		}
	}
	return j == len(orig)
}
