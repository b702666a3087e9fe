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

package tessellate_test

import (
	"maps"
	"math"
	"regexp"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tessellate/testcases"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

// wantVertices lists the expected total vertex count for some cases.
var wantVertices = map[string]int{
	"polygon_square_segments_8":      8,
	"polygon_hexagon_segments_12":    12,
	"polygon_pentagon_segments_7":    5,
	"twist_triangle_twist_360_fs":    27,
	"twist_square_twist_180_fa_wins": 12,
	"scale_uniform_scale_2_fs":       20,
	"large_polygon_100_fn_64":        100,
}

func TestCatalogue(t *testing.T) {
	seen := make(map[string]bool)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if !validName.MatchString(tc.Name) {
				t.Errorf("invalid test case name %q", tc.Name)
			}
			if seen[name] {
				t.Errorf("duplicate test case %q", name)
			}
			seen[name] = true

			t.Run(name, func(t *testing.T) {
				in := tc.Polygon()
				out := tc.Split()
				if len(out) != len(in) {
					t.Fatalf("got %d outlines, want %d", len(out), len(in))
				}

				limit := vertexLimit(tc)
				for i := range in {
					n, m := in[i].Len(), out[i].Len()
					if m < n {
						t.Errorf("outline %d: %d vertices lost", i, n-m)
					}
					if m > max(n, limit) {
						t.Errorf("outline %d: %d vertices, more than %d", i, m, limit)
					}
					if !preserved(in[i].Vertices, out[i].Vertices) {
						t.Errorf("outline %d: original vertices not preserved", i)
					}
					if out[i].Positive != in[i].Positive {
						t.Errorf("outline %d: orientation flag changed", i)
					}
				}

				if want, ok := wantVertices[name]; ok {
					if got := out.NumVertices(); got != want {
						t.Errorf("got %d vertices, want %d", got, want)
					}
				}
			})
		}
	}

	for name := range wantVertices {
		if !seen[name] {
			t.Errorf("test case %q not found", name)
		}
	}
}

// vertexLimit returns the largest vertex count the mode of tc permits
// for one outline.
func vertexLimit(tc testcases.TestCase) int {
	switch m := tc.Mode.(type) {
	case testcases.Segments:
		return m.N
	case testcases.Fragments:
		return int(math.Max(m.FN, 3))
	case testcases.Length:
		r, _ := tc.Resolution()
		return int(math.Ceil(360 / r.FA()))
	}
	return 0
}

func preserved(orig, res []vec.Vec2) bool {
	j := 0
	for _, v := range res {
		if j < len(orig) && v == orig[j] {
			j++
		}
	}
	return j == len(orig)
}

func BenchmarkCatalogue(b *testing.B) {
	var all []testcases.TestCase
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		all = append(all, testcases.All[category]...)
	}

	b.ReportAllocs()
	for b.Loop() {
		for _, tc := range all {
			tc.Split()
		}
	}
}
