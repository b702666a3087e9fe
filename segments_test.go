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
	"fmt"
	"math"
	"testing"
)

func TestCircularSegments(t *testing.T) {
	cases := []struct {
		fn, fs, fa    float64
		radius, angle float64
		want          int
	}{
		{6, 2, 12, 5, 360, 6},
		{6, 2, 12, 5, 90, 2},
		{6, 2, 12, 5, -90, 2},
		{2, 2, 12, 5, 360, 3},
		{6.5, 2, 12, 5, 360, 7},
		{0, 2, 12, 1, 360, 5},     // minimum of 5 fragments
		{0, 2, 12, 100, 360, 30},  // fa limits
		{0, 2, 12, 5, 360, 16},    // fs limits: ceil(5π)
		{0, 2, 12, 100, 180, 15},  // half circle
		{0, 2, 12, 100, 0, 1},     // never below one segment
		{0, 2, 12, 100, 720, 60},  // more than a full turn
		{1, 2, 12, GridFine, 360, 3},
	}
	for _, c := range cases {
		name := fmt.Sprintf("fn%g_fs%g_fa%g_r%g_a%g", c.fn, c.fs, c.fa, c.radius, c.angle)
		t.Run(name, func(t *testing.T) {
			r := NewResolution(c.fn, c.fs, c.fa)
			got, ok := r.CircularSegments(c.radius, c.angle)
			if !ok {
				t.Fatal("unexpected degenerate result")
			}
			if got != c.want {
				t.Errorf("got %d, want %d", got, c.want)
			}
		})
	}
}

func TestCircularSegmentsDegenerate(t *testing.T) {
	r := NewResolution(0, 2, 12)
	cases := []struct {
		radius, angle float64
	}{
		{0, 360},
		{GridFine / 2, 360},
		{-1, 360},
		{math.NaN(), 360},
		{10, math.Inf(1)},
		{10, math.NaN()},
	}
	for _, c := range cases {
		if n, ok := r.CircularSegments(c.radius, c.angle); ok {
			t.Errorf("CircularSegments(%g, %g) = %d, want degenerate", c.radius, c.angle, n)
		}
	}

	// a NaN limit leaves the other one in charge
	if n, ok := NewResolution(0, math.NaN(), 12).CircularSegments(10, 360); !ok || n != 30 {
		t.Errorf("NaN fs: got %d, %t, want 30, true", n, ok)
	}
	if n, ok := NewResolution(0, 2, math.NaN()).CircularSegments(10, 360); !ok || n != 32 {
		t.Errorf("NaN fa: got %d, %t, want 32, true", n, ok)
	}

	inf := NewResolution(math.Inf(1), 2, 12)
	if _, ok := inf.CircularSegments(10, 360); ok {
		t.Error("infinite fn not reported as degenerate")
	}
}

func TestCircularSegmentsMonotone(t *testing.T) {
	for _, radius := range []float64{0.01, 1, 10, 1000} {
		prev := 0
		for fn := 1.0; fn <= 100; fn += 0.5 {
			n, _ := NewResolution(fn, 2, 12).CircularSegments(radius, 360)
			if n < prev {
				t.Errorf("r=%g: fn=%g gives %d < %d", radius, fn, n, prev)
			}
			prev = n
		}

		r := NewResolution(0, 2, 12)
		prev = 0
		for angle := 0.0; angle <= 720; angle += 7.5 {
			n, ok := r.CircularSegments(radius, angle)
			if !ok || n < 1 {
				t.Fatalf("r=%g angle=%g: got %d, %t", radius, angle, n, ok)
			}
			if n < prev {
				t.Errorf("r=%g: angle=%g gives %d < %d", radius, angle, n, prev)
			}
			prev = n
		}
	}
}

func TestHelixSlices(t *testing.T) {
	r := NewResolution(0, 1, 12)
	for _, twist := range []float64{720, -720} {
		n, ok := r.HelixSlices(100, 50, twist)
		if !ok || n != 60 {
			t.Errorf("HelixSlices(100, 50, %g) = %d, %t, want 60, true", twist, n, ok)
		}
	}

	cases := []struct {
		fn           float64
		height, twist float64
		want         int
	}{
		{36, 10, 90, 9},
		{4, 10, 360, 4},
		{1, 10, 360, 3}, // at most 120 degrees per slice
	}
	for _, c := range cases {
		r := NewResolution(c.fn, 2, 12)
		n, ok := r.HelixSlices(100, c.height, c.twist)
		if !ok || n != c.want {
			t.Errorf("fn=%g: HelixSlices(100, %g, %g) = %d, %t, want %d",
				c.fn, c.height, c.twist, n, ok, c.want)
		}
	}

	if n, ok := r.HelixSlices(0, 10, 360); ok {
		t.Errorf("zero radius: got %d, want degenerate", n)
	}
	if n, ok := r.HelixSlices(100, 10, 0); !ok || n != 1 {
		t.Errorf("zero twist: got %d, %t, want 1, true", n, ok)
	}
}

func TestHelixSlicesMinimum(t *testing.T) {
	for _, fn := range []float64{0, 1, 3, 50} {
		for _, fs := range []float64{0.01, 1, 100} {
			for _, fa := range []float64{0.01, 12, 360} {
				r := NewResolution(fn, fs, fa)
				for _, rSqr := range []float64{1e-6, 1, 1e4} {
					for _, height := range []float64{0, 1, 1000} {
						for _, twist := range []float64{-1000, -90, 1, 119, 121, 360, 3600} {
							n, ok := r.HelixSlices(rSqr, height, twist)
							if !ok {
								continue
							}
							if lower := minTwistSlices(math.Abs(twist)); n < lower {
								t.Errorf("%s: HelixSlices(%g, %g, %g) = %d < %d",
									r, rSqr, height, twist, n, lower)
							}
						}
					}
				}
			}
		}
	}
}

func TestConicalHelixSlices(t *testing.T) {
	r := NewResolution(0, 1, 1)

	// spiral length 47.3987 from radius 10 to radius 5 in one turn
	n, ok := r.ConicalHelixSlices(100, 0, 360, 0.5)
	if !ok || n != 48 {
		t.Errorf("height 0: got %d, %t, want 48, true", n, ok)
	}
	n, ok = r.ConicalHelixSlices(100, 20, 360, 0.5)
	if !ok || n != 52 {
		t.Errorf("height 20: got %d, %t, want 52, true", n, ok)
	}

	n, ok = NewResolution(10, 1, 1).ConicalHelixSlices(100, 20, 360, 0.5)
	if !ok || n != 10 {
		t.Errorf("fn 10: got %d, %t, want 10, true", n, ok)
	}

	if n, ok := r.ConicalHelixSlices(0, 20, 360, 0.5); ok {
		t.Errorf("zero radius: got %d, want degenerate", n)
	}
}

func TestConicalHelixSlicesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("scale 1 did not panic")
		}
	}()
	NewResolution(0, 2, 12).ConicalHelixSlices(100, 10, 360, 1)
}

func TestDiagonalSlices(t *testing.T) {
	r := NewResolution(0, 1, 12)
	cases := []struct {
		deltaSqr, height float64
		want             int
	}{
		{100, 0, 10},
		{100, 10, 15},
		{1e-6, 0, 1},
	}
	for _, c := range cases {
		n, ok := r.DiagonalSlices(c.deltaSqr, c.height)
		if !ok || n != c.want {
			t.Errorf("DiagonalSlices(%g, %g) = %d, %t, want %d", c.deltaSqr, c.height, n, ok, c.want)
		}
	}

	n, ok := NewResolution(7, 1, 12).DiagonalSlices(100, 10)
	if !ok || n != 7 {
		t.Errorf("fn 7: got %d, %t, want 7, true", n, ok)
	}

	if n, ok := r.DiagonalSlices(0, 10); ok {
		t.Errorf("no displacement: got %d, want degenerate", n)
	}
}

func TestToInt(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{math.NaN(), 0},
		{-5, 0},
		{3, 3},
		{math.Inf(1), maxCount},
		{1e300, maxCount},
	}
	for _, c := range cases {
		if got := toInt(c.in); got != c.want {
			t.Errorf("toInt(%g) = %d, want %d", c.in, got, c.want)
		}
	}
}
