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
	"image"
	"testing"

	"golang.org/x/image/vector"
)

// BenchmarkSplitByCount benchmarks splitting a triangle into an
// increasing number of vertices.
func BenchmarkSplitByCount(b *testing.B) {
	o := regular(3, 10)
	s := Sweep{Twist: 180, ScaleX: 0.5, ScaleY: 2, Slices: 16}

	for _, target := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("target%d", target), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				SplitByCount(o, s, target)
			}
		})
	}
}

func BenchmarkSplitOutline(b *testing.B) {
	o := square(100)
	s := Sweep{Twist: 360, ScaleX: 1, ScaleY: 1, Slices: 36}
	r := NewResolution(0, 0.5, 1)

	b.ReportAllocs()
	for b.Loop() {
		r.SplitOutline(o, s, 0)
	}
}

func BenchmarkCircularSegments(b *testing.B) {
	r := NewResolution(0, 2, 12)
	for b.Loop() {
		r.CircularSegments(12.5, 270)
	}
}

// BenchmarkCircleRaster measures generating a circle outline and
// rasterising it with x/image/vector.
func BenchmarkCircleRaster(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := NewResolution(0, 1, 1)
			raster := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			center := float64(size) / 2

			b.ReportAllocs()
			for b.Loop() {
				o := r.Circle(float64(size)*0.45, 360)
				raster.Reset(size, size)
				for i, v := range o.Vertices {
					x, y := float32(v.X+center), float32(v.Y+center)
					if i == 0 {
						raster.MoveTo(x, y)
					} else {
						raster.LineTo(x, y)
					}
				}
				raster.ClosePath()
				raster.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}
