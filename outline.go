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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Outline is a closed polygon boundary.  Vertex i is connected to vertex
// (i+1) mod n, so the last vertex connects back to the first.
type Outline struct {
	Vertices []vec.Vec2

	// Positive is true for outer boundaries and false for holes.
	Positive bool
}

// Len returns the number of vertices, which equals the number of edges.
func (o Outline) Len() int {
	return len(o.Vertices)
}

// Clone returns a copy of o which does not share the vertex slice.
func (o Outline) Clone() Outline {
	return Outline{Vertices: slices.Clone(o.Vertices), Positive: o.Positive}
}

// Reverse reverses the winding order of o in place.
func (o *Outline) Reverse() {
	slices.Reverse(o.Vertices)
}

// Area returns the signed area enclosed by o.  The area is positive for
// counter-clockwise outlines.
func (o Outline) Area() float64 {
	var a float64
	n := len(o.Vertices)
	for i, v0 := range o.Vertices {
		v1 := o.Vertices[(i+1)%n]
		a += v0.X*v1.Y - v1.X*v0.Y
	}
	return a / 2
}

// BBox returns the bounding box of the vertices.
// The result is the zero rectangle for an empty outline.
func (o Outline) BBox() rect.Rect {
	var r rect.Rect
	for i, v := range o.Vertices {
		if i == 0 {
			r = rect.Rect{LLx: v.X, LLy: v.Y, URx: v.X, URy: v.Y}
			continue
		}
		r.LLx = min(r.LLx, v.X)
		r.LLy = min(r.LLy, v.Y)
		r.URx = max(r.URx, v.X)
		r.URy = max(r.URy, v.Y)
	}
	return r
}

// Path returns the outline as a closed path.
func (o Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(o.Vertices) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, o.Vertices[:1]) {
			return
		}
		for i := 1; i < len(o.Vertices); i++ {
			if !yield(path.CmdLineTo, o.Vertices[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Polygon is a set of outlines which together describe a 2D region.
type Polygon []Outline

// NumVertices returns the total number of vertices over all outlines.
func (p Polygon) NumVertices() int {
	n := 0
	for _, o := range p {
		n += o.Len()
	}
	return n
}

// BBox returns the bounding box of all outlines.
func (p Polygon) BBox() rect.Rect {
	var r rect.Rect
	first := true
	for _, o := range p {
		if o.Len() == 0 {
			continue
		}
		b := o.BBox()
		if first {
			r = b
			first = false
			continue
		}
		r.LLx = min(r.LLx, b.LLx)
		r.LLy = min(r.LLy, b.LLy)
		r.URx = max(r.URx, b.URx)
		r.URy = max(r.URy, b.URy)
	}
	return r
}

// Path returns all outlines as one path, with one closed subpath per
// outline.
func (p Polygon) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, o := range p {
			for cmd, pts := range o.Path() {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}
