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

import "seehuhn.de/go/tessellate"

// Polygon returns the outlines of the test case.  Counter-clockwise
// outlines are marked as positive.
func (tc TestCase) Polygon() tessellate.Polygon {
	p := make(tessellate.Polygon, len(tc.Outlines))
	for i, pts := range tc.Outlines {
		p[i] = tessellate.Outline{Vertices: pts}
		p[i].Positive = p[i].Area() > 0
	}
	return p
}

// Sweep returns the extrusion of the test case.
func (tc TestCase) Sweep() tessellate.Sweep {
	return tessellate.Sweep{
		Twist:  tc.Extrude.Twist,
		ScaleX: tc.Extrude.ScaleX,
		ScaleY: tc.Extrude.ScaleY,
		Slices: tc.Extrude.Slices,
	}
}

// Resolution returns the resolution and the explicit segment count
// (0 if none) described by the mode of the test case.
func (tc TestCase) Resolution() (tessellate.Resolution, int) {
	switch m := tc.Mode.(type) {
	case Segments:
		return tessellate.NewResolution(0, tessellate.DefaultFS, tessellate.DefaultFA), m.N
	case Fragments:
		return tessellate.NewResolution(m.FN, tessellate.DefaultFS, tessellate.DefaultFA), 0
	case Length:
		return tessellate.NewResolution(0, m.FS, m.FA), 0
	}
	panic("testcases: unknown mode")
}

// Split returns the outlines of the test case after splitting.
func (tc TestCase) Split() tessellate.Polygon {
	res, segments := tc.Resolution()
	s := tc.Sweep()
	p := tc.Polygon()
	out := make(tessellate.Polygon, len(p))
	for i, o := range p {
		out[i] = res.SplitOutline(o, s, segments)
	}
	return out
}
